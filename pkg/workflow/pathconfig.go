package workflow

import "errors"

// PathConfig binds an ordered set of pre-actions and an ordered set of
// post-actions (by registration key) to one state path. It is mutable at
// configuration time and read-only during execution: accessors return
// copies.
//
// Ordering within each phase is an explicit contract; later actions may
// depend on earlier ones' side effects.
type PathConfig struct {
	pre  []string
	post []string
}

// NewPathConfig creates a configuration with empty action sequences.
func NewPathConfig() *PathConfig {
	return &PathConfig{
		pre:  []string{},
		post: []string{},
	}
}

// SetPreActions replaces the ordered pre-action keys. A nil sequence is
// rejected; use an empty slice to clear.
func (c *PathConfig) SetPreActions(keys []string) error {
	if keys == nil {
		return errors.New("pre-actions must not be nil")
	}
	c.pre = append([]string{}, keys...)
	return nil
}

// SetPostActions replaces the ordered post-action keys. A nil sequence is
// rejected; use an empty slice to clear.
func (c *PathConfig) SetPostActions(keys []string) error {
	if keys == nil {
		return errors.New("post-actions must not be nil")
	}
	c.post = append([]string{}, keys...)
	return nil
}

// PreActions returns the ordered pre-action keys.
func (c *PathConfig) PreActions() []string {
	return append([]string{}, c.pre...)
}

// PostActions returns the ordered post-action keys.
func (c *PathConfig) PostActions() []string {
	return append([]string{}, c.post...)
}
