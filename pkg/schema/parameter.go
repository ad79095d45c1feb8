package schema

import "errors"

// Parameter specifies one named, typed, optionally-required argument an
// action expects. It is an immutable value: all fields are set at
// construction and exposed through accessors only.
type Parameter struct {
	key         string
	required    bool
	caption     string
	description string
	typ         Type
	rules       []Rule
}

// ParameterOption configures a Parameter at construction time.
type ParameterOption func(*Parameter)

// Required marks the parameter as mandatory in every argument bag.
func Required() ParameterOption {
	return func(p *Parameter) {
		p.required = true
	}
}

// WithRules appends validation rules run against supplied values.
func WithRules(rules ...Rule) ParameterOption {
	return func(p *Parameter) {
		p.rules = append(p.rules, rules...)
	}
}

// NewParameter constructs a parameter specification. Key, caption,
// description, and declared type are all mandatory.
func NewParameter(key, caption, description string, typ Type, opts ...ParameterOption) (*Parameter, error) {
	switch {
	case key == "":
		return nil, errors.New("parameter key is required")
	case caption == "":
		return nil, errors.New("parameter caption is required")
	case description == "":
		return nil, errors.New("parameter description is required")
	case typ == nil:
		return nil, errors.New("parameter type is required")
	}

	p := &Parameter{
		key:         key,
		caption:     caption,
		description: description,
		typ:         typ,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// MustParameter is like NewParameter but panics on error. Intended for
// static action declarations at bootstrap.
func MustParameter(key, caption, description string, typ Type, opts ...ParameterOption) *Parameter {
	p, err := NewParameter(key, caption, description, typ, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Key returns the parameter's unique key within one action's contract.
func (p *Parameter) Key() string { return p.key }

// IsRequired reports whether the parameter must be present.
func (p *Parameter) IsRequired() bool { return p.required }

// Caption returns the short human-readable name.
func (p *Parameter) Caption() string { return p.caption }

// Description returns the long human-readable description.
func (p *Parameter) Description() string { return p.description }

// Type returns the declared value type.
func (p *Parameter) Type() Type { return p.typ }

// Rules returns a copy of the validation rules.
func (p *Parameter) Rules() []Rule {
	out := make([]Rule, len(p.rules))
	copy(out, p.rules)
	return out
}
