// Package settings provides a caller-owned cache of configuration
// sections. It replaces process-wide static settings caches: the cache is
// an explicit object threaded through dependency injection, bounded in
// size, and invalidated explicitly.
package settings

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrSectionNotFound is returned when a source has no section by the
// requested name.
var ErrSectionNotFound = errors.New("settings section not found")

// Source provides raw settings sections by name.
type Source interface {
	Section(name string) (map[string]any, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(name string) (map[string]any, error)

func (f SourceFunc) Section(name string) (map[string]any, error) {
	return f(name)
}

// Cache is a bounded, least-recently-used cache of settings sections.
// Safe for concurrent use.
type Cache struct {
	source   Source
	sections *lru.Cache[string, map[string]any]
}

// NewCache creates a cache over source holding at most capacity sections.
func NewCache(source Source, capacity int) (*Cache, error) {
	if source == nil {
		return nil, errors.New("settings source is required")
	}
	sections, err := lru.New[string, map[string]any](capacity)
	if err != nil {
		return nil, fmt.Errorf("settings cache: %w", err)
	}
	return &Cache{source: source, sections: sections}, nil
}

// Section returns the named section, loading it through the source on a
// cache miss and evicting the least recently used section when full.
// Callers receive a copy; mutating it does not affect the cache.
func (c *Cache) Section(name string) (map[string]any, error) {
	if section, ok := c.sections.Get(name); ok {
		return copySection(section), nil
	}

	// Sources may do I/O; concurrent misses race to load and the first
	// insert wins.
	section, err := c.source.Section(name)
	if err != nil {
		return nil, err
	}
	if previous, loaded, _ := c.sections.PeekOrAdd(name, copySection(section)); loaded {
		return copySection(previous), nil
	}
	return copySection(section), nil
}

// Invalidate drops the named section; the next read reloads it.
func (c *Cache) Invalidate(name string) {
	c.sections.Remove(name)
}

// Flush drops every cached section.
func (c *Cache) Flush() {
	c.sections.Purge()
}

// Len reports the number of cached sections.
func (c *Cache) Len() int {
	return c.sections.Len()
}

func copySection(section map[string]any) map[string]any {
	out := make(map[string]any, len(section))
	for k, v := range section {
		out[k] = v
	}
	return out
}
