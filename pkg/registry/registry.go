package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/grammophone/domos/pkg/workflow"
)

// Registry manages the available workflow actions, keyed by their
// registration key. It implements workflow.ActionResolver.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]workflow.Action
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		actions: make(map[string]workflow.Action),
	}
}

// Register adds an action to the registry.
// If an action with the same key exists, it is overwritten.
func (r *Registry) Register(key string, action workflow.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[key] = action
}

// Resolve looks up an action by key.
// A missing registration is a configuration fault surfaced to the caller.
func (r *Registry) Resolve(key string) (workflow.Action, error) {
	r.mu.RLock()
	action, ok := r.actions[key]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("action not registered: %s", key)
	}
	return action, nil
}

// Keys returns the registered action keys, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.actions))
	for k := range r.actions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
