// Package validator performs static checks over a workflow configuration
// before it is handed to the engine: action keys must be registered and
// every state should be reachable.
package validator

import (
	"fmt"
	"strings"

	"github.com/grammophone/domos/pkg/workflow"
)

// ValidateConfig checks every graph in cfg. All problems found are
// collected into one error rather than stopping at the first.
func ValidateConfig(cfg *workflow.Config, resolver workflow.ActionResolver) error {
	var problems []string

	for _, graph := range cfg.Graphs() {
		problems = append(problems, validateGraph(graph, resolver)...)
	}

	if len(problems) > 0 {
		return fmt.Errorf("found %d problem(s):\n- %s", len(problems), strings.Join(problems, "\n- "))
	}
	return nil
}

// validateGraph checks one graph: every configured action key resolves,
// and every state named as a path target is the origin of some path or a
// recognized sink.
func validateGraph(graph *workflow.Graph, resolver workflow.ActionResolver) []string {
	var problems []string

	origins := make(map[string]bool)
	targets := make(map[string]bool)

	for _, path := range graph.Paths() {
		origins[path.From] = true
		targets[path.To] = true

		cfg, ok := graph.PathConfig(path.Name)
		if !ok {
			continue
		}
		for _, key := range append(cfg.PreActions(), cfg.PostActions()...) {
			if resolver == nil {
				continue
			}
			if _, err := resolver.Resolve(key); err != nil {
				problems = append(problems, fmt.Sprintf(
					"graph %q path %q: action %q is not registered", graph.Name(), path.Name, key))
			}
		}
	}

	// A state only ever appearing as an origin and never as a target is an
	// entry state; more than one is usually a configuration slip.
	var entries []string
	for state := range origins {
		if !targets[state] {
			entries = append(entries, state)
		}
	}
	if len(origins) > 0 && len(entries) == 0 {
		problems = append(problems, fmt.Sprintf(
			"graph %q: no entry state, every state is the target of some path", graph.Name()))
	}

	return problems
}
