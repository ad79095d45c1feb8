// Package graph renders workflow graphs as Mermaid flowchart syntax for
// documentation and the CLI `graph` command.
package graph

import (
	"fmt"
	"strings"

	"github.com/grammophone/domos/pkg/workflow"
)

// Overlay contains dynamic state data to visualize on the graph.
type Overlay struct {
	VisitedStates []string
	CurrentState  string
}

// GenerateMermaid produces a Mermaid flowchart from one workflow graph:
// states become nodes, state paths become labeled edges. Entry states
// (never the target of a path) are drawn as circles. Overlay styles
// (visited/current) are applied when provided.
func GenerateMermaid(g *workflow.Graph, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	states := make(map[string]bool)
	targets := make(map[string]bool)
	var order []string
	for _, path := range g.Paths() {
		for _, state := range []string{path.From, path.To} {
			if !states[state] {
				states[state] = true
				order = append(order, state)
			}
		}
		targets[path.To] = true
	}

	for _, state := range order {
		safeID := sanitizeMermaidID(state)
		opener, closer := "[", "]"
		if !targets[state] {
			opener, closer = "((", "))" // entry state
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, state, closer))
	}

	for _, path := range g.Paths() {
		sb.WriteString(fmt.Sprintf("    %s -->|%s| %s\n",
			sanitizeMermaidID(path.From), path.Name, sanitizeMermaidID(path.To)))
	}

	if overlay != nil {
		sb.WriteString("    classDef visited fill:#d3f9d8,stroke:#2b8a3e;\n")
		sb.WriteString("    classDef current fill:#fff3bf,stroke:#e67700,stroke-width:2px;\n")

		for _, state := range overlay.VisitedStates {
			if states[state] {
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", sanitizeMermaidID(state)))
			}
		}
		if overlay.CurrentState != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentState)))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
