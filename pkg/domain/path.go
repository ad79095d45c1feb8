package domain

// StatePath is a named, permitted transition between two states in a
// workflow graph. Its identity is the pair (GraphName, Name).
//
// Paths are defined at configuration time and never mutated by the engine;
// the engine only resolves them and checks that From matches the stateful
// object's current state.
type StatePath struct {
	// GraphName is the code name of the workflow graph owning this path.
	GraphName string `json:"graph" yaml:"graph"`

	// Name is the code name of the path, unique within its graph.
	Name string `json:"name" yaml:"name"`

	// From is the state the path originates from.
	From string `json:"from" yaml:"from"`

	// To is the state the path leads to.
	To string `json:"to" yaml:"to"`
}

// Key returns the canonical "graph/path" identifier used in logs and maps.
func (p StatePath) Key() string {
	return p.GraphName + "/" + p.Name
}
