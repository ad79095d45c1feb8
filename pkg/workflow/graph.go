package workflow

import (
	"fmt"
	"sort"

	"github.com/grammophone/domos/pkg/domain"
)

// Graph is the definition of one workflow graph: its named state paths and
// the action configuration bound to each path.
type Graph struct {
	name    string
	paths   map[string]domain.StatePath
	configs map[string]*PathConfig
}

// NewGraph creates an empty graph with the given code name.
func NewGraph(name string) (*Graph, error) {
	if name == "" {
		return nil, fmt.Errorf("graph name is required")
	}
	return &Graph{
		name:    name,
		paths:   make(map[string]domain.StatePath),
		configs: make(map[string]*PathConfig),
	}, nil
}

// Name returns the graph's code name.
func (g *Graph) Name() string { return g.name }

// AddPath registers a state path and its action configuration. The path
// name must be unique within the graph; a nil config gets empty defaults.
func (g *Graph) AddPath(path domain.StatePath, cfg *PathConfig) error {
	if path.Name == "" {
		return fmt.Errorf("graph %q: path name is required", g.name)
	}
	if path.From == "" || path.To == "" {
		return fmt.Errorf("graph %q: path %q must declare origin and target states", g.name, path.Name)
	}
	if path.GraphName != "" && path.GraphName != g.name {
		return fmt.Errorf("graph %q: path %q belongs to graph %q", g.name, path.Name, path.GraphName)
	}
	if _, exists := g.paths[path.Name]; exists {
		return fmt.Errorf("graph %q: duplicate path %q", g.name, path.Name)
	}

	path.GraphName = g.name
	if cfg == nil {
		cfg = NewPathConfig()
	}
	g.paths[path.Name] = path
	g.configs[path.Name] = cfg
	return nil
}

// Path looks up a state path by name.
func (g *Graph) Path(name string) (domain.StatePath, bool) {
	p, ok := g.paths[name]
	return p, ok
}

// PathConfig looks up the action configuration bound to a path.
func (g *Graph) PathConfig(name string) (*PathConfig, bool) {
	c, ok := g.configs[name]
	return c, ok
}

// Paths returns all state paths, sorted by name for deterministic output.
func (g *Graph) Paths() []domain.StatePath {
	out := make([]domain.StatePath, 0, len(g.paths))
	for _, p := range g.paths {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Config is the full state-path configuration the engine resolves against:
// a named set of workflow graphs, built at bootstrap and read-only during
// execution.
type Config struct {
	graphs map[string]*Graph
}

// NewConfig creates an empty configuration.
func NewConfig() *Config {
	return &Config{graphs: make(map[string]*Graph)}
}

// AddGraph registers a graph; duplicate names are rejected.
func (c *Config) AddGraph(g *Graph) error {
	if g == nil {
		return fmt.Errorf("graph must not be nil")
	}
	if _, exists := c.graphs[g.Name()]; exists {
		return fmt.Errorf("duplicate graph %q", g.Name())
	}
	c.graphs[g.Name()] = g
	return nil
}

// Graph looks up a graph by code name.
func (c *Config) Graph(name string) (*Graph, bool) {
	g, ok := c.graphs[name]
	return g, ok
}

// Graphs returns all graphs, sorted by name.
func (c *Config) Graphs() []*Graph {
	out := make([]*Graph, 0, len(c.graphs))
	for _, g := range c.graphs {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Resolve returns the state path and its action configuration for
// (graphName, pathName). A missing graph or path is a fatal configuration
// error, not a user-facing denial.
func (c *Config) Resolve(graphName, pathName string) (domain.StatePath, *PathConfig, error) {
	g, ok := c.graphs[graphName]
	if !ok {
		return domain.StatePath{}, nil, &domain.ConfigError{
			Graph:  graphName,
			Path:   pathName,
			Reason: "workflow graph is not configured",
		}
	}
	path, ok := g.Path(pathName)
	if !ok {
		return domain.StatePath{}, nil, &domain.ConfigError{
			Graph:  graphName,
			Path:   pathName,
			Reason: "state path is not configured",
		}
	}
	cfg, _ := g.PathConfig(pathName)
	return path, cfg, nil
}
