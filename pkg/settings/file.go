package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileSource reads settings sections from one YAML document whose top-level
// keys name the sections. The file is re-read on every miss, so pairing it
// with a Cache is the intended usage.
type FileSource struct {
	path string
}

// NewFileSource creates a source reading from the given YAML file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Section returns the named top-level mapping from the file.
func (s *FileSource) Section(name string) (map[string]any, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	var doc map[string]map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}

	section, ok := doc[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, name)
	}
	return section, nil
}
