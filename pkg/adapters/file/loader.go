// Package file loads workflow graph configuration from YAML documents.
//
// Example document:
//
//	graphs:
//	  - name: PurchaseOrder
//	    paths:
//	      - name: Submit
//	        from: Draft
//	        to: Submitted
//	        pre: [checkBudget]
//	        post: [notifyApprover]
package file

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/grammophone/domos/pkg/domain"
	"github.com/grammophone/domos/pkg/workflow"
)

type pathSpec struct {
	Name string   `mapstructure:"name"`
	From string   `mapstructure:"from"`
	To   string   `mapstructure:"to"`
	Pre  []string `mapstructure:"pre"`
	Post []string `mapstructure:"post"`
}

type graphSpec struct {
	Name  string     `mapstructure:"name"`
	Paths []pathSpec `mapstructure:"paths"`
}

type configSpec struct {
	Graphs []graphSpec `mapstructure:"graphs"`
}

// Load reads and parses a workflow configuration file.
func Load(path string) (*workflow.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}
	return Parse(data)
}

// Parse builds a workflow.Config from a YAML document.
func Parse(data []byte) (*workflow.Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	var spec configSpec
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &spec,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}

	cfg := workflow.NewConfig()
	for _, gs := range spec.Graphs {
		graph, err := workflow.NewGraph(gs.Name)
		if err != nil {
			return nil, err
		}
		for _, ps := range gs.Paths {
			pathCfg := workflow.NewPathConfig()
			if ps.Pre != nil {
				if err := pathCfg.SetPreActions(ps.Pre); err != nil {
					return nil, err
				}
			}
			if ps.Post != nil {
				if err := pathCfg.SetPostActions(ps.Post); err != nil {
					return nil, err
				}
			}
			path := domain.StatePath{
				Name: ps.Name,
				From: ps.From,
				To:   ps.To,
			}
			if err := graph.AddPath(path, pathCfg); err != nil {
				return nil, err
			}
		}
		if err := cfg.AddGraph(graph); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
