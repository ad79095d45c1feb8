package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grammophone/domos/internal/presentation/graph"
	"github.com/grammophone/domos/pkg/adapters/file"
)

var graphCmd = &cobra.Command{
	Use:   "graph <graph-name>",
	Short: "Render a workflow graph as Mermaid flowchart syntax",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := file.Load(configPath)
		if err != nil {
			return err
		}
		g, ok := cfg.Graph(args[0])
		if !ok {
			return fmt.Errorf("graph %q not found in %s", args[0], configPath)
		}

		fmt.Print(graph.GenerateMermaid(g, nil))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
