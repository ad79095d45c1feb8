package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grammophone/domos/internal/validator"
	"github.com/grammophone/domos/pkg/adapters/file"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a workflow configuration file",
	Long: `Validate parses the configuration, rejecting malformed or duplicate path
definitions, and checks that every graph has an entry state. Action
registrations live in the host process, so action keys are not resolved here.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := file.Load(configPath)
		if err != nil {
			return err
		}
		if err := validator.ValidateConfig(cfg, nil); err != nil {
			return err
		}

		fmt.Printf("%s: %d graph(s) OK\n", configPath, len(cfg.Graphs()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
