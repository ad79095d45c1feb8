package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "domos",
	Short: "Domos inspects workflow configurations for the process execution layer",
	Long: `Domos is a business-process execution layer. This tool validates workflow
graph configuration files and renders them for documentation.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "workflows.yaml", "Workflow configuration file")
}
