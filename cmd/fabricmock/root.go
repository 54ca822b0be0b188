package main

import (
	"fmt"
	"os"

	"github.com/aretw0/fabricmock/internal/cli"
	"github.com/aretw0/fabricmock/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fabricmock",
	Short: "fabricmock emulates the Fabric UIManager for tests",
	Long: `fabricmock runs scenario scripts against an in-process emulator of the
native Fabric UI tree manager and lets you inspect the committed trees.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
}

// sessionOptions collects the shared flags for a scenario path.
func sessionOptions(cmd *cobra.Command, scenarioPath string) cli.Options {
	configPath, _ := cmd.Flags().GetString("config")
	logLevel, _ := cmd.Flags().GetString("log-level")
	return cli.Options{
		ConfigPath:     configPath,
		ConfigExplicit: cmd.Flags().Changed("config"),
		LogLevel:       logLevel,
		ScenarioPath:   scenarioPath,
	}
}
