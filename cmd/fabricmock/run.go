package main

import (
	"github.com/aretw0/fabricmock"
	"github.com/aretw0/fabricmock/internal/cli"
	"github.com/aretw0/fabricmock/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario and report its assertions",
	Long:  `Executes every step of a YAML or JSON scenario against a fresh emulator and stops at the first failing step.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		quiet, _ := cmd.Flags().GetBool("quiet")
		if !quiet {
			tui.PrintBanner(out, fabricmock.Version)
		}

		s, err := cli.Open(sessionOptions(cmd, args[0]))
		if s != nil {
			cli.PrintReport(out, s.Report, err)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolP("quiet", "q", false, "Do not print the banner")
}
