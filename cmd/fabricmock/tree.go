package main

import (
	"github.com/aretw0/fabricmock/internal/cli"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree <scenario>",
	Short: "Print the committed trees of a scenario",
	Long:  `Runs a scenario and prints every committed root as Markdown, a Mermaid diagram (graph TD) or JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		s, err := cli.Open(sessionOptions(cmd, args[0]))
		if s == nil {
			return err
		}
		if err != nil {
			// Show what was committed before the failing step.
			s.Logger.Warn("Scenario Failed", "err", err)
		}

		snaps, snapErr := s.Snapshots()
		if snapErr != nil {
			return snapErr
		}
		if werr := cli.WriteTrees(cmd.OutOrStdout(), snaps, format); werr != nil {
			return werr
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().StringP("format", "f", cli.FormatMarkdown, "Output format (markdown, mermaid, json)")
}
