package main

import (
	"context"
	"time"

	"github.com/aretw0/fabricmock/internal/cli"
	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Print the trees stored in Redis",
	Long:  `Loads every stored root into an empty manager and prints it as Markdown, a Mermaid diagram (graph TD) or JSON.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		s, err := cli.Open(sessionOptions(cmd, ""))
		if err != nil {
			return err
		}

		store, _, closeStore, err := openStore(cmd, s.Config.Redis)
		if err != nil {
			return err
		}
		defer closeStore()

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		n, err := s.RestoreSnapshots(ctx, store)
		if err != nil {
			return err
		}
		s.Logger.Info("Snapshots Restored", "roots", n)

		snaps, err := s.Snapshots()
		if err != nil {
			return err
		}
		return cli.WriteTrees(cmd.OutOrStdout(), snaps, format)
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
	restoreCmd.Flags().String("redis", "localhost:6379", "Redis address")
	restoreCmd.Flags().StringP("format", "f", cli.FormatMarkdown, "Output format (markdown, mermaid, json)")
}
