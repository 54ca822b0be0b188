package main

import (
	"context"
	"net"

	"github.com/aretw0/fabricmock/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve <scenario>",
	Short: "Start the HTTP inspection server",
	Long:  `Runs a scenario, then exposes the committed trees, recorded calls and Prometheus metrics over HTTP.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := cli.Open(sessionOptions(cmd, args[0]))
		if s == nil {
			return err
		}
		if err != nil {
			s.Logger.Warn("Scenario Failed", "err", err)
		}

		port := s.Config.Serve.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetString("port")
		}

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		return s.Serve(ctx, net.JoinHostPort("", port), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
