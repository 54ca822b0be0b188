package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/fabricmock"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fabricmock",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fabricmock version %s\n", strings.TrimSpace(fabricmock.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
