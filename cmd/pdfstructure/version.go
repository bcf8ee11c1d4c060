package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pyhub-apps/pdfstructure/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	// no config or logger needed
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pdfstructure %s\n", version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
