package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of algoviz",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "algoviz version %s\n", algoviz.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
