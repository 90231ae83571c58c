package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/seqlist"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of seqlist",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "seqlist version %s\n", strings.TrimSpace(seqlist.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
