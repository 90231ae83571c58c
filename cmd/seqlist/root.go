package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	format  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "seqlist",
	Short: "Drive a growable array list from operation scripts",
	Long: `seqlist runs sequences of list operations (addFirst, addAfter, remove, get, ...)
against a SequenceList and reports the result and contents after every step.
Steps may carry expectations, which turns scripts into executable checks.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
	},
}

// errExpectationsFailed marks a run that completed with failed expectations.
// The report already explains which steps failed.
var errExpectationsFailed = errors.New("expectations failed")

// Execute runs the root command and returns the process exit status. Errors
// are written to the command's error stream.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "text", "Report format: text, json or yaml")
}
