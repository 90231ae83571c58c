package main

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/seqlist/pkg/script"
	"github.com/spf13/cobra"
)

var (
	evalCapacity int
	evalName     string
)

var evalCmd = &cobra.Command{
	Use:   "eval op[=arg[,arg]]...",
	Short: "Run operations given on the command line",
	Long: `Run a sequence of list operations given as arguments, for example:

  seqlist eval addLast=1 addLast=2 addFirst=0 remove=1 get=5

addAfter takes "existing,value" and set takes "index,value".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := &script.Script{Name: evalName, Capacity: evalCapacity}
		for _, arg := range args {
			step, err := script.ParseStep(arg)
			if err != nil {
				return fmt.Errorf("parsing operation: %w", err)
			}
			s.Steps = append(s.Steps, step)
		}

		runner := script.NewRunner(script.WithLogger(slog.Default()))
		report, err := runner.Run(cmd.Context(), s)
		if err != nil {
			return fmt.Errorf("running operations: %w", err)
		}

		if err := report.Encode(cmd.OutOrStdout(), format); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().IntVarP(&evalCapacity, "capacity", "c", 0, "Initial list capacity (default 10)")
	evalCmd.Flags().StringVar(&evalName, "name", "eval", "Name shown in the report")
}
