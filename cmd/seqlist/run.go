package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/seqlist/internal/platform"
	"github.com/spf13/cobra"
)

var (
	runWatch bool
)

var runCmd = &cobra.Command{
	Use:   "run [pattern...]",
	Short: "Run operation scripts",
	Long: `Run every script matched by the given patterns ("**" is supported).
Without patterns, runs **/*.seqlist.yaml below the current directory.

Exits with status 1 if any step expectation fails. With --watch, keeps
running and re-runs a script whenever it changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := platform.Discover(args)
		if err != nil {
			return fmt.Errorf("finding scripts: %w", err)
		}

		opts := []platform.Option{
			platform.WithLogger(slog.Default()),
			platform.WithFormat(format),
			platform.WithOutput(cmd.OutOrStdout()),
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sum, err := platform.RunScripts(ctx, paths, opts...)
		if err != nil {
			return fmt.Errorf("running scripts: %w", err)
		}

		if !runWatch {
			if sum.Failed > 0 {
				return fmt.Errorf("%w: %d across %d script(s)", errExpectationsFailed, sum.Failed, sum.Scripts)
			}
			return nil
		}

		err = platform.Watch(ctx, paths, func(path string) {
			if _, err := platform.RunScripts(ctx, []string{path}, opts...); err != nil {
				slog.Error("re-run failed", "path", path, "error", err)
			}
		}, platform.WithLogger(slog.Default()))
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}

		slog.Info("watching scripts", "count", len(paths))
		<-ctx.Done()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "Re-run scripts when they change")
}
