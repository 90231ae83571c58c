package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/seqlist/pkg/script"
)

// Summary aggregates the outcome of a batch of scripts.
type Summary struct {
	Scripts int
	Failed  int
}

// RunScripts loads, runs and reports every script in paths, in order.
// A script that cannot be loaded stops the batch; failed expectations do not.
func RunScripts(ctx context.Context, paths []string, opts ...Option) (Summary, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	runner := script.NewRunner(script.WithLogger(o.logger))

	var sum Summary
	for _, path := range paths {
		s, err := script.Load(path)
		if err != nil {
			return sum, err
		}
		if s.Name == "" {
			s.Name = path
		}

		report, err := runner.Run(ctx, s)
		if err != nil {
			return sum, fmt.Errorf("failed to run %s: %w", path, err)
		}
		report.Source = path

		if err := report.Encode(o.output, o.format); err != nil {
			return sum, fmt.Errorf("failed to write report: %w", err)
		}

		sum.Scripts++
		sum.Failed += report.Failed()
		if o.logger != nil {
			o.logger.Info("script finished", "path", path, "steps", len(report.Steps), "failed", report.Failed())
		}
	}
	return sum, nil
}
