package platform

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/seqlist/pkg/script"
)

// options holds the internal configuration for running script batches.
type options struct {
	logger   *slog.Logger
	format   string
	output   io.Writer
	debounce time.Duration
}

// Option defines a functional option for configuring the platform helpers.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		format:   script.FormatText,
		output:   os.Stdout,
		debounce: 100 * time.Millisecond,
	}
}

// WithLogger sets the logger for the runner, the lists and the watcher.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFormat selects the report format ("text", "json" or "yaml").
// Defaults to "text".
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithOutput sets where reports are written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithDebounce sets how long the watcher waits for a burst of writes to
// settle before re-running a script.
// Zero means default (100ms).
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.debounce = d
		}
	}
}
