package seqlist

import (
	"log/slog"
)

const (
	// DefaultCapacity is the number of slots allocated when no capacity is given.
	DefaultCapacity = 10
	// DefaultName identifies the structure in EmptyCollection errors.
	DefaultName = "SequenceList"
)

// options holds the construction-time configuration of a SequenceList.
type options struct {
	capacity int
	name     string
	logger   *slog.Logger
}

// Option defines a functional option for configuring a SequenceList.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		capacity: DefaultCapacity,
		name:     DefaultName,
	}
}

// WithCapacity sets the initial number of slots.
// It must be positive; New rejects anything else with ErrInvalidArgument.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// WithName sets the name reported by EmptyCollection errors.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger used for growth events. Nil disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
