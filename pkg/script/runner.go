package script

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/seqlist/pkg/core"
	"github.com/aretw0/seqlist/pkg/seqlist"
)

// Runner executes scripts.
type Runner struct {
	logger *slog.Logger
}

// Option defines a functional option for configuring a Runner.
type Option func(*Runner)

// WithLogger sets the logger for the runner and the lists it creates.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the steps of s in order on a fresh list.
// List errors are recorded in the report; the returned error is reserved for
// invalid scripts and cancellation.
func (r *Runner) Run(ctx context.Context, s *Script) (*Report, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil script", ErrInvalidScript)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	opts := []seqlist.Option{seqlist.WithLogger(r.logger)}
	if s.Capacity > 0 {
		opts = append(opts, seqlist.WithCapacity(s.Capacity))
	}
	l, err := seqlist.New[string](opts...)
	if err != nil {
		return nil, err
	}

	report := &Report{Name: s.Name}
	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("script %q interrupted at step %d: %w", s.Name, i+1, err)
		}

		result, opErr := ops[step.Op].run(l, step)
		sr := StepResult{
			Step:  i + 1,
			Op:    step.Op,
			Args:  step.Args(),
			Value: result,
			List:  l.String(),
		}
		if opErr != nil {
			sr.Value = ""
			sr.Kind = core.Kind(opErr)
			sr.Error = opErr.Error()
		}
		sr.Failed, sr.Reason = check(step.Expect, sr)

		if r.logger != nil {
			r.logger.Debug("step executed",
				"script", s.Name,
				"step", sr.Step,
				"op", sr.Op,
				"result", sr.Value,
				"error", sr.Error,
			)
			if sr.Failed {
				r.logger.Warn("expectation failed", "script", s.Name, "step", sr.Step, "reason", sr.Reason)
			}
		}
		report.Steps = append(report.Steps, sr)
	}

	report.Final = l.String()
	report.State = l.State().(core.ListState)
	return report, nil
}

// check compares a step outcome with its expectation.
func check(want *Expect, got StepResult) (failed bool, reason string) {
	if want == nil {
		return false, ""
	}

	if want.Error != "" {
		if got.Kind != want.Error {
			return true, fmt.Sprintf("expected error %s, got %s", want.Error, describe(got))
		}
		return false, ""
	}

	if got.Kind != "" {
		return true, fmt.Sprintf("expected success, got error %s", got.Kind)
	}
	if want.Value != nil && *want.Value != got.Value {
		return true, fmt.Sprintf("expected value %q, got %q", *want.Value, got.Value)
	}
	return false, ""
}

func describe(r StepResult) string {
	if r.Kind == "" {
		return fmt.Sprintf("success (%q)", r.Value)
	}
	return r.Kind
}
