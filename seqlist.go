package seqlist

import (
	"log/slog"

	"github.com/aretw0/seqlist/pkg/core"
	"github.com/aretw0/seqlist/pkg/seqlist"
)

// --- Types ---

// List is a public alias for the abstract list contract.
type List[T any] = core.List[T]

// SequenceList is a public alias for the growable array list.
type SequenceList[T any] = seqlist.SequenceList[T]

// ListState is a public alias for the introspection snapshot of a list.
type ListState = core.ListState

// --- Errors ---

var (
	ErrEmptyCollection = core.ErrEmptyCollection
	ErrElementNotFound = core.ErrElementNotFound
	ErrInvalidArgument = core.ErrInvalidArgument
)

// --- Configuration ---

// Option defines a functional option for configuring a list.
type Option = seqlist.Option

// DefaultCapacity is the initial number of slots of a list built without WithCapacity.
const DefaultCapacity = seqlist.DefaultCapacity

// WithCapacity sets the initial number of slots. It must be positive.
func WithCapacity(capacity int) Option {
	return seqlist.WithCapacity(capacity)
}

// WithName sets the structure name carried by empty-collection errors.
func WithName(name string) Option {
	return seqlist.WithName(name)
}

// WithLogger sets the logger for the list.
func WithLogger(logger *slog.Logger) Option {
	return seqlist.WithLogger(logger)
}

// --- Factory ---

// New creates an empty list comparing elements with ==.
func New[T comparable](opts ...Option) (*SequenceList[T], error) {
	return seqlist.New[T](opts...)
}

// NewFunc creates an empty list comparing elements with equal.
func NewFunc[T any](equal func(a, b T) bool, opts ...Option) (*SequenceList[T], error) {
	return seqlist.NewFunc(equal, opts...)
}

// --- Utils ---

// ErrorKind classifies an error returned by a list ("empty_collection",
// "element_not_found", "invalid_argument"), "" for nil.
func ErrorKind(err error) string {
	return core.Kind(err)
}
