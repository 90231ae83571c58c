package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrEmptyCollection = errors.New("collection is empty")
	ErrElementNotFound = errors.New("element not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Error kinds as reported by Kind.
const (
	KindEmptyCollection = "empty_collection"
	KindElementNotFound = "element_not_found"
	KindInvalidArgument = "invalid_argument"
	KindUnknown         = "unknown"
)

// EmptyCollectionError is returned when an operation needs at least one
// element but the collection has none.
type EmptyCollectionError struct {
	// Collection is the name of the structure that was empty.
	Collection string
}

func (e *EmptyCollectionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Collection, ErrEmptyCollection)
}

func (e *EmptyCollectionError) Unwrap() error { return ErrEmptyCollection }

// ElementNotFoundError is returned when a search-based operation requires a
// match that does not exist.
type ElementNotFoundError struct {
	// Element is the textual form of the value that was searched for.
	Element string
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("%v: %s", ErrElementNotFound, e.Element)
}

func (e *ElementNotFoundError) Unwrap() error { return ErrElementNotFound }

// InvalidArgumentError is returned for out-of-range indices and bad
// constructor arguments.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidArgument, e.Message)
}

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// NewEmptyCollection builds an EmptyCollectionError for the named structure.
func NewEmptyCollection(collection string) error {
	return &EmptyCollectionError{Collection: collection}
}

// NewElementNotFound builds an ElementNotFoundError carrying fmt.Sprint(element).
func NewElementNotFound(element any) error {
	return &ElementNotFoundError{Element: fmt.Sprint(element)}
}

// NewInvalidArgument builds an InvalidArgumentError with a formatted message.
func NewInvalidArgument(format string, args ...any) error {
	return &InvalidArgumentError{Message: fmt.Sprintf(format, args...)}
}

// Kind classifies err into one of the three list error kinds.
// It returns "" for a nil error and KindUnknown for anything else.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyCollection):
		return KindEmptyCollection
	case errors.Is(err, ErrElementNotFound):
		return KindElementNotFound
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	default:
		return KindUnknown
	}
}
