// Package seqlist provides SequenceList, a growable array-backed list.
//
// The list owns a fixed-size block of slots that doubles when an insertion
// finds it full. Positional inserts and removals shift the live elements in
// place, so they cost O(n); appends are O(1) amortized.
//
// A SequenceList is not safe for concurrent use. Callers that share one
// across goroutines must serialize access themselves.
package seqlist

import (
	"fmt"
	"strings"

	"github.com/aretw0/seqlist/pkg/core"
)

// SequenceList is an ordered, index-addressable collection backed by a
// contiguous buffer. Only the first length slots of the buffer are live; the
// rest hold the zero value of T.
//
// The zero value is an empty list named DefaultName that allocates
// DefaultCapacity slots on its first insert and compares elements with ==.
// Comparing values whose dynamic type is not comparable panics, so lists of
// such elements must come from NewFunc.
type SequenceList[T any] struct {
	buffer  []T
	length  int
	growths int
	equal   func(a, b T) bool
	opts    options
}

var _ core.List[int] = (*SequenceList[int])(nil)

// New creates an empty list whose elements are compared with ==.
func New[T comparable](opts ...Option) (*SequenceList[T], error) {
	return NewFunc(func(a, b T) bool { return a == b }, opts...)
}

// NewFunc creates an empty list that compares elements with equal.
// Use it for element types that are not comparable, or when == is not the
// desired notion of equality.
func NewFunc[T any](equal func(a, b T) bool, opts ...Option) (*SequenceList[T], error) {
	if equal == nil {
		return nil, core.NewInvalidArgument("equality function is nil")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.capacity <= 0 {
		return nil, core.NewInvalidArgument("capacity must be positive, got %d", o.capacity)
	}

	return &SequenceList[T]{
		buffer: make([]T, o.capacity),
		equal:  equal,
		opts:   *o,
	}, nil
}

// IsEmpty reports whether the list holds no elements.
func (l *SequenceList[T]) IsEmpty() bool {
	return l.length == 0
}

// Size returns the number of live elements.
func (l *SequenceList[T]) Size() int {
	return l.length
}

// Cap returns the number of allocated slots.
func (l *SequenceList[T]) Cap() int {
	return len(l.buffer)
}

// AddFirst inserts element at index 0, shifting every element one slot right.
func (l *SequenceList[T]) AddFirst(element T) {
	l.ensureCapacity()
	copy(l.buffer[1:l.length+1], l.buffer[:l.length])
	l.buffer[0] = element
	l.length++
}

// AddLast appends element.
func (l *SequenceList[T]) AddLast(element T) {
	l.ensureCapacity()
	l.buffer[l.length] = element
	l.length++
}

// AddAfter inserts element right after the first element equal to existing.
func (l *SequenceList[T]) AddAfter(existing, element T) error {
	if l.IsEmpty() {
		return l.errEmpty()
	}

	index := l.IndexOf(existing)
	if index == -1 {
		return core.NewElementNotFound(existing)
	}

	l.ensureCapacity()
	copy(l.buffer[index+2:l.length+1], l.buffer[index+1:l.length])
	l.buffer[index+1] = element
	l.length++
	return nil
}

// Remove deletes the first element equal to element and returns the value
// that was stored in the list.
func (l *SequenceList[T]) Remove(element T) (T, error) {
	var zero T
	if l.IsEmpty() {
		return zero, l.errEmpty()
	}

	index := l.IndexOf(element)
	if index == -1 {
		return zero, core.NewElementNotFound(element)
	}

	return l.removeAt(index), nil
}

// RemoveFirst deletes and returns the element at index 0.
func (l *SequenceList[T]) RemoveFirst() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, l.errEmpty()
	}
	return l.removeAt(0), nil
}

// RemoveLast deletes and returns the last element.
func (l *SequenceList[T]) RemoveLast() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, l.errEmpty()
	}
	return l.removeAt(l.length - 1), nil
}

// First returns the element at index 0.
func (l *SequenceList[T]) First() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, l.errEmpty()
	}
	return l.buffer[0], nil
}

// Last returns the last element.
func (l *SequenceList[T]) Last() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, l.errEmpty()
	}
	return l.buffer[l.length-1], nil
}

// Contains reports whether an equal element exists. It fails on an empty list.
func (l *SequenceList[T]) Contains(element T) (bool, error) {
	if l.IsEmpty() {
		return false, l.errEmpty()
	}
	return l.IndexOf(element) != -1, nil
}

// IndexOf returns the index of the first element equal to element, or -1.
// An empty list simply has no match.
func (l *SequenceList[T]) IndexOf(element T) int {
	for i := 0; i < l.length; i++ {
		if l.eq(l.buffer[i], element) {
			return i
		}
	}
	return -1
}

// Get returns the element at index.
func (l *SequenceList[T]) Get(index int) (T, error) {
	var zero T
	if err := l.checkIndex(index); err != nil {
		return zero, err
	}
	return l.buffer[index], nil
}

// Set overwrites the element at index.
func (l *SequenceList[T]) Set(index int, element T) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.buffer[index] = element
	return nil
}

// Slice returns a copy of the live elements in order.
func (l *SequenceList[T]) Slice() []T {
	out := make([]T, l.length)
	copy(out, l.buffer[:l.length])
	return out
}

// String renders the elements left to right as "[a, b, c]".
func (l *SequenceList[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < l.length; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, l.buffer[i])
	}
	sb.WriteByte(']')
	return sb.String()
}

// checkIndex validates index against the live range. Emptiness is reported
// before bounds.
func (l *SequenceList[T]) checkIndex(index int) error {
	if l.IsEmpty() {
		return l.errEmpty()
	}
	if index < 0 || index >= l.length {
		return core.NewInvalidArgument("index out of bounds: %d (size %d)", index, l.length)
	}
	return nil
}

// removeAt shifts the elements after index one slot left and clears the
// vacated last slot. index must be live.
func (l *SequenceList[T]) removeAt(index int) T {
	removed := l.buffer[index]
	copy(l.buffer[index:l.length-1], l.buffer[index+1:l.length])

	var zero T
	l.buffer[l.length-1] = zero
	l.length--
	return removed
}

// ensureCapacity doubles the buffer when it has no free slot left.
func (l *SequenceList[T]) ensureCapacity() {
	if l.length < len(l.buffer) {
		return
	}

	capacity := len(l.buffer) * 2
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	buffer := make([]T, capacity)
	copy(buffer, l.buffer[:l.length])

	if l.opts.logger != nil {
		l.opts.logger.Debug("buffer grown",
			"list", l.name(),
			"from", len(l.buffer),
			"to", capacity,
			"length", l.length,
		)
	}

	l.buffer = buffer
	l.growths++
}

// eq compares with the configured equality, or == for a zero-value list.
func (l *SequenceList[T]) eq(a, b T) bool {
	if l.equal != nil {
		return l.equal(a, b)
	}
	return any(a) == any(b)
}

func (l *SequenceList[T]) name() string {
	if l.opts.name == "" {
		return DefaultName
	}
	return l.opts.name
}

func (l *SequenceList[T]) errEmpty() error {
	return core.NewEmptyCollection(l.name())
}
