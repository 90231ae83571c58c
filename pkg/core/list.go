// Package core defines the abstract list contract and the errors shared by
// every list implementation.
package core

// List defines the contract for an ordered, index-addressable collection that
// permits duplicates.
// Search-based operations (AddAfter, Remove, Contains, IndexOf) compare
// elements with the implementation's equality capability and always take the
// first match of a forward scan.
type List[T any] interface {
	// IsEmpty reports whether the list holds no elements.
	IsEmpty() bool

	// Size returns the number of elements.
	Size() int

	// AddFirst inserts element at index 0.
	AddFirst(element T)

	// AddLast appends element.
	AddLast(element T)

	// AddAfter inserts element immediately after the first element equal to existing.
	// It fails with ErrEmptyCollection or ErrElementNotFound.
	AddAfter(existing, element T) error

	// Remove deletes the first element equal to element and returns the stored value.
	Remove(element T) (T, error)

	// RemoveFirst deletes and returns the element at index 0.
	RemoveFirst() (T, error)

	// RemoveLast deletes and returns the last element.
	RemoveLast() (T, error)

	// First returns the element at index 0 without removing it.
	First() (T, error)

	// Last returns the last element without removing it.
	Last() (T, error)

	// Contains reports whether an equal element exists.
	// Unlike IndexOf it fails with ErrEmptyCollection on an empty list.
	Contains(element T) (bool, error)

	// IndexOf returns the index of the first equal element, or -1.
	IndexOf(element T) int

	// Get returns the element at index.
	Get(index int) (T, error)

	// Set overwrites the element at index.
	Set(index int, element T) error

	// String renders the elements as "[a, b, c]".
	String() string
}
