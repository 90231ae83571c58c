// Package seqlist is the entry point for the seqlist library.
//
// It re-exports the growable array list from pkg/seqlist together with the
// abstract list contract and error kinds from pkg/core, so most callers only
// need this import.
//
// Features:
//
//   - **Growable buffer**: starts at 10 slots (or WithCapacity) and doubles when full. Capacity never shrinks.
//   - **Positional edits**: AddFirst, AddAfter, Remove and RemoveFirst shift elements in place.
//   - **Errors as values**: ErrEmptyCollection, ErrElementNotFound and ErrInvalidArgument, matched with errors.Is.
//   - **Observability**: lists implement introspection.Introspectable and log growth through an injected slog.Logger.
//   - **Codecs**: lists encode to and decode from JSON arrays and YAML sequences.
//
// Usage:
//
//	list, err := seqlist.New[int](seqlist.WithCapacity(4))
//	if err != nil {
//		return err
//	}
//	list.AddLast(1)
//	list.AddFirst(0)
//	if _, err := list.Remove(1); errors.Is(err, seqlist.ErrElementNotFound) {
//		// ...
//	}
package seqlist
