package seqlist

import (
	"github.com/aretw0/introspection"

	"github.com/aretw0/seqlist/pkg/core"
)

// State implements introspection.Introspectable.
func (l *SequenceList[T]) State() any {
	return core.ListState{
		Name:     l.name(),
		Length:   l.length,
		Capacity: len(l.buffer),
		Growths:  l.growths,
	}
}

// ComponentType implements introspection.Component.
func (l *SequenceList[T]) ComponentType() string {
	return "sequence-list"
}

var _ introspection.Introspectable = (*SequenceList[int])(nil)
var _ introspection.Component = (*SequenceList[int])(nil)
