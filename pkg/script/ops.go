package script

import (
	"maps"
	"slices"
	"strconv"

	"github.com/aretw0/seqlist/pkg/seqlist"
)

type list = seqlist.SequenceList[string]

// opSpec declares which arguments an op needs and how it runs.
type opSpec struct {
	index    bool
	existing bool
	value    bool
	run      func(l *list, s Step) (string, error)
}

func (o opSpec) arity() int {
	n := 0
	for _, b := range []bool{o.index, o.existing, o.value} {
		if b {
			n++
		}
	}
	return n
}

var ops = map[string]opSpec{
	"isEmpty": {run: func(l *list, _ Step) (string, error) {
		return strconv.FormatBool(l.IsEmpty()), nil
	}},
	"size": {run: func(l *list, _ Step) (string, error) {
		return strconv.Itoa(l.Size()), nil
	}},
	"addFirst": {value: true, run: func(l *list, s Step) (string, error) {
		l.AddFirst(*s.Value)
		return "", nil
	}},
	"addLast": {value: true, run: func(l *list, s Step) (string, error) {
		l.AddLast(*s.Value)
		return "", nil
	}},
	"addAfter": {existing: true, value: true, run: func(l *list, s Step) (string, error) {
		return "", l.AddAfter(*s.Existing, *s.Value)
	}},
	"remove": {value: true, run: func(l *list, s Step) (string, error) {
		return l.Remove(*s.Value)
	}},
	"removeFirst": {run: func(l *list, _ Step) (string, error) {
		return l.RemoveFirst()
	}},
	"removeLast": {run: func(l *list, _ Step) (string, error) {
		return l.RemoveLast()
	}},
	"first": {run: func(l *list, _ Step) (string, error) {
		return l.First()
	}},
	"last": {run: func(l *list, _ Step) (string, error) {
		return l.Last()
	}},
	"contains": {value: true, run: func(l *list, s Step) (string, error) {
		ok, err := l.Contains(*s.Value)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(ok), nil
	}},
	"indexOf": {value: true, run: func(l *list, s Step) (string, error) {
		return strconv.Itoa(l.IndexOf(*s.Value)), nil
	}},
	"get": {index: true, run: func(l *list, s Step) (string, error) {
		return l.Get(*s.Index)
	}},
	"set": {index: true, value: true, run: func(l *list, s Step) (string, error) {
		return "", l.Set(*s.Index, *s.Value)
	}},
	"string": {run: func(l *list, _ Step) (string, error) {
		return l.String(), nil
	}},
}

// Ops returns the names of the supported operations, sorted.
func Ops() []string {
	return slices.Sorted(maps.Keys(ops))
}
