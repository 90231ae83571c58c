package seqlist

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the live elements as a JSON array.
func (l *SequenceList[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Slice())
}

// UnmarshalJSON replaces the contents of l with the elements of a JSON array.
// A nil *SequenceList field is allocated by encoding/json as a zero value,
// which compares elements with ==; element types that are not comparable need
// the field pre-populated from NewFunc before decoding.
func (l *SequenceList[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("invalid json list: %w", err)
	}
	return l.replace(items)
}

// MarshalYAML encodes the live elements as a YAML sequence.
func (l *SequenceList[T]) MarshalYAML() (any, error) {
	return l.Slice(), nil
}

// UnmarshalYAML replaces the contents of l with the elements of a YAML sequence.
// As with UnmarshalJSON, a nil field is decoded into a zero-value list.
func (l *SequenceList[T]) UnmarshalYAML(node *yaml.Node) error {
	var items []T
	if err := node.Decode(&items); err != nil {
		return fmt.Errorf("invalid yaml list: %w", err)
	}
	return l.replace(items)
}

// replace clears the list and appends items. Capacity, name, logger and
// equality are kept.
func (l *SequenceList[T]) replace(items []T) error {
	clear(l.buffer[:l.length])
	l.length = 0
	for _, item := range items {
		l.AddLast(item)
	}
	return nil
}
