// Package script drives a SequenceList[string] from YAML operation scripts.
//
// A script names the list operations to perform in order, optionally with an
// expected outcome per step. Running it produces a Report with the result and
// rendering after every step, which makes scripts usable both as demos and as
// executable checks of the list contract.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidScript is wrapped by every parse and validation failure.
var ErrInvalidScript = errors.New("invalid script")

// Script is a named sequence of list operations.
type Script struct {
	Name string `yaml:"name" json:"name"`
	// Capacity is the initial capacity of the list. Zero selects the default.
	Capacity int    `yaml:"capacity,omitempty" json:"capacity,omitempty"`
	Steps    []Step `yaml:"steps" json:"steps"`
}

// Step is a single list operation.
type Step struct {
	Op       string  `yaml:"op" json:"op"`
	Value    *string `yaml:"value,omitempty" json:"value,omitempty"`
	Existing *string `yaml:"existing,omitempty" json:"existing,omitempty"`
	Index    *int    `yaml:"index,omitempty" json:"index,omitempty"`
	Expect   *Expect `yaml:"expect,omitempty" json:"expect,omitempty"`
}

// Expect describes the outcome a step must have.
// Error holds an error kind ("empty_collection", "element_not_found",
// "invalid_argument"); Value the textual result of a successful step.
type Expect struct {
	Value *string `yaml:"value,omitempty" json:"value,omitempty"`
	Error string  `yaml:"error,omitempty" json:"error,omitempty"`
}

// Args renders the step arguments in the compact form accepted by ParseStep.
func (s Step) Args() string {
	var parts []string
	if s.Index != nil {
		parts = append(parts, strconv.Itoa(*s.Index))
	}
	if s.Existing != nil {
		parts = append(parts, *s.Existing)
	}
	if s.Value != nil {
		parts = append(parts, *s.Value)
	}
	return strings.Join(parts, ",")
}

// Load reads and validates the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a script from r. Unknown fields are rejected.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScript)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the capacity and every step.
func (s *Script) Validate() error {
	if s.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative, got %d", ErrInvalidScript, s.Capacity)
	}
	for i, step := range s.Steps {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

// Validate checks that the op is known and carries its required arguments.
func (s Step) Validate() error {
	def, ok := ops[s.Op]
	if !ok {
		return fmt.Errorf("%w: unknown op %q", ErrInvalidScript, s.Op)
	}
	if def.value && s.Value == nil {
		return fmt.Errorf("%w: %s requires value", ErrInvalidScript, s.Op)
	}
	if def.existing && s.Existing == nil {
		return fmt.Errorf("%w: %s requires existing", ErrInvalidScript, s.Op)
	}
	if def.index && s.Index == nil {
		return fmt.Errorf("%w: %s requires index", ErrInvalidScript, s.Op)
	}
	return nil
}

// ParseStep parses the compact form op[=arg[,arg]] used on the command line:
//
//	addLast=1
//	addAfter=1,x   (existing, value)
//	get=3
//	set=0,z        (index, value)
func ParseStep(arg string) (Step, error) {
	name, rest, hasArgs := strings.Cut(arg, "=")
	step := Step{Op: name}

	def, ok := ops[name]
	if !ok {
		return Step{}, fmt.Errorf("%w: unknown op %q", ErrInvalidScript, name)
	}

	want := def.arity()
	var fields []string
	if hasArgs {
		if want <= 1 {
			fields = []string{rest}
		} else {
			first, second, found := strings.Cut(rest, ",")
			if !found {
				return Step{}, fmt.Errorf("%w: %s takes %d arguments, got %q", ErrInvalidScript, name, want, rest)
			}
			fields = []string{first, second}
		}
	}
	if len(fields) != want {
		return Step{}, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrInvalidScript, name, want, len(fields))
	}

	if def.index {
		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			return Step{}, fmt.Errorf("%w: %s index %q is not a number", ErrInvalidScript, name, fields[0])
		}
		step.Index = &idx
		fields = fields[1:]
	}
	if def.existing {
		existing := fields[0]
		step.Existing = &existing
		fields = fields[1:]
	}
	if def.value {
		value := fields[0]
		step.Value = &value
	}
	return step, nil
}
