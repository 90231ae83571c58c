package script

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/seqlist/pkg/core"
)

// Output formats accepted by Report.Encode.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StepResult is the outcome of a single step.
type StepResult struct {
	Step   int    `json:"step" yaml:"step"`
	Op     string `json:"op" yaml:"op"`
	Args   string `json:"args,omitempty" yaml:"args,omitempty"`
	Value  string `json:"value,omitempty" yaml:"value,omitempty"`
	Kind   string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
	List   string `json:"list" yaml:"list"`
	Failed bool   `json:"failed,omitempty" yaml:"failed,omitempty"`
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Report is the outcome of running a script.
type Report struct {
	Name   string         `json:"name" yaml:"name"`
	Source string         `json:"source,omitempty" yaml:"source,omitempty"`
	Steps  []StepResult   `json:"steps" yaml:"steps"`
	Final  string         `json:"final" yaml:"final"`
	State  core.ListState `json:"state" yaml:"state"`
}

// Failed returns the number of steps whose expectation did not hold.
func (r *Report) Failed() int {
	n := 0
	for _, s := range r.Steps {
		if s.Failed {
			n++
		}
	}
	return n
}

// Encode writes the report to w in the given format.
func (r *Report) Encode(w io.Writer, format string) error {
	switch format {
	case FormatText, "":
		return r.WriteText(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// WriteText writes a human-readable rendering of the report.
func (r *Report) WriteText(w io.Writer) error {
	name := r.Name
	if name == "" {
		name = "(unnamed)"
	}
	if _, err := fmt.Fprintf(w, "== %s ==\n", name); err != nil {
		return err
	}

	for _, s := range r.Steps {
		call := s.Op
		if s.Args != "" {
			call = fmt.Sprintf("%s(%s)", s.Op, s.Args)
		}

		outcome := s.Value
		if s.Kind != "" {
			outcome = "error: " + s.Error
		}
		if outcome == "" {
			outcome = "ok"
		}

		mark := " "
		if s.Failed {
			mark = "!"
		}
		if _, err := fmt.Fprintf(w, "%s %3d  %-24s %-40s %s\n", mark, s.Step, call, outcome, s.List); err != nil {
			return err
		}
		if s.Failed {
			if _, err := fmt.Fprintf(w, "        %s\n", s.Reason); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "final: %s (length %d, capacity %d, growths %d)\n",
		r.Final, r.State.Length, r.State.Capacity, r.State.Growths)
	if err != nil {
		return err
	}

	if failed := r.Failed(); failed > 0 {
		_, err = fmt.Fprintf(w, "result: %d expectation(s) failed\n", failed)
	} else {
		_, err = fmt.Fprintln(w, "result: ok")
	}
	return err
}
