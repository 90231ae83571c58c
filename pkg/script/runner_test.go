package script_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/seqlist/pkg/core"
	"github.com/aretw0/seqlist/pkg/script"
)

func mustSteps(t *testing.T, args ...string) []script.Step {
	t.Helper()
	steps := make([]script.Step, 0, len(args))
	for _, a := range args {
		step, err := script.ParseStep(a)
		require.NoError(t, err)
		steps = append(steps, step)
	}
	return steps
}

func TestRunner_Scenario(t *testing.T) {
	s, err := script.Load("testdata/scenario.yaml")
	require.NoError(t, err)

	report, err := script.NewRunner().Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, 0, report.Failed())
	assert.Equal(t, "[]", report.Final)
	assert.Equal(t, core.ListState{Name: "SequenceList", Length: 0, Capacity: 10}, report.State)

	require.Len(t, report.Steps, 10)
	assert.Equal(t, "[0, 1, 2]", report.Steps[3].List)
	assert.Equal(t, core.KindInvalidArgument, report.Steps[5].Kind)
	assert.Equal(t, "[0, 2]", report.Steps[5].List, "failed get leaves list unchanged")
	assert.Equal(t, core.KindEmptyCollection, report.Steps[9].Kind)
}

func TestRunner_Expectations(t *testing.T) {
	wrong := "[9]"
	steps := mustSteps(t, "addLast=1", "string", "contains=2", "remove=3")
	steps[1].Expect = &script.Expect{Value: &wrong}
	steps[2].Expect = &script.Expect{Error: core.KindEmptyCollection}
	steps[3].Expect = &script.Expect{Error: core.KindElementNotFound}

	report, err := script.NewRunner().Run(context.Background(), &script.Script{Name: "expect", Steps: steps})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Failed())
	assert.True(t, report.Steps[1].Failed)
	assert.Contains(t, report.Steps[1].Reason, `expected value "[9]"`)
	assert.True(t, report.Steps[2].Failed)
	assert.Equal(t, "false", report.Steps[2].Value)
	assert.False(t, report.Steps[3].Failed)
}

func TestRunner_Capacity(t *testing.T) {
	steps := mustSteps(t, "addLast=a", "addLast=b", "addLast=c")
	report, err := script.NewRunner().Run(context.Background(), &script.Script{Capacity: 2, Steps: steps})
	require.NoError(t, err)

	assert.Equal(t, 4, report.State.Capacity)
	assert.Equal(t, 1, report.State.Growths)
	assert.Equal(t, "[a, b, c]", report.Final)
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := script.NewRunner().Run(ctx, &script.Script{Steps: mustSteps(t, "size")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_InvalidScript(t *testing.T) {
	_, err := script.NewRunner().Run(context.Background(), &script.Script{Steps: []script.Step{{Op: "nope"}}})
	assert.ErrorIs(t, err, script.ErrInvalidScript)

	report, err := script.NewRunner().Run(context.Background(), nil)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, script.ErrInvalidScript)
}

func TestRunner_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := script.NewRunner(script.WithLogger(logger)).Run(context.Background(),
		&script.Script{Name: "logged", Capacity: 1, Steps: mustSteps(t, "addLast=a", "addLast=b")})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "step executed")
	assert.Contains(t, out, "buffer grown")
}

func TestReport_Encode(t *testing.T) {
	report, err := script.NewRunner().Run(context.Background(),
		&script.Script{Name: "enc", Steps: mustSteps(t, "addLast=x", "get=4")})
	require.NoError(t, err)

	t.Run("Text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, report.Encode(&buf, script.FormatText))
		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "== enc ==\n"), out)
		assert.Contains(t, out, "addLast(x)")
		assert.Contains(t, out, "error: invalid argument: index out of bounds: 4 (size 1)")
		assert.Contains(t, out, "final: [x] (length 1, capacity 10, growths 0)")
		assert.Contains(t, out, "result: ok")
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, report.Encode(&buf, script.FormatJSON))

		var decoded script.Report
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, *report, decoded)
	})

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, report.Encode(&buf, script.FormatYAML))

		var decoded script.Report
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, *report, decoded)
	})

	t.Run("Unknown", func(t *testing.T) {
		assert.Error(t, report.Encode(&bytes.Buffer{}, "xml"))
	})
}
