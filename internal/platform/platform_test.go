package platform_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/seqlist/internal/platform"
	"github.com/aretw0/seqlist/pkg/script"
)

const passing = `name: passing
steps:
  - op: addLast
    value: a
  - op: size
    expect:
      value: "1"
`

const failing = `steps:
  - op: first
    expect:
      value: a
`

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	a := writeScript(t, dir, "a.seqlist.yaml", passing)
	b := writeScript(t, dir, "nested/deep/b.seqlist.yaml", passing)
	writeScript(t, dir, "nested/notes.txt", "ignored")

	t.Run("Recursive pattern", func(t *testing.T) {
		paths, err := platform.Discover([]string{filepath.Join(dir, "**", "*.seqlist.yaml")})
		require.NoError(t, err)
		assert.Equal(t, []string{a, b}, paths)
	})

	t.Run("Duplicates collapse", func(t *testing.T) {
		paths, err := platform.Discover([]string{a, filepath.Join(dir, "*.yaml")})
		require.NoError(t, err)
		assert.Equal(t, []string{a}, paths)
	})

	t.Run("No match", func(t *testing.T) {
		_, err := platform.Discover([]string{filepath.Join(dir, "*.json")})
		assert.Error(t, err)
	})
}

func TestRunScripts(t *testing.T) {
	dir := t.TempDir()
	ok := writeScript(t, dir, "ok.seqlist.yaml", passing)
	bad := writeScript(t, dir, "bad.seqlist.yaml", failing)

	var out bytes.Buffer
	sum, err := platform.RunScripts(context.Background(), []string{ok, bad}, platform.WithOutput(&out))
	require.NoError(t, err)

	assert.Equal(t, platform.Summary{Scripts: 2, Failed: 1}, sum)
	assert.Contains(t, out.String(), "== passing ==")
	assert.Contains(t, out.String(), "== "+bad+" ==", "unnamed scripts are reported by path")
	assert.Contains(t, out.String(), "result: 1 expectation(s) failed")
}

func TestRunScripts_JSON(t *testing.T) {
	dir := t.TempDir()
	ok := writeScript(t, dir, "ok.seqlist.yaml", passing)

	var out bytes.Buffer
	_, err := platform.RunScripts(context.Background(), []string{ok},
		platform.WithOutput(&out), platform.WithFormat(script.FormatJSON))
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"source": "`+ok+`"`)
}

func TestRunScripts_LoadError(t *testing.T) {
	dir := t.TempDir()
	broken := writeScript(t, dir, "broken.seqlist.yaml", "steps:\n  - op: explode\n")

	_, err := platform.RunScripts(context.Background(), []string{broken}, platform.WithOutput(&bytes.Buffer{}))
	assert.ErrorIs(t, err, script.ErrInvalidScript)
	assert.True(t, strings.Contains(err.Error(), broken))
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "w.seqlist.yaml", passing)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan string, 4)
	err := platform.Watch(ctx, []string{path}, func(p string) { changed <- p },
		platform.WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	// Unrelated files in the same directory are ignored.
	writeScript(t, dir, "other.txt", "x")
	require.NoError(t, os.WriteFile(path, []byte(failing), 0o644))

	select {
	case got := <-changed:
		assert.Equal(t, path, got)
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for change notification")
	}
}
