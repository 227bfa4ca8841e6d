package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/db47h/sketchnet/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const andSketch = `
[[shape]]
name = "A"
type = "Text"
bounds = [40.0, 100.0, 50.0, 110.0]

[[shape]]
name = "B"
type = "Text"
bounds = [40.0, 120.0, 50.0, 130.0]

[[shape]]
name = "g"
type = "AND"
bounds = [100.0, 100.0, 140.0, 130.0]

[[shape]]
name = "Y"
type = "Text"
bounds = [190.0, 110.0, 200.0, 120.0]

[[shape]]
name = "wa"
type = "Wire"
  [[shape.endpoint]]
  x = 50.0
  y = 105.0
  to = "A"
  [[shape.endpoint]]
  x = 100.0
  y = 105.0
  to = "g"

[[shape]]
name = "wb"
type = "Wire"
  [[shape.endpoint]]
  x = 50.0
  y = 125.0
  to = "B"
  [[shape.endpoint]]
  x = 100.0
  y = 125.0
  to = "g"

[[shape]]
name = "wy"
type = "Wire"
  [[shape.endpoint]]
  x = 140.0
  y = 115.0
  to = "g"
  [[shape.endpoint]]
  x = 190.0
  y = 115.0
  to = "Y"
`

const strayWire = `
[[shape]]
name = "w"
type = "Wire"
  [[shape.endpoint]]
  x = 0.0
  y = 0.0
  [[shape.endpoint]]
  x = 10.0
  y = 0.0
`

const halfAdder = `
[[subcircuit]]
name = "HalfAdder"
inputs = "a, b"
outputs = "s, c"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func execute(ctx context.Context, args ...string) (string, error) {
	var out bytes.Buffer
	root := cli.New(io.Discard, cli.LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func TestParse_text(t *testing.T) {
	f := writeFile(t, t.TempDir(), "and.toml", andSketch)
	out, err := execute(context.Background(), "parse", f)
	require.NoError(t, err)
	assert.Contains(t, out, "and.toml")
	assert.Contains(t, out, "2 inputs, 1 outputs, 4 parts")
	assert.Contains(t, out, "A:0, B:0")
}

func TestParse_json(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "and.toml", andSketch)
	bad := writeFile(t, dir, "stray.toml", strayWire)
	out, err := execute(context.Background(), "parse", "-f", "json", "-j", "2", good, bad)
	require.EqualError(t, err, "1 of 2 sketches failed")

	var res []struct {
		File    string `json:"file"`
		Netlist *struct {
			Inputs  []string `json:"inputs"`
			Outputs []string `json:"outputs"`
		} `json:"netlist"`
		Errors []struct {
			Kind  string `json:"kind"`
			Code  string `json:"code"`
			Shape string `json:"shape"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res, 2)

	assert.Equal(t, good, res[0].File)
	require.NotNil(t, res[0].Netlist)
	assert.Equal(t, []string{"A", "B"}, res[0].Netlist.Inputs)
	assert.Equal(t, []string{"Y"}, res[0].Netlist.Outputs)
	assert.Empty(t, res[0].Errors)

	assert.Equal(t, bad, res[1].File)
	assert.Nil(t, res[1].Netlist)
	var codes []string
	for _, e := range res[1].Errors {
		assert.Equal(t, "connectivity", e.Kind)
		assert.Equal(t, "w", e.Shape)
		codes = append(codes, e.Code)
	}
	assert.ElementsMatch(t, []string{"MISSING_SOURCE", "NO_DEPENDENTS"}, codes)
}

func TestParse_dot(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "and.toml", andSketch)
	dst := filepath.Join(dir, "and.dot")
	_, err := execute(context.Background(), "parse", "--format", "dot", "-o", dst, f)
	require.NoError(t, err)
	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(b), "digraph circuit {")
	assert.Contains(t, string(b), `"A" -> "g" [label="0:0"];`)
}

func TestParse_failureText(t *testing.T) {
	f := writeFile(t, t.TempDir(), "stray.toml", strayWire)
	out, err := execute(context.Background(), "parse", f)
	require.Error(t, err)
	assert.Contains(t, out, "2 errors")
	assert.Contains(t, out, "[connectivity MISSING_SOURCE]")
	assert.Contains(t, out, "[connectivity NO_DEPENDENTS]")
}

func TestParse_badArgs(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "and.toml", andSketch)
	data := []struct {
		name string
		args []string
		err  string
	}{
		{"format", []string{"parse", "-f", "png", f}, `unknown format "png"`},
		{"svg_many", []string{"parse", "-f", "svg", f, f}, "svg output requires a single sketch"},
		{"missing", []string{"parse", filepath.Join(dir, "none.toml")}, "1 of 1 sketches failed"},
		{"no_args", []string{"parse"}, "requires at least 1 arg(s), only received 0"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := execute(context.Background(), d.args...)
			require.Error(t, err)
			assert.Equal(t, d.err, err.Error())
		})
	}
}

func TestKinds(t *testing.T) {
	out, err := execute(context.Background(), "kinds")
	require.NoError(t, err)
	for _, s := range []string{"TYPE", "AND", "gate", "[2, ∞)", "NotBubble", "notbubble"} {
		assert.Contains(t, out, s)
	}
	assert.NotContains(t, out, "SUBCIRCUIT")

	d := writeFile(t, t.TempDir(), "domain.toml", halfAdder)
	out, err = execute(context.Background(), "--domain", d, "kinds")
	require.NoError(t, err)
	assert.Contains(t, out, "SUBCIRCUIT")
	assert.Contains(t, out, "HalfAdder")
	assert.Contains(t, out, "a, b")
}

func TestWatch_initialParse(t *testing.T) {
	f := writeFile(t, t.TempDir(), "and.toml", andSketch)
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	out, err := execute(ctx, "watch", f)
	require.NoError(t, err)
	assert.Contains(t, out, "2 inputs, 1 outputs, 4 parts")
}
