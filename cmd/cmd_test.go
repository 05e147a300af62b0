package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/meshfield/InputParameters"
	"github.com/notargets/meshfield/arrays"
	"github.com/notargets/meshfield/display"
	"github.com/notargets/meshfield/field"
)

var testSettings = Settings{
	Table: display.TableOptions{Precision: 3},
	Plot:  display.PlotOptions{Height: 4, Width: 20},
}

func TestRunArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunArray(&buf, 4, 1, testSettings))
	out := buf.String()
	assert.Contains(t, out, "Values: [1 1 1 2 1 3 1 4]")
	assert.Contains(t, out, "array of doubles")
	assert.Contains(t, out, "theta")
	assert.Contains(t, out, "Aggregate: 8 x 2")
	assert.Contains(t, out, "Meld:      4 x 4")

	buf.Reset()
	require.NoError(t, RunArray(&buf, 0, -1, testSettings))
	assert.Contains(t, buf.String(), "0 tuples x 2 components")

	assert.ErrorIs(t, RunArray(&buf, -1, -1, testSettings), arrays.ErrInvalidShape)
	assert.ErrorIs(t, RunArray(&buf, 2, 2, testSettings), arrays.ErrRange)
}

func TestRunField(t *testing.T) {
	var (
		buf bytes.Buffer
		wf  InputParameters.Workflow
	)
	require.NoError(t, wf.Parse([]byte(InputParameters.ExampleWorkflow)))
	f, err := RunField(&buf, &wf, 0, testSettings)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "9 nodes, 4 cells of type Quad")
	assert.Contains(t, out, "ON_CELLS, ONE_TIME, nature IntensiveMaximum")
	assert.Equal(t, field.IntensiveMaximum, f.Nature())
	tm, it, _ := f.Time()
	assert.Equal(t, 0., tm)
	assert.Equal(t, 0, it)
	row, err := f.Array().Row(3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.5, 1.5}, row, 1.e-14)

	// Any expression in x, y, z is accepted
	custom := wf
	custom.Function = "x*x + y"
	buf.Reset()
	f, err = RunField(&buf, &custom, 0, testSettings)
	require.NoError(t, err)
	row, err = f.Array().Row(3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.3125, 1.3125}, row, 1.e-14)

	bad := wf
	bad.Nature = "Conserved"
	_, err = RunField(&buf, &bad, -1, testSettings)
	assert.ErrorIs(t, err, field.ErrUnknownNature)
	bad = wf
	bad.Function = "tanh"
	_, err = RunField(&buf, &bad, -1, testSettings)
	assert.ErrorIs(t, err, field.ErrUnknownFunction)
}

func TestProcessInput(t *testing.T) {
	var usage bytes.Buffer
	_, err := processInput(&usage, "")
	assert.Error(t, err)
	assert.Contains(t, usage.String(), "Support: ON_CELLS")

	fileName := filepath.Join(t.TempDir(), "workflow.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte(`
Title: Nodes
Axes:
  - {Name: x, Min: 0, Max: 2, Points: 3}
FieldName: u
Support: ON_NODES
Function: position
Components: 1
`), 0o644))
	wf, err := processInput(&usage, fileName)
	require.NoError(t, err)
	var buf bytes.Buffer
	f, err := RunField(&buf, wf, -1, testSettings)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, f.Array().Values())
	assert.Contains(t, buf.String(), "2 cells of type Line")
}

func TestArrayCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"array", "--rows", "3", "--precision", "1"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Aggregate: 6 x 2")
	assert.Contains(t, buf.String(), "3.0")
	assert.ErrorContains(t, startProfile("gpu"), "unknown profile type")
}
