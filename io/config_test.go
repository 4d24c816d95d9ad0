package io

import (
	"bytes"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/gridinterp/logging"
	"github.com/phil-mansfield/gridinterp/math/interpolate"
)

func TestExampleGridFile(t *testing.T) {
	wrap, err := ReadGridConfigString(ExampleGridFile)
	require.NoError(t, err)

	assert.Equal(t, []string{"temperature", "flow"}, wrap.Grid.AxisNames())
	assert.Equal(t, []string{"capacity", "power"}, wrap.Grid.DataSetNames())
	assert.Equal(t, 1.0, wrap.Grid.NormalizeScalar)
	assert.Equal(t, "TEXT", wrap.Grid.LogFormat)
	assert.Nil(t, wrap.Grid.NormalizeTarget())

	temp := wrap.Axis["temperature"]
	assert.Equal(t, []float64{10, 20, 30, 40}, temp.vals)
	assert.Equal(t, interpolate.Cubic, temp.interp)
	assert.Equal(t, interpolate.Linear, temp.extrap)
	assert.True(t, math.IsInf(temp.low, -1))

	flow := wrap.Axis["flow"]
	assert.Equal(t, []float64{0, 0.5, 1}, flow.vals)
	assert.Equal(t, interpolate.Linear, flow.interp)
	assert.Equal(t, interpolate.Constant, flow.extrap)
}

func TestGridConfigErrors(t *testing.T) {
	table := []struct {
		config, msg string
	}{
		{`[Grid]
DataFile = x
DataSets = a`, "Axes"},
		{`[Grid]
Axes = x
DataSets = a
[Axis "x"]
Values = 1, 2`, "DataFile"},
		{`[Grid]
Axes = x, y
DataFile = f
DataSets = a
[Axis "x"]
Values = 1, 2`, "no [Axis \"y\"]"},
		{`[Grid]
Axes = x
DataFile = f
DataSets = a
[Axis "x"]
Values = 1, 2
[Axis "z"]
Values = 1, 2`, "not listed"},
		{`[Grid]
Axes = x
DataFile = f
DataSets = a
[Axis "x"]
Values = 1, two`, "'two' is not a number"},
		{`[Grid]
Axes = x
DataFile = f
DataSets = a
[Axis "x"]
Values = 1, 2
Interpolation = Constant`, "Interpolation of Axis 'x'"},
		{`[Grid]
Axes = x
DataFile = f
DataSets = a
[Axis "x"]
Values = 1, 2
Extrapolation = Cubic`, "Extrapolation of Axis 'x'"},
		{`[Grid]
Axes = x
DataFile = f
DataSets = a
NormalizeAt = 1, 2
[Axis "x"]
Values = 1, 2`, "NormalizeAt has 2 values"},
		{`[Grid]
Axes = x
DataFile = f
DataSets = a
LogFormat = XML
[Axis "x"]
Values = 1, 2`, "LogFormat"},
	}

	for i, test := range table {
		_, err := ReadGridConfigString(test.config)
		require.Error(t, err, "case %d", i)
		assert.Contains(t, err.Error(), test.msg, "case %d", i)
	}
}

func TestAxisNameKeyRejected(t *testing.T) {
	config := `[Grid]
Axes = x
DataFile = f
DataSets = a
[Axis "x"]
Name = y
Values = 1, 2`
	_, err := ReadGridConfigString(config)
	require.Error(t, err)
	assert.Contains(t, strings.ToLower(err.Error()), "name")
}

func TestBuildGrid(t *testing.T) {
	dir, err := ioutil.TempDir("", "gridinterp")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	dataFile := filepath.Join(dir, "data.txt")
	data := `# a b
6 12
3 6
2 4
8 16
4 8
2 4
`
	require.NoError(t, ioutil.WriteFile(dataFile, []byte(data), 0644))

	targetFile := filepath.Join(dir, "targets.txt")
	targets := `7 5
20 4
`
	require.NoError(t, ioutil.WriteFile(targetFile, []byte(targets), 0644))

	config := `[Grid]
Name = test
Axes = x, y
DataFile = ` + dataFile + `
DataSets = a, b
TargetFile = ` + targetFile + `

[Axis "x"]
Values = 0, 10, 15
Extrapolation = Linear
UpperLimit = 25

[Axis "y"]
Values = 4, 6
`
	wrap, err := ReadGridConfigString(config)
	require.NoError(t, err)

	g, err := wrap.Build(logging.Discard)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumAxes())
	assert.Equal(t, 2, g.NumDataSets())
	assert.Equal(t, "test", g.Name())

	ax, err := g.Axis(0)
	require.NoError(t, err)
	_, high := ax.ExtrapolationLimits()
	assert.Equal(t, 25.0, high)

	ts, err := ReadTargets(wrap.Grid.TargetFile, g.NumAxes())
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{7, 5}, {20, 4}}, ts)

	buf := &bytes.Buffer{}
	require.NoError(t, WriteResults(buf, g, ts))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "# x y a b", lines[0])
	assert.Equal(t, "7 5 4.85 9.7", lines[1])
	assert.Equal(t, "20 4 6 12", lines[2])

	_, err = g.ResultsAt([]float64{26, 4})
	assert.ErrorIs(t, err, interpolate.ErrOutsideLimits)
}

func TestBuildNormalized(t *testing.T) {
	dir, err := ioutil.TempDir("", "gridinterp")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	dataFile := filepath.Join(dir, "data.txt")
	require.NoError(t, ioutil.WriteFile(dataFile, []byte("2\n4\n8\n"), 0644))

	config := `[Grid]
Axes = x
DataFile = ` + dataFile + `
DataSets = a
NormalizeAt = 1
NormalizeScalar = 2

[Axis "x"]
Values = 0, 1, 2
`
	wrap, err := ReadGridConfigString(config)
	require.NoError(t, err)

	g, err := wrap.Build(logging.Discard)
	require.NoError(t, err)

	_, err = g.Results()
	assert.ErrorIs(t, err, interpolate.ErrNoTarget)

	res, err := g.ResultsAt([]float64{1})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, res[0], 1e-12)
	res, err = g.ResultsAt([]float64{2})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res[0], 1e-12)
}

func TestConfigLogger(t *testing.T) {
	dir, err := ioutil.TempDir("", "gridinterp")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	con := &GridConfig{
		LogFile: filepath.Join(dir, "log.out"), LogFormat: "JSON",
	}
	l, f, err := con.Logger()
	require.NoError(t, err)
	require.NotNil(t, f)
	l.Warning("clamped")
	require.NoError(t, f.Close())

	out, err := ioutil.ReadFile(con.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"msg":"clamped"`)
	assert.Contains(t, string(out), `"level":"warning"`)
}
