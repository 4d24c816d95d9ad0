package main

import (
	"fmt"
	"strconv"
	"strings"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/gridinterp/math/interpolate"
)

// sweep evaluates every data set of g along axis, holding the other axes at
// the values in at. It returns the swept coordinates and one curve per data
// set.
func sweep(
	g *interpolate.RegularGrid, axis, points int, at []float64,
) (xs []float64, curves [][]float64, err error) {
	ax, err := g.Axis(axis)
	if err != nil { return nil, nil, err }
	if points < 2 {
		return nil, nil, fmt.Errorf("PlotPoints must be at least 2.")
	}

	vals := ax.Values()
	lo, hi := vals[0], vals[len(vals) - 1]

	xs = make([]float64, points)
	for i := range xs {
		xs[i] = lo + (hi - lo)*float64(i)/float64(points - 1)
	}

	curves = make([][]float64, g.NumDataSets())
	for d := range curves { curves[d] = make([]float64, points) }

	target := append([]float64{}, at...)
	for i, x := range xs {
		target[axis] = x
		res, err := g.ResultsAt(target)
		if err != nil { return nil, nil, err }
		for d := range curves { curves[d][i] = res[d] }
	}

	return xs, curves, nil
}

// centers returns the midpoint of every axis of g, overwritten by any values
// given in the comma-separated string atStr.
func centers(g *interpolate.RegularGrid, atStr string) ([]float64, error) {
	at := make([]float64, g.NumAxes())
	for i := range at {
		ax, err := g.Axis(i)
		if err != nil { return nil, err }
		vals := ax.Values()
		at[i] = (vals[0] + vals[len(vals) - 1]) / 2
	}

	if atStr == "" { return at, nil }

	toks := strings.Split(atStr, ",")
	if len(toks) != len(at) {
		return nil, fmt.Errorf(
			"PlotAt has %d values, but the grid has %d axes.",
			len(toks), len(at),
		)
	}
	for i, tok := range toks {
		x, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return nil, fmt.Errorf("PlotAt value '%s' is not a number.", tok)
		}
		at[i] = x
	}
	return at, nil
}

// plotMain plots every data set of g along a single axis and writes the
// figure to fname.
func plotMain(
	g *interpolate.RegularGrid, axis, points int, atStr, fname string,
) error {
	at, err := centers(g, atStr)
	if err != nil { return err }
	xs, curves, err := sweep(g, axis, points, at)
	if err != nil { return err }

	ax, _ := g.Axis(axis)
	name := ax.Name()
	if name == "" { name = fmt.Sprintf("Axis %d", axis) }

	plt.Reset()
	plt.Figure()
	for d := range curves {
		plt.Plot(xs, curves[d], plt.LW(2))
	}

	title := g.Name()
	if title == "" { title = "Grid" }
	plt.Title(fmt.Sprintf("%s: %s = %s", title, name, ax.InterpolationMethod()))
	plt.XLabel(name, plt.FontSize(16))
	plt.YLabel("Value", plt.FontSize(16))
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(fname)
	plt.Execute()

	return nil
}
