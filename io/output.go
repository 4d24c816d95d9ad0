package io

import (
	"fmt"
	"io"
	"strings"

	"github.com/phil-mansfield/gridinterp/math/interpolate"
)

// WriteResults evaluates g at every target and writes one whitespace-separated
// row per target: the target coordinates followed by the value of each data
// set. The header line is a comment, so the output can be read back with
// ReadDataTable.
func WriteResults(
	w io.Writer, g *interpolate.RegularGrid, targets [][]float64,
) error {
	header := []string{}
	for i := 0; i < g.NumAxes(); i++ {
		ax, err := g.Axis(i)
		if err != nil { return err }
		header = append(header, columnName(ax.Name(), "axis", i))
	}
	for i := 0; i < g.NumDataSets(); i++ {
		ds, err := g.DataSet(i)
		if err != nil { return err }
		header = append(header, columnName(ds.Name, "data_set", i))
	}
	if _, err := fmt.Fprintf(w, "# %s\n", strings.Join(header, " ")); err != nil {
		return err
	}

	results, err := g.EvalAll(targets)
	if err != nil { return err }

	for i, target := range targets {
		row := make([]string, 0, len(target) + len(results[i]))
		for _, x := range target { row = append(row, fmt.Sprintf("%.8g", x)) }
		for _, x := range results[i] { row = append(row, fmt.Sprintf("%.8g", x)) }
		if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
			return err
		}
	}

	return nil
}

func columnName(name, kind string, i int) string {
	if name == "" { return fmt.Sprintf("%s_%d", kind, i) }
	return strings.Replace(name, " ", "_", -1)
}
