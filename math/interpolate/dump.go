package interpolate

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes the grid as a comma-separated table. The header holds the
// axis names followed by the data set names, and there is one row per grid
// point, with the first axis varying slowest.
func (g *RegularGrid) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(g.axes) + len(g.dataSets))
	for i := range g.axes {
		name := g.axes[i].name
		if name == "" { name = fmt.Sprintf("Axis %d", i + 1) }
		header = append(header, name)
	}
	for i := range g.dataSets {
		name := g.dataSets[i].Name
		if name == "" { name = fmt.Sprintf("Data Set %d", i + 1) }
		header = append(header, name)
	}
	if err := cw.Write(header); err != nil { return err }

	row := make([]string, len(header))
	for idx := 0; idx < g.numPoints; idx++ {
		rem := idx
		for a := range g.axes {
			c := rem / g.strides[a]
			rem %= g.strides[a]
			row[a] = formatFloat(g.axes[a].vals[c])
		}
		for d := range g.dataSets {
			row[len(g.axes) + d] = formatFloat(g.dataSets[d].Values[idx])
		}
		if err := cw.Write(row); err != nil { return err }
	}

	cw.Flush()
	return cw.Error()
}

// String returns the CSV dump of the grid.
func (g *RegularGrid) String() string {
	buf := &bytes.Buffer{}
	if err := g.WriteCSV(buf); err != nil { return err.Error() }
	return buf.String()
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
