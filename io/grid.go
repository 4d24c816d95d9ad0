package io

import (
	"fmt"
	"os"

	"github.com/phil-mansfield/table"
	"github.com/sirupsen/logrus"

	"github.com/phil-mansfield/gridinterp/logging"
	"github.com/phil-mansfield/gridinterp/math/interpolate"
)

// ReadDataTable reads the first n columns of a whitespace-separated text
// table. Column i of the file is returned as out[i].
func ReadDataTable(fname string, n int) ([][]float64, error) {
	colIdxs := make([]int, n)
	for i := range colIdxs { colIdxs[i] = i }

	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil { return nil, err }
	if len(cols) != n {
		return nil, fmt.Errorf(
			"Expected %d columns in '%s', but read %d.", n, fname, len(cols),
		)
	}
	return cols, nil
}

// ReadTargets reads a table of target points, one per row, with one column
// per axis.
func ReadTargets(fname string, axes int) ([][]float64, error) {
	cols, err := ReadDataTable(fname, axes)
	if err != nil { return nil, err }

	targets := make([][]float64, len(cols[0]))
	for i := range targets {
		targets[i] = make([]float64, axes)
		for a := range cols { targets[i][a] = cols[a][i] }
	}
	return targets, nil
}

// Logger creates the sink described by LogFile and LogFormat. The returned
// file is nil if the logger writes to standard output.
func (con *GridConfig) Logger() (logging.Logger, *os.File, error) {
	var f *os.File
	if con.LogFile != "" {
		var err error
		f, err = os.Create(con.LogFile)
		if err != nil { return nil, nil, err }
	}

	switch con.LogFormat {
	case "JSON":
		l := logrus.New()
		l.SetFormatter(&logrus.JSONFormatter{})
		if f != nil {
			l.SetOutput(f)
		} else {
			l.SetOutput(os.Stdout)
		}
		if logging.Mode == logging.Debug { l.SetLevel(logrus.DebugLevel) }
		return logging.NewLogrus(l), f, nil
	default:
		if f != nil { return logging.NewWriter(f), f, nil }
		return logging.NewStdout(), nil, nil
	}
}

// Build creates the grid described by the configuration. Data sets are read
// from DataFile and, if NormalizeAt is set, normalized.
func (wrap *GridWrapper) Build(
	logger logging.Logger,
) (*interpolate.RegularGrid, error) {
	con := &wrap.Grid
	names := con.AxisNames()

	axes := make([]*interpolate.Axis, len(names))
	for i, name := range names {
		opts := append(wrap.Axis[name].Options(), interpolate.AxisLogger(logger))
		ax, err := interpolate.NewAxis(wrap.Axis[name].vals, opts...)
		if err != nil { return nil, err }
		axes[i] = ax
	}

	dsNames := con.DataSetNames()
	cols, err := ReadDataTable(con.DataFile, len(dsNames))
	if err != nil { return nil, err }

	dataSets := make([]interpolate.DataSet, len(dsNames))
	for i := range dsNames {
		dataSets[i] = interpolate.NewDataSet(cols[i], dsNames[i])
	}

	g, err := interpolate.NewRegularGrid(
		axes, dataSets,
		interpolate.WithLogger(logger), interpolate.WithName(con.Name),
	)
	if err != nil { return nil, err }

	if target := con.NormalizeTarget(); target != nil {
		if err := g.SetTarget(target); err != nil { return nil, err }
		if err := g.NormalizeAll(con.NormalizeScalar); err != nil {
			return nil, err
		}
		g.ClearTarget()
	}

	return g, nil
}
