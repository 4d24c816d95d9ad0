package interpolate

// Interpolator evaluates one or more tabulated quantities at arbitrary points.
type Interpolator interface {
	Eval(target ...float64) ([]float64, error)
	EvalAll(targets [][]float64, out ...[][]float64) ([][]float64, error)
}

var (
	_ Interpolator = &RegularGrid{}
)

// Eval returns the value of every data set at target. It is equivalent to
// ResultsAt.
func (g *RegularGrid) Eval(target ...float64) ([]float64, error) {
	return g.ResultsAt(target)
}

// EvalAll evaluates every data set at each of the given targets. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience). out[0] must have a row for
// every target and each row must have room for one value per data set.
//
// If more than one output array is provided, only the first is used.
func (g *RegularGrid) EvalAll(
	targets [][]float64, out ...[][]float64,
) ([][]float64, error) {
	if len(out) == 0 {
		out = [][][]float64{ make([][]float64, len(targets)) }
		for i := range out[0] { out[0][i] = make([]float64, len(g.dataSets)) }
	} else if len(out[0]) < len(targets) {
		return nil, fail(g.logger, g.context, ErrDimensionMismatch,
			"output array has %d rows, but %d targets were given",
			len(out[0]), len(targets))
	} else {
		for i := range targets {
			if len(out[0][i]) < len(g.dataSets) {
				return nil, fail(g.logger, g.context, ErrDimensionMismatch,
					"output row %d has length %d, but the grid has %d " +
						"data sets", i, len(out[0][i]), len(g.dataSets))
			}
		}
	}

	for i, target := range targets {
		if err := g.SetTarget(target); err != nil { return nil, err }
		res, err := g.Results()
		if err != nil { return nil, err }
		copy(out[0][i], res)
	}
	return out[0], nil
}
