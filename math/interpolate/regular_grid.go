package interpolate

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/gridinterp/logging"
)

// RegularGrid interpolates any number of data sets which share a single
// rectilinear grid.
//
// A RegularGrid has one current target. SetTarget locates the target on every
// axis, computes the blending weights and evaluates every data set; the
// neighbouring grid values are memoized so repeated lookups within the same
// grid cell are cheap. RegularGrid is not safe for concurrent use.
type RegularGrid struct {
	name string
	logger logging.Logger
	context string

	axes []Axis
	dataSets []DataSet
	strides []int
	numPoints int

	targetSet bool
	target []float64
	floors []int
	fractions []float64
	status []BoundsStatus
	methods []Method
	coeffs []coefficients

	cube hypercube
	cubeSet bool
	cache map[cacheKey][][]float64

	results []float64
}

// Option configures a RegularGrid during construction.
type Option func(*RegularGrid)

// WithLogger sets the sink that the grid and all of its axes report to.
func WithLogger(l logging.Logger) Option {
	return func(g *RegularGrid) { if l != nil { g.logger = l } }
}

// WithName sets the name used to prefix the grid's log messages.
func WithName(name string) Option {
	return func(g *RegularGrid) { g.name = name }
}

// NewRegularGrid creates a grid from axes and any number of data sets. Axes
// and data sets are copied, so later changes to the arguments do not affect
// the grid.
func NewRegularGrid(
	axes []*Axis, dataSets []DataSet, opts ...Option,
) (*RegularGrid, error) {
	g := &RegularGrid{ logger: defaultLogger }
	for _, opt := range opts { opt(g) }
	g.context = "grid"
	if g.name != "" { g.context = fmt.Sprintf("grid '%s'", g.name) }

	if len(axes) == 0 {
		return nil, fail(g.logger, g.context, ErrEmptyGrid,
			"cannot create a grid with no axes")
	}

	g.axes = make([]Axis, len(axes))
	for i, ax := range axes {
		if ax == nil || len(ax.vals) == 0 {
			return nil, fail(g.logger, g.context, ErrEmptyAxis,
				"axis %d has no values", i)
		}
		g.axes[i] = ax.clone()
		g.axes[i].logger = g.logger
		g.axes[i].context = g.axisContext(i)
	}

	g.strides = make([]int, len(g.axes))
	g.numPoints = 1
	for i := len(g.axes) - 1; i >= 0; i-- {
		g.strides[i] = g.numPoints
		g.numPoints *= len(g.axes[i].vals)
	}

	g.clearCache()

	for _, ds := range dataSets {
		if _, err := g.AddDataSet(ds); err != nil { return nil, err }
	}

	return g, nil
}

// NewRegularGridFromValues creates a grid from raw axis coordinates and raw
// data-set values. It behaves identically to building the Axis and DataSet
// values by hand with default settings.
func NewRegularGridFromValues(
	coords [][]float64, values [][]float64, opts ...Option,
) (*RegularGrid, error) {
	g := &RegularGrid{ logger: defaultLogger }
	for _, opt := range opts { opt(g) }

	axes := make([]*Axis, len(coords))
	for i := range coords {
		ax, err := NewAxis(coords[i], AxisLogger(g.logger))
		if err != nil { return nil, err }
		axes[i] = ax
	}

	dataSets := make([]DataSet, len(values))
	for i := range values {
		dataSets[i] = NewDataSet(values[i], "")
	}

	return NewRegularGrid(axes, dataSets, opts...)
}

func (g *RegularGrid) axisContext(i int) string {
	if g.axes[i].name == "" {
		return fmt.Sprintf("%s, axis %d", g.context, i)
	}
	return fmt.Sprintf("%s, axis %d ('%s')", g.context, i, g.axes[i].name)
}

// AddDataSet copies ds into the grid and returns its index. ds must have one
// value per grid point.
func (g *RegularGrid) AddDataSet(ds DataSet) (int, error) {
	if len(ds.Values) != g.numPoints {
		return -1, fail(g.logger, g.context, ErrSizeMismatch,
			"data set '%s' has %d values, but the grid has %d points",
			ds.Name, len(ds.Values), g.numPoints)
	}

	g.dataSets = append(g.dataSets, ds.clone())
	g.clearCache()
	if g.targetSet { g.calcResults() }

	return len(g.dataSets) - 1, nil
}

// SetTarget moves the current target. If target lies outside any axis's
// extrapolation limits, an error is returned and the previous target is kept.
func (g *RegularGrid) SetTarget(target []float64) error {
	if len(target) != len(g.axes) {
		return fail(g.logger, g.context, ErrDimensionMismatch,
			"target has %d dimensions, but the grid has %d axes",
			len(target), len(g.axes))
	}

	locs := make([]location, len(g.axes))
	for i := range g.axes {
		if math.IsNaN(target[i]) {
			return fail(g.logger, g.axes[i].context, ErrInvalidTarget,
				"target value is NaN")
		}

		locs[i] = g.axes[i].locate(target[i])
		switch locs[i].status {
		case BelowLowerLimit:
			return fail(g.logger, g.axes[i].context, ErrOutsideLimits,
				"target value (%g) is below the lower extrapolation " +
					"limit (%g)", target[i], g.axes[i].lowLimit)
		case AboveUpperLimit:
			return fail(g.logger, g.axes[i].context, ErrOutsideLimits,
				"target value (%g) is above the upper extrapolation " +
					"limit (%g)", target[i], g.axes[i].highLimit)
		}
	}

	if g.targetSet && g.sameTarget(target, locs) { return nil }

	g.commit(target, locs)
	return nil
}

func (g *RegularGrid) sameTarget(target []float64, locs []location) bool {
	for i := range target {
		if target[i] != g.target[i] || locs[i].method != g.methods[i] {
			return false
		}
	}
	return true
}

// commit stores a validated target and recomputes everything downstream of
// it.
func (g *RegularGrid) commit(target []float64, locs []location) {
	n := len(g.axes)
	if g.target == nil {
		g.target = make([]float64, n)
		g.floors = make([]int, n)
		g.fractions = make([]float64, n)
		g.status = make([]BoundsStatus, n)
		g.methods = make([]Method, n)
		g.coeffs = make([]coefficients, n)
	}

	copy(g.target, target)
	for i := range locs {
		g.floors[i] = locs[i].floor
		g.fractions[i] = locs[i].fraction
		g.status[i] = locs[i].status
		g.methods[i] = locs[i].method
		g.coeffs[i] = g.axes[i].coefficients(locs[i])
	}
	g.targetSet = true

	shape := hypercubeShape(g.methods, g.fractions)
	if !g.cubeSet || shape != g.cube.shape {
		g.cube = newHypercube(g.methods, g.fractions)
		g.cubeSet = true
		g.logger.Debug(withContext(g.context, fmt.Sprintf(
			"hypercube reshaped to '%s' (%d vertices)",
			g.cube.shape, len(g.cube.vertices),
		)))
	}

	g.calcResults()
}

// relocate recomputes the current target after an axis setting changes. If
// the target is no longer legal it is cleared.
func (g *RegularGrid) relocate() error {
	if !g.targetSet { return nil }
	target := append([]float64{}, g.target...)
	g.targetSet = false
	if err := g.SetTarget(target); err != nil {
		g.ClearTarget()
		return err
	}
	return nil
}

func (g *RegularGrid) calcResults() {
	if len(g.results) != len(g.dataSets) {
		g.results = make([]float64, len(g.dataSets))
	}
	for d := range g.results { g.results[d] = 0 }
	if len(g.dataSets) == 0 { return }

	vals := g.neighborValues()
	for v, offsets := range g.cube.vertices {
		w := 1.0
		for a, off := range offsets { w *= g.coeffs[a].weights[off + 1] }
		for d := range g.results { g.results[d] += w*vals[v][d] }
	}
}

// ClearTarget returns the grid to the no-target state.
func (g *RegularGrid) ClearTarget() {
	g.targetSet = false
	for d := range g.results { g.results[d] = 0 }
}

// Target returns a copy of the current target.
func (g *RegularGrid) Target() ([]float64, error) {
	if !g.targetSet {
		return nil, fail(g.logger, g.context, ErrNoTarget,
			"the current target was requested, but no target has been set")
	}
	return append([]float64{}, g.target...), nil
}

// Results returns the value of every data set at the current target.
func (g *RegularGrid) Results() ([]float64, error) {
	if len(g.dataSets) == 0 {
		return nil, fail(g.logger, g.context, ErrNoDataSets,
			"results were requested, but no data sets have been added")
	}
	if !g.targetSet {
		return nil, fail(g.logger, g.context, ErrNoTarget,
			"results were requested, but no target has been set")
	}
	return append([]float64{}, g.results...), nil
}

// ResultsAt sets the target and returns the value of every data set there.
func (g *RegularGrid) ResultsAt(target []float64) ([]float64, error) {
	if err := g.SetTarget(target); err != nil { return nil, err }
	return g.Results()
}

// NormalizeDataSet divides data set i by its value at the current target
// times scalar, so that afterwards its value at the target is 1/scalar.
func (g *RegularGrid) NormalizeDataSet(i int, scalar float64) error {
	if err := g.checkDataSetIndex(i); err != nil { return err }
	if !g.targetSet {
		return fail(g.logger, g.context, ErrNoTarget,
			"cannot normalize data set '%s' without a target",
			g.dataSets[i].Name)
	}

	divisor, err := g.normalizationDivisor(i, scalar)
	if err != nil { return err }

	g.divideDataSet(i, divisor)
	g.clearCache()
	g.calcResults()
	return nil
}

// NormalizeDataSetAt sets the target and normalizes data set i there.
func (g *RegularGrid) NormalizeDataSetAt(
	i int, target []float64, scalar float64,
) error {
	if err := g.SetTarget(target); err != nil { return err }
	return g.NormalizeDataSet(i, scalar)
}

// NormalizeAll normalizes every data set at the current target. Either every
// data set is normalized or none are.
func (g *RegularGrid) NormalizeAll(scalar float64) error {
	if len(g.dataSets) == 0 {
		return fail(g.logger, g.context, ErrNoDataSets,
			"cannot normalize a grid with no data sets")
	}
	if !g.targetSet {
		return fail(g.logger, g.context, ErrNoTarget,
			"cannot normalize data sets without a target")
	}

	divisors := make([]float64, len(g.dataSets))
	for i := range g.dataSets {
		divisor, err := g.normalizationDivisor(i, scalar)
		if err != nil { return err }
		divisors[i] = divisor
	}

	for i := range g.dataSets { g.divideDataSet(i, divisors[i]) }
	g.clearCache()
	g.calcResults()
	return nil
}

func (g *RegularGrid) normalizationDivisor(i int, scalar float64) (float64, error) {
	divisor := g.results[i]*scalar
	if divisor == 0 || math.IsNaN(divisor) || math.IsInf(divisor, 0) {
		return 0, fail(g.logger, g.context, ErrZeroNormalization,
			"cannot normalize data set '%s' by %g (value %g times " +
				"scalar %g)", g.dataSets[i].Name, divisor, g.results[i], scalar)
	}
	return divisor, nil
}

func (g *RegularGrid) divideDataSet(i int, divisor float64) {
	vals := g.dataSets[i].Values
	for j := range vals { vals[j] /= divisor }
}

// NeighborIndices returns the flat indices of the grid points which would
// receive non-zero weight under pure linear interpolation at the current
// target, regardless of the methods actually in use.
func (g *RegularGrid) NeighborIndices() ([]int, error) {
	if !g.targetSet {
		return nil, fail(g.logger, g.context, ErrNoTarget,
			"neighbor indices were requested, but no target has been set")
	}

	options := make([][]int, len(g.axes))
	for a := range g.axes {
		switch {
		case len(g.axes[a].vals) == 1 || g.fractions[a] == 0:
			options[a] = []int{0}
		case g.fractions[a] == 1:
			options[a] = []int{1}
		default:
			options[a] = []int{0, 1}
		}
	}

	vertices := cartesianProduct(options)
	seen := map[int]bool{}
	out := make([]int, 0, len(vertices))
	for _, offsets := range vertices {
		idx := g.relativeIndex(g.floors, offsets)
		if seen[idx] { continue }
		seen[idx] = true
		out = append(out, idx)
	}
	return out, nil
}

// NeighborIndicesAt sets the target and returns NeighborIndices.
func (g *RegularGrid) NeighborIndicesAt(target []float64) ([]int, error) {
	if err := g.SetTarget(target); err != nil { return nil, err }
	return g.NeighborIndices()
}

// SetAxisInterpolationMethod changes the interpolation method of axis i and
// re-evaluates the current target.
func (g *RegularGrid) SetAxisInterpolationMethod(i int, m Method) error {
	if err := g.checkAxisIndex(i); err != nil { return err }
	if err := g.axes[i].SetInterpolationMethod(m); err != nil { return err }
	return g.relocate()
}

// SetAxisExtrapolationMethod changes the extrapolation method of axis i and
// re-evaluates the current target.
func (g *RegularGrid) SetAxisExtrapolationMethod(i int, m Method) error {
	if err := g.checkAxisIndex(i); err != nil { return err }
	if err := g.axes[i].SetExtrapolationMethod(m); err != nil { return err }
	return g.relocate()
}

// SetAxisExtrapolationLimits changes the extrapolation limits of axis i. If
// the current target falls outside the new limits, it is cleared and an
// error is returned.
func (g *RegularGrid) SetAxisExtrapolationLimits(i int, low, high float64) error {
	if err := g.checkAxisIndex(i); err != nil { return err }
	g.axes[i].SetExtrapolationLimits(low, high)
	return g.relocate()
}

func (g *RegularGrid) checkAxisIndex(i int) error {
	if i < 0 || i >= len(g.axes) {
		return fail(g.logger, g.context, ErrIndexOutOfRange,
			"axis index %d is not in the range [0, %d)", i, len(g.axes))
	}
	return nil
}

func (g *RegularGrid) checkDataSetIndex(i int) error {
	if i < 0 || i >= len(g.dataSets) {
		return fail(g.logger, g.context, ErrIndexOutOfRange,
			"data set index %d is not in the range [0, %d)",
			i, len(g.dataSets))
	}
	return nil
}

// flatIndex converts per-axis grid coordinates to an index into a data set.
func (g *RegularGrid) flatIndex(coords []int) int {
	idx := 0
	for a, c := range coords { idx += c*g.strides[a] }
	return idx
}

// relativeIndex returns the flat index of the grid point at coords+offsets,
// with every axis index clamped to the edge of the grid.
func (g *RegularGrid) relativeIndex(coords, offsets []int) int {
	idx := 0
	for a := range coords {
		c := coords[a] + offsets[a]
		if c < 0 {
			c = 0
		} else if n := len(g.axes[a].vals); c >= n {
			c = n - 1
		}
		idx += c*g.strides[a]
	}
	return idx
}

// GridPointIndex returns the flat index of the grid point with the given
// per-axis coordinates.
func (g *RegularGrid) GridPointIndex(coords []int) (int, error) {
	if len(coords) != len(g.axes) {
		return -1, fail(g.logger, g.context, ErrDimensionMismatch,
			"grid point has %d coordinates, but the grid has %d axes",
			len(coords), len(g.axes))
	}
	for a, c := range coords {
		if c < 0 || c >= len(g.axes[a].vals) {
			return -1, fail(g.logger, g.axes[a].context, ErrIndexOutOfRange,
				"coordinate %d is not in the range [0, %d)",
				c, len(g.axes[a].vals))
		}
	}
	return g.flatIndex(coords), nil
}

// GridPointData returns the value of every data set at the grid point with
// flat index idx.
func (g *RegularGrid) GridPointData(idx int) ([]float64, error) {
	if idx < 0 || idx >= g.numPoints {
		return nil, fail(g.logger, g.context, ErrIndexOutOfRange,
			"grid point index %d is not in the range [0, %d)",
			idx, g.numPoints)
	}
	out := make([]float64, len(g.dataSets))
	for d := range g.dataSets { out[d] = g.dataSets[d].Values[idx] }
	return out, nil
}

// GridPointDataRelative returns the data at coords+offsets, clamping each
// axis to the edge of the grid.
func (g *RegularGrid) GridPointDataRelative(
	coords, offsets []int,
) ([]float64, error) {
	if _, err := g.GridPointIndex(coords); err != nil { return nil, err }
	if len(offsets) != len(coords) {
		return nil, fail(g.logger, g.context, ErrDimensionMismatch,
			"offsets have %d dimensions, but the grid has %d axes",
			len(offsets), len(g.axes))
	}
	return g.GridPointData(g.relativeIndex(coords, offsets))
}

func (g *RegularGrid) Name() string { return g.name }
func (g *RegularGrid) NumAxes() int { return len(g.axes) }
func (g *RegularGrid) NumDataSets() int { return len(g.dataSets) }
func (g *RegularGrid) NumGridPoints() int { return g.numPoints }

// Axis returns a copy of axis i. Changes to the copy do not affect the grid;
// use the SetAxis* methods instead.
func (g *RegularGrid) Axis(i int) (*Axis, error) {
	if err := g.checkAxisIndex(i); err != nil { return nil, err }
	ax := g.axes[i].clone()
	return &ax, nil
}

// DataSet returns a copy of data set i.
func (g *RegularGrid) DataSet(i int) (DataSet, error) {
	if err := g.checkDataSetIndex(i); err != nil { return DataSet{}, err }
	return g.dataSets[i].clone(), nil
}

// The following getters describe the current target. They return nil if no
// target has been set.

func (g *RegularGrid) BoundsStatus() []BoundsStatus {
	if !g.targetSet { return nil }
	return append([]BoundsStatus{}, g.status...)
}

func (g *RegularGrid) FloorIndices() []int {
	if !g.targetSet { return nil }
	return append([]int{}, g.floors...)
}

func (g *RegularGrid) Fractions() []float64 {
	if !g.targetSet { return nil }
	return append([]float64{}, g.fractions...)
}

// Methods returns the method in effect on each axis: the interpolation method
// inside the grid and the extrapolation method outside it.
func (g *RegularGrid) Methods() []Method {
	if !g.targetSet { return nil }
	return append([]Method{}, g.methods...)
}

// InterpolationCoefficients returns the floor and ceiling coefficients of
// each axis.
func (g *RegularGrid) InterpolationCoefficients() [][2]float64 {
	if !g.targetSet { return nil }
	out := make([][2]float64, len(g.coeffs))
	for i := range g.coeffs { out[i] = g.coeffs[i].interp }
	return out
}

// CubicSlopeCoefficients returns the floor and ceiling slope coefficients of
// each axis. They are zero on non-cubic axes.
func (g *RegularGrid) CubicSlopeCoefficients() [][2]float64 {
	if !g.targetSet { return nil }
	out := make([][2]float64, len(g.coeffs))
	for i := range g.coeffs { out[i] = g.coeffs[i].slope }
	return out
}

// WeightingFactors returns, for each axis, the weights of the neighbour
// offsets -1, 0, 1 and 2.
func (g *RegularGrid) WeightingFactors() [][4]float64 {
	if !g.targetSet { return nil }
	out := make([][4]float64, len(g.coeffs))
	for i := range g.coeffs { out[i] = g.coeffs[i].weights }
	return out
}

// Hypercube returns the neighbour offsets used for the current target.
func (g *RegularGrid) Hypercube() [][]int {
	if !g.targetSet { return nil }
	out := make([][]int, len(g.cube.vertices))
	for i := range out { out[i] = append([]int{}, g.cube.vertices[i]...) }
	return out
}
