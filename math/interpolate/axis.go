package interpolate

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/gridinterp/logging"
)

const (
	floorSide = 0
	ceilingSide = 1
)

var defaultLogger logging.Logger = logging.NewStdout()

// Axis is one independent dimension of a RegularGrid: a strictly increasing
// list of coordinates along with the methods used to interpolate between and
// extrapolate beyond them.
type Axis struct {
	name string
	vals []float64
	s searcher

	interp, extrap Method
	lowLimit, highLimit float64

	// ratios[floorSide][i] and ratios[ceilingSide][i] scale the cubic slope
	// terms of interval i to account for non-uniform spacing.
	ratios [2][]float64

	logger logging.Logger
	context string
}

type axisSettings struct {
	name string
	logger logging.Logger
	interp, extrap Method
	low, high float64
	limitsSet bool
}

// AxisOption configures an Axis during NewAxis.
type AxisOption func(*axisSettings)

// AxisName sets the display name of the axis.
func AxisName(name string) AxisOption {
	return func(s *axisSettings) { s.name = name }
}

// AxisLogger sets the sink the axis reports to.
func AxisLogger(l logging.Logger) AxisOption {
	return func(s *axisSettings) { s.logger = l }
}

// AxisInterpolation sets the interpolation method. Default is Linear.
func AxisInterpolation(m Method) AxisOption {
	return func(s *axisSettings) { s.interp = m }
}

// AxisExtrapolation sets the extrapolation method. Default is Constant.
func AxisExtrapolation(m Method) AxisOption {
	return func(s *axisSettings) { s.extrap = m }
}

// AxisLimits sets the extrapolation limits. Default is (-Inf, +Inf).
func AxisLimits(low, high float64) AxisOption {
	return func(s *axisSettings) { s.low, s.high, s.limitsSet = low, high, true }
}

// NewAxis creates an axis from a strictly increasing, non-empty sequence of
// coordinates. vals is copied.
func NewAxis(vals []float64, opts ...AxisOption) (*Axis, error) {
	set := &axisSettings{
		logger: defaultLogger, interp: Linear, extrap: Constant,
	}
	for _, opt := range opts { opt(set) }
	if set.logger == nil { set.logger = defaultLogger }

	ax := &Axis{
		name: set.name, logger: set.logger,
		interp: Linear, extrap: Constant,
		lowLimit: math.Inf(-1), highLimit: math.Inf(+1),
	}
	ax.context = ax.defaultContext()

	if len(vals) == 0 {
		return nil, fail(ax.logger, ax.context, ErrEmptyAxis,
			"cannot create an axis with no values")
	}
	for i := 0; i < len(vals) - 1; i++ {
		if !(vals[i] < vals[i + 1]) {
			return nil, fail(ax.logger, ax.context, ErrNotIncreasing,
				"values[%d] = %g and values[%d] = %g are not strictly " +
					"increasing", i, vals[i], i + 1, vals[i + 1])
		}
	}

	ax.vals = make([]float64, len(vals))
	copy(ax.vals, vals)
	ax.s.init(ax.vals)

	if err := ax.SetInterpolationMethod(set.interp); err != nil {
		return nil, err
	}
	if err := ax.SetExtrapolationMethod(set.extrap); err != nil {
		return nil, err
	}
	if set.limitsSet {
		ax.SetExtrapolationLimits(set.low, set.high)
	}

	return ax, nil
}

func (ax *Axis) defaultContext() string {
	if ax.name == "" { return "axis" }
	return fmt.Sprintf("axis '%s'", ax.name)
}

// clone returns a deep copy of ax.
func (ax *Axis) clone() Axis {
	out := *ax
	out.vals = make([]float64, len(ax.vals))
	copy(out.vals, ax.vals)
	out.s.init(out.vals)
	for side := range ax.ratios {
		if ax.ratios[side] == nil { continue }
		out.ratios[side] = make([]float64, len(ax.ratios[side]))
		copy(out.ratios[side], ax.ratios[side])
	}
	return out
}

func (ax *Axis) Name() string { return ax.name }
func (ax *Axis) Len() int { return len(ax.vals) }

// Values returns a copy of the axis coordinates.
func (ax *Axis) Values() []float64 {
	out := make([]float64, len(ax.vals))
	copy(out, ax.vals)
	return out
}

func (ax *Axis) InterpolationMethod() Method { return ax.interp }
func (ax *Axis) ExtrapolationMethod() Method { return ax.extrap }

// ExtrapolationLimits returns the lowest and highest values a target may take
// along this axis.
func (ax *Axis) ExtrapolationLimits() (low, high float64) {
	return ax.lowLimit, ax.highLimit
}

// CubicSpacingRatios returns copies of the floor-side and ceiling-side
// spacing ratios, one per interval. Both are nil unless the interpolation
// method is Cubic.
func (ax *Axis) CubicSpacingRatios() (floor, ceiling []float64) {
	if ax.ratios[floorSide] == nil { return nil, nil }
	floor = make([]float64, len(ax.ratios[floorSide]))
	ceiling = make([]float64, len(ax.ratios[ceilingSide]))
	copy(floor, ax.ratios[floorSide])
	copy(ceiling, ax.ratios[ceilingSide])
	return floor, ceiling
}

// SetInterpolationMethod sets the method used between grid points. Only Linear
// and Cubic are allowed. Cubic on a single-point axis is downgraded to Linear
// with a warning.
func (ax *Axis) SetInterpolationMethod(m Method) error {
	switch m {
	case Linear:
		ax.interp = Linear
		ax.ratios[floorSide], ax.ratios[ceilingSide] = nil, nil
	case Cubic:
		if len(ax.vals) == 1 {
			warn(ax.logger, ax.context, "a Cubic interpolation method " +
				"requires at least two values, setting to Linear")
			ax.interp = Linear
			ax.ratios[floorSide], ax.ratios[ceilingSide] = nil, nil
			return nil
		}
		ax.interp = Cubic
		ax.calcSpacingRatios()
	default:
		return fail(ax.logger, ax.context, ErrInvalidMethod,
			"%s is not a valid interpolation method", m)
	}
	return nil
}

// SetExtrapolationMethod sets the method used beyond the first and last grid
// points. Only Constant and Linear are allowed. Linear on a single-point axis
// is downgraded to Constant with a warning.
func (ax *Axis) SetExtrapolationMethod(m Method) error {
	switch m {
	case Constant:
		ax.extrap = Constant
	case Linear:
		if len(ax.vals) == 1 {
			warn(ax.logger, ax.context, "a Linear extrapolation method " +
				"requires at least two values, setting to Constant")
			ax.extrap = Constant
			return nil
		}
		ax.extrap = Linear
	default:
		return fail(ax.logger, ax.context, ErrInvalidMethod,
			"%s is not a valid extrapolation method", m)
	}
	return nil
}

// SetExtrapolationLimits sets how far beyond the grid a target may lie. A
// limit which falls inside the grid is reported and clamped to the nearest
// grid edge; the axis remains usable.
func (ax *Axis) SetExtrapolationLimits(low, high float64) {
	first, last := ax.vals[0], ax.vals[len(ax.vals) - 1]
	if !(low <= first) {
		ax.logger.Error(withContext(ax.context, fmt.Sprintf(
			"lower extrapolation limit (%g) is within the set of axis " +
				"values, setting to the smallest axis value (%g)", low, first,
		)))
		low = first
	}
	if !(high >= last) {
		ax.logger.Error(withContext(ax.context, fmt.Sprintf(
			"upper extrapolation limit (%g) is within the set of axis " +
				"values, setting to the largest axis value (%g)", high, last,
		)))
		high = last
	}
	ax.lowLimit, ax.highLimit = low, high
}

func (ax *Axis) calcSpacingRatios() {
	n := len(ax.vals)
	floor := make([]float64, n - 1)
	ceiling := make([]float64, n - 1)
	v := ax.vals

	for i := 0; i < n - 1; i++ {
		width := v[i + 1] - v[i]
		floor[i], ceiling[i] = 1, 1
		if i > 0 { floor[i] = width / (v[i + 1] - v[i - 1]) }
		if i + 2 < n { ceiling[i] = width / (v[i + 2] - v[i]) }
	}

	ax.ratios[floorSide], ax.ratios[ceilingSide] = floor, ceiling
}

// spacingRatio returns the cubic spacing ratio on one side of interval i.
func (ax *Axis) spacingRatio(side, i int) float64 {
	if ax.ratios[side] == nil || i >= len(ax.ratios[side]) { return 1 }
	return ax.ratios[side][i]
}
