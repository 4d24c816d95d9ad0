package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a logging.Logger which remembers what it was sent.
type recorder struct {
	errors, warnings, infos, debugs []string
}

func (r *recorder) Error(msg string)   { r.errors = append(r.errors, msg) }
func (r *recorder) Warning(msg string) { r.warnings = append(r.warnings, msg) }
func (r *recorder) Info(msg string)    { r.infos = append(r.infos, msg) }
func (r *recorder) Debug(msg string)   { r.debugs = append(r.debugs, msg) }

func TestNewAxisMonotonic(t *testing.T) {
	table := []struct {
		vals []float64
		err error
	}{
		{[]float64{0}, nil},
		{[]float64{0, 1}, nil},
		{[]float64{-3, -1, 0.5, 100}, nil},
		{[]float64{}, ErrEmptyAxis},
		{nil, ErrEmptyAxis},
		{[]float64{0, 0}, ErrNotIncreasing},
		{[]float64{0, 1, 1, 2}, ErrNotIncreasing},
		{[]float64{3, 2, 1}, ErrNotIncreasing},
		{[]float64{0, math.NaN(), 2}, ErrNotIncreasing},
	}

	for i, test := range table {
		rec := &recorder{}
		ax, err := NewAxis(test.vals, AxisLogger(rec))
		if test.err == nil {
			assert.NoError(t, err, "case %d", i)
			require.NotNil(t, ax, "case %d", i)
			assert.Equal(t, len(test.vals), ax.Len(), "case %d", i)
			assert.Empty(t, rec.errors, "case %d", i)
		} else {
			assert.ErrorIs(t, err, test.err, "case %d", i)
			assert.Nil(t, ax, "case %d", i)
			assert.Len(t, rec.errors, 1, "case %d", i)
		}
	}
}

func TestNewAxisCopiesValues(t *testing.T) {
	vals := []float64{0, 1, 2}
	ax, err := NewAxis(vals, AxisLogger(&recorder{}))
	require.NoError(t, err)

	vals[0] = -10
	assert.Equal(t, []float64{0, 1, 2}, ax.Values())
}

func TestAxisDefaults(t *testing.T) {
	ax, err := NewAxis([]float64{1, 2}, AxisLogger(&recorder{}))
	require.NoError(t, err)

	assert.Equal(t, Linear, ax.InterpolationMethod())
	assert.Equal(t, Constant, ax.ExtrapolationMethod())
	low, high := ax.ExtrapolationLimits()
	assert.True(t, math.IsInf(low, -1))
	assert.True(t, math.IsInf(high, +1))

	floor, ceiling := ax.CubicSpacingRatios()
	assert.Nil(t, floor)
	assert.Nil(t, ceiling)
}

func TestAxisSinglePointDowngrades(t *testing.T) {
	rec := &recorder{}
	ax, err := NewAxis([]float64{3}, AxisLogger(rec), AxisName("x"),
		AxisInterpolation(Cubic), AxisExtrapolation(Linear))
	require.NoError(t, err)

	assert.Equal(t, Linear, ax.InterpolationMethod())
	assert.Equal(t, Constant, ax.ExtrapolationMethod())
	assert.Len(t, rec.warnings, 2)
	assert.Empty(t, rec.errors)
	assert.Contains(t, rec.warnings[0], "axis 'x'")
}

func TestAxisInvalidMethods(t *testing.T) {
	rec := &recorder{}
	ax, err := NewAxis([]float64{0, 1}, AxisLogger(rec))
	require.NoError(t, err)

	assert.ErrorIs(t, ax.SetInterpolationMethod(Constant), ErrInvalidMethod)
	assert.ErrorIs(t, ax.SetExtrapolationMethod(Cubic), ErrInvalidMethod)
	assert.Equal(t, Linear, ax.InterpolationMethod())
	assert.Equal(t, Constant, ax.ExtrapolationMethod())
	assert.Len(t, rec.errors, 2)

	_, err = NewAxis([]float64{0, 1}, AxisLogger(rec), AxisExtrapolation(Cubic))
	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func TestAxisLimitsClamp(t *testing.T) {
	rec := &recorder{}
	ax, err := NewAxis([]float64{0, 5, 10}, AxisLogger(rec))
	require.NoError(t, err)

	ax.SetExtrapolationLimits(-2, 12)
	low, high := ax.ExtrapolationLimits()
	assert.Equal(t, -2.0, low)
	assert.Equal(t, 12.0, high)
	assert.Empty(t, rec.errors)

	ax.SetExtrapolationLimits(1, 9)
	low, high = ax.ExtrapolationLimits()
	assert.Equal(t, 0.0, low)
	assert.Equal(t, 10.0, high)
	assert.Len(t, rec.errors, 2)

	ax.SetExtrapolationLimits(0, 10)
	assert.Len(t, rec.errors, 2)
}

func TestCubicSpacingRatios(t *testing.T) {
	ax, err := NewAxis([]float64{0, 2, 5, 10},
		AxisLogger(&recorder{}), AxisInterpolation(Cubic))
	require.NoError(t, err)

	floor, ceiling := ax.CubicSpacingRatios()
	assert.InDeltaSlice(t, []float64{1, 3.0/5, 5.0/8}, floor, 1e-12)
	assert.InDeltaSlice(t, []float64{2.0/5, 3.0/8, 1}, ceiling, 1e-12)

	require.NoError(t, ax.SetInterpolationMethod(Linear))
	floor, ceiling = ax.CubicSpacingRatios()
	assert.Nil(t, floor)
	assert.Nil(t, ceiling)
}

func TestSearcher(t *testing.T) {
	table := []struct {
		xs []float64
		x float64
		idx int
	}{
		{[]float64{0, 1, 2, 3}, 0, 0},
		{[]float64{0, 1, 2, 3}, 0.5, 0},
		{[]float64{0, 1, 2, 3}, 1, 1},
		{[]float64{0, 1, 2, 3}, 2.999, 2},
		{[]float64{0, 0.1, 0.2, 5, 10}, 4.9, 2},
		{[]float64{0, 0.1, 0.2, 5, 10}, 5, 3},
		{[]float64{0, 0.1, 0.2, 5, 10}, 0.15, 1},
		{[]float64{0, 9, 9.5, 10}, 2.6, 0},
		{[]float64{4}, 4, 0},
	}

	for i, test := range table {
		s := &searcher{}
		s.init(test.xs)
		assert.Equal(t, test.idx, s.search(test.x), "case %d", i)
	}
}

func TestLocate(t *testing.T) {
	ax, err := NewAxis([]float64{0, 10, 15}, AxisLogger(&recorder{}),
		AxisLimits(-10, 20), AxisExtrapolation(Linear))
	require.NoError(t, err)

	table := []struct {
		t float64
		floor int
		fraction float64
		status BoundsStatus
		method Method
	}{
		{-11, 0, -1.1, BelowLowerLimit, Linear},
		{-5, 0, -0.5, ExtrapolateLow, Linear},
		{0, 0, 0, Interpolate, Linear},
		{5, 0, 0.5, Interpolate, Linear},
		{10, 1, 0, Interpolate, Linear},
		{15, 1, 1, Interpolate, Linear},
		{17.5, 1, 1.5, ExtrapolateHigh, Linear},
		{21, 1, 2.2, AboveUpperLimit, Linear},
	}

	for i, test := range table {
		loc := ax.locate(test.t)
		assert.Equal(t, test.floor, loc.floor, "case %d", i)
		assert.InDelta(t, test.fraction, loc.fraction, 1e-12, "case %d", i)
		assert.Equal(t, test.status, loc.status, "case %d", i)
		assert.Equal(t, test.method, loc.method, "case %d", i)
	}

	single, err := NewAxis([]float64{2}, AxisLogger(&recorder{}))
	require.NoError(t, err)
	for _, x := range []float64{1, 2, 3} {
		loc := single.locate(x)
		assert.Equal(t, 0, loc.floor)
		assert.Equal(t, 1.0, loc.fraction)
	}
}

func TestCoefficients(t *testing.T) {
	ax, err := NewAxis([]float64{0, 2, 5, 10}, AxisLogger(&recorder{}))
	require.NoError(t, err)

	c := ax.coefficients(location{ floor: 1, fraction: 0.25, method: Linear })
	assert.Equal(t, [2]float64{0.75, 0.25}, c.interp)
	assert.Equal(t, [2]float64{0, 0}, c.slope)
	assert.Equal(t, [4]float64{0, 0.75, 0.25, 0}, c.weights)

	c = ax.coefficients(location{ floor: 0, fraction: -0.5, method: Constant })
	assert.Equal(t, [4]float64{0, 1, 0, 0}, c.weights)
	c = ax.coefficients(location{ floor: 2, fraction: 1.5, method: Constant })
	assert.Equal(t, [4]float64{0, 0, 1, 0}, c.weights)

	require.NoError(t, ax.SetInterpolationMethod(Cubic))
	mu := 1.0/6
	c = ax.coefficients(location{ floor: 1, fraction: mu, method: Cubic })
	sf := (mu*mu*mu - 2*mu*mu + mu) * 3.0/5
	sc := (mu*mu*mu - mu*mu) * 3.0/8
	assert.InDelta(t, 2*mu*mu*mu - 3*mu*mu + 1, c.interp[0], 1e-12)
	assert.InDelta(t, -2*mu*mu*mu + 3*mu*mu, c.interp[1], 1e-12)
	assert.InDelta(t, sf, c.slope[0], 1e-12)
	assert.InDelta(t, sc, c.slope[1], 1e-12)

	sum := 0.0
	for _, w := range c.weights { sum += w }
	assert.InDelta(t, 1, sum, 1e-12, "cubic weights form a partition of unity")
}
