package interpolate

import (
	"fmt"
	"strings"
)

// Method is an interpolation or extrapolation scheme used along one axis.
type Method int

const (
	// Constant holds the value of the nearest grid edge. Only valid as an
	// extrapolation method.
	Constant Method = iota
	Linear
	// Cubic is a Hermite cubic whose slopes are estimated from neighbouring
	// points. Only valid as an interpolation method.
	Cubic
)

func (m Method) String() string {
	switch m {
	case Constant:
		return "Constant"
	case Linear:
		return "Linear"
	case Cubic:
		return "Cubic"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod converts a case-insensitive method name into a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "constant":
		return Constant, nil
	case "linear":
		return Linear, nil
	case "cubic":
		return Cubic, nil
	}
	return Constant, fmt.Errorf("'%s' is not one of [Constant | Linear | Cubic]: %w", s, ErrInvalidMethod)
}

// offsets returns the neighbour offsets, relative to the floor index, which
// a method needs along one axis.
func (m Method) offsets() []int {
	if m == Cubic { return []int{-1, 0, 1, 2} }
	return []int{0, 1}
}

// BoundsStatus classifies where a target component lies relative to an axis.
type BoundsStatus int

const (
	Interpolate BoundsStatus = iota
	ExtrapolateLow
	ExtrapolateHigh
	BelowLowerLimit
	AboveUpperLimit
)

func (s BoundsStatus) String() string {
	switch s {
	case Interpolate:
		return "Interpolate"
	case ExtrapolateLow:
		return "ExtrapolateLow"
	case ExtrapolateHigh:
		return "ExtrapolateHigh"
	case BelowLowerLimit:
		return "BelowLowerLimit"
	case AboveUpperLimit:
		return "AboveUpperLimit"
	}
	return fmt.Sprintf("BoundsStatus(%d)", int(s))
}

// IsExtrapolating is true for both in-limit extrapolation statuses.
func (s BoundsStatus) IsExtrapolating() bool {
	return s == ExtrapolateLow || s == ExtrapolateHigh
}

// IsOutsideLimits is true if the target cannot be evaluated at all.
func (s BoundsStatus) IsOutsideLimits() bool {
	return s == BelowLowerLimit || s == AboveUpperLimit
}
