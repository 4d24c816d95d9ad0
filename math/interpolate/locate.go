package interpolate

// location is where a single target component lies on an axis.
type location struct {
	floor int
	fraction float64
	status BoundsStatus
	method Method
}

// locate finds the floor index, floor-to-ceiling fraction, bounds status and
// effective method of the target component t.
//
// A target equal to the last coordinate is placed at the end of the final
// interval rather than at the start of a zero-width interval past it.
func (ax *Axis) locate(t float64) location {
	n := len(ax.vals)
	last := n - 2
	if last < 0 { last = 0 }

	loc := location{ method: ax.interp }
	switch {
	case t < ax.lowLimit:
		loc.status, loc.floor = BelowLowerLimit, 0
	case t > ax.highLimit:
		loc.status, loc.floor = AboveUpperLimit, last
	case t < ax.vals[0]:
		loc.status, loc.floor = ExtrapolateLow, 0
	case t > ax.vals[n - 1]:
		loc.status, loc.floor = ExtrapolateHigh, last
	case t == ax.vals[n - 1]:
		loc.status, loc.floor = Interpolate, last
	default:
		loc.status, loc.floor = Interpolate, ax.s.search(t)
	}

	if n > 1 {
		lo, hi := ax.vals[loc.floor], ax.vals[loc.floor + 1]
		loc.fraction = (t - lo) / (hi - lo)
	} else {
		loc.fraction = 1
	}

	if loc.status.IsExtrapolating() { loc.method = ax.extrap }

	return loc
}
