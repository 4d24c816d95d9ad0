package interpolate

import (
	"fmt"
)

// coefficients holds the per-axis blending terms for one located target
// component.
type coefficients struct {
	interp [2]float64 // floor, ceiling
	slope [2]float64 // floor, ceiling; zero unless cubic
	// weights are indexed by neighbour offset + 1, covering offsets
	// -1, 0, 1, 2.
	weights [4]float64
}

func (ax *Axis) coefficients(loc location) coefficients {
	c := coefficients{}
	mu := loc.fraction

	switch loc.method {
	case Constant:
		if mu < 0 {
			mu = 0
		} else {
			mu = 1
		}
		c.interp = [2]float64{ 1 - mu, mu }
	case Linear:
		c.interp = [2]float64{ 1 - mu, mu }
	case Cubic:
		mu2 := mu*mu
		mu3 := mu2*mu
		c.interp[floorSide] = 2*mu3 - 3*mu2 + 1
		c.interp[ceilingSide] = -2*mu3 + 3*mu2
		c.slope[floorSide] = (mu3 - 2*mu2 + mu) *
			ax.spacingRatio(floorSide, loc.floor)
		c.slope[ceilingSide] = (mu3 - mu2) *
			ax.spacingRatio(ceilingSide, loc.floor)
	default:
		panic(fmt.Sprintf("Impossible method %d", int(loc.method)))
	}

	sf, sc := c.slope[floorSide], c.slope[ceilingSide]
	c.weights[0] = -sf
	c.weights[1] = c.interp[floorSide] - sc
	c.weights[2] = c.interp[ceilingSide] + sf
	c.weights[3] = sc

	return c
}
