package interpolate

// hypercube is the set of neighbour offsets, relative to the floor grid
// point, needed to evaluate a target.
type hypercube struct {
	vertices [][]int
	// shape identifies the per-axis offset sets. Two hypercubes with the same
	// shape contain the same vertices in the same order.
	shape string
}

// cacheKey identifies the neighbour values fetched for one hypercube placed
// at one floor grid point.
type cacheKey struct {
	floor int
	shape string
}

// axisShape returns the shape code and offset set for one axis. An axis whose
// fraction is exactly zero only needs the floor point.
func axisShape(m Method, fraction float64) (byte, []int) {
	switch {
	case fraction == 0:
		return 'z', []int{0}
	case m == Cubic:
		return 'c', m.offsets()
	default:
		return 'l', m.offsets()
	}
}

func hypercubeShape(methods []Method, fractions []float64) string {
	b := make([]byte, len(methods))
	for i := range methods {
		b[i], _ = axisShape(methods[i], fractions[i])
	}
	return string(b)
}

func newHypercube(methods []Method, fractions []float64) hypercube {
	options := make([][]int, len(methods))
	shape := make([]byte, len(methods))
	for i := range methods {
		shape[i], options[i] = axisShape(methods[i], fractions[i])
	}
	return hypercube{ vertices: cartesianProduct(options), shape: string(shape) }
}

// cartesianProduct returns every combination of one element from each of
// options, with the last option varying fastest.
func cartesianProduct(options [][]int) [][]int {
	n := 1
	for _, opt := range options { n *= len(opt) }

	out := make([][]int, n)
	flat := make([]int, n*len(options))
	for i := range out {
		out[i] = flat[i*len(options): (i + 1)*len(options)]
		rem := i
		for a := len(options) - 1; a >= 0; a-- {
			k := len(options[a])
			out[i][a] = options[a][rem % k]
			rem /= k
		}
	}
	return out
}

// neighborValues returns the data-set values at every vertex of the current
// hypercube placed at the current floor, reading from the cache if possible.
// vals[v][d] is the value of data set d at vertex v.
func (g *RegularGrid) neighborValues() [][]float64 {
	key := cacheKey{ floor: g.flatIndex(g.floors), shape: g.cube.shape }
	if vals, ok := g.cache[key]; ok { return vals }

	vals := make([][]float64, len(g.cube.vertices))
	flat := make([]float64, len(g.cube.vertices)*len(g.dataSets))
	for v, offsets := range g.cube.vertices {
		vals[v] = flat[v*len(g.dataSets): (v + 1)*len(g.dataSets)]
		idx := g.relativeIndex(g.floors, offsets)
		for d := range g.dataSets {
			vals[v][d] = g.dataSets[d].Values[idx]
		}
	}

	g.cache[key] = vals
	return vals
}

// clearCache drops every cached neighbour value. It must be called whenever
// data-set contents change.
func (g *RegularGrid) clearCache() {
	g.cache = map[cacheKey][][]float64{}
}
