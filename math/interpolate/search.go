package interpolate

// searcher finds the interval containing a point in a strictly increasing
// sequence.
type searcher struct {
	xs []float64
	x0, dx float64
	n int
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	s.n = len(xs)
	s.x0 = xs[0]
	if s.n > 1 {
		s.dx = (xs[s.n - 1] - s.x0) / float64(s.n - 1)
	} else {
		s.dx = 0
	}
}

// search returns the index of the largest element of xs which is less than
// or equal to x. x must be in the range [xs[0], xs[n-1]).
func (s *searcher) search(x float64) int {
	if s.n < 2 { return 0 }

	// Guess under the assumption of uniform spacing.
	guess := int((x - s.x0) / s.dx)
	if guess >= 0 && guess < s.n - 1 &&
		s.xs[guess] <= x && x < s.xs[guess + 1] {
		return guess
	}

	// Binary search.
	lo, hi := 0, s.n - 1
	for hi - lo > 1 {
		mid := (lo + hi) / 2
		if x >= s.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}
