package freqresp

import (
	"fmt"
	"math"
)

// LogSpace returns n logarithmically spaced frequencies from lo to hi
// inclusive. Both bounds must be positive and lo < hi unless n == 1.
func LogSpace(lo, hi float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: point count must be > 0: %d", ErrInvalidArgument, n)
	}
	if err := validateQuery([]float64{lo, hi}); err != nil {
		return nil, err
	}
	if n == 1 {
		return []float64{lo}, nil
	}
	if !(hi > lo) {
		return nil, fmt.Errorf("%w: upper bound %v must exceed lower bound %v", ErrInvalidArgument, hi, lo)
	}

	out := make([]float64, n)
	l0 := math.Log10(lo)
	step := (math.Log10(hi) - l0) / float64(n-1)
	for i := range out {
		out[i] = math.Pow(10, l0+step*float64(i))
	}
	out[0] = lo
	out[n-1] = hi

	// Pinning the bounds can break monotonicity for very dense grids.
	for i := 1; i < n; i++ {
		if !(out[i] > out[i-1]) {
			return nil, fmt.Errorf("%w: %d points do not fit strictly between %v and %v", ErrInvalidArgument, n, lo, hi)
		}
	}

	return out, nil
}
