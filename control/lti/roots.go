package lti

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
)

const (
	rootMaxIter = 500
	rootTol     = 1e-12

	// rootOrderQuantum is the grid real parts are snapped to before ordering.
	rootOrderQuantum = 1e-9
)

// Roots returns the complex roots of a real polynomial in descending power
// order using Durand-Kerner iteration. Leading zeros are ignored; a
// constant polynomial has no roots. Roots are sorted by real part, then
// imaginary part, with real parts rounded to a 1e-9 grid.
func Roots(c []float64) ([]complex128, error) {
	if err := validateCoefficients("polynomial", c); err != nil {
		return nil, err
	}
	c = trimLeadingZeros(c)
	if len(c) < 2 {
		if len(c) == 1 && c[0] == 0 {
			return nil, fmt.Errorf("%w: zero polynomial has no finite root set", ErrInvalidSystem)
		}
		return nil, nil
	}

	n := len(c) - 1
	norm := make([]complex128, len(c))
	for i, v := range c {
		norm[i] = complex(v/c[0], 0)
	}

	radius := 1.0
	for i := 1; i <= n; i++ {
		radius = math.Max(radius, cmplx.Abs(norm[i]))
	}

	roots := make([]complex128, n)
	for i := range roots {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = cmplx.Rect(r, angle)
	}

	converged := false
	for iter := 0; iter < rootMaxIter && !converged; iter++ {
		maxDelta := 0.0
		for i := range roots {
			den := complex(1, 0)
			for j := range roots {
				if i != j {
					den *= roots[i] - roots[j]
				}
			}
			if den == 0 {
				roots[i] += complex(1e-10, 1e-10)
				maxDelta = math.Inf(1)
				continue
			}

			delta := hornerComplex(norm, roots[i]) / den
			roots[i] -= delta
			maxDelta = math.Max(maxDelta, cmplx.Abs(delta))
		}
		converged = maxDelta < rootTol
	}

	if !converged {
		for _, r := range roots {
			if cmplx.Abs(hornerComplex(norm, r)) >= 1e-6 {
				return nil, fmt.Errorf("%w: root finding did not converge", ErrInvalidSystem)
			}
		}
	}

	sort.Slice(roots, func(i, j int) bool {
		ki, kj := realKey(roots[i]), realKey(roots[j])
		if ki != kj {
			return ki < kj
		}
		return imag(roots[i]) < imag(roots[j])
	})
	return roots, nil
}

// realKey snaps the real part of r to rootOrderQuantum so that conjugate
// pairs with slightly different real parts compare equal.
func realKey(r complex128) float64 {
	return math.Round(real(r)/rootOrderQuantum) * rootOrderQuantum
}

func hornerComplex(c []complex128, s complex128) complex128 {
	var acc complex128
	for _, v := range c {
		acc = acc*s + v
	}
	return acc
}

// Poles returns the roots of the denominator.
func (tf *TransferFunction) Poles() ([]complex128, error) {
	return Roots(tf.den)
}

// Zeros returns the roots of the numerator. A zero numerator has no
// meaningful zeros and is reported as an error.
func (tf *TransferFunction) Zeros() ([]complex128, error) {
	return Roots(tf.num)
}
