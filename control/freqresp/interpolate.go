package freqresp

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-nichols/control/nichols"
)

// Evaluate interpolates the response at each query frequency.
//
// Phase and magnitude are interpolated linearly and independently. A query
// that hits a grid point returns the stored sample exactly. Queries outside
// [min(freq), max(freq)] fail with [ErrOutOfRange]; the bounds themselves
// are valid. Phase is not wrapped, so unwrap first if continuity matters.
func (v *Value) Evaluate(query []float64) ([]complex128, error) {
	if len(v.freq) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidArgument)
	}
	if err := validateQuery(query); err != nil {
		return nil, err
	}

	lo, hi := v.Span()
	out := make([]complex128, len(query))
	for i, q := range query {
		if q < lo || q > hi {
			return nil, fmt.Errorf("%w: query %d = %v not in [%v, %v]", ErrOutOfRange, i, q, lo, hi)
		}

		j := sort.SearchFloat64s(v.freq, q)
		if v.freq[j] == q {
			out[i] = v.resp[j]
			continue
		}

		x0, x1 := v.freq[j-1], v.freq[j]
		t := (q - x0) / (x1 - x0)
		r0, r1 := v.resp[j-1], v.resp[j]
		out[i] = complex(lerp(real(r0), real(r1), t), lerp(imag(r0), imag(r1), t))
	}

	return out, nil
}

// Phase returns the phase channel in degrees. Without query frequencies the
// stored channel is returned, otherwise the interpolated one.
func (v *Value) Phase(query ...float64) ([]float64, error) {
	n, err := v.channelSource(query)
	if err != nil {
		return nil, err
	}
	phase, _ := nichols.Split(n)
	return phase, nil
}

// Magnitude returns the magnitude channel in dB. Without query frequencies
// the stored channel is returned, otherwise the interpolated one.
func (v *Value) Magnitude(query ...float64) ([]float64, error) {
	n, err := v.channelSource(query)
	if err != nil {
		return nil, err
	}
	_, mag := nichols.Split(n)
	return mag, nil
}

func (v *Value) channelSource(query []float64) ([]complex128, error) {
	if len(v.freq) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidArgument)
	}
	if len(query) == 0 {
		return v.resp, nil
	}
	return v.Evaluate(query)
}

// lerp blends a and b with weights (1-t) and t. The weighted form keeps a
// -Inf endpoint at -Inf for 0 < t < 1.
func lerp(a, b, t float64) float64 {
	if a == b {
		return a
	}
	return (1-t)*a + t*b
}
