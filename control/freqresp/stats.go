package freqresp

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-nichols/control/core"
)

// DefaultBandwidthDrop is the magnitude drop in dB that defines bandwidth.
const DefaultBandwidthDrop = 3.0103

// Peak returns the grid frequency with the largest magnitude and that
// magnitude in dB. Ties resolve to the lowest frequency.
func (v *Value) Peak() (freq, magDB float64, err error) {
	if len(v.freq) == 0 {
		return 0, 0, fmt.Errorf("%w: empty response", ErrInvalidArgument)
	}

	best := 0
	for i, s := range v.resp {
		if imag(s) > imag(v.resp[best]) {
			best = i
		}
	}
	return v.freq[best], imag(v.resp[best]), nil
}

// Bandwidth returns the lowest frequency at which the magnitude has fallen
// dropDB below its value at the first grid point. The crossing is
// interpolated linearly between the bracketing samples. ok is false when
// the magnitude never falls that far on the grid.
func (v *Value) Bandwidth(dropDB float64) (freq float64, ok bool, err error) {
	if len(v.freq) == 0 {
		return 0, false, fmt.Errorf("%w: empty response", ErrInvalidArgument)
	}
	if !(dropDB > 0) || !core.IsFinite(dropDB) {
		return 0, false, fmt.Errorf("%w: bandwidth drop must be finite and > 0: %v", ErrInvalidArgument, dropDB)
	}

	ref := imag(v.resp[0])
	if math.IsInf(ref, -1) {
		return 0, false, nil
	}
	threshold := ref - dropDB

	for i := 1; i < len(v.resp); i++ {
		m1 := imag(v.resp[i])
		if m1 > threshold {
			continue
		}

		m0 := imag(v.resp[i-1])
		x0, x1 := v.freq[i-1], v.freq[i]
		if math.IsInf(m1, -1) || m0 == m1 {
			return x1, true, nil
		}
		t := (threshold - m0) / (m1 - m0)
		return x0 + t*(x1-x0), true, nil
	}

	return 0, false, nil
}
