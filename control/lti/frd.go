package lti

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-nichols/control/core"
)

// FRD holds tabulated complex frequency-response data. Response is indexed
// as resp[output][input][k], aligned with freq[k].
type FRD struct {
	freq []float64
	resp [][][]complex128
}

// NewFRD validates and copies tabulated data. freq must be strictly
// increasing, and every channel must have len(freq) samples.
func NewFRD(freq []float64, resp [][][]complex128) (*FRD, error) {
	if len(freq) == 0 {
		return nil, fmt.Errorf("%w: empty frequency grid", ErrInvalidSystem)
	}
	for i, w := range freq {
		if !core.IsFinite(w) {
			return nil, fmt.Errorf("%w: frequency %d is not finite", ErrInvalidSystem, i)
		}
		if i > 0 && !(w > freq[i-1]) {
			return nil, fmt.Errorf("%w: frequencies must be strictly increasing at index %d", ErrInvalidSystem, i)
		}
	}
	if len(resp) == 0 || len(resp[0]) == 0 {
		return nil, fmt.Errorf("%w: response needs at least one channel", ErrInvalidSystem)
	}

	inputs := len(resp[0])
	cp := make([][][]complex128, len(resp))
	for o := range resp {
		if len(resp[o]) != inputs {
			return nil, fmt.Errorf("%w: output %d has %d inputs, want %d", ErrInvalidSystem, o, len(resp[o]), inputs)
		}
		cp[o] = make([][]complex128, inputs)
		for i := range resp[o] {
			if len(resp[o][i]) != len(freq) {
				return nil, fmt.Errorf("%w: channel (%d,%d) has %d samples, want %d",
					ErrInvalidSystem, o, i, len(resp[o][i]), len(freq))
			}
			cp[o][i] = append([]complex128(nil), resp[o][i]...)
		}
	}

	return &FRD{
		freq: append([]float64(nil), freq...),
		resp: cp,
	}, nil
}

// NewSISOFRD is [NewFRD] for a single channel.
func NewSISOFRD(freq []float64, h []complex128) (*FRD, error) {
	return NewFRD(freq, [][][]complex128{{h}})
}

// IODims returns the input and output counts. The zero FRD reports 0, 0.
func (f *FRD) IODims() (inputs, outputs int) {
	if len(f.resp) == 0 {
		return 0, 0
	}
	return len(f.resp[0]), len(f.resp)
}

// Frequencies returns a copy of the tabulated grid.
func (f *FRD) Frequencies() []float64 {
	return append([]float64(nil), f.freq...)
}

// ComplexResponse returns a copy of the (0,0) channel, or nil for the zero
// FRD.
func (f *FRD) ComplexResponse() []complex128 {
	if len(f.resp) == 0 || len(f.resp[0]) == 0 {
		return nil
	}
	return append([]complex128(nil), f.resp[0][0]...)
}

// ComplexResponseAt looks up the tabulated response at each frequency.
// Every query must be a grid point.
func (f *FRD) ComplexResponseAt(freq []float64) ([]complex128, error) {
	if in, out := f.IODims(); in != 1 || out != 1 {
		return nil, fmt.Errorf("%w: %d inputs, %d outputs", ErrNotSISO, in, out)
	}

	out := make([]complex128, len(freq))
	for i, w := range freq {
		j := sort.SearchFloat64s(f.freq, w)
		if j == len(f.freq) || f.freq[j] != w {
			return nil, fmt.Errorf("%w: w=%g", ErrNotOnGrid, w)
		}
		out[i] = f.resp[0][0][j]
	}
	return out, nil
}
