package freqresp

import (
	"github.com/cwbudde/algo-nichols/control/core"
	"github.com/cwbudde/algo-nichols/control/nichols"
)

// ComplexResponder evaluates a SISO system's complex frequency response at
// the given angular frequencies (rad/s).
type ComplexResponder interface {
	ComplexResponseAt(freq []float64) ([]complex128, error)
}

// IODimensioner is implemented by systems that know their input and output
// counts. Only 1x1 systems are accepted.
type IODimensioner interface {
	IODims() (inputs, outputs int)
}

// FrequencyData is a tabulated frequency-response object: a grid with one
// complex sample per frequency.
type FrequencyData interface {
	IODimensioner
	Frequencies() []float64
	ComplexResponse() []complex128
}

// Value is a sampled frequency response in Nichols form.
//
// Sample i of the response belongs to frequency i. The zero Value is empty
// and every operation on it fails with [ErrInvalidArgument].
type Value struct {
	freq []float64
	resp []complex128
}

// newValue takes ownership of freq and resp.
func newValue(freq []float64, resp []complex128) *Value {
	return &Value{freq: freq, resp: resp}
}

// Len returns the number of samples.
func (v *Value) Len() int { return len(v.freq) }

// Frequency returns a copy of the frequency grid in rad/s.
func (v *Value) Frequency() []float64 {
	return append([]float64(nil), v.freq...)
}

// Response returns a copy of the Nichols samples (phase deg + j*mag dB).
func (v *Value) Response() []complex128 {
	return append([]complex128(nil), v.resp...)
}

// Span returns the lowest and highest grid frequency.
func (v *Value) Span() (lo, hi float64) {
	if len(v.freq) == 0 {
		return 0, 0
	}
	return v.freq[0], v.freq[len(v.freq)-1]
}

// ToComplex returns the stored samples as complex H(jw) values.
func (v *Value) ToComplex() []complex128 {
	return nichols.ToComplex(v.resp)
}

// IODims reports one input and one output.
func (v *Value) IODims() (inputs, outputs int) { return 1, 1 }

// ComplexResponseAt interpolates the response at freq and decodes it to
// complex samples, which lets a Value stand in wherever a system is expected.
func (v *Value) ComplexResponseAt(freq []float64) ([]complex128, error) {
	n, err := v.Evaluate(freq)
	if err != nil {
		return nil, err
	}
	return nichols.ToComplex(n), nil
}

// Equal reports whether v and o share the same grid and their samples agree
// within eps on both channels.
func (v *Value) Equal(o *Value, eps float64) bool {
	if o == nil || len(v.freq) != len(o.freq) {
		return false
	}
	for i := range v.freq {
		if v.freq[i] != o.freq[i] {
			return false
		}
		a, b := v.resp[i], o.resp[i]
		if !core.NearlyEqual(real(a), real(b), eps) || !core.NearlyEqual(imag(a), imag(b), eps) {
			return false
		}
	}
	return true
}

func (v *Value) sameGrid(o *Value) bool {
	if len(v.freq) != len(o.freq) {
		return false
	}
	for i := range v.freq {
		if v.freq[i] != o.freq[i] {
			return false
		}
	}
	return true
}
