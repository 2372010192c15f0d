package lti

import (
	"fmt"

	"github.com/cwbudde/algo-nichols/control/core"
)

// TransferFunction is a SISO rational transfer function H(s) = N(s)/D(s)
// with real coefficients in descending powers of s.
type TransferFunction struct {
	num []float64
	den []float64
}

// NewTransferFunction validates and copies the coefficient slices.
// Leading zero coefficients are dropped.
func NewTransferFunction(num, den []float64) (*TransferFunction, error) {
	if len(num) == 0 {
		return nil, fmt.Errorf("%w: empty numerator", ErrInvalidSystem)
	}
	if len(den) == 0 {
		return nil, fmt.Errorf("%w: empty denominator", ErrInvalidSystem)
	}
	if err := validateCoefficients("numerator", num); err != nil {
		return nil, err
	}
	if err := validateCoefficients("denominator", den); err != nil {
		return nil, err
	}

	d := trimLeadingZeros(den)
	if len(d) == 1 && d[0] == 0 {
		return nil, fmt.Errorf("%w: denominator is identically zero", ErrInvalidSystem)
	}

	return &TransferFunction{
		num: append([]float64(nil), trimLeadingZeros(num)...),
		den: append([]float64(nil), d...),
	}, nil
}

func validateCoefficients(name string, c []float64) error {
	for i, v := range c {
		if !core.IsFinite(v) {
			return fmt.Errorf("%w: %s coefficient %d is not finite: %v", ErrInvalidSystem, name, i, v)
		}
	}
	return nil
}

// Numerator returns a copy of the numerator coefficients.
func (tf *TransferFunction) Numerator() []float64 {
	return append([]float64(nil), tf.num...)
}

// Denominator returns a copy of the denominator coefficients.
func (tf *TransferFunction) Denominator() []float64 {
	return append([]float64(nil), tf.den...)
}

// IODims reports one input and one output.
func (tf *TransferFunction) IODims() (inputs, outputs int) { return 1, 1 }

// At evaluates H(jw) at a single angular frequency.
func (tf *TransferFunction) At(w float64) (complex128, error) {
	s := complex(0, w)
	d := Horner(tf.den, s)
	if d == 0 {
		return 0, fmt.Errorf("%w: denominator vanishes at w=%g", ErrSingular, w)
	}
	return Horner(tf.num, s) / d, nil
}

// ComplexResponseAt evaluates H(jw) at every frequency in freq (rad/s).
func (tf *TransferFunction) ComplexResponseAt(freq []float64) ([]complex128, error) {
	out := make([]complex128, len(freq))
	for i, w := range freq {
		h, err := tf.At(w)
		if err != nil {
			return nil, err
		}
		out[i] = h
	}
	return out, nil
}

// Series returns the cascade tf*other, computed by multiplying numerators
// and denominators.
func (tf *TransferFunction) Series(other *TransferFunction) (*TransferFunction, error) {
	if tf == nil || other == nil {
		return nil, fmt.Errorf("%w: nil transfer function in series", ErrInvalidSystem)
	}
	if len(tf.den) == 0 || len(other.den) == 0 {
		return nil, fmt.Errorf("%w: transfer function has no denominator", ErrInvalidSystem)
	}
	return &TransferFunction{
		num: PolyMul(tf.num, other.num),
		den: PolyMul(tf.den, other.den),
	}, nil
}
