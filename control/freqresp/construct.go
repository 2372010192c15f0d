package freqresp

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/cwbudde/algo-nichols/control/lti"
	"github.com/cwbudde/algo-nichols/control/nichols"
)

// FromNichols builds a Value from Nichols samples (phase deg + j*mag dB)
// aligned with freq. Phase must be finite; magnitude may be -Inf.
func FromNichols(freq []float64, resp []complex128) (*Value, error) {
	if err := validateGrid(freq); err != nil {
		return nil, err
	}
	if len(resp) != len(freq) {
		return nil, fmt.Errorf("%w: response has %d samples, frequency has %d", ErrConstruction, len(resp), len(freq))
	}
	if err := validateNichols(resp); err != nil {
		return nil, err
	}

	return newValue(
		append([]float64(nil), freq...),
		append([]complex128(nil), resp...),
	), nil
}

// FromComplex builds a Value from complex samples H(jw) aligned with freq.
// Phase is the per-sample principal value unless [nichols.WithUnwrap] is
// passed.
func FromComplex(freq []float64, h []complex128, opts ...nichols.Option) (*Value, error) {
	if err := validateGrid(freq); err != nil {
		return nil, err
	}
	if len(h) != len(freq) {
		return nil, fmt.Errorf("%w: response has %d samples, frequency has %d", ErrConstruction, len(h), len(freq))
	}
	if err := validateComplex(h); err != nil {
		return nil, err
	}

	return newValue(
		append([]float64(nil), freq...),
		nichols.ToNichols(h, opts...),
	), nil
}

// FromPolynomial evaluates H(jw) = N(jw)/D(jw) on freq. Coefficients are
// real and in descending powers of s, so den = [1, 1] is s + 1.
func FromPolynomial(num, den, freq []float64, opts ...nichols.Option) (*Value, error) {
	if err := validateGrid(freq); err != nil {
		return nil, err
	}

	tf, err := lti.NewTransferFunction(num, den)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
	}

	h, err := tf.ComplexResponseAt(freq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
	}

	return FromComplex(freq, h, opts...)
}

// FromResponder evaluates sys on freq. Systems that report their
// dimensions must be SISO, otherwise [ErrInvalidArgument] is returned.
func FromResponder(sys ComplexResponder, freq []float64, opts ...nichols.Option) (*Value, error) {
	if isNil(sys) {
		return nil, fmt.Errorf("%w: nil system", ErrConstruction)
	}
	if err := requireSISO(sys); err != nil {
		return nil, err
	}
	if err := validateGrid(freq); err != nil {
		return nil, err
	}

	h, err := sys.ComplexResponseAt(append([]float64(nil), freq...))
	if err != nil {
		if errors.Is(err, lti.ErrNotSISO) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		return nil, fmt.Errorf("%w: system evaluation failed: %w", ErrConstruction, err)
	}

	return FromComplex(freq, h, opts...)
}

// FromFrequencyData builds a Value from a tabulated SISO response.
func FromFrequencyData(fd FrequencyData, opts ...nichols.Option) (*Value, error) {
	if isNil(fd) {
		return nil, fmt.Errorf("%w: nil frequency data", ErrConstruction)
	}
	if err := requireSISO(fd); err != nil {
		return nil, err
	}

	return FromComplex(fd.Frequencies(), fd.ComplexResponse(), opts...)
}

// isNil reports whether sys is nil or a nil pointer, map, slice, func or
// channel behind a non-nil interface.
func isNil(sys any) bool {
	if sys == nil {
		return true
	}
	rv := reflect.ValueOf(sys)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func requireSISO(sys any) error {
	d, ok := sys.(IODimensioner)
	if !ok {
		return nil
	}
	in, out := d.IODims()
	if in == 0 || out == 0 {
		return fmt.Errorf("%w: system has no inputs or outputs", ErrConstruction)
	}
	if in != 1 || out != 1 {
		return fmt.Errorf("%w: system must be SISO, has %d inputs and %d outputs", ErrInvalidArgument, in, out)
	}
	return nil
}
