package freqresp

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-nichols/control/core"
)

// Errors returned by freqresp operations. Returned errors wrap exactly one
// of these and add the offending argument.
var (
	ErrConstruction       = errors.New("freqresp: invalid construction input")
	ErrFrequencyMismatch  = errors.New("freqresp: frequency grids differ")
	ErrUnsupportedOperand = errors.New("freqresp: unsupported series operand")
	ErrOutOfRange         = errors.New("freqresp: query frequency outside grid")
	ErrInvalidArgument    = errors.New("freqresp: invalid argument")
)

// validateGrid checks a stored frequency grid: non-empty, finite, positive
// and strictly increasing.
func validateGrid(freq []float64) error {
	if len(freq) == 0 {
		return fmt.Errorf("%w: empty frequency grid", ErrConstruction)
	}
	for i, w := range freq {
		if !core.IsFinite(w) {
			return fmt.Errorf("%w: frequency %d is not finite: %v", ErrConstruction, i, w)
		}
		if w <= 0 {
			return fmt.Errorf("%w: frequency %d must be > 0: %v", ErrConstruction, i, w)
		}
		if i > 0 && !(w > freq[i-1]) {
			return fmt.Errorf("%w: frequencies must be strictly increasing at index %d", ErrConstruction, i)
		}
	}
	return nil
}

// validateQuery checks query frequencies: finite and positive. Order is free.
func validateQuery(query []float64) error {
	for i, w := range query {
		if !core.IsFinite(w) {
			return fmt.Errorf("%w: query frequency %d is not finite: %v", ErrInvalidArgument, i, w)
		}
		if w <= 0 {
			return fmt.Errorf("%w: query frequency %d must be > 0: %v", ErrInvalidArgument, i, w)
		}
	}
	return nil
}

func validateNichols(resp []complex128) error {
	for i, s := range resp {
		p, m := real(s), imag(s)
		if !core.IsFinite(p) {
			return fmt.Errorf("%w: phase %d is not finite: %v", ErrConstruction, i, p)
		}
		if math.IsNaN(m) || math.IsInf(m, 1) {
			return fmt.Errorf("%w: magnitude %d must be finite or -Inf: %v", ErrConstruction, i, m)
		}
	}
	return nil
}

func validateComplex(h []complex128) error {
	for i, z := range h {
		re, im := real(z), imag(z)
		if !core.IsFinite(re) || !core.IsFinite(im) {
			return fmt.Errorf("%w: response sample %d is not finite: %v", ErrConstruction, i, z)
		}
	}
	return nil
}
