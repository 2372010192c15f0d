package lti

import "gonum.org/v1/gonum/floats"

// Horner evaluates a real polynomial at complex s. Coefficients are in
// descending power order: c[0]*s^n + c[1]*s^(n-1) + ... + c[n].
// An empty coefficient slice evaluates to zero.
func Horner(c []float64, s complex128) complex128 {
	var acc complex128
	for _, v := range c {
		acc = acc*s + complex(v, 0)
	}
	return acc
}

// PolyMul returns the product of two polynomials given in the same power
// order. The result has length len(a)+len(b)-1.
func PolyMul(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	dst := make([]float64, len(a)+len(b)-1)
	for i := range a {
		floats.AddScaled(dst[i:i+len(b)], a[i], b)
	}

	return dst
}

// trimLeadingZeros drops leading zero coefficients, keeping at least one.
func trimLeadingZeros(c []float64) []float64 {
	i := 0
	for i < len(c)-1 && c[i] == 0 {
		i++
	}
	return c[i:]
}
