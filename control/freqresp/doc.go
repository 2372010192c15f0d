// Package freqresp represents sampled frequency-response data in Nichols
// form and provides the algebra used to analyse it.
//
// A [Value] pairs an ascending grid of angular frequencies (rad/s) with
// Nichols samples (phase in degrees, magnitude in dB). Values are immutable:
// every operation returns a new Value.
//
// # Construction
//
//	v, err := freqresp.FromPolynomial([]float64{1}, []float64{1, 1}, grid) // 1/(s+1)
//	v, err := freqresp.FromResponder(sys, grid)      // any lti model
//	v, err := freqresp.FromComplex(grid, h)          // raw H(jw) samples
//	v, err := freqresp.FromNichols(grid, n)          // raw Nichols samples
//	v, err := freqresp.FromFrequencyData(frd)        // tabulated SISO data
//	v, err := freqresp.FromImpulseResponse(h, fs, 0) // FIR on the FFT grid
//
// # Algebra
//
// Cascading two systems multiplies their transfer functions. In Nichols form
// this is a pointwise addition of phase and magnitude, which is what
// [Value.SeriesValue], [Value.SeriesSystem] and [Value.SeriesGain] compute.
// [Value.Unwrap] removes 360 degree phase jumps and moves the first phase
// sample into (-360, 0]. [Value.Evaluate] interpolates linearly between
// grid points and refuses to extrapolate.
//
// Errors wrap one of [ErrConstruction], [ErrFrequencyMismatch],
// [ErrUnsupportedOperand], [ErrOutOfRange] or [ErrInvalidArgument].
package freqresp
