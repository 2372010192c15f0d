// Package lti provides linear time-invariant system models that evaluate
// their complex frequency response H(jw) on a grid of angular frequencies.
//
// Every model implements
//
//	ComplexResponseAt(freq []float64) ([]complex128, error)
//	IODims() (inputs, outputs int)
//
// which is the contract the freqresp package consumes. Available models:
//
//   - [TransferFunction]: ratio of real polynomials in s, evaluated with Horner's rule
//   - [StateSpace]:       (A, B, C, D) realisation solved per frequency with gonum
//   - [FRD]:              tabulated frequency-response data, possibly MIMO
//   - [Gain]:             a static real gain
//
// Only single-input single-output systems can be evaluated; MIMO models
// report their dimensions and fail with [ErrNotSISO].
package lti
