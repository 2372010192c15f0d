// Package nichols converts complex frequency-response samples to and from
// Nichols form.
//
// A Nichols-form sample packs phase in degrees into the real part and
// magnitude in dB into the imaginary part of a complex128:
//
//	n = phaseDeg + j*magDB
//
// The packing is a container, not a complex quantity. Adding two Nichols
// samples multiplies the underlying transfer functions, which is what makes
// the encoding useful for cascading systems.
//
// Zero-magnitude samples encode as magDB = -Inf and decode back to exactly
// zero.
package nichols
