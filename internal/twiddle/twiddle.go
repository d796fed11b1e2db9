// Package twiddle computes the build-time twiddle constants baked into
// generated kernels as literals. It has no runtime role: cmd/genkernels
// calls Value while writing source, and the resulting float64 pair is
// formatted straight into the emitted Go file.
package twiddle

import "math"

// Value returns exp(-2*pi*i*k/n) as its (real, imaginary) parts,
// evaluated in 64-bit floating point. The forward-transform sign
// convention is negative; callers wanting the conjugate (as used by the
// inverse-transform wrapper) negate the imaginary part themselves.
func Value(k, n int) (re, im float64) {
	arg := -2.0 * math.Pi * float64(k) / float64(n)
	return math.Cos(arg), math.Sin(arg)
}
