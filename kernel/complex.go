// Package kernel holds the unrolled forward- and inverse-DFT routines, one
// pair of exported functions per supported size. Everything under
// *_gen.go is produced by cmd/genkernels (see internal/gen) from the
// factorization of its size; kernel_handgen.go holds the sizes the
// generator is told to skip and a human tuned instead.
package kernel

import "errors"

// Complex is the element-type constraint every kernel is generic over.
// Both predeclared IEEE-754 complex types satisfy it; a caller picks the
// width by choosing which one they instantiate a kernel with.
type Complex interface {
	~complex64 | ~complex128
}

// ErrLengthMismatch is returned when the input slice length does not equal
// the kernel's fixed size.
var ErrLengthMismatch = errors.New("kernel: input length does not match kernel size")

// conj returns the elementwise complex conjugate of v. It exists because
// real/imag require a type parameter's type set to share a single
// underlying type, which complex64 and complex128 do not, so Complex
// can't use them directly.
func conj[T Complex](v T) T {
	switch c := any(v).(type) {
	case complex64:
		return any(complex64(complex(real(c), -imag(c)))).(T)
	case complex128:
		return any(complex128(complex(real(c), -imag(c)))).(T)
	default:
		panic("kernel: unreachable Complex instantiation")
	}
}
