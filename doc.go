// Package unrollfft is a library of fully-unrolled, fixed-size Discrete
// Fourier Transform kernels over complex floating-point data.
//
// For every supported size N it exposes a forward transform FFT and its
// inverse IFFT, dispatched by a runtime size parameter onto one of a set
// of kernels generated at build time by cmd/genkernels. Each kernel's
// internal body (kernel.fft<N>, unexported) operates on a fixed-size
// Go array rather than a slice, so the compiler never sees a heap
// allocation for it: it is a straight-line routine with no loops, no
// branches, and every twiddle factor baked in as a literal constant at
// its point of use, giving the target compiler maximum freedom to
// schedule and auto-vectorize it. The exported kernel.FFT<N>/IFFT<N>
// entry points convert to and from that array once at the boundary so
// callers keep the ordinary slice-based signature.
//
// # Supported sizes
//
// The supported set is every integer in [1, 140] plus {256, 512, 1024},
// enumerated in kernel.Sizes. Dispatching on an unsupported size returns
// ErrUnsupportedSize; calling a kernel with an input of the wrong length
// returns kernel.ErrLengthMismatch (re-exported here as ErrLengthMismatch).
//
// # Scaling convention
//
// IFFT does not divide by N. Round-tripping FFT then IFFT scales the
// input by N, matching the convention of the reference DFT this library
// is tested against. Callers wanting the orthonormal convention divide
// the result by N themselves.
//
// # Concurrency
//
// Every kernel is a pure function: no shared state, no synchronization,
// safe to call from any number of goroutines concurrently.
package unrollfft
