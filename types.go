package unrollfft

import "github.com/flintdsp/unrollfft/kernel"

// Complex is the element-type constraint FFT and IFFT are generic over:
// either IEEE-754 binary64 (complex128) or binary32 (complex64) samples.
type Complex = kernel.Complex
