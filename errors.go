// errors.go defines public error values for the unrollfft package.

package unrollfft

import (
	"errors"

	"github.com/flintdsp/unrollfft/kernel"
)

// ErrUnsupportedSize indicates the dispatcher was asked for a size N not
// present in kernel.Sizes. There is no kernel to fall back to; the call
// fails immediately rather than attempting a runtime DFT.
var ErrUnsupportedSize = errors.New("unrollfft: unsupported transform size")

// ErrLengthMismatch indicates a kernel was called with an input slice
// whose length differs from the kernel's fixed size N.
var ErrLengthMismatch = kernel.ErrLengthMismatch
