package kernel

import (
	"errors"
	"testing"
)

// TestForwardIsLinear mirrors original_source/tests/test.rs's linearity
// check, exercised directly against the exported per-size entry points
// rather than through the root package's dispatcher.
func TestForwardIsLinear(t *testing.T) {
	const n = 15
	x := make([]complex128, n)
	y := make([]complex128, n)
	for i := range x {
		x[i] = complex(float64(i), float64(n-i))
		y[i] = complex(float64(n-i), float64(i)*0.5)
	}
	alpha, beta := complex(1.5, -0.5), complex(-2.0, 1.0)
	combined := make([]complex128, n)
	for i := range combined {
		combined[i] = alpha*x[i] + beta*y[i]
	}

	got, err := FFT15(combined)
	if err != nil {
		t.Fatal(err)
	}
	fx, err := FFT15(x)
	if err != nil {
		t.Fatal(err)
	}
	fy, err := FFT15(y)
	if err != nil {
		t.Fatal(err)
	}
	want := make([]complex128, n)
	for i := range want {
		want[i] = alpha*fx[i] + beta*fy[i]
	}
	if d := maxAbsDiff(got, want); d > 1e-8 {
		t.Errorf("linearity violated: max abs diff %v", d)
	}
}

func TestKernelLengthMismatch(t *testing.T) {
	if _, err := FFT15(make([]complex128, 14)); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("FFT15 with wrong length: got %v, want ErrLengthMismatch", err)
	}
	if _, err := IFFT15(make([]complex128, 16)); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("IFFT15 with wrong length: got %v, want ErrLengthMismatch", err)
	}
}

// TestConjInvolution checks the generic conj helper kernel/complex.go
// relies on for IFFT against both element-type instantiations.
func TestConjInvolution(t *testing.T) {
	v128 := complex128(complex(3, -4))
	if got := conj(conj(v128)); got != v128 {
		t.Errorf("conj(conj(%v)) = %v, want %v", v128, got, v128)
	}
	v64 := complex64(complex(3, -4))
	if got := conj(conj(v64)); got != v64 {
		t.Errorf("conj(conj(%v)) = %v, want %v", v64, got, v64)
	}
}
