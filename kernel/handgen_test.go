package kernel

import "testing"

func checkAgainstRef(t *testing.T, name string, n int, got []complex128) {
	t.Helper()
	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(float64(i), 0)
	}
	want := refDFT(x)
	if len(got) != n {
		t.Fatalf("%s: got length %d, want %d", name, len(got), n)
	}
	if d := maxAbsDiff(got, want); d > 1e-8 {
		t.Errorf("%s: max abs diff %v exceeds tolerance", name, d)
	}
}

// TestHandGenKernelsMatchReferenceDFT exercises the unexported,
// array-based fft<n> bodies directly (rather than through FFT<n>) so a
// regression in the hand-written unrolled arithmetic itself, as opposed
// to the exported wrapper's slice/array conversion, is caught here.
func TestHandGenKernelsMatchReferenceDFT(t *testing.T) {
	t.Run("fft3", func(t *testing.T) {
		out := fft3([3]complex128{0, 1, 2})
		checkAgainstRef(t, "fft3", 3, out[:])
	})
	t.Run("fft9", func(t *testing.T) {
		var x [9]complex128
		for i := range x {
			x[i] = complex(float64(i), 0)
		}
		out := fft9(x)
		checkAgainstRef(t, "fft9", 9, out[:])
	})
	t.Run("fft18", func(t *testing.T) {
		var x [18]complex128
		for i := range x {
			x[i] = complex(float64(i), 0)
		}
		out := fft18(x)
		checkAgainstRef(t, "fft18", 18, out[:])
	})
	t.Run("fft27", func(t *testing.T) {
		var x [27]complex128
		for i := range x {
			x[i] = complex(float64(i), 0)
		}
		out := fft27(x)
		checkAgainstRef(t, "fft27", 27, out[:])
	})
	t.Run("fft125", func(t *testing.T) {
		var x [125]complex128
		for i := range x {
			x[i] = complex(float64(i), 0)
		}
		out := fft125(x)
		checkAgainstRef(t, "fft125", 125, out[:])
	})
}
