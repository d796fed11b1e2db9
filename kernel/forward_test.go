package kernel

import "testing"

// forwardCase pins one representative size per decomposition strategy
// (plus every hand-written size) so FFT<N> is checked directly against
// refDFT without going through the root package's runtime dispatcher.
// Mirrors the per-size exhaustiveness of original_source/tests/forward.rs,
// scaled down to one case per code path rather than all 143 sizes.
var forwardCases = []struct {
	name string
	n    int
	fwd  func([]complex128) ([]complex128, error)
}{
	{"FFT1 identity", 1, FFT1[complex128]},
	{"FFT2 powertwo base", 2, FFT2[complex128]},
	{"FFT4 powertwo", 4, FFT4[complex128]},
	{"FFT16 powertwo", 16, FFT16[complex128]},
	{"FFT128 powertwo", 128, FFT128[complex128]},
	{"FFT3 prime base", 3, FFT3[complex128]},
	{"FFT7 prime", 7, FFT7[complex128]},
	{"FFT23 prime", 23, FFT23[complex128]},
	{"FFT139 prime", 139, FFT139[complex128]},
	{"FFT9 mixed odd square", 9, FFT9[complex128]},
	{"FFT25 mixed odd square", 25, FFT25[complex128]},
	{"FFT121 mixed odd square", 121, FFT121[complex128]},
	{"FFT6 coprime", 6, FFT6[complex128]},
	{"FFT15 coprime", 15, FFT15[complex128]},
	{"FFT35 coprime", 35, FFT35[complex128]},
	{"FFT36 coprime (even square precedence)", 36, FFT36[complex128]},
	{"FFT18 handgen rectangular mixed", 18, FFT18[complex128]},
	{"FFT27 handgen rectangular mixed", 27, FFT27[complex128]},
	{"FFT125 handgen rectangular mixed", 125, FFT125[complex128]},
}

func TestForwardMatchesReferenceDFT(t *testing.T) {
	for _, tc := range forwardCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			x := make([]complex128, tc.n)
			for i := range x {
				x[i] = complex(float64(i+1), float64(i)*0.25)
			}
			got, err := tc.fwd(x)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := refDFT(x)
			if d := maxAbsDiff(got, want); d > 1e-8 {
				t.Errorf("max abs diff %v exceeds tolerance", d)
			}
		})
	}
}
