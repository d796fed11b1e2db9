package kernel

import "testing"

// inverseCases mirrors original_source/tests/inverse.rs: ifft(fft(x))
// equals N*x, unscaled, for a representative size per strategy.
var inverseCases = []struct {
	name string
	n    int
	fwd  func([]complex128) ([]complex128, error)
	inv  func([]complex128) ([]complex128, error)
}{
	{"N=1", 1, FFT1[complex128], IFFT1[complex128]},
	{"N=2", 2, FFT2[complex128], IFFT2[complex128]},
	{"N=8 powertwo", 8, FFT8[complex128], IFFT8[complex128]},
	{"N=64 powertwo", 64, FFT64[complex128], IFFT64[complex128]},
	{"N=5 prime", 5, FFT5[complex128], IFFT5[complex128]},
	{"N=31 prime", 31, FFT31[complex128], IFFT31[complex128]},
	{"N=9 mixed", 9, FFT9[complex128], IFFT9[complex128]},
	{"N=49 mixed odd square", 49, FFT49[complex128], IFFT49[complex128]},
	{"N=21 coprime", 21, FFT21[complex128], IFFT21[complex128]},
	{"N=100 coprime (even square)", 100, FFT100[complex128], IFFT100[complex128]},
	{"N=18 handgen", 18, FFT18[complex128], IFFT18[complex128]},
	{"N=27 handgen", 27, FFT27[complex128], IFFT27[complex128]},
	{"N=125 handgen", 125, FFT125[complex128], IFFT125[complex128]},
}

func TestInverseRoundTripsUnscaled(t *testing.T) {
	for _, tc := range inverseCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			x := make([]complex128, tc.n)
			for i := range x {
				x[i] = complex(float64(i)+1, float64(i)*0.5-1)
			}
			fwd, err := tc.fwd(x)
			if err != nil {
				t.Fatalf("forward: %v", err)
			}
			back, err := tc.inv(fwd)
			if err != nil {
				t.Fatalf("inverse: %v", err)
			}
			want := make([]complex128, tc.n)
			for i, v := range x {
				want[i] = v * complex(float64(tc.n), 0)
			}
			if d := maxAbsDiff(back, want); d > 1e-6*float64(tc.n) {
				t.Errorf("max abs diff %v exceeds tolerance", d)
			}
		})
	}
}
