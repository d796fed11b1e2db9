package twiddle

import (
	"math"
	"testing"
)

func TestValueKnownAngles(t *testing.T) {
	tests := []struct {
		k, n   int
		re, im float64
	}{
		{0, 4, 1, 0},
		{1, 4, 0, -1},
		{2, 4, -1, 0},
		{3, 4, 0, 1},
		{0, 8, 1, 0},
		{2, 8, 0, -1},
	}
	for _, tc := range tests {
		re, im := Value(tc.k, tc.n)
		if math.Abs(re-tc.re) > 1e-12 || math.Abs(im-tc.im) > 1e-12 {
			t.Errorf("Value(%d,%d) = (%v,%v), want (%v,%v)", tc.k, tc.n, re, im, tc.re, tc.im)
		}
	}
}

func TestValueUnitModulus(t *testing.T) {
	for n := 2; n <= 37; n++ {
		for k := 0; k < n; k++ {
			re, im := Value(k, n)
			mag := math.Hypot(re, im)
			if math.Abs(mag-1) > 1e-12 {
				t.Errorf("Value(%d,%d) has modulus %v, want 1", k, n, mag)
			}
		}
	}
}

func TestValueConjugateSymmetry(t *testing.T) {
	// twiddle(n-k, n) == conj(twiddle(k, n))
	n := 13
	for k := 1; k < n; k++ {
		re1, im1 := Value(k, n)
		re2, im2 := Value(n-k, n)
		if math.Abs(re1-re2) > 1e-12 || math.Abs(im1+im2) > 1e-12 {
			t.Errorf("twiddle(%d,%d) and twiddle(%d,%d) are not conjugates", k, n, n-k, n)
		}
	}
}
