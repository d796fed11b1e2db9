package unrollfft

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/flintdsp/unrollfft/kernel"
)

// refDFT is the independent direct-evaluation oracle every property
// test below is checked against.
func refDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for j := 0; j < n; j++ {
		var acc complex128
		for k := 0; k < n; k++ {
			arg := -2 * math.Pi * float64(j*k) / float64(n)
			acc += x[k] * complex(math.Cos(arg), math.Sin(arg))
		}
		out[j] = acc
	}
	return out
}

func maxAbsDiff(a, b []complex128) float64 {
	var max float64
	for i := range a {
		d := a[i] - b[i]
		mag := math.Hypot(real(d), imag(d))
		if mag > max {
			max = mag
		}
	}
	return max
}

func rampInput(n int) []complex128 {
	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(float64(i), float64(i)*0.5)
	}
	return x
}

func TestFFTMatchesReferenceDFTForEverySupportedSize(t *testing.T) {
	for _, n := range kernel.Sizes {
		n := n
		t.Run(sizeLabel(n), func(t *testing.T) {
			x := rampInput(n)
			got, err := FFT(n, x)
			if err != nil {
				t.Fatalf("FFT(%d): %v", n, err)
			}
			want := refDFT(x)
			if d := maxAbsDiff(got, want); d > 1e-7 {
				t.Errorf("FFT(%d): max abs diff %v exceeds tolerance", n, d)
			}
		})
	}
}

func TestIFFTRoundTripsUnscaled(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 16, 18, 25, 27, 32, 49, 64, 125, 140, 256} {
		n := n
		t.Run(sizeLabel(n), func(t *testing.T) {
			x := rampInput(n)
			fwd, err := FFT(n, x)
			if err != nil {
				t.Fatalf("FFT(%d): %v", n, err)
			}
			back, err := IFFT(n, fwd)
			if err != nil {
				t.Fatalf("IFFT(%d): %v", n, err)
			}
			want := make([]complex128, n)
			for i, v := range x {
				want[i] = v * complex(float64(n), 0)
			}
			if d := maxAbsDiff(back, want); d > 1e-6*float64(n) {
				t.Errorf("IFFT(FFT(x)) round trip: max abs diff %v exceeds tolerance", d)
			}
		})
	}
}

func TestFFTIsLinear(t *testing.T) {
	n := 28
	x := rampInput(n)
	y := make([]complex128, n)
	for i := range y {
		y[i] = complex(float64(n-i), float64(i))
	}
	alpha, beta := complex(2.0, -1.0), complex(0.5, 1.5)

	combined := make([]complex128, n)
	for i := range combined {
		combined[i] = alpha*x[i] + beta*y[i]
	}

	got, err := FFT(n, combined)
	if err != nil {
		t.Fatal(err)
	}
	fx, err := FFT(n, x)
	if err != nil {
		t.Fatal(err)
	}
	fy, err := FFT(n, y)
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

func TestFFTSatisfiesParseval(t *testing.T) {
	for _, n := range []int{4, 9, 15, 27, 49, 125} {
		x := rampInput(n)
		got, err := FFT(n, x)
		if err != nil {
			t.Fatal(err)
		}
		var timeEnergy, freqEnergy float64
		for _, v := range x {
			timeEnergy += real(v)*real(v) + imag(v)*imag(v)
		}
		for _, v := range got {
			freqEnergy += real(v)*real(v) + imag(v)*imag(v)
		}
		freqEnergy /= float64(n)
		if math.Abs(timeEnergy-freqEnergy) > 1e-6*float64(n) {
			t.Errorf("n=%d: Parseval mismatch, time=%v freq/N=%v", n, timeEnergy, freqEnergy)
		}
	}
}

func TestFFTPermutationProperty(t *testing.T) {
	for _, n := range []int{8, 9, 15, 25, 27} {
		s := 3
		x := rampInput(n)
		shifted := make([]complex128, n)
		for i := range shifted {
			shifted[i] = x[(i+s)%n]
		}
		fx, err := FFT(n, x)
		if err != nil {
			t.Fatal(err)
		}
		fShifted, err := FFT(n, shifted)
		if err != nil {
			t.Fatal(err)
		}
		for k := 0; k < n; k++ {
			arg := -2 * math.Pi * float64(s*k) / float64(n)
			want := fx[k] * complex(math.Cos(arg), math.Sin(arg))
			if d := math.Hypot(real(fShifted[k]-want), imag(fShifted[k]-want)); d > 1e-8 {
				t.Errorf("n=%d k=%d: permutation property violated, diff %v", n, k, d)
			}
		}
	}
}

func TestLengthMismatch(t *testing.T) {
	_, err := FFT(8, make([]complex128, 7))
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("got %v, want ErrLengthMismatch", err)
	}
	_, err = IFFT(8, make([]complex128, 9))
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("got %v, want ErrLengthMismatch", err)
	}
}

func TestUnsupportedSize(t *testing.T) {
	_, err := FFT(141, make([]complex128, 141))
	if !errors.Is(err, ErrUnsupportedSize) {
		t.Errorf("got %v, want ErrUnsupportedSize", err)
	}
}

func TestConcreteScenarios(t *testing.T) {
	got, err := FFT(2, []complex128{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	want := []complex128{3, -1}
	if d := maxAbsDiff(got, want); d > 1e-12 {
		t.Errorf("fft<2>: got %v, want %v", got, want)
	}

	got, err = FFT(3, []complex128{0, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	want = []complex128{3, complex(-1.5, 0.8660254037844387), complex(-1.5, -0.8660254037844387)}
	if d := maxAbsDiff(got, want); d > 1e-8 {
		t.Errorf("fft<3>: got %v, want %v", got, want)
	}

	got, err = FFT(4, []complex128{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	want = []complex128{10, complex(-2, 2), -2, complex(-2, -2)}
	if d := maxAbsDiff(got, want); d > 1e-12 {
		t.Errorf("fft<4>: got %v, want %v", got, want)
	}

	x8 := make([]complex128, 8)
	for i := range x8 {
		x8[i] = complex(float64(i+1), 0)
	}
	got, err = FFT(8, x8)
	if err != nil {
		t.Fatal(err)
	}
	if d := math.Hypot(real(got[0]-36), imag(got[0])); d > 1e-9 {
		t.Errorf("fft<8>[0]: got %v, want 36", got[0])
	}
	if d := math.Hypot(real(got[6]-complex(-4, -4)), imag(got[6]-complex(-4, -4))); d > 1e-9 {
		t.Errorf("fft<8>[6]: got %v, want -4-4i", got[6])
	}

	x5 := []complex128{0, 1, 2, 3, 4}
	got, err = FFT(5, x5)
	if err != nil {
		t.Fatal(err)
	}
	wantRef := refDFT(x5)
	if d := maxAbsDiff(got, wantRef); d > 1e-8 {
		t.Errorf("fft<5>: max abs diff %v vs reference", d)
	}
	if d := math.Hypot(real(got[0]-10), imag(got[0])); d > 1e-9 {
		t.Errorf("fft<5>[0]: got %v, want 10", got[0])
	}

	x1024 := make([]complex128, 1024)
	for k := range x1024 {
		x1024[k] = complex(float64(k), float64(k))
	}
	got, err = FFT(1024, x1024)
	if err != nil {
		t.Fatal(err)
	}
	want1024 := refDFT(x1024)
	if d := maxAbsDiff(got, want1024); d > 1e-3 {
		t.Errorf("fft<1024>: max abs diff %v exceeds widened tolerance", d)
	}
}

func sizeLabel(n int) string {
	return "n=" + strconv.Itoa(n)
}
