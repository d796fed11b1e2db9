package kernel

import "math"

// refDFT evaluates the direct DFT sum in float64 regardless of the
// kernel element type, used as the independent oracle the generated
// and hand-written kernels are checked against.
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
