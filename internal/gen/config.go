// Package gen is the build-time code generator: given a factorization
// of N from internal/classify and twiddle values from internal/twiddle,
// it emits the Go source of one fully-unrolled kernel per supported N.
// cmd/genkernels is the only caller; nothing in this package runs at
// library runtime.
package gen

// Config describes what cmd/genkernels should produce.
type Config struct {
	// Sizes is the full set of N to generate a dispatcher entry for,
	// in ascending order. It corresponds to spec's SIZES knob.
	Sizes []int

	// HandGen is the set of sizes whose kernel bodies are supplied by
	// hand in kernel/kernel_handgen.go rather than mechanically
	// emitted. The generator still emits their dispatch entries and
	// counts them as members of Sizes, it just skips writing a body
	// for them. Must include at least {3, 9, 18, 27, 125}.
	HandGen map[int]bool
}

// DefaultConfig reproduces the size set this repository ships:
// every integer in [1, 140] plus {256, 512, 1024}, with the five
// irregular sizes carved out for hand-written kernels.
func DefaultConfig() Config {
	sizes := make([]int, 0, 143)
	for n := 1; n <= 140; n++ {
		sizes = append(sizes, n)
	}
	sizes = append(sizes, 256, 512, 1024)
	return Config{
		Sizes: sizes,
		HandGen: map[int]bool{
			3: true, 9: true, 18: true, 27: true, 125: true,
		},
	}
}
