package gen

import (
	"strings"

	"github.com/flintdsp/unrollfft/internal/classify"
)

// Output is the full set of generated files, keyed by their path
// relative to the module root.
type Output map[string]string

// basePowerOfTwo is the literal body for the two base cases of the
// radix-2 chain. They are not produced by emitPowerOfTwo because they
// have no half-size kernel to recurse into.
const basePowerOfTwo = `// fft1 is the identity transform.
func fft1[T Complex](x [1]T) [1]T {
	return x
}

// fft2 is the radix-2 base case.
func fft2[T Complex](x [2]T) [2]T {
	return [2]T{x[0] + x[1], x[0] - x[1]}
}

`

// Generate runs the classifier over cfg.Sizes and emits every file
// kernel/*_gen.go and dispatch_gen.go depend on, grouped by
// decomposition strategy the same way the committed tree is laid out.
// Sizes in cfg.HandGen are still classified and given dispatch entries,
// but their fft<n> bodies are assumed to live in kernel_handgen.go and
// are not emitted here.
func Generate(cfg Config) Output {
	var powertwo, mixed, coprime, prime, entries strings.Builder
	powertwo.WriteString(fileHeader("kernel"))
	mixed.WriteString(fileHeader("kernel"))
	coprime.WriteString(fileHeader("kernel"))
	prime.WriteString(fileHeader("kernel"))
	entries.WriteString(fileHeader("kernel"))

	powertwo.WriteString(basePowerOfTwo)

	for _, n := range cfg.Sizes {
		entries.WriteString(emitEntry(n))

		if cfg.HandGen[n] || n == 1 || n == 2 {
			continue
		}

		res := classify.Classify(n)
		switch res.Kind {
		case classify.PowerOfTwo:
			powertwo.WriteString(emitPowerOfTwo(n))
		case classify.Mixed:
			mixed.WriteString(emitMixed(n, res.Factors[0]))
		case classify.Coprime:
			coprime.WriteString(emitCoprime(n, res.Factors[0], res.Factors[1]))
		case classify.Prime:
			prime.WriteString(emitPrime(n))
		}
	}

	return Output{
		"kernel/kernel_powertwo_gen.go":  powertwo.String(),
		"kernel/kernel_mixed_gen.go":     mixed.String(),
		"kernel/kernel_coprime_gen.go":   coprime.String(),
		"kernel/kernel_prime_gen.go":     prime.String(),
		"kernel/dispatch_entries_gen.go": entries.String(),
		"kernel/sizes_gen.go":            emitSizesFile(cfg.Sizes),
		"dispatch_gen.go":                emitRootDispatcher(cfg.Sizes),
	}
}
