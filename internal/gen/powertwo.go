package gen

import (
	"fmt"
	"strings"

	"github.com/flintdsp/unrollfft/internal/twiddle"
)

// emitPowerOfTwo emits fft<n> for n = 2^k, k >= 2, as a radix-2
// Cooley-Tukey butterfly over the already-emitted fft<n/2>. Sizes 1
// and 2 are the hand-written base cases in generate.go's
// basePowerOfTwo and are never routed through this emitter.
//
// The body is straight-line: x is split into its even- and
// odd-indexed halves by two array composite literals (no heap, no
// runtime loop), the two half-size kernels are called directly, and
// every twiddle multiply is its own statement with the twiddle
// constant written as a literal at the point of use. j == 0 always
// carries a twiddle of 1, so that slot skips the multiply entirely.
func emitPowerOfTwo(n int) string {
	half := n / 2
	var b strings.Builder

	fmt.Fprintf(&b, "// fft%d splits into even- and odd-indexed halves of size %d and\n", n, half)
	b.WriteString("// recombines with the radix-2 butterfly.\n")
	fmt.Fprintf(&b, "func fft%d[T Complex](x [%d]T) [%d]T {\n", n, n, n)

	evenElems := make([]string, half)
	oddElems := make([]string, half)
	for j := 0; j < half; j++ {
		evenElems[j] = fmt.Sprintf("x[%d]", 2*j)
		oddElems[j] = fmt.Sprintf("x[%d]", 2*j+1)
	}
	fmt.Fprintf(&b, "\tevenT := fft%d([%d]T{%s})\n", half, half, strings.Join(evenElems, ", "))
	fmt.Fprintf(&b, "\toddT := fft%d([%d]T{%s})\n", half, half, strings.Join(oddElems, ", "))

	for j := 0; j < half; j++ {
		if j == 0 {
			b.WriteString("\tt0 := oddT[0]\n")
			continue
		}
		re, im := twiddle.Value(j, n)
		fmt.Fprintf(&b, "\tt%d := oddT[%d] * T(%s)\n", j, j, formatComplex128(re, im))
	}

	top := make([]string, half)
	bot := make([]string, half)
	for j := 0; j < half; j++ {
		top[j] = fmt.Sprintf("evenT[%d] + t%d", j, j)
		bot[j] = fmt.Sprintf("evenT[%d] - t%d", j, j)
	}
	fmt.Fprintf(&b, "\treturn [%d]T{%s, %s}\n", n, strings.Join(top, ", "), strings.Join(bot, ", "))
	b.WriteString("}\n\n")
	return b.String()
}
