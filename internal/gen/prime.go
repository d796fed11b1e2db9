package gen

import (
	"fmt"
	"strings"

	"github.com/flintdsp/unrollfft/internal/twiddle"
)

// emitPrime emits fft<n> for prime n, or any n the classifier routes
// here by exhaustion (e.g. 27 = 3^3, which has no coprime split), as
// the direct DFT sum: one fully-unrolled expression per output index,
// a chain of x[k] terms added together with every twiddle factor
// written as a literal at its multiplication term rather than indexed
// out of a table. Terms whose twiddle index is 0 (n2 == 0, or k == 0
// for any n2) carry a twiddle of 1 and are emitted as a bare x[k] with
// no multiply. This is O(n^2) in the number of terms it writes, which
// is why this emitter produces the largest generated files in the
// tree; spec.md accepts that cost explicitly as a tuning question, not
// a correctness one (see DESIGN.md).
func emitPrime(n int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "// fft%d evaluates the direct DFT sum for the prime size %d, one\n", n, n)
	b.WriteString("// straight-line expression per output index with every twiddle factor\n")
	b.WriteString("// written as a literal at its multiplication site.\n")
	fmt.Fprintf(&b, "func fft%d[T Complex](x [%d]T) [%d]T {\n", n, n, n)
	fmt.Fprintf(&b, "\treturn [%d]T{\n", n)
	for n2 := 0; n2 < n; n2++ {
		terms := make([]string, n)
		for k := 0; k < n; k++ {
			idx := (k * n2) % n
			if idx == 0 {
				terms[k] = fmt.Sprintf("x[%d]", k)
				continue
			}
			re, im := twiddle.Value(idx, n)
			terms[k] = fmt.Sprintf("x[%d]*T(%s)", k, formatComplex128(re, im))
		}
		fmt.Fprintf(&b, "\t\t%s,\n", strings.Join(terms, " + "))
	}
	b.WriteString("\t}\n")
	b.WriteString("}\n\n")
	return b.String()
}
