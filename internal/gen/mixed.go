package gen

import (
	"fmt"
	"strings"

	"github.com/flintdsp/unrollfft/internal/twiddle"
)

// emitMixed emits fft<n> for n = c*c, the classifier's square odd-square
// path: c row transforms of size c, an interior c x c twiddle multiply
// inlined at each column's construction, then c column transforms of
// size c and a transpose recombination.
//
// Rows and columns are built as array composite literals by name, one
// statement per row/column, with each twiddle written as a literal at
// its multiplication site; entries where the twiddle is trivially 1
// (x == 0 or y == 0) skip the multiply. The rectangular (non-square)
// generalization of this same scheme is used by the hand-written
// fft18/fft27/fft125 in kernel_handgen.go, which this emitter never
// produces since Classify only ever returns a square Mixed factor pair.
func emitMixed(n, c int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "// fft%d is a square mixed-radix (%dx%d) decomposition of size %d.\n", n, c, c, n)
	fmt.Fprintf(&b, "func fft%d[T Complex](x [%d]T) [%d]T {\n", n, n, n)

	for i := 0; i < c; i++ {
		elems := make([]string, c)
		for j := 0; j < c; j++ {
			elems[j] = fmt.Sprintf("x[%d]", i+j*c)
		}
		fmt.Fprintf(&b, "\trow%d := fft%d([%d]T{%s})\n", i, c, c, strings.Join(elems, ", "))
	}
	for i := 0; i < c; i++ {
		elems := make([]string, c)
		for j := 0; j < c; j++ {
			if (j*i)%n == 0 {
				elems[j] = fmt.Sprintf("row%d[%d]", j, i)
				continue
			}
			re, im := twiddle.Value(j*i, n)
			elems[j] = fmt.Sprintf("row%d[%d] * T(%s)", j, i, formatComplex128(re, im))
		}
		fmt.Fprintf(&b, "\tcol%d := fft%d([%d]T{%s})\n", i, c, c, strings.Join(elems, ", "))
	}

	outs := make([]string, n)
	for k := 0; k < n; k++ {
		outs[k] = fmt.Sprintf("col%d[%d]", k%c, k/c)
	}
	fmt.Fprintf(&b, "\treturn [%d]T{%s}\n", n, strings.Join(outs, ", "))
	b.WriteString("}\n\n")
	return b.String()
}
