package gen

import (
	"fmt"
	"strings"
)

// emitEntry emits the FFT<n>/IFFT<n> pair in package kernel: the
// length-checked exported slice-based wrapper around the unexported,
// array-based fft<n>, and its inverse built by conjugating input and
// output around the same forward kernel. x is copied element-by-element
// into an array composite literal (one statement, no heap, no loop) so
// the unexported kernel keeps its fixed-size-array signature while the
// exported entry point keeps the slice-based signature callers expect.
func emitEntry(n int) string {
	var b strings.Builder

	xs := make([]string, n)
	for i := range xs {
		xs[i] = fmt.Sprintf("x[%d]", i)
	}
	cxs := make([]string, n)
	for i := range cxs {
		cxs[i] = fmt.Sprintf("conj(x[%d])", i)
	}

	fmt.Fprintf(&b, "// FFT%d computes the forward DFT of a length-%d input.\n", n, n)
	fmt.Fprintf(&b, "func FFT%d[T Complex](x []T) ([]T, error) {\n", n)
	fmt.Fprintf(&b, "\tif len(x) != %d {\n", n)
	b.WriteString("\t\treturn nil, ErrLengthMismatch\n")
	b.WriteString("\t}\n")
	fmt.Fprintf(&b, "\tout := fft%d([%d]T{%s})\n", n, n, strings.Join(xs, ", "))
	b.WriteString("\treturn out[:], nil\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "// IFFT%d computes the unscaled inverse DFT of a length-%d input.\n", n, n)
	fmt.Fprintf(&b, "func IFFT%d[T Complex](x []T) ([]T, error) {\n", n)
	fmt.Fprintf(&b, "\tif len(x) != %d {\n", n)
	b.WriteString("\t\treturn nil, ErrLengthMismatch\n")
	b.WriteString("\t}\n")
	fmt.Fprintf(&b, "\tfwd := fft%d([%d]T{%s})\n", n, n, strings.Join(cxs, ", "))
	cout := make([]string, n)
	for i := range cout {
		cout[i] = fmt.Sprintf("conj(fwd[%d])", i)
	}
	fmt.Fprintf(&b, "\treturn []T{%s}, nil\n", strings.Join(cout, ", "))
	b.WriteString("}\n\n")
	return b.String()
}

// emitSizesFile emits kernel/sizes_gen.go: the canonical list of
// supported sizes, exported so the root dispatcher and tests can range
// over it without duplicating the literal.
func emitSizesFile(sizes []int) string {
	var b strings.Builder
	b.WriteString(fileHeader("kernel"))
	b.WriteString("var Sizes = []int{")
	for i, n := range sizes {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", n)
	}
	b.WriteString("}\n")
	return b.String()
}

// emitRootDispatcher emits the root package's FFT/IFFT switches over
// kernel.FFT<n>/kernel.IFFT<n>.
func emitRootDispatcher(sizes []int) string {
	var b strings.Builder
	b.WriteString(fileHeader("unrollfft"))
	b.WriteString("import \"github.com/flintdsp/unrollfft/kernel\"\n\n")

	emitSwitch := func(name, kernelPrefix string) {
		fmt.Fprintf(&b, "// %s dispatches to the unrolled %s-DFT kernel for size n.\n", name, strings.ToLower(name))
		fmt.Fprintf(&b, "func %s[T Complex](n int, x []T) ([]T, error) {\n", name)
		b.WriteString("\tswitch n {\n")
		for _, sz := range sizes {
			fmt.Fprintf(&b, "\tcase %d:\n\t\treturn kernel.%s%d(x)\n", sz, kernelPrefix, sz)
		}
		b.WriteString("\tdefault:\n\t\treturn nil, ErrUnsupportedSize\n")
		b.WriteString("\t}\n}\n\n")
	}
	emitSwitch("FFT", "FFT")
	emitSwitch("IFFT", "IFFT")
	return b.String()
}

func fileHeader(pkg string) string {
	return "// Code generated by cmd/genkernels from internal/gen. DO NOT EDIT.\n" +
		"// Regenerate with: go generate ./...\n\n" +
		"package " + pkg + "\n\n"
}
