package gen

import (
	"strconv"
	"strings"
)

// formatFloat renders a float64 as a Go literal, matching the style
// baked into the committed kernel files: exact zero prints as "0",
// everything else prints at full round-trip precision with a trailing
// ".0" added when strconv would otherwise omit the decimal point.
func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// formatComplex128 renders a twiddle constant as a complex128 literal.
func formatComplex128(re, im float64) string {
	return "complex(" + formatFloat(re) + ", " + formatFloat(im) + ")"
}
