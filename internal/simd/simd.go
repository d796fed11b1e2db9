// Package simd reports the SIMD instruction sets the current CPU
// supports, the way the build-time code generator decides what target
// feature flags to record alongside a generated kernel file. The
// generated kernels themselves contain no assembly: they rely on the
// Go compiler's auto-vectorizer to exploit whatever ISA extensions the
// build's GOAMD64/GOARM64 level and -gcflags enable. Detection here
// gates nothing at runtime; it only feeds the comment banner genkernels
// writes into each emitted file, documenting what the build machine
// could have scheduled for.
package simd

import "golang.org/x/sys/cpu"

// Features summarizes the SIMD extensions available on the host CPU.
type Features struct {
	SSE2 bool
	AVX  bool
	AVX2 bool
	NEON bool
}

// Detect reports the SIMD feature set of the CPU this process runs on.
func Detect() Features {
	return Features{
		SSE2: cpu.X86.HasSSE2,
		AVX:  cpu.X86.HasAVX,
		AVX2: cpu.X86.HasAVX2,
		NEON: cpu.ARM64.HasASIMD,
	}
}

// String renders the detected features as a short build-banner comment
// body, e.g. "sse2 avx avx2".
func (f Features) String() string {
	s := ""
	add := func(name string, has bool) {
		if !has {
			return
		}
		if s != "" {
			s += " "
		}
		s += name
	}
	add("sse2", f.SSE2)
	add("avx", f.AVX)
	add("avx2", f.AVX2)
	add("neon", f.NEON)
	if s == "" {
		return "none"
	}
	return s
}
