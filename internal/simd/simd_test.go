package simd

import "testing"

func TestFeaturesStringNoneWhenEmpty(t *testing.T) {
	var f Features
	if got := f.String(); got != "none" {
		t.Errorf("String() = %q, want %q", got, "none")
	}
}

func TestFeaturesStringJoinsDetected(t *testing.T) {
	f := Features{SSE2: true, AVX2: true}
	if got := f.String(); got != "sse2 avx2" {
		t.Errorf("String() = %q, want %q", got, "sse2 avx2")
	}
}

func TestDetectDoesNotPanic(t *testing.T) {
	_ = Detect()
}
