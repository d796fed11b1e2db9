package gen

import (
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"
)

func TestGenerateProducesParseableFiles(t *testing.T) {
	cfg := DefaultConfig()
	out := Generate(cfg)

	wantFiles := []string{
		"kernel/kernel_powertwo_gen.go",
		"kernel/kernel_mixed_gen.go",
		"kernel/kernel_coprime_gen.go",
		"kernel/kernel_prime_gen.go",
		"kernel/dispatch_entries_gen.go",
		"kernel/sizes_gen.go",
		"dispatch_gen.go",
	}
	for _, name := range wantFiles {
		src, ok := out[name]
		if !ok {
			t.Fatalf("Generate did not produce %s", name)
		}
		fset := token.NewFileSet()
		if _, err := parser.ParseFile(fset, name, src, parser.AllErrors); err != nil {
			t.Errorf("%s does not parse: %v", name, err)
		}
	}
}

func TestGenerateSkipsHandGenBodies(t *testing.T) {
	cfg := DefaultConfig()
	out := Generate(cfg)
	for _, f := range []string{
		out["kernel/kernel_mixed_gen.go"],
		out["kernel/kernel_coprime_gen.go"],
		out["kernel/kernel_prime_gen.go"],
		out["kernel/kernel_powertwo_gen.go"],
	} {
		for n := range cfg.HandGen {
			if strings.Contains(f, sprintfFunc(n)) {
				t.Errorf("hand-gen size %d got a mechanically emitted body", n)
			}
		}
	}
}

func TestGenerateEmitsEveryDispatchEntry(t *testing.T) {
	cfg := DefaultConfig()
	out := Generate(cfg)
	entries := out["kernel/dispatch_entries_gen.go"]
	for _, n := range cfg.Sizes {
		if !strings.Contains(entries, "func FFT"+strconv.Itoa(n)+"[") {
			t.Errorf("missing dispatch entry for size %d", n)
		}
	}
}

func sprintfFunc(n int) string {
	return "func fft" + strconv.Itoa(n) + "["
}
