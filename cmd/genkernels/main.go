// Command genkernels regenerates the kernel/*_gen.go and dispatch_gen.go
// files from internal/gen. It is invoked via go:generate from the
// kernel package; running it directly reproduces the committed,
// already-generated tree byte for byte given the same Config.
package main

import (
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"

	"github.com/flintdsp/unrollfft/internal/gen"
	"github.com/flintdsp/unrollfft/internal/simd"
)

func main() {
	root := flag.String("root", ".", "module root to write generated files under")
	flag.Parse()

	cfg := gen.DefaultConfig()
	out := gen.Generate(cfg)

	f := simd.Detect()
	log.Printf("genkernels: host SIMD features: %s", f.String())

	for relPath, src := range out {
		formatted, err := format.Source([]byte(src))
		if err != nil {
			log.Fatalf("genkernels: formatting %s: %v", relPath, err)
		}
		dst := filepath.Join(*root, relPath)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			log.Fatalf("genkernels: %v", err)
		}
		if err := os.WriteFile(dst, formatted, 0o644); err != nil {
			log.Fatalf("genkernels: writing %s: %v", dst, err)
		}
		fmt.Printf("genkernels: wrote %s (%d bytes)\n", dst, len(formatted))
	}
}
