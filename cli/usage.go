package cli

import (
	"strings"

	"github.com/wippyai/wasm-component-ld/ldflags"
)

// Usage assembles the unified help text: the tool's own options followed
// by the full forwarded catalog, combined from the two independent
// descriptors rather than one mutated parser.
func Usage() string {
	s := newSchema()

	var b strings.Builder
	b.WriteString("A linker to create a WebAssembly component from input object files and libraries.\n")
	b.WriteString("\n")
	b.WriteString("Works like wasm-ld, taking the same inputs and flags, but produces a component\n")
	b.WriteString("instead of a core module: wasm-ld is invoked internally and its output is fed\n")
	b.WriteString("through component tooling.\n")
	b.WriteString("\n")
	b.WriteString("Usage: wasm-component-ld [OPTIONS] -o <OUTPUT> [OBJECTS]...\n")
	b.WriteString("\n")
	b.WriteString("Options:\n")
	b.WriteString(s.fs.FlagUsages())
	b.WriteString("\n")
	b.WriteString(ldflags.Usage())
	return b.String()
}
