package ldflags

import (
	"fmt"
	"strings"
)

// Spelling renders the flag the way usage output shows it, including its
// value placeholder in the flag's own syntax.
func (f Flag) Spelling() string {
	var b strings.Builder
	if f.Long != "" {
		b.WriteString("--")
		b.WriteString(f.Long)
	} else {
		b.WriteByte('-')
		b.WriteRune(f.Short)
	}
	switch f.Value {
	case RequiredEqual:
		b.WriteByte('=')
		b.WriteString(f.Arg)
	case RequiredSpace:
		b.WriteByte(' ')
		b.WriteString(f.Arg)
	case Optional:
		b.WriteString("[=")
		b.WriteString(f.Arg)
		b.WriteByte(']')
	}
	return b.String()
}

// Usage renders the forwarded-options section of the help text: every
// catalog flag plus the positional objects note, one per line.
func Usage() string {
	var b strings.Builder
	b.WriteString("Options forwarded to wasm-ld:\n")

	width := 0
	for _, f := range Catalog {
		if n := len(f.Spelling()); n > width {
			width = n
		}
	}

	for _, f := range Catalog {
		short := "    "
		if f.Short != 0 && f.Long != "" {
			short = fmt.Sprintf("-%c, ", f.Short)
		}
		fmt.Fprintf(&b, "  %s%-*s   forwarded to wasm-ld\n", short, width, f.Spelling())
	}
	fmt.Fprintf(&b, "  %s%-*s   %s\n", "    ", width, "[OBJECTS]...", "objects to pass to wasm-ld")
	return b.String()
}
