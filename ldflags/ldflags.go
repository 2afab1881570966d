package ldflags

// ValueKind describes how a wasm-ld flag takes its value. wasm-ld's
// parsing is not uniform: supporting `--foo bar` does not imply
// `--foo=bar` is supported, and vice versa.
type ValueKind int

const (
	// None means the flag takes no value, e.g. `--gc-sections`.
	None ValueKind = iota

	// RequiredEqual means the value attaches with `=`, e.g. `--export=SYM`.
	RequiredEqual

	// RequiredSpace means the value follows as the next argument,
	// e.g. `--entry SYM` or `-L PATH`.
	RequiredSpace

	// Optional means the value may be omitted, but if given it must
	// attach with `=`, e.g. `--import-memory[=NAME]`.
	Optional
)

// Flag is one recognized wasm-ld option. Either Long or Short (or both)
// is set. Arg names the value placeholder for usage output.
type Flag struct {
	Long  string
	Short rune
	Value ValueKind
	Arg   string
}

// Canonical returns the preferred spelling, long form first.
func (f Flag) Canonical() string {
	if f.Long != "" {
		return "--" + f.Long
	}
	return "-" + string(f.Short)
}

// ByShort finds the catalog entry with the given short character.
func ByShort(r rune) (Flag, bool) {
	for _, f := range Catalog {
		if f.Short == r {
			return f, true
		}
	}
	return Flag{}, false
}

// ByLong finds the catalog entry with the given long name.
func ByLong(name string) (Flag, bool) {
	for _, f := range Catalog {
		if f.Long != "" && f.Long == name {
			return f, true
		}
	}
	return Flag{}, false
}

// Nonstandard lists flags with a single dash but a multi-character name.
// These never tokenize as normal short or long options and are matched
// verbatim against the raw argument before any other classification.
var Nonstandard = []string{"-shared"}

// Catalog is the full set of flags wasm-ld accepts. It is built once and
// never mutated. Spellings and value conventions mirror wasm-ld's own
// option table; keep entries sorted the way wasm-ld documents them.
var Catalog = []Flag{
	{Long: "allow-undefined-file", Value: RequiredEqual, Arg: "PATH"},
	{Long: "allow-undefined"},
	{Long: "Bdynamic"},
	{Long: "Bstatic"},
	{Long: "Bsymbolic"},
	{Long: "build-id", Value: Optional, Arg: "VAL"},
	{Long: "call_shared"},
	{Long: "check-features"},
	{Long: "color-diagnostics", Value: Optional, Arg: "VALUE"},
	{Long: "compress-relocations"},
	{Long: "demangle"},
	{Long: "dn"},
	{Long: "dy"},
	{Long: "emit-relocs"},
	{Long: "end-lib"},
	{Long: "entry", Value: RequiredSpace, Arg: "SYM"},
	{Long: "error-limit", Value: RequiredEqual, Arg: "N"},
	{Long: "error-unresolved-symbols"},
	{Long: "experimental-pic"},
	{Long: "export-all"},
	{Long: "export-dynamic", Short: 'E'},
	{Long: "export-if-defined", Value: RequiredEqual, Arg: "SYM"},
	{Long: "export-memory", Value: Optional, Arg: "NAME"},
	{Long: "export-table"},
	{Long: "export", Value: RequiredEqual, Arg: "SYM"},
	{Long: "extra-features", Value: RequiredEqual, Arg: "LIST"},
	{Long: "fatal-warnings"},
	{Long: "features", Value: RequiredEqual, Arg: "LIST"},
	{Long: "gc-sections"},
	{Long: "global-base", Value: RequiredEqual, Arg: "VALUE"},
	{Long: "growable-table"},
	{Long: "import-memory", Value: Optional, Arg: "NAME"},
	{Long: "import-table"},
	{Long: "import-undefined"},
	{Long: "initial-heap", Value: RequiredEqual, Arg: "SIZE"},
	{Long: "initial-memory", Value: RequiredEqual, Arg: "SIZE"},
	{Long: "keep-section", Value: RequiredEqual, Arg: "NAME"},
	{Long: "lto-CGO", Value: RequiredEqual, Arg: "LEVEL"},
	{Long: "lto-debug-pass-manager"},
	{Long: "lto-O", Value: RequiredEqual, Arg: "LEVEL"},
	{Long: "lto-partitions", Value: RequiredEqual, Arg: "NUM"},
	{Short: 'L', Value: RequiredSpace, Arg: "PATH"},
	{Short: 'l', Value: RequiredSpace, Arg: "LIB"},
	{Long: "Map", Value: RequiredEqual, Arg: "FILE"},
	{Long: "max-memory", Value: RequiredEqual, Arg: "SIZE"},
	{Long: "merge-data-segments"},
	{Long: "mllvm", Value: RequiredEqual, Arg: "FLAG"},
	{Short: 'm', Value: RequiredSpace, Arg: "ARCH"},
	{Long: "no-check-features"},
	{Long: "no-color-diagnostics"},
	{Long: "no-demangle"},
	{Long: "no-entry"},
	{Long: "no-export-dynamic"},
	{Long: "no-gc-sections"},
	{Long: "no-merge-data-segments"},
	{Long: "no-pie"},
	{Long: "no-print-gc-sections"},
	{Long: "no-whole-archive"},
	{Long: "non_shared"},
	{Short: 'O', Value: RequiredSpace, Arg: "LEVEL"},
	{Long: "pie"},
	{Long: "print-gc-sections"},
	{Long: "print-map", Short: 'M'},
	{Long: "relocatable"},
	{Long: "save-temps"},
	{Long: "shared-memory"},
	{Long: "shared"},
	{Long: "soname", Value: RequiredEqual, Arg: "VALUE"},
	{Long: "stack-first"},
	{Long: "start-lib"},
	{Long: "static"},
	{Long: "strip-all", Short: 's'},
	{Long: "strip-debug", Short: 'S'},
	{Long: "table-base", Value: RequiredEqual, Arg: "VALUE"},
	{Long: "thinlto-cache-dir", Value: RequiredEqual, Arg: "PATH"},
	{Long: "thinlto-cache-policy", Value: RequiredEqual, Arg: "VALUE"},
	{Long: "thinlto-jobs", Value: RequiredEqual, Arg: "N"},
	{Long: "threads", Value: RequiredEqual, Arg: "N"},
	{Long: "trace-symbol", Short: 'y', Value: RequiredEqual, Arg: "SYM"},
	{Long: "trace", Short: 't'},
	{Long: "undefined", Value: RequiredEqual, Arg: "SYM"},
	{Long: "unresolved-symbols", Value: RequiredEqual, Arg: "VALUE"},
	{Long: "warn-unresolved-symbols"},
	{Long: "whole-archive"},
	{Long: "why-extract", Value: RequiredEqual, Arg: "MEMBER"},
	{Long: "wrap", Value: RequiredEqual, Arg: "VALUE"},
	{Short: 'z', Value: RequiredSpace, Arg: "OPT"},
}
