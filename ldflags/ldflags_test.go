package ldflags_test

import (
	"strings"
	"testing"

	"github.com/wippyai/wasm-component-ld/ldflags"
)

func TestLookupByLong(t *testing.T) {
	f, ok := ldflags.ByLong("export")
	if !ok {
		t.Fatal("expected --export in catalog")
	}
	if f.Value != ldflags.RequiredEqual {
		t.Errorf("--export value kind = %d, want RequiredEqual", f.Value)
	}

	if _, ok := ldflags.ByLong("nonexistent-lld-flag"); ok {
		t.Error("unexpected catalog hit for unknown flag")
	}
}

func TestLookupByShort(t *testing.T) {
	tests := []struct {
		short rune
		long  string
		value ldflags.ValueKind
	}{
		{'E', "export-dynamic", ldflags.None},
		{'L', "", ldflags.RequiredSpace},
		{'z', "", ldflags.RequiredSpace},
		{'y', "trace-symbol", ldflags.RequiredEqual},
		{'s', "strip-all", ldflags.None},
		{'S', "strip-debug", ldflags.None},
	}
	for _, tt := range tests {
		f, ok := ldflags.ByShort(tt.short)
		if !ok {
			t.Errorf("expected -%c in catalog", tt.short)
			continue
		}
		if f.Long != tt.long {
			t.Errorf("-%c long = %q, want %q", tt.short, f.Long, tt.long)
		}
		if f.Value != tt.value {
			t.Errorf("-%c value kind = %d, want %d", tt.short, f.Value, tt.value)
		}
	}
}

func TestCanonicalPrefersLong(t *testing.T) {
	f, _ := ldflags.ByShort('E')
	if got := f.Canonical(); got != "--export-dynamic" {
		t.Errorf("canonical = %q, want --export-dynamic", got)
	}
	f, _ = ldflags.ByShort('L')
	if got := f.Canonical(); got != "-L" {
		t.Errorf("canonical = %q, want -L", got)
	}
}

func TestSpelling(t *testing.T) {
	tests := []struct {
		long string
		want string
	}{
		{"export", "--export=SYM"},
		{"entry", "--entry SYM"},
		{"import-memory", "--import-memory[=NAME]"},
		{"gc-sections", "--gc-sections"},
	}
	for _, tt := range tests {
		f, ok := ldflags.ByLong(tt.long)
		if !ok {
			t.Fatalf("missing --%s", tt.long)
		}
		if got := f.Spelling(); got != tt.want {
			t.Errorf("spelling(--%s) = %q, want %q", tt.long, got, tt.want)
		}
	}
}

func TestNoDuplicateSpellings(t *testing.T) {
	longs := make(map[string]bool)
	shorts := make(map[rune]bool)
	for _, f := range ldflags.Catalog {
		if f.Long == "" && f.Short == 0 {
			t.Fatal("catalog entry with no spelling")
		}
		if f.Long != "" {
			if longs[f.Long] {
				t.Errorf("duplicate long flag --%s", f.Long)
			}
			longs[f.Long] = true
		}
		if f.Short != 0 {
			if shorts[f.Short] {
				t.Errorf("duplicate short flag -%c", f.Short)
			}
			shorts[f.Short] = true
		}
	}
}

func TestValueFlagsNameTheirArgument(t *testing.T) {
	for _, f := range ldflags.Catalog {
		if f.Value != ldflags.None && f.Arg == "" {
			t.Errorf("%s takes a value but has no placeholder", f.Canonical())
		}
	}
}

func TestUsageListsEveryFlag(t *testing.T) {
	usage := ldflags.Usage()
	for _, probe := range []string{"--export=SYM", "--entry SYM", "-E, ", "-L PATH", "[OBJECTS]"} {
		if !strings.Contains(usage, probe) {
			t.Errorf("usage missing %q", probe)
		}
	}
}
