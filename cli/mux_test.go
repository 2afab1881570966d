package cli

import (
	"reflect"
	"strings"
	"testing"
)

func mustParse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg, err := Parse(args)
	if err != nil {
		t.Fatalf("Parse(%q): %v", args, err)
	}
	return cfg
}

func TestBareValuesForwardInOrder(t *testing.T) {
	cfg := mustParse(t, "-o", "out.wasm", "a.o", "b.o", "libfoo.a")
	want := []string{"a.o", "b.o", "libfoo.a"}
	if !reflect.DeepEqual(cfg.LinkerArgs, want) {
		t.Errorf("LinkerArgs = %q, want %q", cfg.LinkerArgs, want)
	}
	if cfg.Output != "out.wasm" {
		t.Errorf("Output = %q", cfg.Output)
	}
}

func TestForwardedSubsequencePreservesOrder(t *testing.T) {
	cfg := mustParse(t,
		"--whole-archive", "liba.a", "--no-whole-archive",
		"-o", "out.wasm",
		"b.o", "--export=run", "--verbose", "-z", "stack-size=1048576")
	want := []string{
		"--whole-archive", "liba.a", "--no-whole-archive",
		"b.o", "--export=run", "-z", "stack-size=1048576",
	}
	if !reflect.DeepEqual(cfg.LinkerArgs, want) {
		t.Errorf("LinkerArgs = %q, want %q", cfg.LinkerArgs, want)
	}
	if !cfg.Verbose {
		t.Error("expected --verbose to land in the own schema")
	}
}

func TestCatalogWinsOnSpellingCollision(t *testing.T) {
	// --shared is a catalog flag even though -shared is non-standard.
	cfg := mustParse(t, "-o", "out.wasm", "--shared")
	if !reflect.DeepEqual(cfg.LinkerArgs, []string{"--shared"}) {
		t.Errorf("LinkerArgs = %q", cfg.LinkerArgs)
	}
	if cfg.Shared {
		t.Error("--shared must not trigger the -shared side effect")
	}
}

func TestNonstandardSharedLiteral(t *testing.T) {
	cfg := mustParse(t, "-shared", "-o", "out.wasm", "a.o")
	if !cfg.Shared {
		t.Error("expected shared mode")
	}
	if !reflect.DeepEqual(cfg.LinkerArgs, []string{"-shared", "a.o"}) {
		t.Errorf("LinkerArgs = %q", cfg.LinkerArgs)
	}
}

func TestShortFlagCanonicalizesToLong(t *testing.T) {
	cfg := mustParse(t, "-o", "out.wasm", "-E", "a.o")
	if !reflect.DeepEqual(cfg.LinkerArgs, []string{"--export-dynamic", "a.o"}) {
		t.Errorf("LinkerArgs = %q", cfg.LinkerArgs)
	}
}

func TestGroupedShortFlags(t *testing.T) {
	cfg := mustParse(t, "-o", "out.wasm", "-sS")
	if !reflect.DeepEqual(cfg.LinkerArgs, []string{"--strip-all", "--strip-debug"}) {
		t.Errorf("LinkerArgs = %q", cfg.LinkerArgs)
	}
}

func TestGluedShortValues(t *testing.T) {
	cfg := mustParse(t, "-o", "out.wasm", "-O2", "-L/usr/lib", "-lfoo")
	want := []string{"-O", "2", "-L", "/usr/lib", "-l", "foo"}
	if !reflect.DeepEqual(cfg.LinkerArgs, want) {
		t.Errorf("LinkerArgs = %q, want %q", cfg.LinkerArgs, want)
	}
}

func TestRequiredSpaceConsumesFollowingToken(t *testing.T) {
	cfg := mustParse(t, "-o", "out.wasm", "--entry", "main")
	if !reflect.DeepEqual(cfg.LinkerArgs, []string{"--entry", "main"}) {
		t.Errorf("LinkerArgs = %q", cfg.LinkerArgs)
	}
}

func TestRequiredEqualReattaches(t *testing.T) {
	// Attached and detached forms both canonicalize to --export=SYM.
	cfg := mustParse(t, "-o", "out.wasm", "--export=run", "--export", "init")
	want := []string{"--export=run", "--export=init"}
	if !reflect.DeepEqual(cfg.LinkerArgs, want) {
		t.Errorf("LinkerArgs = %q, want %q", cfg.LinkerArgs, want)
	}
}

func TestOptionalNeverConsumesFollowingToken(t *testing.T) {
	cfg := mustParse(t, "-o", "out.wasm", "--import-memory", "a.o", "--import-memory=env", "b.o")
	want := []string{"--import-memory", "a.o", "--import-memory=env", "b.o"}
	if !reflect.DeepEqual(cfg.LinkerArgs, want) {
		t.Errorf("LinkerArgs = %q, want %q", cfg.LinkerArgs, want)
	}
}

func TestMissingRequiredValueAtEndOfStream(t *testing.T) {
	_, err := Parse([]string{"-o", "out.wasm", "--export"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "--export") {
		t.Errorf("error does not name the flag: %v", err)
	}
}

func TestUnexpectedValueOnValuelessFlag(t *testing.T) {
	_, err := Parse([]string{"-o", "out.wasm", "--gc-sections=yes"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "--gc-sections") {
		t.Errorf("error does not name the flag: %v", err)
	}
}

func TestUnknownFlagRejected(t *testing.T) {
	_, err := Parse([]string{"-o", "out.wasm", "--nonexistent-lld-flag"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "unknown argument '--nonexistent-lld-flag'") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFlavorPairDropped(t *testing.T) {
	cfg := mustParse(t, "-flavor", "wasm", "-o", "out.wasm", "a.o")
	if !reflect.DeepEqual(cfg.LinkerArgs, []string{"a.o"}) {
		t.Errorf("LinkerArgs = %q", cfg.LinkerArgs)
	}
}

func TestOutputRequired(t *testing.T) {
	_, err := Parse([]string{"a.o"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "--output") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestHelpAndVersionSkipOutputCheck(t *testing.T) {
	if cfg := mustParse(t, "--help"); !cfg.Help {
		t.Error("expected Help")
	}
	if cfg := mustParse(t, "--version"); !cfg.ShowVersion {
		t.Error("expected ShowVersion")
	}
}

func TestAdapterParsing(t *testing.T) {
	cfg := mustParse(t, "-o", "out.wasm",
		"--adapt", "foo=a.wasm",
		"--adapt", "dir/wasi_snapshot_preview1.reactor.wasm")
	want := []Adapter{
		{Name: "foo", Path: "a.wasm"},
		{Name: "wasi_snapshot_preview1", Path: "dir/wasi_snapshot_preview1.reactor.wasm"},
	}
	if !reflect.DeepEqual(cfg.Adapters, want) {
		t.Errorf("Adapters = %v, want %v", cfg.Adapters, want)
	}
}

func TestDuplicateAdapterNamesRejected(t *testing.T) {
	// Same bytes under two names is fine.
	cfg := mustParse(t, "-o", "out.wasm", "--adapt", "foo=a.wasm", "--adapt", "bar=a.wasm")
	if len(cfg.Adapters) != 2 {
		t.Fatalf("Adapters = %v", cfg.Adapters)
	}

	// Same name twice is a configuration error.
	_, err := Parse([]string{"-o", "out.wasm", "--adapt", "foo=a.wasm", "--adapt", "foo=b.wasm"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `adapter "foo"`) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStringEncoding(t *testing.T) {
	cfg := mustParse(t, "-o", "out.wasm")
	if cfg.StringEncoding != EncodingUTF8 {
		t.Errorf("default encoding = %q", cfg.StringEncoding)
	}
	cfg = mustParse(t, "-o", "out.wasm", "--string-encoding", "compact-utf16")
	if cfg.StringEncoding != EncodingCompactUTF16 {
		t.Errorf("encoding = %q", cfg.StringEncoding)
	}
	if _, err := Parse([]string{"-o", "out.wasm", "--string-encoding", "latin1"}); err == nil {
		t.Error("expected error for unknown encoding")
	}
}

func TestEncoderTogglesAreTriState(t *testing.T) {
	cfg := mustParse(t, "-o", "out.wasm")
	if cfg.ValidateComponent != nil || cfg.MergeImportsBasedOnSemver != nil {
		t.Error("expected toggles unset by default")
	}

	cfg = mustParse(t, "-o", "out.wasm", "--validate-component", "false",
		"--merge-imports-based-on-semver=true")
	if cfg.ValidateComponent == nil || *cfg.ValidateComponent {
		t.Error("expected validate-component=false")
	}
	if cfg.MergeImportsBasedOnSemver == nil || !*cfg.MergeImportsBasedOnSemver {
		t.Error("expected merge-imports-based-on-semver=true")
	}
}

func TestComponentTypeOrderPreserved(t *testing.T) {
	cfg := mustParse(t, "-o", "out.wasm",
		"--component-type", "b.wit", "--component-type", "a.wit")
	if !reflect.DeepEqual(cfg.ComponentTypes, []string{"b.wit", "a.wit"}) {
		t.Errorf("ComponentTypes = %q", cfg.ComponentTypes)
	}
}

func TestSkipWitComponent(t *testing.T) {
	cfg := mustParse(t, "--skip-wit-component", "-o", "out.wasm", "a.o")
	if !cfg.SkipWitComponent {
		t.Error("expected SkipWitComponent")
	}
}

func TestUsageContainsBothVocabularies(t *testing.T) {
	usage := Usage()
	for _, probe := range []string{
		"--wasi-adapter", "--component-type", "--skip-wit-component",
		"Options forwarded to wasm-ld:", "--export=SYM", "-E, ",
	} {
		if !strings.Contains(usage, probe) {
			t.Errorf("usage missing %q", probe)
		}
	}
}
