package argfile_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/wippyai/wasm-component-ld/argfile"
)

func split(t *testing.T, s string) []string {
	t.Helper()
	sp, err := argfile.NewSplitter("posix")
	if err != nil {
		t.Fatalf("NewSplitter: %v", err)
	}
	out, err := sp.Split(s)
	if err != nil {
		t.Fatalf("Split(%q): %v", s, err)
	}
	return out
}

func TestPosixSplit(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"x", []string{"x"}},
		{`\x`, []string{"x"}},
		{"'x'", []string{"x"}},
		{`"x"`, []string{"x"}},
		{"x y", []string{"x", "y"}},
		{"x\ny", []string{"x", "y"}},
		{`\x y`, []string{"x", "y"}},
		{"'x y'", []string{"x y"}},
		{`"x y"`, []string{"x y"}},
		{"\"x 'y'\"\n'y'", []string{"x 'y'", "y"}},
	}
	for _, tt := range tests {
		if got := split(t, tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("split(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPosixSplitEscapesInsideQuotes(t *testing.T) {
	in := "\n  a\\ \\\\b\n  z\n  \"x y \\\\z\"\n"
	want := []string{`a \b`, "z", `x y \z`}
	if got := split(t, in); !reflect.DeepEqual(got, want) {
		t.Errorf("split(%q) = %q, want %q", in, got, want)
	}
}

func TestPosixSplitUnterminatedQuote(t *testing.T) {
	if got := split(t, "'x y"); !reflect.DeepEqual(got, []string{"x y"}) {
		t.Errorf("split('x y) = %q", got)
	}
}

func TestShellSplit(t *testing.T) {
	sp, err := argfile.NewSplitter("shell")
	if err != nil {
		t.Fatalf("NewSplitter: %v", err)
	}
	got, err := sp.Split(`a "b c" d`)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a", "b c", "d"}) {
		t.Errorf("shell split = %q", got)
	}
}

func TestNewSplitterUnknownStyle(t *testing.T) {
	if _, err := argfile.NewSplitter("vms"); err == nil {
		t.Error("expected error for unknown style")
	}
}

func TestExpandIdentityWithoutAtTokens(t *testing.T) {
	sp, _ := argfile.NewSplitter("")
	in := []string{"-o", "out.wasm", "foo.o", "--export=run"}
	got, err := argfile.Expand(in, sp)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Errorf("Expand = %q, want input unchanged", got)
	}
}

func TestExpandRecursive(t *testing.T) {
	dir := t.TempDir()
	inner := filepath.Join(dir, "inner.rsp")
	outer := filepath.Join(dir, "outer.rsp")
	if err := os.WriteFile(inner, []byte("b 'c d'"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(outer, []byte("a @"+inner+" e"), 0o644); err != nil {
		t.Fatal(err)
	}

	sp, _ := argfile.NewSplitter("posix")
	got, err := argfile.Expand([]string{"pre", "@" + outer, "post"}, sp)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	want := []string{"pre", "a", "b", "c d", "e", "post"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand = %q, want %q", got, want)
	}
}

func TestExpandUnreadableFileIsFatal(t *testing.T) {
	sp, _ := argfile.NewSplitter("posix")
	_, err := argfile.Expand([]string{"@" + filepath.Join(t.TempDir(), "missing.rsp")}, sp)
	if err == nil {
		t.Fatal("expected error for missing response file")
	}
	if !strings.Contains(err.Error(), "missing.rsp") {
		t.Errorf("error does not name the file: %v", err)
	}
}

func TestStyleFromArgs(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-o", "x"}, ""},
		{[]string{"--rsp-quoting", "posix", "-o", "x"}, "posix"},
		{[]string{"--rsp-quoting=windows"}, "windows"},
		{[]string{"--rsp-quoting"}, ""},
	}
	for _, tt := range tests {
		if got := argfile.StyleFromArgs(tt.args); got != tt.want {
			t.Errorf("StyleFromArgs(%q) = %q, want %q", tt.args, got, tt.want)
		}
	}
}
