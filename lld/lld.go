package lld

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
	"mvdan.cc/sh/v3/syntax"

	"github.com/wippyai/wasm-component-ld/errors"
)

// Linker is a resolved wasm-ld invocation target. When the underlying
// binary is a multi-flavor lld driver, Prefix carries the arguments
// that select its WebAssembly personality.
type Linker struct {
	Path   string
	Prefix []string
}

// Find locates the linker to delegate to. An explicit override wins;
// otherwise the search order is a dedicated wasm-ld on PATH, then
// rust-lld driven with "-flavor wasm". When neither is found the bare
// name is returned so the eventual exec error names the missing tool.
func Find(override string) Linker {
	if override != "" {
		return Linker{Path: override}
	}
	if path, err := exec.LookPath("wasm-ld"); err == nil {
		return Linker{Path: path}
	}
	if path, err := exec.LookPath("rust-lld"); err == nil {
		return Linker{Path: path, Prefix: []string{"-flavor", "wasm"}}
	}
	return Linker{Path: "wasm-ld"}
}

// Run invokes the linker with the forwarded arguments, directing its
// output to the given path. The linker's diagnostics pass through to
// this process's stderr.
func (l Linker) Run(ctx context.Context, forwarded []string, output string, verbose bool) error {
	args := make([]string, 0, len(l.Prefix)+len(forwarded)+3)
	args = append(args, l.Prefix...)
	args = append(args, forwarded...)
	args = append(args, "-o", output)
	if verbose {
		args = append(args, "--verbose")
	}

	Logger().Debug("running linker",
		zap.String("path", l.Path),
		zap.String("command", RenderCommand(l.Path, args)))

	cmd := exec.CommandContext(ctx, l.Path, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrap(errors.StageLink, errors.KindSubprocess, err,
			"failed to run linker %s", l.Path)
	}
	return nil
}

// RenderCommand formats a command line for display, shell-quoting each
// argument that needs it.
func RenderCommand(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	for _, a := range append([]string{name}, args...) {
		q, err := syntax.Quote(a, syntax.LangBash)
		if err != nil {
			q = a
		}
		parts = append(parts, q)
	}
	return strings.Join(parts, " ")
}
