package wasmtools

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-component-ld/errors"
	"github.com/wippyai/wasm-component-ld/lld"
)

// AdapterDirEnv names the environment variable that overrides where
// default adapter modules are searched for.
const AdapterDirEnv = "WASM_COMPONENT_LD_ADAPTER_DIR"

// Tool is a resolved wasm-tools binary. It performs all component-model
// format work: WIT resolution, metadata embedding, text-format parsing,
// and the final component encoding.
type Tool struct {
	Path string
}

// Find locates the wasm-tools binary. An explicit override wins,
// otherwise PATH is searched.
func Find(override string) (Tool, error) {
	if override != "" {
		return Tool{Path: override}, nil
	}
	path, err := exec.LookPath("wasm-tools")
	if err != nil {
		return Tool{}, errors.Wrap(errors.StageAssemble, errors.KindConfig, err,
			"wasm-tools was not found on PATH; install it or pass --wasm-tools-path")
	}
	return Tool{Path: path}, nil
}

// run executes one wasm-tools subcommand, returning its stdout. Stderr
// is folded into the error on failure.
func (t Tool) run(ctx context.Context, stdin []byte, args ...string) ([]byte, error) {
	Logger().Debug("running wasm-tools",
		zap.String("command", lld.RenderCommand(t.Path, args)))

	cmd := exec.CommandContext(ctx, t.Path, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.StageAssemble, errors.KindSubprocess, err, "%s", msg)
	}
	return stdout.Bytes(), nil
}

// ResolveWIT resolves one WIT path (a file or a package directory) into
// the tool's JSON document form.
func (t Tool) ResolveWIT(ctx context.Context, witPath string) ([]byte, error) {
	out, err := t.run(ctx, nil, "component", "wit", "--json", witPath)
	if err != nil {
		return nil, errors.Wrap(errors.StageMerge, errors.KindSubprocess, err,
			"failed to resolve %s", witPath)
	}
	return out, nil
}

// Embed layers one WIT document's metadata onto the core module,
// selecting the named world and string encoding, and returns the
// augmented module. Scratch files live under dir.
func (t Tool) Embed(ctx context.Context, dir string, core []byte, witPath, worldName, encoding string) ([]byte, error) {
	in := filepath.Join(dir, "embed-in.wasm")
	out := filepath.Join(dir, "embed-out.wasm")
	if err := os.WriteFile(in, core, 0o644); err != nil {
		return nil, errors.Wrap(errors.StageMerge, errors.KindIO, err,
			"failed to stage module for embedding")
	}
	args := []string{"component", "embed", witPath, in, "-o", out}
	if worldName != "" {
		args = append(args, "--world", worldName)
	}
	if encoding != "" {
		args = append(args, "--encoding", encoding)
	}
	if _, err := t.run(ctx, nil, args...); err != nil {
		return nil, errors.Wrap(errors.StageMerge, errors.KindSubprocess, err,
			"failed to embed metadata from %s", witPath)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		return nil, errors.Wrap(errors.StageMerge, errors.KindIO, err,
			"failed to read embedded module")
	}
	return data, nil
}

// Parse converts WebAssembly text format to binary.
func (t Tool) Parse(ctx context.Context, source []byte) ([]byte, error) {
	out, err := t.run(ctx, source, "parse")
	if err != nil {
		return nil, errors.Wrap(errors.StageAssemble, errors.KindFormat, err,
			"failed to parse text-format module")
	}
	return out, nil
}

// Adapter pairs an import-namespace name with the module that
// implements it.
type Adapter struct {
	Name string
	Path string
}

// AssembleOptions control the final component encoding.
type AssembleOptions struct {
	// SkipValidation disables the encoder's own validation of the
	// produced component.
	SkipValidation bool
	// MergeImportsBasedOnSemver, when non-nil, forces the encoder's
	// semver-aware import merging on or off.
	MergeImportsBasedOnSemver *bool
	Adapters                  []Adapter
}

// Assemble encodes the core module at corePath into a component written
// to outPath, injecting each adapter along the way.
func (t Tool) Assemble(ctx context.Context, corePath, outPath string, opts AssembleOptions) error {
	args := []string{"component", "new", corePath, "-o", outPath}
	for _, a := range opts.Adapters {
		args = append(args, "--adapt", a.Name+"="+a.Path)
	}
	if opts.SkipValidation {
		args = append(args, "--skip-validation")
	}
	if opts.MergeImportsBasedOnSemver != nil {
		if *opts.MergeImportsBasedOnSemver {
			args = append(args, "--merge-imports-based-on-semver", "true")
		} else {
			args = append(args, "--merge-imports-based-on-semver", "false")
		}
	}
	if _, err := t.run(ctx, nil, args...); err != nil {
		return errors.Wrap(errors.StageAssemble, errors.KindSubprocess, err,
			"failed to encode component")
	}
	return nil
}

// DefaultAdapterPath locates the bundled adapter module for the given
// command or reactor mode. The adapter directory defaults to the
// directory holding wasm-tools and can be overridden through the
// environment.
func (t Tool) DefaultAdapterPath(mode string) (string, error) {
	dir := os.Getenv(AdapterDirEnv)
	if dir == "" {
		dir = filepath.Dir(t.Path)
	}
	path := filepath.Join(dir, "wasi_snapshot_preview1."+mode+".wasm")
	if _, err := os.Stat(path); err != nil {
		return "", errors.Wrap(errors.StageAssemble, errors.KindConfig, err,
			"no default %s adapter found at %s; pass --adapt or set %s", mode, path, AdapterDirEnv)
	}
	return path, nil
}
