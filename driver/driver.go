package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-component-ld/cli"
	"github.com/wippyai/wasm-component-ld/errors"
	"github.com/wippyai/wasm-component-ld/lld"
	"github.com/wippyai/wasm-component-ld/wasm"
	"github.com/wippyai/wasm-component-ld/wasmtools"
	"github.com/wippyai/wasm-component-ld/world"
)

// Run executes the whole pipeline for one resolved configuration: link
// the objects, inspect and augment the core module, then encode it into
// a component at cfg.Output.
func Run(ctx context.Context, cfg *cli.Config) error {
	outName := filepath.Base(cfg.Output)
	if outName == "." || outName == ".." || outName == string(filepath.Separator) {
		return errors.New(errors.StageWrite, errors.KindConfig,
			"output path %s has no file name", cfg.Output)
	}

	linker := lld.Find(cfg.LinkerPath)

	// Shared libraries and --skip-wit-component stop after linking;
	// the core module itself is the product.
	if cfg.SkipWitComponent || cfg.Shared {
		return linker.Run(ctx, cfg.LinkerArgs, cfg.Output, cfg.Verbose)
	}

	// Scratch space lives next to the output so the final rename never
	// crosses filesystems.
	scratch, err := os.MkdirTemp(filepath.Dir(cfg.Output), outName+".tmp")
	if err != nil {
		return errors.Wrap(errors.StageLink, errors.KindIO, err,
			"failed to create scratch directory")
	}
	defer os.RemoveAll(scratch)

	linked := filepath.Join(scratch, outName)
	if err := linker.Run(ctx, cfg.LinkerArgs, linked, cfg.Verbose); err != nil {
		return err
	}
	core, err := os.ReadFile(linked)
	if err != nil {
		return errors.Wrap(errors.StageInspect, errors.KindIO, err,
			"failed to read linked module")
	}

	isCommand := wasm.HasExport(core, "_start")
	Logger().Debug("classified linked module",
		zap.Bool("command", isCommand),
		zap.Int("size", len(core)))

	tool, err := wasmtools.Find(cfg.WasmToolsPath)
	if err != nil {
		return err
	}

	core, err = embedComponentTypes(ctx, cfg, tool, scratch, core)
	if err != nil {
		return err
	}

	validate := cfg.ValidateComponent == nil || *cfg.ValidateComponent
	if validate {
		if err := wasm.Validate(ctx, core); err != nil {
			return errors.Wrap(errors.StageInspect, errors.KindFormat, err,
				"linked module failed validation")
		}
	}

	adapters, err := resolveAdapters(ctx, cfg, tool, scratch, isCommand)
	if err != nil {
		return err
	}

	corePath := filepath.Join(scratch, "core-"+outName)
	if err := os.WriteFile(corePath, core, 0o644); err != nil {
		return errors.Wrap(errors.StageAssemble, errors.KindIO, err,
			"failed to stage core module")
	}
	assembled := filepath.Join(scratch, "component-"+outName)
	opts := wasmtools.AssembleOptions{
		SkipValidation:            !validate,
		MergeImportsBasedOnSemver: cfg.MergeImportsBasedOnSemver,
		Adapters:                  adapters,
	}
	if err := tool.Assemble(ctx, corePath, assembled, opts); err != nil {
		return err
	}
	if err := os.Rename(assembled, cfg.Output); err != nil {
		return errors.Wrap(errors.StageWrite, errors.KindIO, err,
			"failed to write output file %s", cfg.Output)
	}
	return nil
}

// embedComponentTypes folds every --component-type document into one
// registry, failing on conflicts, and layers each document's metadata
// onto the core module in input order.
func embedComponentTypes(ctx context.Context, cfg *cli.Config, tool wasmtools.Tool, scratch string, core []byte) ([]byte, error) {
	var reg *world.Registry
	for _, witPath := range cfg.ComponentTypes {
		raw, err := tool.ResolveWIT(ctx, witPath)
		if err != nil {
			return nil, err
		}
		doc, err := world.DecodeJSON(raw)
		if err != nil {
			return nil, errors.Wrap(errors.StageMerge, errors.KindFormat, err,
				"failed to decode %s", witPath)
		}
		w, err := doc.SelectWorld()
		if err != nil {
			return nil, errors.Wrap(errors.StageMerge, errors.KindConfig, err,
				"failed to merge %s", witPath)
		}
		if reg, err = world.Merge(reg, doc); err != nil {
			return nil, errors.Wrap(errors.StageMerge, errors.KindConfig, err,
				"failed to merge %s", witPath)
		}
		if core, err = tool.Embed(ctx, scratch, core, witPath, w.Name, cfg.StringEncoding); err != nil {
			return nil, err
		}
	}
	if reg != nil {
		Logger().Debug("merged component types",
			zap.String("world", reg.World.Name),
			zap.Int("packages", len(reg.Packages)),
			zap.Int("imports", len(reg.World.Imports)),
			zap.Int("exports", len(reg.World.Exports)))
	}
	return core, nil
}

// resolveAdapters collects the user's --adapt modules, parsing any
// text-format source, then appends the default WASI adapter for the
// effective mode unless one is already present or the mode is none.
func resolveAdapters(ctx context.Context, cfg *cli.Config, tool wasmtools.Tool, scratch string, isCommand bool) ([]wasmtools.Adapter, error) {
	var out []wasmtools.Adapter
	havePreview1 := false
	for i, a := range cfg.Adapters {
		data, err := os.ReadFile(a.Path)
		if err != nil {
			return nil, errors.Wrap(errors.StageAssemble, errors.KindIO, err,
				"failed to inject adapter %q", a.Name)
		}
		path := a.Path
		if !wasm.IsBinary(data) {
			parsed, err := tool.Parse(ctx, data)
			if err != nil {
				return nil, errors.Wrap(errors.StageAssemble, errors.KindFormat, err,
					"failed to inject adapter %q", a.Name)
			}
			path = filepath.Join(scratch, fmt.Sprintf("adapter-%d.wasm", i))
			if err := os.WriteFile(path, parsed, 0o644); err != nil {
				return nil, errors.Wrap(errors.StageAssemble, errors.KindIO, err,
					"failed to inject adapter %q", a.Name)
			}
		}
		if a.Name == "wasi_snapshot_preview1" {
			havePreview1 = true
		}
		out = append(out, wasmtools.Adapter{Name: a.Name, Path: path})
	}

	mode := cfg.Adapter
	explicit := mode != cli.AdapterUnset
	if !explicit {
		if isCommand {
			mode = cli.AdapterCommand
		} else {
			mode = cli.AdapterReactor
		}
	}
	if mode == cli.AdapterNone || havePreview1 {
		return out, nil
	}
	path, err := tool.DefaultAdapterPath(mode.String())
	if err != nil {
		if explicit {
			return nil, err
		}
		// The inferred default is best effort; modules that do not use
		// preview1 imports link fine without it.
		Logger().Debug("no default adapter available",
			zap.String("mode", mode.String()),
			zap.Error(err))
		return out, nil
	}
	out = append(out, wasmtools.Adapter{Name: "wasi_snapshot_preview1", Path: path})
	return out, nil
}
