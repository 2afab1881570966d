package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/wasm-component-ld/argfile"
	"github.com/wippyai/wasm-component-ld/cli"
	"github.com/wippyai/wasm-component-ld/driver"
	"github.com/wippyai/wasm-component-ld/errors"
	"github.com/wippyai/wasm-component-ld/lld"
	"github.com/wippyai/wasm-component-ld/wasmtools"
)

// version is stamped by the build; "dev" otherwise.
var version = "dev"

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		errors.WriteChain(os.Stderr, err)
		var staged *errors.Error
		if errors.As(err, &staged) && staged.Kind == errors.KindConfig {
			fmt.Fprintln(os.Stderr, "\nFor more information, try '--help'.")
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, rawArgs []string) error {
	// Response files may arrive before the flag announcing their
	// quoting style, so the style is scanned from the raw arguments.
	split, err := argfile.NewSplitter(argfile.StyleFromArgs(rawArgs))
	if err != nil {
		return err
	}
	args, err := argfile.Expand(rawArgs, split)
	if err != nil {
		return err
	}

	cfg, err := cli.Parse(args)
	if err != nil {
		return err
	}
	if cfg.Help {
		fmt.Print(cli.Usage())
		return nil
	}
	if cfg.ShowVersion {
		fmt.Printf("wasm-component-ld %s\n", version)
		return nil
	}

	if cfg.Verbose {
		logger := newVerboseLogger()
		defer logger.Sync()
		lld.SetLogger(logger.Named("lld"))
		wasmtools.SetLogger(logger.Named("wasm-tools"))
		driver.SetLogger(logger.Named("driver"))
	}

	return driver.Run(ctx, cfg)
}

// newVerboseLogger builds a console logger writing to stderr at debug
// level, keeping stdout free for tool passthrough.
func newVerboseLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
