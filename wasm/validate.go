package wasm

import (
	"context"

	"github.com/tetratelabs/wazero"
)

// Validate checks that data is a decodable core module by compiling it
// with a wazero interpreter runtime. The runtime acts purely as an
// external validator; nothing is instantiated or run.
func Validate(ctx context.Context, data []byte) error {
	r := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	defer r.Close(ctx)

	compiled, err := r.CompileModule(ctx, data)
	if err != nil {
		return err
	}
	return compiled.Close(ctx)
}
