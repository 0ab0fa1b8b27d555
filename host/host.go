// Package host loads the arithmetic guest module into wazero and exposes
// its exports as typed Go calls. A loaded module is validated against the
// ABI table up front, so a missing or mistyped export fails at load time
// rather than on first call.
//
// Runtime and Module are safe for concurrent use. Instance is not; create
// one per goroutine, or synchronize access.
package host

import (
	"context"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"

	"github.com/wippyai/ffi-bench/abi"
	"github.com/wippyai/ffi-bench/errors"
)

// Runtime wraps a wazero runtime. Close it after all instances are closed.
type Runtime struct {
	runtime wazero.Runtime
}

func New(ctx context.Context) (*Runtime, error) {
	return &Runtime{
		runtime: wazero.NewRuntime(ctx),
	}, nil
}

// Close releases all runtime resources.
func (r *Runtime) Close(ctx context.Context) error {
	return r.runtime.Close(ctx)
}

// Load compiles wasm and validates that it exports the full ABI symbol
// table with matching value types.
func (r *Runtime) Load(ctx context.Context, wasm []byte) (*Module, error) {
	if len(wasm) == 0 {
		return nil, errors.InvalidInput(errors.PhaseLoad, "empty module")
	}

	compiled, err := r.runtime.CompileModule(ctx, wasm)
	if err != nil {
		return nil, errors.Load("compile module", err)
	}

	if err := validateExports(compiled); err != nil {
		_ = compiled.Close(ctx)
		return nil, err
	}

	Logger().Debug("module loaded",
		zap.Int("size", len(wasm)),
		zap.Int("exports", len(abi.Exports())))

	return &Module{
		runtime:  r,
		compiled: compiled,
	}, nil
}

// validateExports checks every ABI symbol against the compiled module's
// export definitions.
func validateExports(compiled wazero.CompiledModule) error {
	defs := compiled.ExportedFunctions()
	for _, sig := range abi.Exports() {
		def, ok := defs[sig.Name]
		if !ok {
			return errors.MissingExport(sig.Name)
		}

		wantParams, err := abi.ValueTypes(sig.Params)
		if err != nil {
			return err
		}
		wantResults, err := abi.ValueTypes(sig.Results)
		if err != nil {
			return err
		}

		if !typesEqual(def.ParamTypes(), wantParams) || !typesEqual(def.ResultTypes(), wantResults) {
			return errors.SignatureMismatch(sig.Name,
				sigString(wantParams, wantResults),
				sigString(def.ParamTypes(), def.ResultTypes()))
		}
	}
	return nil
}
