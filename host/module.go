package host

import (
	"context"
	"strings"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/ffi-bench/errors"
)

// Module is a compiled, ABI-validated guest module. It can be instantiated
// any number of times, including concurrently.
type Module struct {
	runtime  *Runtime
	compiled wazero.CompiledModule
}

// Instantiate creates a fresh instance with its own state. Instances are
// anonymous, so any number may coexist within one runtime.
func (m *Module) Instantiate(ctx context.Context) (*Instance, error) {
	if m.compiled == nil {
		return nil, errors.NotInitialized("module")
	}

	mod, err := m.runtime.runtime.InstantiateModule(ctx, m.compiled, wazero.NewModuleConfig().WithName(""))
	if err != nil {
		return nil, errors.Load("instantiate module", err)
	}

	// Export presence and types were validated at load time, so the
	// lookups cannot fail here.
	return &Instance{
		module:   mod,
		add:      mod.ExportedFunction("add"),
		subtract: mod.ExportedFunction("subtract"),
		multiply: mod.ExportedFunction("multiply"),
		double:   mod.ExportedFunction("double"),
		fib:      mod.ExportedFunction("fib"),
	}, nil
}

// Close releases the compiled module. Instances remain usable until closed
// individually.
func (m *Module) Close(ctx context.Context) error {
	if m.compiled == nil {
		return nil
	}
	return m.compiled.Close(ctx)
}

func typesEqual(a, b []api.ValueType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// sigString renders value types as "(i32,i32)->i32" for error messages.
func sigString(params, results []api.ValueType) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(api.ValueTypeName(p))
	}
	b.WriteString(")->")
	if len(results) == 0 {
		b.WriteString("()")
	}
	for i, r := range results {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(api.ValueTypeName(r))
	}
	return b.String()
}
