package host

import (
	"context"

	"github.com/tetratelabs/wazero/api"

	ffibench "github.com/wippyai/ffi-bench"
	"github.com/wippyai/ffi-bench/errors"
)

var _ ffibench.Binding = (*Instance)(nil)

// Instance is one instantiation of the guest module with typed wrappers
// over its exports. It implements ffibench.Binding.
//
// Instance is NOT safe for concurrent use; create one per goroutine.
type Instance struct {
	module   api.Module
	add      api.Function
	subtract api.Function
	multiply api.Function
	double   api.Function
	fib      api.Function
}

func (i *Instance) Add(ctx context.Context, a, b int32) (int32, error) {
	return i.callBinary(ctx, "add", i.add, a, b)
}

func (i *Instance) Subtract(ctx context.Context, a, b int32) (int32, error) {
	return i.callBinary(ctx, "subtract", i.subtract, a, b)
}

func (i *Instance) Multiply(ctx context.Context, a, b int32) (int32, error) {
	return i.callBinary(ctx, "multiply", i.multiply, a, b)
}

func (i *Instance) Double(ctx context.Context, x int32) (int32, error) {
	if i.double == nil {
		return 0, errors.NotInitialized("instance")
	}
	res, err := i.double.Call(ctx, api.EncodeI32(x))
	if err != nil {
		return 0, errors.CallFailed("double", err)
	}
	return api.DecodeI32(res[0]), nil
}

// Fib runs the guest's naive recursion. Large n takes exponentially long
// and cannot be interrupted mid-call; the context applies only to call
// setup inside the engine.
func (i *Instance) Fib(ctx context.Context, n uint32) (uint64, error) {
	if i.fib == nil {
		return 0, errors.NotInitialized("instance")
	}
	res, err := i.fib.Call(ctx, api.EncodeU32(n))
	if err != nil {
		return 0, errors.CallFailed("fib", err)
	}
	return res[0], nil
}

func (i *Instance) callBinary(ctx context.Context, name string, fn api.Function, a, b int32) (int32, error) {
	if fn == nil {
		return 0, errors.NotInitialized("instance")
	}
	res, err := fn.Call(ctx, api.EncodeI32(a), api.EncodeI32(b))
	if err != nil {
		return 0, errors.CallFailed(name, err)
	}
	return api.DecodeI32(res[0]), nil
}

func (i *Instance) Close(ctx context.Context) error {
	if i.module == nil {
		return nil
	}
	return i.module.Close(ctx)
}
