package arith

import (
	"context"

	ffibench "github.com/wippyai/ffi-bench"
)

var _ ffibench.Binding = Native{}

// Native adapts the package functions to the ffibench.Binding interface so
// the in-process implementation can be measured through the same surface as
// the FFI bindings. Calls never fail and ignore the context.
type Native struct{}

func (Native) Add(_ context.Context, a, b int32) (int32, error) {
	return Add(a, b), nil
}

func (Native) Subtract(_ context.Context, a, b int32) (int32, error) {
	return Subtract(a, b), nil
}

func (Native) Multiply(_ context.Context, a, b int32) (int32, error) {
	return Multiply(a, b), nil
}

func (Native) Double(_ context.Context, x int32) (int32, error) {
	return Double(x), nil
}

func (Native) Fib(_ context.Context, n uint32) (uint64, error) {
	return Fib(n), nil
}
