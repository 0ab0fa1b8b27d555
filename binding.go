package ffibench

import "context"

// Binding is one realization of the arithmetic export set. Implementations
// exist for the pure Go reference (arith.Native) and for the WASM guest
// loaded through wazero (host.Instance); the benchmark runner measures any
// Binding the same way.
//
// The context applies to the call machinery only. The functions themselves
// run to completion once entered; in particular Fib with large n cannot be
// interrupted mid-call.
type Binding interface {
	Add(ctx context.Context, a, b int32) (int32, error)
	Subtract(ctx context.Context, a, b int32) (int32, error)
	Multiply(ctx context.Context, a, b int32) (int32, error)
	Double(ctx context.Context, x int32) (int32, error)
	Fib(ctx context.Context, n uint32) (uint64, error)
}
