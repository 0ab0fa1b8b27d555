// Package ffibench defines a small arithmetic export set and the bindings
// used to exercise it across foreign-function boundaries.
//
// The export set is five pure functions — add, subtract, multiply, double,
// and a deliberately naive recursive fib — exposed under fixed, unmangled
// symbol names with fixed-width-integer-only signatures. The point is not
// the arithmetic: the same symbol table is realized as plain Go calls, as a
// C shared library, and as a WebAssembly module, so that call overhead can
// be compared across boundaries with identical semantics.
//
// # Architecture Overview
//
//	ffibench/        Root package with the Binding interface
//	├── arith/       Pure Go reference implementation of the export set
//	├── abi/         The exported symbol table as data (names + signatures)
//	├── guest/       Encodes the export set as a core WASM binary
//	├── host/        wazero-backed binding that loads and calls the guest
//	├── bench/       Benchmark runner over any Binding
//	├── errors/      Structured error types
//	├── cshared/     cgo c-shared shim exporting the C symbol table
//	└── cmd/bench/   CLI benchmark harness
//
// # Quick Start
//
// Load the built-in guest module and call it:
//
//	rt, err := host.New(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close(ctx)
//
//	mod, err := rt.Load(ctx, guest.Module())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	inst, err := mod.Instantiate(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer inst.Close(ctx)
//
//	sum, err := inst.Add(ctx, 2, 3)
//
// # Semantics
//
// All arithmetic wraps silently per two's complement; there is no overflow
// signaling anywhere in the set. fib(n) is O(2^n) calls by design — it
// exists to produce CPU load, and large n will take impractically long
// and/or wrap the 64-bit result with no guard.
//
// # Thread Safety
//
// The functions themselves are stateless and reentrant. host.Runtime and
// host.Module are safe for concurrent use; host.Instance is NOT thread-safe
// and should be used by a single goroutine, or access must be synchronized.
package ffibench
