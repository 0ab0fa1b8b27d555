// Command bench measures the arithmetic export set across bindings: the
// pure Go implementation and the WASM guest loaded through wazero. The
// same cases run against each binding, so the difference is the call
// boundary itself.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	ffibench "github.com/wippyai/ffi-bench"
	"github.com/wippyai/ffi-bench/arith"
	"github.com/wippyai/ffi-bench/bench"
	"github.com/wippyai/ffi-bench/guest"
	"github.com/wippyai/ffi-bench/host"
)

func main() {
	var (
		binding  = flag.String("binding", "all", "Binding to measure: native, wasm, or all")
		iters    = flag.Int("iters", 100000, "Iterations per arithmetic case")
		fibN     = flag.Uint("fib", 20, "Argument for the fib case (beware: O(2^n))")
		fibIters = flag.Int("fib-iters", 50, "Iterations for the fib case")
		timeout  = flag.Duration("timeout", 0, "Overall deadline (0 = none)")
		verbose  = flag.Bool("v", false, "Log per-case progress")
	)
	flag.Parse()

	if err := run(*binding, *iters, uint32(*fibN), *fibIters, *timeout, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(binding string, iters int, fibN uint32, fibIters int, timeout time.Duration, verbose bool) error {
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer logger.Sync()
	}
	host.SetLogger(logger)

	runner := bench.NewRunner(bench.WithLogger(logger))

	wantNative := binding == "native" || binding == "all"
	wantWasm := binding == "wasm" || binding == "all"
	if !wantNative && !wantWasm {
		return fmt.Errorf("unknown binding %q (native, wasm, or all)", binding)
	}

	if wantNative {
		if err := measure(ctx, runner, "native", arith.Native{}, iters, fibN, fibIters); err != nil {
			return err
		}
	}

	if wantWasm {
		rt, err := host.New(ctx)
		if err != nil {
			return fmt.Errorf("create runtime: %w", err)
		}
		defer rt.Close(ctx)

		mod, err := rt.Load(ctx, guest.Module())
		if err != nil {
			return fmt.Errorf("load guest module: %w", err)
		}

		inst, err := mod.Instantiate(ctx)
		if err != nil {
			return fmt.Errorf("instantiate: %w", err)
		}
		defer inst.Close(ctx)

		if err := measure(ctx, runner, "wasm", inst, iters, fibN, fibIters); err != nil {
			return err
		}
	}

	return nil
}

func measure(ctx context.Context, runner *bench.Runner, name string, b ffibench.Binding, iters int, fibN uint32, fibIters int) error {
	cases := bench.BindingCases(b, iters, fibN)
	for i := range cases {
		if cases[i].Name == "fib" {
			cases[i].N = fibIters
		}
	}

	results, err := runner.Run(ctx, cases)
	if err != nil {
		return fmt.Errorf("measure %s: %w", name, err)
	}

	fmt.Print(renderResults(name, results))
	return nil
}
