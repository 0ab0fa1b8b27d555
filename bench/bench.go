// Package bench measures call overhead of an arithmetic binding. A Case
// wraps one operation; the Runner times a fixed number of iterations per
// case. Because every binding realizes the same export set, native and FFI
// implementations are measured identically and their per-call overhead can
// be compared directly.
package bench

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	ffibench "github.com/wippyai/ffi-bench"
)

// Case is one named measurement: Run performs a single operation.
type Case struct {
	Name string
	N    int
	Run  func(ctx context.Context) error
}

// Result is the timing of one completed case.
type Result struct {
	Name    string
	N       int
	Elapsed time.Duration
}

// NsPerOp returns the average nanoseconds per operation.
func (r Result) NsPerOp() float64 {
	if r.N == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.N)
}

// Runner executes cases sequentially. The zero value is usable and logs
// nowhere.
type Runner struct {
	logger *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for per-case progress.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

func NewRunner(opts ...Option) *Runner {
	r := &Runner{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run times each case in order. Cancellation is checked between iterations
// only; an operation already entered runs to completion. On error the
// results completed so far are returned alongside it.
func (r *Runner) Run(ctx context.Context, cases []Case) ([]Result, error) {
	results := make([]Result, 0, len(cases))

	for _, c := range cases {
		r.logger.Info("case started", zap.String("case", c.Name), zap.Int("iterations", c.N))

		start := time.Now()
		for i := 0; i < c.N; i++ {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			if err := c.Run(ctx); err != nil {
				return results, err
			}
		}
		res := Result{Name: c.Name, N: c.N, Elapsed: time.Since(start)}
		results = append(results, res)

		r.logger.Info("case finished",
			zap.String("case", c.Name),
			zap.Duration("elapsed", res.Elapsed),
			zap.Float64("ns_per_op", res.NsPerOp()))
	}

	return results, nil
}

// BindingCases builds the standard case set over b: one case per exported
// function, iters iterations each. fibN controls how much CPU load the fib
// case generates; the arithmetic cases rotate their operands so a binding
// cannot satisfy them with a constant.
func BindingCases(b ffibench.Binding, iters int, fibN uint32) []Case {
	return []Case{
		{Name: "add", N: iters, Run: func(ctx context.Context) error {
			_, err := b.Add(ctx, next(), 3)
			return err
		}},
		{Name: "subtract", N: iters, Run: func(ctx context.Context) error {
			_, err := b.Subtract(ctx, next(), 3)
			return err
		}},
		{Name: "multiply", N: iters, Run: func(ctx context.Context) error {
			_, err := b.Multiply(ctx, next(), 3)
			return err
		}},
		{Name: "double", N: iters, Run: func(ctx context.Context) error {
			_, err := b.Double(ctx, next())
			return err
		}},
		{Name: "fib", N: iters, Run: func(ctx context.Context) error {
			_, err := b.Fib(ctx, fibN)
			return err
		}},
	}
}

var counter atomic.Int32

// next produces a rotating operand. Atomic so cases stay usable if a
// caller runs them from more than one goroutine.
func next() int32 {
	return counter.Add(1)
}
