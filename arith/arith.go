// Package arith is the pure Go reference implementation of the arithmetic
// export set. Every function is stateless, deterministic, and safe to call
// from any number of goroutines without synchronization.
//
// All int32 arithmetic wraps silently on overflow per two's complement.
// This is the contract, not an oversight: the set mirrors a C ABI where
// fixed-width integers wrap and nothing signals a fault.
package arith

// Add returns a + b modulo 2^32.
func Add(a, b int32) int32 {
	return a + b
}

// Subtract returns a - b modulo 2^32.
func Subtract(a, b int32) int32 {
	return a - b
}

// Multiply returns a * b modulo 2^32.
func Multiply(a, b int32) int32 {
	return a * b
}

// Double returns x * 2 modulo 2^32.
func Double(x int32) int32 {
	return x * 2
}

// Fib returns the nth Fibonacci number, fib(0)=0 and fib(1)=1, by naive
// recursion. The O(2^n) call tree is intentional: Fib exists to generate
// CPU load for benchmarking, not to compute Fibonacci numbers efficiently.
// Large n will take impractically long and wrap the 64-bit result silently.
func Fib(n uint32) uint64 {
	if n <= 1 {
		return uint64(n)
	}
	return Fib(n-1) + Fib(n-2)
}
