// Command cshared builds the arithmetic export set as a native shared
// library with a C-compatible, unmangled symbol table:
//
//	go build -buildmode=c-shared -o libffibench.so ./cshared
//
// Callers in any language load the artifact and bind the symbols by name:
//
//	add(int32_t, int32_t) -> int32_t
//	subtract(int32_t, int32_t) -> int32_t
//	multiply(int32_t, int32_t) -> int32_t
//	double(int32_t) -> int32_t
//	fib(uint32_t) -> uint64_t
//
// All arguments and results are fixed-width integers passed by value.
// There are no error codes and no exceptions; arithmetic wraps silently.
// The "double" symbol is emitted from double.c through an asm label, since
// C reserves the word and cgo cannot export it directly.
package main

/*
#include <stdint.h>
*/
import "C"

import "github.com/wippyai/ffi-bench/arith"

//export add
func add(a, b C.int32_t) C.int32_t {
	return C.int32_t(arith.Add(int32(a), int32(b)))
}

//export subtract
func subtract(a, b C.int32_t) C.int32_t {
	return C.int32_t(arith.Subtract(int32(a), int32(b)))
}

//export multiply
func multiply(a, b C.int32_t) C.int32_t {
	return C.int32_t(arith.Multiply(int32(a), int32(b)))
}

// arith_double backs the "double" symbol; double.c attaches the public
// name to it.
//
//export arith_double
func arith_double(x C.int32_t) C.int32_t {
	return C.int32_t(arith.Double(int32(x)))
}

//export fib
func fib(n C.uint32_t) C.uint64_t {
	return C.uint64_t(arith.Fib(uint32(n)))
}

// main is required for -buildmode=c-shared, even though it never runs.
func main() {}
