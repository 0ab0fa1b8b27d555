package main

import (
	"math"
	"testing"
)

// The exported shims are plain Go functions underneath; exercise them
// directly. The symbol table itself can only be checked on a built
// artifact (go build -buildmode=c-shared).

func TestShims(t *testing.T) {
	if got := add(2, 3); int32(got) != 5 {
		t.Errorf("add(2, 3) = %d, want 5", int32(got))
	}
	if got := subtract(2, 3); int32(got) != -1 {
		t.Errorf("subtract(2, 3) = %d, want -1", int32(got))
	}
	if got := multiply(6, 7); int32(got) != 42 {
		t.Errorf("multiply(6, 7) = %d, want 42", int32(got))
	}
	if got := arith_double(21); int32(got) != 42 {
		t.Errorf("double(21) = %d, want 42", int32(got))
	}
	if got := fib(20); uint64(got) != 6765 {
		t.Errorf("fib(20) = %d, want 6765", uint64(got))
	}
}

func TestShims_Wraparound(t *testing.T) {
	if got := add(math.MaxInt32, 1); int32(got) != math.MinInt32 {
		t.Errorf("add(MaxInt32, 1) = %d, want MinInt32", int32(got))
	}
	if got := subtract(math.MinInt32, 1); int32(got) != math.MaxInt32 {
		t.Errorf("subtract(MinInt32, 1) = %d, want MaxInt32", int32(got))
	}
	if got := multiply(math.MaxInt32, 2); int32(got) != -2 {
		t.Errorf("multiply(MaxInt32, 2) = %d, want -2", int32(got))
	}
	if got := arith_double(1 << 30); int32(got) != math.MinInt32 {
		t.Errorf("double(1<<30) = %d, want MinInt32", int32(got))
	}
}
