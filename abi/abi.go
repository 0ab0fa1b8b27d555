// Package abi describes the exported symbol table of the arithmetic
// function set: fixed, unmangled names with fixed-width-integer-only
// signatures. Every binding mirrors this table — the cgo shim exports these
// symbols, the guest encoder emits them, and the host binding validates a
// loaded module against them.
package abi

import (
	"fmt"

	"go.bytecodealliance.org/wit"

	"github.com/tetratelabs/wazero/api"
	"github.com/wippyai/ffi-bench/errors"
)

// Signature is one entry of the symbol table.
type Signature struct {
	Name    string
	Params  []wit.Type
	Results []wit.Type
}

// exports is the complete symbol table. Order is fixed so that callers
// iterating it (validation, case generation) are deterministic.
var exports = []Signature{
	{Name: "add", Params: []wit.Type{wit.S32{}, wit.S32{}}, Results: []wit.Type{wit.S32{}}},
	{Name: "subtract", Params: []wit.Type{wit.S32{}, wit.S32{}}, Results: []wit.Type{wit.S32{}}},
	{Name: "multiply", Params: []wit.Type{wit.S32{}, wit.S32{}}, Results: []wit.Type{wit.S32{}}},
	{Name: "double", Params: []wit.Type{wit.S32{}}, Results: []wit.Type{wit.S32{}}},
	{Name: "fib", Params: []wit.Type{wit.U32{}}, Results: []wit.Type{wit.U64{}}},
}

// Exports returns the symbol table. The caller must not modify it.
func Exports() []Signature {
	return exports
}

// Lookup returns the signature exported under name.
func Lookup(name string) (Signature, bool) {
	for _, sig := range exports {
		if sig.Name == name {
			return sig, true
		}
	}
	return Signature{}, false
}

// ValueType maps a WIT scalar type to its core WASM value type. Only the
// fixed-width integer types used by the symbol table are supported.
func ValueType(t wit.Type) (api.ValueType, error) {
	switch t.(type) {
	case wit.S32, wit.U32:
		return api.ValueTypeI32, nil
	case wit.S64, wit.U64:
		return api.ValueTypeI64, nil
	default:
		return 0, errors.InvalidInput(errors.PhaseBind, fmt.Sprintf("unsupported ABI type %T", t))
	}
}

// ValueTypes maps a WIT type list, as used for params and results.
func ValueTypes(types []wit.Type) ([]api.ValueType, error) {
	out := make([]api.ValueType, len(types))
	for i, t := range types {
		vt, err := ValueType(t)
		if err != nil {
			return nil, err
		}
		out[i] = vt
	}
	return out, nil
}
