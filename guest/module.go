// Package guest emits the arithmetic export set as a core WebAssembly
// module. The generated binary exports exactly the symbols of the ABI
// table — add, subtract, multiply, double, fib — with the same integer
// signatures and the same semantics as the pure Go implementation,
// including silent i32 wraparound and fib's naive call-recursive form.
//
// Encoding is deterministic, so the module can be generated at runtime
// instead of shipping a binary fixture.
package guest

import "sync"

// Function type indices within the type section.
const (
	typeBinaryI32 = 0 // (i32, i32) -> i32
	typeUnaryI32  = 1 // (i32) -> i32
	typeFib       = 2 // (i32) -> i64
)

// Function indices within the module. fib calls itself by index.
const (
	idxAdd = iota
	idxSubtract
	idxMultiply
	idxDouble
	idxFib
)

var (
	moduleOnce  sync.Once
	moduleBytes []byte
)

// Module returns the encoded WASM module. The result is a fresh copy on
// every call; callers may modify it freely.
func Module() []byte {
	moduleOnce.Do(func() {
		moduleBytes = encode()
	})
	out := make([]byte, len(moduleBytes))
	copy(out, moduleBytes)
	return out
}

func encode() []byte {
	mod := &buffer{}
	mod.writeBytes([]byte{0x00, 0x61, 0x73, 0x6D}) // \0asm
	mod.writeBytes([]byte{0x01, 0x00, 0x00, 0x00}) // version 1

	// Type section: the three integer signatures the exports use.
	types := &buffer{}
	types.writeU32(3)
	writeFuncType(types, []byte{valI32, valI32}, []byte{valI32})
	writeFuncType(types, []byte{valI32}, []byte{valI32})
	writeFuncType(types, []byte{valI32}, []byte{valI64})
	mod.writeSection(secType, types)

	// Function section: type index per function, in index order.
	funcs := &buffer{}
	funcs.writeU32(5)
	for _, typeIdx := range []uint32{typeBinaryI32, typeBinaryI32, typeBinaryI32, typeUnaryI32, typeFib} {
		funcs.writeU32(typeIdx)
	}
	mod.writeSection(secFunc, funcs)

	// Export section: the fixed, unmangled symbol table.
	exports := &buffer{}
	exports.writeU32(5)
	for _, exp := range []struct {
		name string
		idx  uint32
	}{
		{"add", idxAdd},
		{"subtract", idxSubtract},
		{"multiply", idxMultiply},
		{"double", idxDouble},
		{"fib", idxFib},
	} {
		exports.writeName(exp.name)
		exports.appendByte(exportKindFunc)
		exports.writeU32(exp.idx)
	}
	mod.writeSection(secExport, exports)

	// Code section: one body per function, same order as the function
	// section.
	code := &buffer{}
	code.writeU32(5)
	writeBody(code, binaryOp(opI32Add))
	writeBody(code, binaryOp(opI32Sub))
	writeBody(code, binaryOp(opI32Mul))
	writeBody(code, doubleBody())
	writeBody(code, fibBody())
	mod.writeSection(secCode, code)

	return mod.bytes
}

func writeFuncType(b *buffer, params, results []byte) {
	b.appendByte(funcTypeMarker)
	b.writeU32(uint32(len(params)))
	b.writeBytes(params)
	b.writeU32(uint32(len(results)))
	b.writeBytes(results)
}

// writeBody writes a size-prefixed code entry: an empty locals vector
// followed by the expression.
func writeBody(b *buffer, expr []byte) {
	body := &buffer{}
	body.writeU32(0) // no locals
	body.writeBytes(expr)
	body.appendByte(opEnd)
	b.writeU32(uint32(len(body.bytes)))
	b.writeBytes(body.bytes)
}

// binaryOp is (local.get 0) (local.get 1) op.
func binaryOp(op byte) []byte {
	e := &buffer{}
	e.appendByte(opLocalGet)
	e.writeU32(0)
	e.appendByte(opLocalGet)
	e.writeU32(1)
	e.appendByte(op)
	return e.bytes
}

// doubleBody is (local.get 0) (i32.const 2) i32.mul.
func doubleBody() []byte {
	e := &buffer{}
	e.appendByte(opLocalGet)
	e.writeU32(0)
	e.appendByte(opI32Const)
	e.writeI32(2)
	e.appendByte(opI32Mul)
	return e.bytes
}

// fibBody is the naive recursion:
//
//	if n < 2 { return i64(n) }
//	return fib(n-1) + fib(n-2)
func fibBody() []byte {
	e := &buffer{}

	e.appendByte(opLocalGet)
	e.writeU32(0)
	e.appendByte(opI32Const)
	e.writeI32(2)
	e.appendByte(opI32LtU)

	e.appendByte(opIf)
	e.appendByte(valI64) // if yields i64

	e.appendByte(opLocalGet)
	e.writeU32(0)
	e.appendByte(opI64ExtendI32U)

	e.appendByte(opElse)

	e.appendByte(opLocalGet)
	e.writeU32(0)
	e.appendByte(opI32Const)
	e.writeI32(1)
	e.appendByte(opI32Sub)
	e.appendByte(opCall)
	e.writeU32(idxFib)

	e.appendByte(opLocalGet)
	e.writeU32(0)
	e.appendByte(opI32Const)
	e.writeI32(2)
	e.appendByte(opI32Sub)
	e.appendByte(opCall)
	e.writeU32(idxFib)

	e.appendByte(opI64Add)
	e.appendByte(opEnd)

	return e.bytes
}
