package guest

// Minimal core WASM binary encoding: LEB128 integers, names, and
// size-prefixed sections. Only what the arithmetic module needs.

type buffer struct {
	bytes []byte
}

func (b *buffer) appendByte(v byte) {
	b.bytes = append(b.bytes, v)
}

func (b *buffer) writeBytes(v []byte) {
	b.bytes = append(b.bytes, v...)
}

// writeU32 writes unsigned LEB128 encoding.
func (b *buffer) writeU32(v uint32) {
	for {
		byt := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			byt |= 0x80
		}
		b.appendByte(byt)
		if v == 0 {
			break
		}
	}
}

// writeI32 writes signed LEB128 encoding.
func (b *buffer) writeI32(v int32) {
	for {
		byt := byte(v & 0x7F)
		v >>= 7
		if (v == 0 && byt&0x40 == 0) || (v == -1 && byt&0x40 != 0) {
			b.appendByte(byt)
			break
		}
		b.appendByte(byt | 0x80)
	}
}

// writeName writes a length-prefixed UTF-8 name.
func (b *buffer) writeName(s string) {
	b.writeU32(uint32(len(s)))
	b.writeBytes([]byte(s))
}

// writeSection writes a section id, its byte length, and its content.
func (b *buffer) writeSection(id byte, content *buffer) {
	b.appendByte(id)
	b.writeU32(uint32(len(content.bytes)))
	b.writeBytes(content.bytes)
}

// Section ids and type markers used by the module.
const (
	secType   = 0x01
	secFunc   = 0x03
	secExport = 0x07
	secCode   = 0x0A

	funcTypeMarker = 0x60
	exportKindFunc = 0x00

	valI32 = 0x7F
	valI64 = 0x7E
)

// Opcodes used by the function bodies.
const (
	opIf       = 0x04
	opElse     = 0x05
	opEnd      = 0x0B
	opCall     = 0x10
	opLocalGet = 0x20

	opI32Const = 0x41
	opI32LtU   = 0x49
	opI32Add   = 0x6A
	opI32Sub   = 0x6B
	opI32Mul   = 0x6C
	opI64Add   = 0x7C

	opI64ExtendI32U = 0xAD
)
