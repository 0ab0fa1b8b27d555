package guest

import (
	"bytes"
	"testing"

	"github.com/wippyai/ffi-bench/abi"
)

func TestModule_Header(t *testing.T) {
	mod := Module()
	if len(mod) < 8 {
		t.Fatalf("module too short: %d bytes", len(mod))
	}
	if !bytes.Equal(mod[:4], []byte{0x00, 0x61, 0x73, 0x6D}) {
		t.Errorf("bad magic: % x", mod[:4])
	}
	if !bytes.Equal(mod[4:8], []byte{0x01, 0x00, 0x00, 0x00}) {
		t.Errorf("bad version: % x", mod[4:8])
	}
}

func TestModule_Deterministic(t *testing.T) {
	if !bytes.Equal(Module(), Module()) {
		t.Error("Module() is not deterministic")
	}
}

func TestModule_CallerCannotCorrupt(t *testing.T) {
	mod := Module()
	for i := range mod {
		mod[i] = 0xFF
	}
	if !bytes.Equal(Module()[:4], []byte{0x00, 0x61, 0x73, 0x6D}) {
		t.Error("mutating a returned copy corrupted the cached module")
	}
}

// Every ABI symbol name must appear verbatim in the export section.
func TestModule_ExportNames(t *testing.T) {
	mod := Module()
	for _, sig := range abi.Exports() {
		if !bytes.Contains(mod, []byte(sig.Name)) {
			t.Errorf("export name %q not present in module bytes", sig.Name)
		}
	}
}

func TestLEB128(t *testing.T) {
	utests := []struct {
		v    uint32
		want []byte
	}{
		{0, []byte{0x00}},
		{2, []byte{0x02}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{624485, []byte{0xE5, 0x8E, 0x26}},
	}
	for _, tc := range utests {
		b := &buffer{}
		b.writeU32(tc.v)
		if !bytes.Equal(b.bytes, tc.want) {
			t.Errorf("writeU32(%d) = % x, want % x", tc.v, b.bytes, tc.want)
		}
	}

	stests := []struct {
		v    int32
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{2, []byte{0x02}},
		{-1, []byte{0x7F}},
		{63, []byte{0x3F}},
		{64, []byte{0xC0, 0x00}},
		{-64, []byte{0x40}},
		{-123456, []byte{0xC0, 0xBB, 0x78}},
	}
	for _, tc := range stests {
		b := &buffer{}
		b.writeI32(tc.v)
		if !bytes.Equal(b.bytes, tc.want) {
			t.Errorf("writeI32(%d) = % x, want % x", tc.v, b.bytes, tc.want)
		}
	}
}
