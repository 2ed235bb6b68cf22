package ptpip

import (
	"testing"
)

func TestBufferReadPastEnd(t *testing.T) {
	b := NewBuffer([]byte{1, 2, 3})
	if v, ok := b.Uint16(1); !ok || v != 0x0302 {
		t.Fatalf("Uint16(1): got %x %v", v, ok)
	}
	if _, ok := b.Uint16(2); ok {
		t.Error("Uint16(2) succeeded on 3 bytes")
	}
	if _, ok := b.Uint32(0); ok {
		t.Error("Uint32(0) succeeded on 3 bytes")
	}
	if _, ok := b.Uint8(-1); ok {
		t.Error("Uint8(-1) succeeded")
	}
	if b.SetUint32(0, 1) {
		t.Error("SetUint32 wrote past the end")
	}
}

func TestBufferSlice(t *testing.T) {
	b := NewBuffer([]byte{1, 2, 3, 4, 5})
	b.Slice(2)
	if err := diffIndex(b.Bytes(), []byte{3, 4, 5}); err != nil {
		t.Fatal(err)
	}
	b.Slice(0)
	if b.Len() != 3 {
		t.Fatalf("Slice(0) changed length to %d", b.Len())
	}
	b.Slice(10)
	if b.Len() != 0 {
		t.Fatalf("got %d bytes after slicing past the end", b.Len())
	}
}

func TestBufferSub(t *testing.T) {
	b := NewBuffer([]byte{1, 2, 3, 4})
	s := b.Sub(1, -1)
	s.Bytes()[0] = 9
	if b.Bytes()[1] != 2 {
		t.Error("Sub shares storage with its source")
	}
	if err := diffIndex(s.Bytes(), []byte{9, 3, 4}); err != nil {
		t.Fatal(err)
	}
	if got := b.Sub(3, 1).Len(); got != 0 {
		t.Errorf("empty range: got %d bytes", got)
	}
}

func TestAppendString(t *testing.T) {
	var b Buffer
	b.AppendString("ab", false)
	if err := diffIndex(b.Bytes(), parseHex("6100 6200 0000")); err != nil {
		t.Fatal(err)
	}

	b.Reset()
	b.AppendString("ab", true)
	if err := diffIndex(b.Bytes(), parseHex("03 6100 6200 0000")); err != nil {
		t.Fatal(err)
	}
	s, n, ok := b.ReadString(0)
	if !ok || s != "ab" || n != 7 {
		t.Fatalf("ReadString: got %q %d %v", s, n, ok)
	}

	b.Reset()
	b.AppendString("", true)
	if err := diffIndex(b.Bytes(), []byte{0}); err != nil {
		t.Fatal(err)
	}
	s, n, ok = b.ReadString(0)
	if !ok || s != "" || n != 1 {
		t.Fatalf("ReadString empty: got %q %d %v", s, n, ok)
	}
}

func TestReadStringShort(t *testing.T) {
	b := NewBuffer(parseHex("03 6100 62"))
	if _, _, ok := b.ReadString(0); ok {
		t.Error("ReadString succeeded on a truncated string")
	}
}
