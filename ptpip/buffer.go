package ptpip

import (
	"encoding/binary"
	"encoding/hex"
	"unicode/utf16"
)

var byteOrder = binary.LittleEndian

// Buffer is a growable byte sequence with offset addressed little-endian
// accessors. Reads past the end return ok == false rather than panic.
type Buffer struct {
	b []byte
}

func NewBuffer(b []byte) *Buffer {
	return &Buffer{b: b}
}

func (b *Buffer) Len() int {
	return len(b.b)
}

func (b *Buffer) Bytes() []byte {
	return b.b
}

func (b *Buffer) Append(p []byte) {
	b.b = append(b.b, p...)
}

func (b *Buffer) AppendUint8(v uint8) {
	b.b = append(b.b, v)
}

func (b *Buffer) AppendUint16(v uint16) {
	var s [2]byte
	byteOrder.PutUint16(s[:], v)
	b.b = append(b.b, s[:]...)
}

func (b *Buffer) AppendUint32(v uint32) {
	var s [4]byte
	byteOrder.PutUint32(s[:], v)
	b.b = append(b.b, s[:]...)
}

func (b *Buffer) AppendUint64(v uint64) {
	var s [8]byte
	byteOrder.PutUint64(s[:], v)
	b.b = append(b.b, s[:]...)
}

// AppendString writes s as NUL terminated UTF-16LE. With count set, the
// PTP dataset form is used: a leading byte holding the number of code
// units including the terminator, and the empty string as a lone zero.
func (b *Buffer) AppendString(s string, count bool) {
	units := utf16.Encode([]rune(s))
	if count {
		if len(units) == 0 {
			b.AppendUint8(0)
			return
		}
		b.AppendUint8(uint8(len(units) + 1))
	}
	for _, u := range units {
		b.AppendUint16(u)
	}
	b.AppendUint16(0)
}

func (b *Buffer) has(off, n int) bool {
	return off >= 0 && n >= 0 && off+n <= len(b.b)
}

func (b *Buffer) Uint8(off int) (uint8, bool) {
	if !b.has(off, 1) {
		return 0, false
	}
	return b.b[off], true
}

func (b *Buffer) Uint16(off int) (uint16, bool) {
	if !b.has(off, 2) {
		return 0, false
	}
	return byteOrder.Uint16(b.b[off:]), true
}

func (b *Buffer) Uint32(off int) (uint32, bool) {
	if !b.has(off, 4) {
		return 0, false
	}
	return byteOrder.Uint32(b.b[off:]), true
}

func (b *Buffer) Uint64(off int) (uint64, bool) {
	if !b.has(off, 8) {
		return 0, false
	}
	return byteOrder.Uint64(b.b[off:]), true
}

func (b *Buffer) SetUint32(off int, v uint32) bool {
	if !b.has(off, 4) {
		return false
	}
	byteOrder.PutUint32(b.b[off:], v)
	return true
}

// ReadString decodes a count-prefixed PTP string at off. It returns the
// string and the number of bytes consumed.
func (b *Buffer) ReadString(off int) (string, int, bool) {
	sz, ok := b.Uint8(off)
	if !ok {
		return "", 0, false
	}
	if sz == 0 {
		return "", 1, true
	}
	if !b.has(off+1, 2*int(sz)) {
		return "", 0, false
	}
	units := make([]uint16, 0, sz)
	for i := 0; i < int(sz); i++ {
		u := byteOrder.Uint16(b.b[off+1+2*i:])
		if u == 0 && i == int(sz)-1 {
			break
		}
		units = append(units, u)
	}
	return string(utf16.Decode(units)), 1 + 2*int(sz), true
}

// Slice drops the first n bytes.
func (b *Buffer) Slice(n int) {
	if n >= len(b.b) {
		b.b = b.b[:0]
		return
	}
	if n <= 0 {
		return
	}
	b.b = append(b.b[:0], b.b[n:]...)
}

// Sub returns a copy of the bytes in [off, end), clamped to the buffer. A
// negative end means the end of the buffer.
func (b *Buffer) Sub(off, end int) *Buffer {
	if end < 0 || end > len(b.b) {
		end = len(b.b)
	}
	if off < 0 {
		off = 0
	}
	if off >= end {
		return &Buffer{}
	}
	c := make([]byte, end-off)
	copy(c, b.b[off:end])
	return &Buffer{b: c}
}

func (b *Buffer) Reset() {
	b.b = b.b[:0]
}

func (b *Buffer) Hex() string {
	return hex.EncodeToString(b.b)
}

func hexDump(data []byte) string {
	return hex.Dump(data)
}
