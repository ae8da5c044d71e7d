package wire

import (
	"bytes"
	"encoding/binary"
	"io"
)

// A frame on the wire is:
//
//	len  uint32 LE  (payload byte length only)
//	kind uint32 LE
//	payload[len]
//
// Strings are raw bytes followed by a single NUL; there is no length
// prefix. Booleans occupy one byte. All integers are little-endian and
// unsigned.

// FrameBuilder stages a response frame field by field before flushing it
// to the wire, mirroring the teacher's bytes.Buffer-plus-binary.Write
// idiom (see internal/connectionmgr/binary.go in the reference pack)
// rather than a generic encoder: the wire format is small and fixed, so
// a purpose-built builder keeps call sites readable.
type FrameBuilder struct {
	kind ServerMessageKind
	buf  bytes.Buffer
}

// NewFrameBuilder starts a new response frame of the given kind.
func NewFrameBuilder(kind ServerMessageKind) *FrameBuilder {
	return &FrameBuilder{kind: kind}
}

// Appends are infallible against memory; the only I/O failure point is
// Flush. This matches the source protocol's "builder.add(...)" calls,
// which never fail.

// U8 appends a single byte.
func (b *FrameBuilder) U8(v uint8) *FrameBuilder {
	b.buf.WriteByte(v)
	return b
}

// U16 appends a little-endian uint16.
func (b *FrameBuilder) U16(v uint16) *FrameBuilder {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.buf.Write(tmp[:])
	return b
}

// U32 appends a little-endian uint32.
func (b *FrameBuilder) U32(v uint32) *FrameBuilder {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.buf.Write(tmp[:])
	return b
}

// Usize appends a little-endian 64-bit "pointer-sized" field. The
// reference protocol serializes `usize` as the host's native width; we
// always emit 64 bits, which is what every reference client build in
// practice expects.
func (b *FrameBuilder) Usize(v uint64) *FrameBuilder {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	b.buf.Write(tmp[:])
	return b
}

// Bool appends a single byte: 0 or 1.
func (b *FrameBuilder) Bool(v bool) *FrameBuilder {
	if v {
		return b.U8(1)
	}
	return b.U8(0)
}

// Bytes appends raw bytes followed by a single NUL terminator. Callers
// must avoid embedding a NUL in s; the wire format has no escaping.
func (b *FrameBuilder) Bytes(s []byte) *FrameBuilder {
	b.buf.Write(s)
	b.buf.WriteByte(0)
	return b
}

// Str appends s followed by a single NUL terminator.
func (b *FrameBuilder) Str(s string) *FrameBuilder {
	return b.Bytes([]byte(s))
}

// Len reports the number of payload bytes staged so far.
func (b *FrameBuilder) Len() int {
	return b.buf.Len()
}

// Flush writes the complete framed message (length prefix, kind, then
// payload) to dst. It is the only operation in the builder that can
// fail.
func (b *FrameBuilder) Flush(dst io.Writer) error {
	var header [8]byte
	binary.LittleEndian.PutUint32(header[0:4], uint32(b.buf.Len()))
	binary.LittleEndian.PutUint32(header[4:8], uint32(b.kind))
	if _, err := dst.Write(header[:]); err != nil {
		return err
	}
	_, err := dst.Write(b.buf.Bytes())
	return err
}
