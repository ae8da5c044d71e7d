package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// ErrShortRead is returned by Reader methods when the remaining buffer
// does not hold enough bytes to satisfy the request.
var ErrShortRead = errors.New("wire: short read")

// ErrNoTerminator is returned by ReadString when no NUL terminator is
// found in the remaining buffer.
var ErrNoTerminator = errors.New("wire: unterminated string")

// ErrBadSwitch is returned by ReadSwitch when the string is neither
// "on" nor "off".
var ErrBadSwitch = errors.New("wire: invalid on/off switch")

// ErrFrameTooLarge is returned when a frame header declares a payload
// length exceeding MaxFrameLength.
var ErrFrameTooLarge = errors.New("wire: frame exceeds MaxFrameLength")

// Reader is a forward-only cursor over a request payload. Every read
// method consumes exactly the bytes it reports consuming; a failed
// read consumes nothing, matching the source protocol's all-or-nothing
// field reads (a malformed payload drops the whole message, never a
// partially-applied one).
type Reader struct {
	data []byte
}

// NewReader wraps a payload buffer for sequential field reads.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining reports how many unconsumed bytes are left.
func (r *Reader) Remaining() int {
	return len(r.data)
}

// ReadU32 consumes a little-endian uint32. It returns ErrShortRead
// rather than panicking when fewer than 4 bytes remain -- the source
// has two inconsistent variants here (one returns None, the other
// panics via get_u32_le); the safe behavior is the one this adapter
// implements.
func (r *Reader) ReadU32() (uint32, error) {
	if len(r.data) < 4 {
		return 0, ErrShortRead
	}
	v := binary.LittleEndian.Uint32(r.data[:4])
	r.data = r.data[4:]
	return v, nil
}

// ReadString consumes bytes up to and including the next NUL and
// returns the bytes before it (the terminator itself is discarded).
func (r *Reader) ReadString() ([]byte, error) {
	i := bytes.IndexByte(r.data, 0)
	if i < 0 {
		return nil, ErrNoTerminator
	}
	s := r.data[:i]
	r.data = r.data[i+1:]
	return s, nil
}

// ReadSwitch reads a NUL-terminated string and maps it to a bool:
// "on" -> true, "off" -> false, anything else is an error.
func (r *Reader) ReadSwitch() (bool, error) {
	saved := r.data
	s, err := r.ReadString()
	if err != nil {
		return false, err
	}
	switch string(s) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		r.data = saved
		return false, ErrBadSwitch
	}
}
