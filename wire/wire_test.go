package wire

import (
	"bytes"
	"testing"
)

func TestFrameBuilderFlush(t *testing.T) {
	b := NewFrameBuilder(ServerSquelch)
	b.U32(1)

	var out bytes.Buffer
	if err := b.Flush(&out); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := []byte{0x04, 0x00, 0x00, 0x00, 0x1D, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}
	if !bytes.Equal(out.Bytes(), want) {
		t.Fatalf("got % x, want % x", out.Bytes(), want)
	}
}

func TestFrameBuilderLenMatchesPayload(t *testing.T) {
	b := NewFrameBuilder(ServerMovieAttribute)
	b.Str("movie").Str("/tmp/foo.swf")

	var out bytes.Buffer
	if err := b.Flush(&out); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	declared := out.Bytes()[0:4]
	payloadLen := len(out.Bytes()) - 8
	gotLen := uint32(declared[0]) | uint32(declared[1])<<8 | uint32(declared[2])<<16 | uint32(declared[3])<<24
	if int(gotLen) != payloadLen {
		t.Fatalf("declared len %d != actual payload len %d", gotLen, payloadLen)
	}
}

func TestReaderRoundTripU32(t *testing.T) {
	b := NewFrameBuilder(ServerSquelch)
	b.U32(0xdeadbeef)
	r := NewReader(b.buf.Bytes())
	got, err := r.ReadU32()
	if err != nil {
		t.Fatalf("ReadU32: %v", err)
	}
	if got != 0xdeadbeef {
		t.Fatalf("got %#x, want %#x", got, 0xdeadbeef)
	}
	if r.Remaining() != 0 {
		t.Fatalf("expected no remaining bytes, got %d", r.Remaining())
	}
}

func TestReaderRoundTripString(t *testing.T) {
	b := NewFrameBuilder(ServerSquelch)
	b.Str("hunter2")
	r := NewReader(b.buf.Bytes())
	got, err := r.ReadString()
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if string(got) != "hunter2" {
		t.Fatalf("got %q, want %q", got, "hunter2")
	}
}

func TestReaderEmptyString(t *testing.T) {
	r := NewReader([]byte{0x00})
	got, err := r.ReadString()
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestReaderSwitch(t *testing.T) {
	cases := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"on", true, false},
		{"off", false, false},
		{"yes", false, true},
	}
	for _, c := range cases {
		r := NewReader(append([]byte(c.in), 0))
		got, err := r.ReadSwitch()
		if (err != nil) != c.wantErr {
			t.Fatalf("ReadSwitch(%q): err=%v, wantErr=%v", c.in, err, c.wantErr)
		}
		if err == nil && got != c.want {
			t.Fatalf("ReadSwitch(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestReaderShortU32(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	if _, err := r.ReadU32(); err != ErrShortRead {
		t.Fatalf("expected ErrShortRead, got %v", err)
	}
}

func TestReaderUnterminatedString(t *testing.T) {
	r := NewReader([]byte{'a', 'b', 'c'})
	if _, err := r.ReadString(); err != ErrNoTerminator {
		t.Fatalf("expected ErrNoTerminator, got %v", err)
	}
}

func TestZeroLengthPayloadIsLegal(t *testing.T) {
	b := NewFrameBuilder(ServerContinue)
	var out bytes.Buffer
	if err := b.Flush(&out); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	want := []byte{0x00, 0x00, 0x00, 0x00, 0x11, 0x00, 0x00, 0x00}
	if !bytes.Equal(out.Bytes(), want) {
		t.Fatalf("got % x, want % x", out.Bytes(), want)
	}
}
