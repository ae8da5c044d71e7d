package debugger

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/haydenc/swfdbg/internal/logging"
	"github.com/haydenc/swfdbg/wire"
)

// pollDeadline bounds each read attempt. Go's net.Conn has no portable
// "set nonblocking" analogous to Rust's TcpStream::set_nonblocking, so
// Tick emulates it: a short future deadline returns immediately if data
// is already buffered, and returns a timeout (treated as "no progress")
// otherwise, without ever blocking the host's VM loop for long. See
// DESIGN.md for the tradeoff against a true OS-level nonblocking fd.
const pollDeadline = time.Millisecond

type stage int

const (
	stageHeader stage = iota
	stageBody
)

// Tick advances the packet reader by at most one I/O operation (spec
// §4.4, §5). It is the only place the session reads from its stream.
func (s *Session) Tick() TickOutcome {
	if s.conn == nil {
		return TickNothing
	}

	if s.state.buf == nil {
		s.state.stage = stageHeader
		s.state.buf = make([]byte, 8)
		s.state.have = 0
	}

	if s.state.stage == stageBody && len(s.state.buf) == 0 {
		return s.dispatchBody(nil)
	}

	if err := s.conn.SetReadDeadline(time.Now().Add(pollDeadline)); err != nil {
		s.detach(err)
		return TickNothing
	}

	n, err := s.conn.Read(s.state.buf[s.state.have:])
	if n > 0 {
		s.state.have += n
		s.Metrics.BytesRead.Add(uint64(n))
	}
	if err != nil {
		if isNoProgress(err) {
			return TickNothing
		}
		s.detach(err)
		return TickNothing
	}

	if s.state.have < len(s.state.buf) {
		return TickNothing
	}

	switch s.state.stage {
	case stageHeader:
		length := binary.LittleEndian.Uint32(s.state.buf[0:4])
		kind := wire.ClientMessageKind(binary.LittleEndian.Uint32(s.state.buf[4:8]))
		if length > wire.MaxFrameLength {
			s.detach(fmt.Errorf("%s: declared length %d: %w", kind, length, wire.ErrFrameTooLarge))
			return TickNothing
		}
		s.state.kind = kind
		s.state.stage = stageBody
		s.state.buf = make([]byte, length)
		s.state.have = 0
		return TickNothing
	default: // stageBody
		return s.dispatchBody(s.state.buf)
	}
}

func (s *Session) dispatchBody(body []byte) TickOutcome {
	kind := s.state.kind
	s.state.reset()
	s.Metrics.FramesRead.Add(1)

	resume, err := s.dispatch(kind, wire.NewReader(body))
	if err != nil {
		s.Metrics.DispatchFailed.Add(1)
		s.logger.Debug("dropped malformed message", logging.Kind(kind), logging.Err(err))
		return TickSuspended
	}
	if resume {
		return TickContinue
	}
	return TickSuspended
}

// isNoProgress reports whether err represents "no data available yet"
// rather than a broken connection: a deadline expiry from our own
// polling deadline.
func isNoProgress(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) {
		return ne.Timeout()
	}
	return false
}

// detach drops the stream on a genuine I/O failure; the session
// degrades to null behavior for the rest of the process (spec §7
// "broken stream is detected via read failure").
func (s *Session) detach(err error) {
	s.logger.Warn("debugger stream detached", logging.Err(err))
	s.conn = nil
	s.state.reset()
}
