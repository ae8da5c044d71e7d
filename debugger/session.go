package debugger

import (
	"net"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/haydenc/swfdbg/internal/logging"
	"github.com/haydenc/swfdbg/swd"
	"github.com/haydenc/swfdbg/wire"
)

// properties holds the recognized debug options (spec §4.8). Every
// field here must have a matching arm in getDebugOption/handleSetDebugOption;
// an option name outside this set is rejected, never silently stored.
type properties struct {
	disableScriptStuckDialog bool
	disableScriptStuck       bool
	breakOnFault             bool
	enumerateOverride        bool
	notifyOnFailure          bool
	invokeSetters            bool
	wideLinePlayer           bool
	wideLineDebugger         bool
	swfLoadMessages          bool
	getterTimeout            uint32
	setterTimeout            uint32
}

// readState is the two-phase packet reader (spec §3, §4.4, §9). Exactly
// one of "awaiting header" / "awaiting body" holds at any time; folding
// the in-flight kind and buffer into one struct (rather than a pointer
// field plus a separately-sized buffer) makes that invariant visible at
// the type level.
type readState struct {
	stage stage
	kind  wire.ClientMessageKind
	buf   []byte
	have  int
}

func (s *readState) reset() {
	s.stage = stageHeader
	s.kind = 0
	s.buf = nil
	s.have = 0
}

// Session is the real Backend implementation: it owns a TCP stream (if
// connected), the recognized debug options, the loaded movie list, an
// optional SWD symbol table, and the in-flight packet state (spec §3).
type Session struct {
	conn    net.Conn
	path    string
	movies  []Movie
	swd     *swd.Table
	props   properties
	squelch bool

	state readState

	logger  logging.Logger
	Metrics Metrics
}

// NewSession creates a detached session for the movie at moviePath. It
// attempts to load a companion ".swd" file by replacing moviePath's
// extension; a missing or malformed SWD leaves the session without
// symbols rather than failing session creation (spec §4.7, §7).
func NewSession(moviePath string, logger logging.Logger) *Session {
	if logger == nil {
		logger = logging.Default()
	}
	s := &Session{
		path:   moviePath,
		logger: logger,
	}

	swdPath := withExtension(moviePath, ".swd")
	tbl, err := swd.Load(swdPath)
	if err != nil {
		s.logger.Debug("no swd symbols loaded", logging.Field{Key: "path", Value: swdPath}, logging.Err(err))
	} else {
		s.swd = tbl
		s.logger.Info("loaded swd symbols", logging.Field{Key: "path", Value: swdPath}, logging.Field{Key: "entries", Value: tbl.Len()})
	}
	return s
}

func withExtension(path, ext string) string {
	trimmed := strings.TrimSuffix(path, filepath.Ext(path))
	return trimmed + ext
}

// AddMovie appends m to the ordered movie list (spec §3 Lifecycle:
// movies are never removed; order is the wire index used by GetInfo).
func (s *Session) AddMovie(m Movie) {
	s.movies = append(s.movies, m)
}

// Connect dials 127.0.0.1:port, resets the packet reader, and sends the
// three-frame greeting (spec §4.5 "Connect (handshake)"). Reads are
// polled later by Tick, which sets a short read deadline per attempt.
// No server reply is awaited. Returns false (and leaves the session
// detached) on any dial failure. A zero port falls back to
// wire.DefaultPort, the port used in the reference handshake example.
func (s *Session) Connect(password string, port uint16) bool {
	if port == 0 {
		port = wire.DefaultPort
	}
	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(int(port)))
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		s.logger.Warn("debugger connect failed", logging.Field{Key: "addr", Value: addr}, logging.Err(err))
		return false
	}
	s.conn = conn
	s.state.reset()

	s.sendFrame(func(b *wire.FrameBuilder) { b.U32(0x0F) }, wire.ServerSetVersion)
	s.sendFrame(func(b *wire.FrameBuilder) { b.Str("movie").Str(s.path) }, wire.ServerMovieAttribute)
	s.sendFrame(func(b *wire.FrameBuilder) { b.Str("password").Str(password) }, wire.ServerMovieAttribute)

	return true
}

// sendFrame builds and flushes one response frame, logging (never
// propagating) any write failure, per spec §4.1 "I/O failure occurs
// only at final flush and is logged, never propagated to the host."
func (s *Session) sendFrame(build func(*wire.FrameBuilder), kind wire.ServerMessageKind) {
	if s.conn == nil {
		return
	}
	b := wire.NewFrameBuilder(kind)
	build(b)
	if err := b.Flush(s.conn); err != nil {
		s.Metrics.WriteFailed.Add(1)
		s.logger.Warn("debugger write failed", logging.Kind(kind), logging.Err(err))
		return
	}
	s.Metrics.FramesWritten.Add(1)
	s.Metrics.BytesWritten.Add(uint64(b.Len()))
}

// OnPosition reports whether pc has a known breakpoint, per spec
// §4.5: the host uses a true result to decide whether to suspend.
func (s *Session) OnPosition(pc uint32) bool {
	if s.swd == nil {
		return false
	}
	_, ok := s.swd.ResolveBreakpoint(pc)
	return ok
}

// OnScriptLoaded sends a SuspendReason(ScriptLoaded) frame followed by
// the call-stack payload (spec §4.5, §4.9). stack is never retained
// past this call.
func (s *Session) OnScriptLoaded(stack CallStack) {
	s.sendFrame(func(b *wire.FrameBuilder) {
		b.U16(uint16(wire.SuspendScriptLoaded))
		writeCallStack(b, stack)
	}, wire.ServerSuspendReason)
}
