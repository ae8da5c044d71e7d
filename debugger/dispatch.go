package debugger

import (
	"strconv"

	"github.com/haydenc/swfdbg/internal/logging"
	"github.com/haydenc/swfdbg/wire"
)

// dispatch routes one complete message body to its handler (spec
// §4.5). A reader failure drops the whole message (resume=false,
// err!=nil) without mutating session state beyond whatever the
// handler already applied before the failing read -- in practice every
// handler below reads all of its fields before mutating anything, so a
// failure leaves the session untouched.
func (s *Session) dispatch(kind wire.ClientMessageKind, r *wire.Reader) (resume bool, err error) {
	switch kind {
	case wire.ClientSetSquelch:
		return false, s.handleSetSquelch(r)
	case wire.ClientGetDebugOption:
		return false, s.handleGetDebugOption(r)
	case wire.ClientSetDebugOption:
		return false, s.handleSetDebugOption(r)
	case wire.ClientGetInfo:
		return false, s.handleGetInfo()
	case wire.ClientGetContent, wire.ClientGetDebugContent:
		return false, s.handleGetContent()
	case wire.ClientContinue:
		return true, nil
	default:
		if _, known := wire.ParseClientMessageKind(uint32(kind)); known {
			s.logger.Debug("ignoring recognized message", logging.Kind(kind))
		} else {
			s.logger.Debug("ignoring unknown message code", logging.Field{Key: "code", Value: uint32(kind)})
		}
		return false, nil
	}
}

func (s *Session) handleSetSquelch(r *wire.Reader) error {
	v, err := r.ReadU32()
	if err != nil {
		return err
	}
	s.squelch = v != 0
	s.sendFrame(func(b *wire.FrameBuilder) {
		b.U32(boolToU32(s.squelch))
	}, wire.ServerSquelch)
	return nil
}

// handleGetDebugOption replies with the current value of a recognized
// option. An unrecognized option name is dropped silently (spec §4.5,
// §7): that is not a reader failure, so it returns nil rather than an
// error.
func (s *Session) handleGetDebugOption(r *wire.Reader) error {
	name, err := r.ReadString()
	if err != nil {
		return err
	}
	value, ok := s.getDebugOption(string(name))
	if !ok {
		return nil
	}
	s.sendFrame(func(b *wire.FrameBuilder) {
		b.Bytes(name).Str(value)
	}, wire.ServerDebuggerOption)
	return nil
}

func (s *Session) getDebugOption(name string) (string, bool) {
	switch name {
	case "disable_script_stuck_dialog":
		return strconv.FormatBool(s.props.disableScriptStuckDialog), true
	case "disable_script_stuck":
		return strconv.FormatBool(s.props.disableScriptStuck), true
	case "break_on_fault":
		return strconv.FormatBool(s.props.breakOnFault), true
	case "enumerate_override":
		return strconv.FormatBool(s.props.enumerateOverride), true
	case "notify_on_failure":
		return strconv.FormatBool(s.props.notifyOnFailure), true
	case "invoke_setters":
		return strconv.FormatBool(s.props.invokeSetters), true
	case "wide_line_player":
		return strconv.FormatBool(s.props.wideLinePlayer), true
	case "wide_line_debugger":
		return strconv.FormatBool(s.props.wideLineDebugger), true
	case "swf_load_messages":
		return strconv.FormatBool(s.props.swfLoadMessages), true
	case "getter_timeout":
		return strconv.FormatUint(uint64(s.props.getterTimeout), 10), true
	case "setter_timeout":
		return strconv.FormatUint(uint64(s.props.setterTimeout), 10), true
	default:
		return "", false
	}
}

// handleSetDebugOption reads the option name, then a type-appropriate
// value (a switch for bools, a decimal string for u32s), and echoes the
// new value back. An unrecognized name is a silent no-op (spec §4.8).
func (s *Session) handleSetDebugOption(r *wire.Reader) error {
	name, err := r.ReadString()
	if err != nil {
		return err
	}

	switch string(name) {
	case "disable_script_stuck_dialog":
		return s.setBoolOption(r, name, &s.props.disableScriptStuckDialog)
	case "disable_script_stuck":
		return s.setBoolOption(r, name, &s.props.disableScriptStuck)
	case "break_on_fault":
		return s.setBoolOption(r, name, &s.props.breakOnFault)
	case "enumerate_override":
		return s.setBoolOption(r, name, &s.props.enumerateOverride)
	case "notify_on_failure":
		return s.setBoolOption(r, name, &s.props.notifyOnFailure)
	case "invoke_setters":
		return s.setBoolOption(r, name, &s.props.invokeSetters)
	case "wide_line_player":
		return s.setBoolOption(r, name, &s.props.wideLinePlayer)
	case "wide_line_debugger":
		return s.setBoolOption(r, name, &s.props.wideLineDebugger)
	case "swf_load_messages":
		return s.setBoolOption(r, name, &s.props.swfLoadMessages)
	case "getter_timeout":
		return s.setU32Option(r, name, &s.props.getterTimeout)
	case "setter_timeout":
		return s.setU32Option(r, name, &s.props.setterTimeout)
	default:
		return nil
	}
}

func (s *Session) setBoolOption(r *wire.Reader, name []byte, field *bool) error {
	v, err := r.ReadSwitch()
	if err != nil {
		return err
	}
	*field = v
	s.sendFrame(func(b *wire.FrameBuilder) {
		b.Bytes(name).Str(strconv.FormatBool(v))
	}, wire.ServerDebuggerOption)
	return nil
}

func (s *Session) setU32Option(r *wire.Reader, name []byte, field *uint32) error {
	raw, err := r.ReadString()
	if err != nil {
		return err
	}
	v, err := strconv.ParseUint(string(raw), 10, 32)
	if err != nil {
		return nil // malformed decimal string: leave the option unchanged, per spec §8.
	}
	*field = uint32(v)
	s.sendFrame(func(b *wire.FrameBuilder) {
		b.Bytes(name).Bytes(raw)
	}, wire.ServerDebuggerOption)
	return nil
}

// handleGetInfo replies with one SwfInfo record per loaded movie (spec
// §4.5 GetInfo). The "port" and count fields are hard-coded to zero;
// whether the reference client requires populated values is
// unconfirmed (spec §9 Open Questions) -- implemented as specified.
func (s *Session) handleGetInfo() error {
	s.sendFrame(func(b *wire.FrameBuilder) {
		b.U16(uint16(len(s.movies)))
		for i, m := range s.movies {
			b.U32(uint32(i))
			b.Usize(m.Identity())
			b.Bool(false)
			b.U8(0)
			b.U16(0)
			b.U32(m.UncompressedLen())
			b.U32(0) // script count
			b.U32(0) // offset count
			b.U32(0) // breakpoint count
			b.U32(0) // port
			b.Str("") // path
			b.Str("") // url
			b.Str("") // host
		}
	}, wire.ServerSwfInfo)
	return nil
}

// handleGetContent answers GetContent/GetDebugContent with a known-
// minimal empty SwfImage, sufficient for the reference client (spec
// §4.5, §9 Open Questions).
func (s *Session) handleGetContent() error {
	s.sendFrame(func(b *wire.FrameBuilder) {}, wire.ServerSwfImage)
	return nil
}

func boolToU32(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}
