// Package wire implements the framing and primitive serialization for the
// legacy remote-debugger protocol: a length-prefixed, kind-tagged binary
// message format that must be reproduced bit-exactly because the client
// (a JPEX-style debugger GUI) is not under our control.
package wire

import "fmt"

// ClientMessageKind identifies a request sent by the debugger client.
type ClientMessageKind uint32

// Client-to-server message codes. The full set is accepted even though
// only a subset (see debugger/dispatch.go) has a real handler; everything
// else is logged and ignored per the protocol's tolerance for unknown
// codes.
const (
	ClientZoomIn               ClientMessageKind = 0x00
	ClientZoomOut              ClientMessageKind = 0x01
	ClientZoomComplete         ClientMessageKind = 0x02
	ClientHome                 ClientMessageKind = 0x03
	ClientSetQuality           ClientMessageKind = 0x04
	ClientPlay                 ClientMessageKind = 0x05
	ClientLoop                 ClientMessageKind = 0x06
	ClientRewind               ClientMessageKind = 0x07
	ClientForward              ClientMessageKind = 0x08
	ClientBack                 ClientMessageKind = 0x09
	ClientPrint                ClientMessageKind = 0x0A
	ClientSetField             ClientMessageKind = 0x0B
	ClientSetProperty          ClientMessageKind = 0x0C
	ClientTerminateSession     ClientMessageKind = 0x0D
	ClientRequestProps         ClientMessageKind = 0x0E
	ClientContinue             ClientMessageKind = 0x0F
	ClientSuspend              ClientMessageKind = 0x10
	ClientSetBreak             ClientMessageKind = 0x11
	ClientClearBreak           ClientMessageKind = 0x12
	ClientClearAllBreak        ClientMessageKind = 0x13
	ClientStepOver             ClientMessageKind = 0x14
	ClientStepInto             ClientMessageKind = 0x15
	ClientStepOut              ClientMessageKind = 0x16
	ClientProcessedTag         ClientMessageKind = 0x17
	ClientSetSquelch           ClientMessageKind = 0x18
	ClientGetField             ClientMessageKind = 0x19
	ClientGetFuncName          ClientMessageKind = 0x1A
	ClientGetDebugOption       ClientMessageKind = 0x1B
	ClientSetDebugOption       ClientMessageKind = 0x1C
	ClientAddWatch             ClientMessageKind = 0x1D
	ClientRemoveWatch          ClientMessageKind = 0x1E
	ClientStepContinue         ClientMessageKind = 0x1F
	ClientGetContent           ClientMessageKind = 0x20
	ClientGetDebugContent      ClientMessageKind = 0x21
	ClientGetFieldGetterInvoke ClientMessageKind = 0x22
	ClientGetSuspendReason     ClientMessageKind = 0x23
	ClientGetActions           ClientMessageKind = 0x24
	ClientSetActions           ClientMessageKind = 0x25
	ClientGetInfo              ClientMessageKind = 0x26
	ClientGetConstantPool      ClientMessageKind = 0x27
	ClientGetFuncInfo          ClientMessageKind = 0x28
	ClientAddWatch2            ClientMessageKind = 0x31
	ClientRemoveWatch2         ClientMessageKind = 0x32
)

var clientMessageNames = map[ClientMessageKind]string{
	ClientZoomIn:               "ZoomIn",
	ClientZoomOut:              "ZoomOut",
	ClientZoomComplete:         "ZoomComplete",
	ClientHome:                 "Home",
	ClientSetQuality:           "SetQuality",
	ClientPlay:                 "Play",
	ClientLoop:                 "Loop",
	ClientRewind:               "Rewind",
	ClientForward:              "Forward",
	ClientBack:                 "Back",
	ClientPrint:                "Print",
	ClientSetField:             "SetField",
	ClientSetProperty:          "SetProperty",
	ClientTerminateSession:     "TerminateSession",
	ClientRequestProps:         "RequestProps",
	ClientContinue:             "Continue",
	ClientSuspend:              "Suspend",
	ClientSetBreak:             "SetBreak",
	ClientClearBreak:           "ClearBreak",
	ClientClearAllBreak:        "ClearAllBreak",
	ClientStepOver:             "StepOver",
	ClientStepInto:             "StepInto",
	ClientStepOut:              "StepOut",
	ClientProcessedTag:         "ProcessedTag",
	ClientSetSquelch:           "SetSquelch",
	ClientGetField:             "GetField",
	ClientGetFuncName:          "GetFuncName",
	ClientGetDebugOption:       "GetDebugOption",
	ClientSetDebugOption:       "SetDebugOption",
	ClientAddWatch:             "AddWatch",
	ClientRemoveWatch:          "RemoveWatch",
	ClientStepContinue:         "StepContinue",
	ClientGetContent:           "GetContent",
	ClientGetDebugContent:      "GetDebugContent",
	ClientGetFieldGetterInvoke: "GetFieldGetterInvoker",
	ClientGetSuspendReason:     "GetSuspendReason",
	ClientGetActions:           "GetActions",
	ClientSetActions:           "SetActions",
	ClientGetInfo:              "GetInfo",
	ClientGetConstantPool:      "GetConstantPool",
	ClientGetFuncInfo:          "GetFuncInfo",
	ClientAddWatch2:            "AddWatch2",
	ClientRemoveWatch2:         "RemoveWatch2",
}

func (k ClientMessageKind) String() string {
	if name, ok := clientMessageNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ClientMessageKind(0x%02X)", uint32(k))
}

// ParseClientMessageKind reports whether code names a recognized
// client message kind. Unrecognized codes are not an error; the caller
// decides whether to log-and-ignore per the protocol's tolerance.
func ParseClientMessageKind(code uint32) (ClientMessageKind, bool) {
	k := ClientMessageKind(code)
	_, ok := clientMessageNames[k]
	return k, ok
}

// ServerMessageKind identifies a response or notification sent to the
// debugger client.
type ServerMessageKind uint32

const (
	ServerMovieAttribute  ServerMessageKind = 0x0C
	ServerContinue        ServerMessageKind = 0x11
	ServerNumSwdEntries   ServerMessageKind = 0x14
	ServerSetVersion      ServerMessageKind = 0x1A
	ServerSquelch         ServerMessageKind = 0x1D
	ServerDebuggerOption  ServerMessageKind = 0x20
	ServerSwfImage        ServerMessageKind = 0x22
	ServerSwdImage        ServerMessageKind = 0x23
	ServerSuspendReason   ServerMessageKind = 0x28
	ServerSwfInfo         ServerMessageKind = 0x2A
)

var serverMessageNames = map[ServerMessageKind]string{
	ServerMovieAttribute: "MovieAttribute",
	ServerContinue:       "Continue",
	ServerNumSwdEntries:  "NumSwdEntries",
	ServerSetVersion:     "SetVersion",
	ServerSquelch:        "Squelch",
	ServerDebuggerOption: "DebuggerOption",
	ServerSwfImage:       "SwfImage",
	ServerSwdImage:       "SwdImage",
	ServerSuspendReason:  "SuspendReason",
	ServerSwfInfo:        "SwfInfo",
}

func (k ServerMessageKind) String() string {
	if name, ok := serverMessageNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ServerMessageKind(0x%02X)", uint32(k))
}

// SuspendReason explains why the host paused script execution.
type SuspendReason uint16

const (
	SuspendUnknown      SuspendReason = 0
	SuspendBreakpoint   SuspendReason = 1
	SuspendWatch        SuspendReason = 2
	SuspendFault        SuspendReason = 3
	SuspendStopRequest  SuspendReason = 4
	SuspendStep         SuspendReason = 5
	SuspendHalt         SuspendReason = 6
	SuspendScriptLoaded SuspendReason = 7
)

func (r SuspendReason) String() string {
	switch r {
	case SuspendUnknown:
		return "Unknown"
	case SuspendBreakpoint:
		return "Breakpoint"
	case SuspendWatch:
		return "Watch"
	case SuspendFault:
		return "Fault"
	case SuspendStopRequest:
		return "StopRequest"
	case SuspendStep:
		return "Step"
	case SuspendHalt:
		return "Halt"
	case SuspendScriptLoaded:
		return "ScriptLoaded"
	default:
		return fmt.Sprintf("SuspendReason(%d)", uint16(r))
	}
}
