package debugger

import "github.com/haydenc/swfdbg/wire"

// writeCallStack appends the call-stack payload that follows a
// SuspendReason frame's 16-bit reason code (spec §4.9):
//
//	frame_count uint32 LE
//	for each frame, reversed (innermost last, see below):
//	  line_no uint16 LE = 0xFFFF
//	  flags   uint16 LE = 0
//	  offset  usize  LE = 0
//	  name    bytes + NUL
//
// name is the literal "global$init" for a frame where IsGlobalInit is
// true, matching the source's Avm2CallNode::GlobalInit vs
// Avm2CallNode::Method(exec) split (serialize.rs), rather than an
// implicit convention layered onto Name() itself.
//
// Per spec §9 Open Questions, the source iterates its call-stack nodes
// in reverse without a confirmed rationale; this adapter preserves that
// order (outermost frame first in the wire payload) since no reference
// client capture was available to decide otherwise -- see DESIGN.md.
func writeCallStack(b *wire.FrameBuilder, stack CallStack) {
	if stack == nil {
		b.U32(0)
		return
	}
	frames := stack.Frames()
	b.U32(uint32(len(frames)))
	for i := len(frames) - 1; i >= 0; i-- {
		b.U16(0xFFFF)
		b.U16(0)
		b.Usize(0)
		if frames[i].IsGlobalInit() {
			b.Str("global$init")
		} else {
			b.Str(frames[i].Name())
		}
	}
}
