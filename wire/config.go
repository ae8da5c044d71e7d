package wire

// MaxFrameLength bounds a single frame's declared payload length. It
// guards the packet loop against trusting an adversarial or corrupt
// header into an oversized allocation, grounded on the teacher's own
// maxBinaryPayload safety limit (internal/connectionmgr/binary.go),
// enforced the same way: reject before allocating, not after.
const MaxFrameLength = 16 * 1024 * 1024 // 16 MiB

// DefaultPort is the debugger port used in the reference handshake
// example (spec §8 scenario 1) when the host does not otherwise
// specify one.
const DefaultPort uint16 = 7935
