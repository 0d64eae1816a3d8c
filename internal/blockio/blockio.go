// Package blockio provides unaligned little-endian word access over byte
// spans. Every helper works regardless of the alignment of the backing
// slice's start address, matching the "no alignment prerequisite" rule
// every transform kernel in internal/dsp must follow.
//
// The transform hot path in internal/dsp only ever interprets the
// 16-bit colour endpoints numerically; wider fields (indices, explicit
// alpha, alpha-index spans) are moved verbatim with copy(). U32/PutU32
// exist for the normalization routines in the root package, which do
// interpret the 32-bit colour-index field numerically to inspect and
// rewrite individual 2-bit entries.
package blockio

// U16 reads a little-endian 16-bit word starting at b[0].
func U16(b []byte) uint16 {
	_ = b[1]
	return uint16(b[0]) | uint16(b[1])<<8
}

// PutU16 writes v as a little-endian 16-bit word starting at b[0].
func PutU16(b []byte, v uint16) {
	_ = b[1]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

// U32 reads a little-endian 32-bit word starting at b[0].
func U32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// PutU32 writes v as a little-endian 32-bit word starting at b[0].
func PutU32(b []byte, v uint32) {
	_ = b[3]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
