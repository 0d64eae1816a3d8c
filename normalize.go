package bcxform

import "github.com/bcxform/bcxform/internal/blockio"

// NormalizeBC1 canonicalizes degenerate BC1 blocks in place: whenever a
// block's two colour endpoints are bit-identical, every one of its
// sixteen 2-bit indices already selects the same colour regardless of
// its value, except that index 3 decodes to transparent black when the
// block is in punch-through mode (colour0 <= colour1 as the raw
// little-endian RGB565 word). A block only qualifies for collapsing to
// index 0 when none of its indices is 3; such blocks are left
// untouched so the decoded pixels never change.
//
// blocks must be a byte slice whose length is a multiple of 8.
func NormalizeBC1(blocks []byte) error {
	const blockSize = 8
	if len(blocks)%blockSize != 0 {
		return &LengthError{Format: "BC1", Len: len(blocks), BlockSize: blockSize}
	}
	n := len(blocks) / blockSize
	for i := 0; i < n; i++ {
		block := blocks[i*blockSize : (i+1)*blockSize]
		c0 := blockio.U16(block[0:2])
		c1 := blockio.U16(block[2:4])
		if c0 != c1 {
			continue
		}
		idx := blockio.U32(block[4:8])
		if indexFieldUsesSlot(idx, 3) {
			continue
		}
		blockio.PutU32(block[4:8], 0)
	}
	return nil
}

// NormalizeBC3Alpha canonicalizes degenerate BC3 alpha blocks in place:
// whenever a block's two alpha endpoints are bit-identical, indices 0
// through 5 all alias to alpha0 under six-value interpolation (the mode
// alpha0 <= alpha1 selects) and may be collapsed to 0. Indices 6 and 7 are never touched: in that
// same degenerate case they decode to the fixed values 0 and 255
// respectively, not to alpha0, so collapsing them would change the
// decoded pixel.
//
// blocks must be a byte slice whose length is a multiple of 16.
func NormalizeBC3Alpha(blocks []byte) error {
	const blockSize = 16
	if len(blocks)%blockSize != 0 {
		return &LengthError{Format: "BC3", Len: len(blocks), BlockSize: blockSize}
	}
	n := len(blocks) / blockSize
	for i := 0; i < n; i++ {
		block := blocks[i*blockSize : (i+1)*blockSize]
		a0 := block[0]
		a1 := block[1]
		if a0 != a1 {
			continue
		}
		field := block[2:8]
		indices := unpackAlphaIndices(field)
		for j := range indices {
			if indices[j] <= 5 {
				indices[j] = 0
			}
		}
		packAlphaIndices(field, indices)
	}
	return nil
}

// indexFieldUsesSlot reports whether any of the sixteen 2-bit fields
// packed LSB-first into idx equals slot.
func indexFieldUsesSlot(idx uint32, slot uint8) bool {
	for i := 0; i < 16; i++ {
		if uint8(idx>>(2*i))&0x3 == slot {
			return true
		}
	}
	return false
}

// unpackAlphaIndices extracts the sixteen 3-bit alpha-palette indices
// packed LSB-first across a 6-byte span, matching the BC2/BC3 wire
// layout (the same bit order internal/oracle's private alphaIndices
// decodes, reimplemented here so the root package does not depend on
// the test-only oracle package).
func unpackAlphaIndices(field []byte) [16]uint8 {
	bits := uint64(field[0]) | uint64(field[1])<<8 | uint64(field[2])<<16 |
		uint64(field[3])<<24 | uint64(field[4])<<32 | uint64(field[5])<<40
	var out [16]uint8
	for i := 0; i < 16; i++ {
		out[i] = uint8(bits>>(3*i)) & 0x7
	}
	return out
}

// packAlphaIndices is the inverse of unpackAlphaIndices.
func packAlphaIndices(field []byte, indices [16]uint8) {
	var bits uint64
	for i := 0; i < 16; i++ {
		bits |= uint64(indices[i]&0x7) << (3 * i)
	}
	field[0] = byte(bits)
	field[1] = byte(bits >> 8)
	field[2] = byte(bits >> 16)
	field[3] = byte(bits >> 24)
	field[4] = byte(bits >> 32)
	field[5] = byte(bits >> 40)
}
