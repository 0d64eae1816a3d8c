// Package header packs and unpacks the 32-bit embedded transform header
// used by C-ABI file-format integrations to recover the settings a
// transform was produced with, without a side channel. See FourCC-style
// constant tables such as deepteams-webp's internal/container package for
// the idiom this mirrors: small fixed-width bit-field constants plus a
// pack/unpack pair, nothing more.
package header

import "fmt"

// FormatTag identifies which pixel/block format a header describes. Only
// BC1, BC2 and BC3 are implemented by this package's pack/unpack helpers;
// the remaining tags are reserved for the surrounding file-format layer
// and are valid to round-trip through Tag() but not through
// PackBC/UnpackBC.
type FormatTag uint8

const (
	TagBC1 FormatTag = iota
	TagBC2
	TagBC3
	TagRGBA8888
	TagBGRA8888
	TagRGB888
)

const (
	numFormatTagBits = 4
	formatTagMask    = 1<<numFormatTagBits - 1
	maxFormatTag     = formatTagMask

	versionShift = numFormatTagBits
	numVersionBits = 2
	versionMask  = 1<<numVersionBits - 1

	modeShift = versionShift + numVersionBits
	numModeBits = 2
	modeMask  = 1<<numModeBits - 1

	splitShift = modeShift + numModeBits

	reservedShift = splitShift + 1
	reservedMask  = ^uint32(0) &^ (1<<reservedShift - 1)
)

// CurrentVersion is the only header version this package writes or
// accepts on read. A future incompatible payload layout would bump this
// and UnpackBC would reject anything else as Corruption.
const CurrentVersion = 0

// ErrCorruption is returned by UnpackBC whenever a header cannot be
// trusted: an out-of-range format tag, a non-zero reserved bit, or an
// unrecognised version. PackBC also returns it for a non-BC tag.
var ErrCorruption = fmt.Errorf("header: corrupted")

// BCMode mirrors the four decorrelation modes without importing
// internal/color565, keeping this package's dependency surface limited
// to bit arithmetic; callers convert at their boundary.
type BCMode uint8

const (
	ModeNone BCMode = iota
	ModeVariant1
	ModeVariant2
	ModeVariant3
)

// BCSettings is the payload carried by a BC1/BC2/BC3 header.
type BCSettings struct {
	Mode        BCMode
	ColourSplit bool
}

// PackBC encodes tag and settings into the 32-bit little-endian-on-write
// header value. tag must be TagBC1, TagBC2 or TagBC3.
func PackBC(tag FormatTag, s BCSettings) (uint32, error) {
	if tag != TagBC1 && tag != TagBC2 && tag != TagBC3 {
		return 0, fmt.Errorf("header: PackBC: %w: tag %d is not a BC format", ErrCorruption, tag)
	}
	v := uint32(tag) & formatTagMask
	v |= uint32(CurrentVersion&versionMask) << versionShift
	v |= uint32(s.Mode&modeMask) << modeShift
	if s.ColourSplit {
		v |= 1 << splitShift
	}
	return v, nil
}

// UnpackBC decodes a header packed by PackBC, rejecting any value this
// package did not itself produce: a non-BC tag, a reserved bit set, or
// an unknown version are all reported as ErrCorruption rather than
// silently misinterpreted.
func UnpackBC(v uint32) (FormatTag, BCSettings, error) {
	tag := FormatTag(v & formatTagMask)
	if tag != TagBC1 && tag != TagBC2 && tag != TagBC3 {
		return 0, BCSettings{}, fmt.Errorf("header: UnpackBC: %w: tag %d is not a BC format", ErrCorruption, tag)
	}
	if version := (v >> versionShift) & versionMask; version != CurrentVersion {
		return 0, BCSettings{}, fmt.Errorf("header: UnpackBC: %w: unknown version %d", ErrCorruption, version)
	}
	if v&reservedMask != 0 {
		return 0, BCSettings{}, fmt.Errorf("header: UnpackBC: %w: reserved bits set (%#x)", ErrCorruption, v&reservedMask)
	}
	s := BCSettings{
		Mode:        BCMode((v >> modeShift) & modeMask),
		ColourSplit: v&(1<<splitShift) != 0,
	}
	return tag, s, nil
}

// Tag extracts just the format tag from a header value, without
// validating the payload. Callers that need to route to a format-specific
// unpacker (PackBC/UnpackBC, or a future RGBA unpacker) call this first.
func Tag(v uint32) FormatTag {
	return FormatTag(v & formatTagMask)
}

func (t FormatTag) String() string {
	switch t {
	case TagBC1:
		return "BC1"
	case TagBC2:
		return "BC2"
	case TagBC3:
		return "BC3"
	case TagRGBA8888:
		return "RGBA8888"
	case TagBGRA8888:
		return "BGRA8888"
	case TagRGB888:
		return "RGB888"
	default:
		return fmt.Sprintf("FormatTag(%d)", uint8(t))
	}
}
