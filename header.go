package bcxform

import (
	"fmt"

	"github.com/bcxform/bcxform/internal/header"
)

// Format identifies which of the three block formats a call operates
// on, independent of any particular buffer.
type Format int

const (
	FormatBC1 Format = iota
	FormatBC2
	FormatBC3
)

func (f Format) String() string {
	switch f {
	case FormatBC1:
		return "BC1"
	case FormatBC2:
		return "BC2"
	case FormatBC3:
		return "BC3"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

func (f Format) tag() header.FormatTag {
	switch f {
	case FormatBC1:
		return header.TagBC1
	case FormatBC2:
		return header.TagBC2
	default:
		return header.TagBC3
	}
}

// EncodeHeader packs format and settings into the 32-bit embedded
// header described in §3.5, for callers that need to persist settings
// alongside a transformed buffer.
func EncodeHeader(f Format, s TransformSettings) (uint32, error) {
	v, err := header.PackBC(f.tag(), header.BCSettings{
		Mode:        header.BCMode(s.Mode),
		ColourSplit: s.SplitColourEndpoints,
	})
	if err != nil {
		return 0, err
	}
	return v, nil
}

// DecodeHeader unpacks a header produced by EncodeHeader. An out-of-
// range format tag, a non-zero reserved bit, or an unknown version are
// all reported as header.ErrCorruption rather than silently
// misinterpreted.
func DecodeHeader(v uint32) (Format, TransformSettings, error) {
	tag, s, err := header.UnpackBC(v)
	if err != nil {
		return 0, TransformSettings{}, err
	}
	var f Format
	switch tag {
	case header.TagBC1:
		f = FormatBC1
	case header.TagBC2:
		f = FormatBC2
	case header.TagBC3:
		f = FormatBC3
	}
	return f, TransformSettings{
		Mode:                 DecorrelationMode(s.Mode),
		SplitColourEndpoints: s.ColourSplit,
	}, nil
}
