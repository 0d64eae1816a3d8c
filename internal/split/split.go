// Package split drives internal/dsp's per-block colour/index kernels
// across a whole block stream for a given format, and owns the one piece
// of work internal/dsp deliberately knows nothing about: copying each
// format's alpha-bearing prefix region verbatim between the interleaved
// block layout and its contiguous output slot.
package split

import "github.com/bcxform/bcxform/internal/dsp"

// Format describes the fixed byte geometry of one of BC1/BC2/BC3: how
// large a block is, how many leading bytes of each block are untouched
// by colour/index transforms, how that leading span is itself divided
// into independently-grouped regions, and the dsp.Layout the
// colour/index transforms operate on.
//
// PrefixRegionSizes lists, in the order the bytes appear within a
// block, the size of each prefix sub-region that gets its own
// contiguous span in the output. BC1 has none. BC2's explicit alpha
// field has no further internal structure worth separating, so it is
// one 8-byte region. BC3's prefix packs two logically independent
// fields per block — a 2-byte (alpha0, alpha1) endpoint pair and a
// 6-byte alpha-index field — and must produce two separate regions
// (an N*2-byte alpha-endpoints array followed by an N*6-byte
// alpha-indices array), not one combined N*8-byte array, or blocks
// beyond the first stop being byte-identical across formats that
// otherwise share a region-by-region layout.
type Format struct {
	Name              string
	BlockSize         int
	PrefixSize        int
	PrefixRegionSizes []int
	Layout            dsp.Layout
}

// BC1, BC2 and BC3 are the three formats this package supports.
var (
	BC1 = Format{Name: "BC1", BlockSize: 8, PrefixSize: 0, Layout: dsp.BC1Layout}
	BC2 = Format{Name: "BC2", BlockSize: 16, PrefixSize: 8, PrefixRegionSizes: []int{8}, Layout: dsp.BC2Layout}
	BC3 = Format{Name: "BC3", BlockSize: 16, PrefixSize: 8, PrefixRegionSizes: []int{2, 6}, Layout: dsp.BC3Layout}
)

// NumBlocks returns how many blocks a byte length of this format holds.
// Callers are expected to have already validated byteLen%BlockSize==0.
func (f Format) NumBlocks(byteLen int) int {
	return byteLen / f.BlockSize
}

// ColourBytes returns the byte length of the colour region(s) for n
// blocks: 4 bytes/block whether or not endpoints are split, since a
// split only divides the same bytes into two adjacent regions.
func (f Format) ColourBytes(n int) int {
	return n * 4
}

// IndexBytes returns the byte length of the index region for n blocks.
func (f Format) IndexBytes(n int) int {
	return n * 4
}

// Transform applies the forward transform: src holds n whole blocks of
// f's format, dst receives exactly len(src) bytes arranged in the
// region order fixed by the format (prefix, colour region(s), index
// region). src and dst must not overlap. Callers (the public facade) are
// responsible for length preconditions; this function assumes
// len(src)%f.BlockSize == 0 and len(dst) >= len(src).
func Transform(f Format, src, dst []byte, cfg dsp.Config) {
	n := f.NumBlocks(len(src))
	copyPrefixForward(f, src, dst, n)
	streams := regionStreams(f, dst[n*f.PrefixSize:], n, cfg)
	dsp.Split(src, n, f.Layout, cfg, streams)
}

// Untransform applies the inverse transform: src holds the region-order
// layout produced by Transform, dst receives n reassembled blocks.
func Untransform(f Format, src, dst []byte, cfg dsp.Config) {
	n := f.NumBlocks(len(dst))
	copyPrefixInverse(f, src, dst, n)
	streams := regionStreams(f, src[n*f.PrefixSize:], n, cfg)
	dsp.Merge(streams, n, f.Layout, cfg, dst)
}

// copyPrefixForward scatters each block's prefix bytes into one
// contiguous region per entry of f.PrefixRegionSizes, in the order
// those regions appear in the output (spec §3.3): region k occupies
// n*f.PrefixRegionSizes[k] bytes, placed immediately after region k-1.
func copyPrefixForward(f Format, src, dst []byte, n int) {
	blockOff, dstOff := 0, 0
	for _, size := range f.PrefixRegionSizes {
		region := dst[dstOff : dstOff+n*size]
		for i := 0; i < n; i++ {
			block := src[i*f.BlockSize+blockOff:]
			copy(region[i*size:(i+1)*size], block[:size])
		}
		blockOff += size
		dstOff += n * size
	}
}

// copyPrefixInverse is copyPrefixForward's inverse: it gathers each
// region back into its per-block position.
func copyPrefixInverse(f Format, src, dst []byte, n int) {
	blockOff, srcOff := 0, 0
	for _, size := range f.PrefixRegionSizes {
		region := src[srcOff : srcOff+n*size]
		for i := 0; i < n; i++ {
			block := dst[i*f.BlockSize+blockOff:]
			copy(block[:size], region[i*size:(i+1)*size])
		}
		blockOff += size
		srcOff += n * size
	}
}

// regionStreams slices the portion of the output/input buffer following
// the prefix region into the colour/index spans dsp.Split and dsp.Merge
// read and write, honouring cfg.ColourSplit's region-order rule from
// spec §3.3: a split colour region occupies the same position a single
// 4N-byte colours region would.
func regionStreams(f Format, region []byte, n int, cfg dsp.Config) dsp.Streams {
	colourBytes := f.ColourBytes(n)
	var s dsp.Streams
	if cfg.ColourSplit {
		half := colourBytes / 2
		s.Colour0 = region[:half]
		s.Colour1 = region[half:colourBytes]
	} else {
		s.Colour = region[:colourBytes]
	}
	s.Index = region[colourBytes : colourBytes+f.IndexBytes(n)]
	return s
}
