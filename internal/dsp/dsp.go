// Package dsp is the dispatch layer and SIMD-family kernel set for the
// BC1/BC2/BC3 stream splitter/merger (spec §4.2, §4.3). It exposes one
// function-pointer pair (Split, Merge) overridden by family-specific
// batched kernels when the host CPU supports them.
//
// The override chain mirrors deepteams-webp's internal/dsp dispatch
// pattern: a package-level Init() assigns the portable defaults, and a
// build-tagged per-arch init() function layers family-specific overrides
// on top, selected by one-shot CPU feature queries. Every tier computes
// bit-identical output to the scalar reference — the tiers differ only
// in how many blocks they process per inner-loop iteration before
// falling back to a scalar tail, never in the per-block arithmetic.
package dsp

// Layout describes where the shared colour-endpoint and index fields sit
// within one block of a BC1/BC2/BC3 stream. Any bytes before ColourOff
// (BC2's explicit alpha, BC3's alpha endpoints + alpha indices) are not
// touched by these kernels — callers copy those spans independently.
type Layout struct {
	BlockSize int // total bytes per block
	ColourOff int // offset of the 4-byte colour0+colour1 pair
	IndexOff  int // offset of the 4-byte colour index field
}

// BC1Layout, BC2Layout and BC3Layout describe the colour/index portion of
// each format's block (spec §3.1).
var (
	BC1Layout = Layout{BlockSize: 8, ColourOff: 0, IndexOff: 4}
	BC2Layout = Layout{BlockSize: 16, ColourOff: 8, IndexOff: 12}
	BC3Layout = Layout{BlockSize: 16, ColourOff: 8, IndexOff: 12}
)

// Streams names the colour+index destination regions a Split/Merge call
// reads from or writes to. Colour0/Colour1 are used when ColourSplit is
// true, Colour is used when it is false; Index is always used.
type Streams struct {
	Colour0, Colour1, Colour, Index []byte
}

// Config selects one of the 8 per-format transform configurations.
type Config struct {
	Mode        DecorrelateMode
	ColourSplit bool
}

// DecorrelateMode mirrors color565.Mode's four values without importing
// that package here, keeping this package's dependency surface limited
// to what its kernels actually touch. internal/split converts between
// the two at its boundary.
type DecorrelateMode uint8

const (
	DecorrelateNone DecorrelateMode = iota
	DecorrelateVariant1
	DecorrelateVariant2
	DecorrelateVariant3
)

// SplitFunc transforms n blocks of src (using layout) into the streams
// described by cfg.
type SplitFunc func(src []byte, n int, layout Layout, cfg Config, out Streams)

// MergeFunc is the inverse of SplitFunc: it reassembles n blocks into dst
// from the same stream set.
type MergeFunc func(in Streams, n int, layout Layout, cfg Config, dst []byte)

// Split and Merge are the active dispatch targets, assigned by Init and
// by the arch-specific override file.
var (
	Split SplitFunc
	Merge MergeFunc
)

// Family identifies which kernel tier is currently bound to Split/Merge.
// It exists purely for observability (tests assert every family reaches
// identical output) — it has no effect on behaviour.
type Family string

const (
	FamilyScalar     Family = "scalar"
	FamilySSE2       Family = "sse2"
	FamilyAVX2       Family = "avx2"
	FamilyAVX512F    Family = "avx512f"
	FamilyAVX512VBMI Family = "avx512vbmi"
	FamilyNEON       Family = "neon"
)

// ActiveFamily reports the family currently bound by runtime dispatch.
var ActiveFamily = FamilyScalar

// DisableRuntimeDispatch is read only by the arch-specific init() funcs,
// which skip binding a faster family when it is true. Those funcs run
// during package initialisation, before code in any importing package
// can assign this variable, so assigning it later does not change the
// bound family. Init binds the scalar family whatever value it holds.
var DisableRuntimeDispatch = false

// Init binds Split/Merge to the scalar reference. The arch-specific
// override file's init() runs after this one (Go guarantees all of a
// package's init funcs complete before any caller code runs) and layers
// a faster family on top when available and permitted.
func Init() {
	Split = splitBlocks
	Merge = mergeBlocks
	ActiveFamily = FamilyScalar
}

func init() {
	Init()
}
