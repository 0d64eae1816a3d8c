package bcxform

import (
	"fmt"

	"github.com/bcxform/bcxform/internal/dsp"
)

// DecorrelationMode selects one of the four endpoint mappings from
// internal/color565: None (identity) or one of three invertible
// YCoCg-R variants.
type DecorrelationMode uint8

const (
	None DecorrelationMode = iota
	Variant1
	Variant2
	Variant3
)

func (m DecorrelationMode) String() string {
	switch m {
	case None:
		return "None"
	case Variant1:
		return "Variant1"
	case Variant2:
		return "Variant2"
	case Variant3:
		return "Variant3"
	default:
		return fmt.Sprintf("DecorrelationMode(%d)", uint8(m))
	}
}

func (m DecorrelationMode) toDSP() dsp.DecorrelateMode {
	return dsp.DecorrelateMode(m)
}

// TransformSettings is the configuration tuple of §3.2: which
// decorrelation to apply to colour endpoints, and whether to split them
// into independent streams. Four decorrelation modes times two split
// states gives the eight enumerated configurations per format.
type TransformSettings struct {
	Mode                 DecorrelationMode
	SplitColourEndpoints bool
}

func (s TransformSettings) toDSP() dsp.Config {
	return dsp.Config{Mode: s.Mode.toDSP(), ColourSplit: s.SplitColourEndpoints}
}

// AllSettings enumerates all eight configurations in Comprehensive
// search order (§4.4.1). The order is not sequential over the
// (mode, split) product: it evaluates the least commonly winning
// configurations first and the two empirically dominant ones
// (Variant1 unsplit and split) last. The search keeps a candidate only
// when it is strictly smaller than the incumbent, so on a tie the
// earlier, less common candidate is kept. Ordering and the quoted real-
// world win frequencies are both carried over from the reference
// settings table rather than invented: Variant2/unsplit 0.9%,
// None/unsplit 1.0%, None/split 1.1%, Variant3/unsplit 1.9%,
// Variant3/split 2.7%, Variant2/split 3.5%, Variant1/unsplit 17.9%,
// Variant1/split 71.1%.
func AllSettings() [8]TransformSettings {
	return [8]TransformSettings{
		{Variant2, false},
		{None, false},
		{None, true},
		{Variant3, false},
		{Variant3, true},
		{Variant2, true},
		{Variant1, false},
		{Variant1, true},
	}
}

// FastSettings enumerates the four Fast-mode candidates in their fixed
// evaluation order: no decorrelation (unsplit, then split), then
// Variant1 (unsplit, then split). This is a distinct, shorter list
// from the Comprehensive ordering, not a prefix of it — Fast only ever
// considers the no-decorrelation and Variant1 configurations, skipping
// Variant2/Variant3 entirely rather than sampling a prefix of the
// full eight (SPEC_FULL.md §4.4.1).
func FastSettings() [4]TransformSettings {
	return [4]TransformSettings{
		{None, false},
		{None, true},
		{Variant1, false},
		{Variant1, true},
	}
}

// SearchMode selects how many candidates determine_best evaluates.
type SearchMode int

const (
	SearchFast SearchMode = iota
	SearchComprehensive
)

func (m SearchMode) String() string {
	switch m {
	case SearchFast:
		return "Fast"
	case SearchComprehensive:
		return "Comprehensive"
	default:
		return fmt.Sprintf("SearchMode(%d)", int(m))
	}
}

// candidates returns the settings this mode evaluates, in fixed order.
func (m SearchMode) candidates() []TransformSettings {
	if m == SearchComprehensive {
		all := AllSettings()
		return all[:]
	}
	fast := FastSettings()
	return fast[:]
}
