// Package estimator defines the size-estimation capability the search in
// the root bcxform package consumes, plus the three implementations
// shipped alongside the core: a real compressor, a fast approximator,
// and a null estimator for manual-only callers.
package estimator

import "fmt"

// DataType tags a candidate's semantic shape so an estimator that can
// exploit it (one that has separately tuned models per region kind)
// may do so. Estimators that report
// SupportsDataTypeDifferentiation()==false are always passed Neutral.
type DataType int

const (
	Neutral DataType = iota
	Colours
	SplitColours
	DecorrelatedColours
	SplitDecorrelatedColours
	AlphaColours
	AlphaSplitColours
	AlphaDecorrelatedColours
	AlphaSplitDecorrelatedColours
)

func (t DataType) String() string {
	switch t {
	case Neutral:
		return "Neutral"
	case Colours:
		return "Colours"
	case SplitColours:
		return "SplitColours"
	case DecorrelatedColours:
		return "DecorrelatedColours"
	case SplitDecorrelatedColours:
		return "SplitDecorrelatedColours"
	case AlphaColours:
		return "AlphaColours"
	case AlphaSplitColours:
		return "AlphaSplitColours"
	case AlphaDecorrelatedColours:
		return "AlphaDecorrelatedColours"
	case AlphaSplitDecorrelatedColours:
		return "AlphaSplitDecorrelatedColours"
	default:
		return fmt.Sprintf("DataType(%d)", int(t))
	}
}

// Estimator abstracts "how many bytes will this compress to". The
// search in the root package calls Estimate once per candidate
// configuration and keeps whichever reports the smallest size;
// absolute accuracy doesn't matter, only that the relative ordering
// across candidates evaluated by the same Estimator instance is
// meaningful.
type Estimator interface {
	// MaxOutputSize upper-bounds the scratch buffer a caller must pass
	// to Estimate for an input of the given length. Zero means no
	// scratch is needed.
	MaxOutputSize(inputLen int) (int, error)

	// Estimate returns a predicted compressed size for input. scratch
	// is a caller-owned buffer of at least MaxOutputSize(len(input))
	// bytes; implementations that need working space use it instead of
	// allocating. tag is Neutral unless SupportsDataTypeDifferentiation
	// reports true.
	Estimate(input []byte, tag DataType, scratch []byte) (int, error)

	// SupportsDataTypeDifferentiation reports whether this estimator's
	// Estimate behaviour varies with tag.
	SupportsDataTypeDifferentiation() bool
}
