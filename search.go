package bcxform

import (
	"github.com/bcxform/bcxform/estimator"
	"github.com/bcxform/bcxform/internal/pool"
	"github.com/bcxform/bcxform/internal/split"
)

// dataTypeFor maps a candidate's (decorrelation, split, alpha-bearing)
// shape to the estimator.DataType tag §4.4 requires: the four
// colour-only tags for BC1, the four alpha-bearing tags for BC2/BC3.
func dataTypeFor(hasAlpha bool, s TransformSettings) estimator.DataType {
	decorrelated := s.Mode != None
	switch {
	case !hasAlpha && !decorrelated && !s.SplitColourEndpoints:
		return estimator.Colours
	case !hasAlpha && !decorrelated && s.SplitColourEndpoints:
		return estimator.SplitColours
	case !hasAlpha && decorrelated && !s.SplitColourEndpoints:
		return estimator.DecorrelatedColours
	case !hasAlpha && decorrelated && s.SplitColourEndpoints:
		return estimator.SplitDecorrelatedColours
	case hasAlpha && !decorrelated && !s.SplitColourEndpoints:
		return estimator.AlphaColours
	case hasAlpha && !decorrelated && s.SplitColourEndpoints:
		return estimator.AlphaSplitColours
	case hasAlpha && decorrelated && !s.SplitColourEndpoints:
		return estimator.AlphaDecorrelatedColours
	default:
		return estimator.AlphaSplitDecorrelatedColours
	}
}

// determineBest implements §4.4's determine_best: it tries every
// candidate in mode's fixed order, transforming input into output each
// time and asking est to size the result, and leaves output holding the
// transform for whichever candidate scored smallest (strictly smaller
// than the incumbent; ties keep the earliest candidate). Rather than
// re-running the winning transform when it isn't the last one tried
// (the fallback §4.4 allows), this buffers each new best's output bytes
// so the winner can be restored with a single copy.
func determineBest(f split.Format, hasAlpha bool, input, output []byte, est estimator.Estimator, mode SearchMode) (TransformSettings, error) {
	if len(input)%f.BlockSize != 0 {
		return TransformSettings{}, &LengthError{Format: f.Name, Len: len(input), BlockSize: f.BlockSize}
	}
	if len(output) < len(input) {
		return TransformSettings{}, &BufferTooSmallError{Needed: len(input), Actual: len(output)}
	}

	maxScratch, err := est.MaxOutputSize(len(input))
	if err != nil {
		return TransformSettings{}, &EstimationError{Err: err}
	}
	var scratch []byte
	if maxScratch > 0 {
		scratch = pool.Get(maxScratch)
		defer pool.Put(scratch)
	}

	candidates := mode.candidates()

	var winnerBuf []byte
	if len(candidates) > 0 {
		winnerBuf = pool.Get(len(input))
		defer pool.Put(winnerBuf)
	}

	bestIdx := -1
	bestSize := 0
	lastIdx := -1
	differentiates := est.SupportsDataTypeDifferentiation()

	for i, c := range candidates {
		split.Transform(f, input, output[:len(input)], c.toDSP())
		lastIdx = i

		tag := estimator.Neutral
		if differentiates {
			tag = dataTypeFor(hasAlpha, c)
		}
		size, err := est.Estimate(output[:len(input)], tag, scratch)
		if err != nil {
			return TransformSettings{}, &EstimationError{Err: err}
		}

		if bestIdx == -1 || size < bestSize {
			bestIdx = i
			bestSize = size
			copy(winnerBuf[:len(input)], output[:len(input)])
		}
	}

	if bestIdx == -1 {
		return TransformSettings{}, &AllocationError{Detail: "no candidates evaluated"}
	}
	if bestIdx != lastIdx {
		copy(output[:len(input)], winnerBuf[:len(input)])
	}
	return candidates[bestIdx], nil
}
