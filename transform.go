package bcxform

import (
	"github.com/bcxform/bcxform/estimator"
	"github.com/bcxform/bcxform/internal/pool"
	"github.com/bcxform/bcxform/internal/split"
)

// transformManual validates the §6.1 boundary preconditions and, on
// success, writes the forward transform of input into output under the
// given settings. Output bytes beyond len(input) are left untouched.
func transformManual(f split.Format, input, output []byte, s TransformSettings) error {
	if len(input)%f.BlockSize != 0 {
		return &LengthError{Format: f.Name, Len: len(input), BlockSize: f.BlockSize}
	}
	if len(output) < len(input) {
		return &BufferTooSmallError{Needed: len(input), Actual: len(output)}
	}
	split.Transform(f, input, output[:len(input)], s.toDSP())
	return nil
}

// untransformManual is transformManual's inverse.
func untransformManual(f split.Format, input, output []byte, s TransformSettings) error {
	if len(input)%f.BlockSize != 0 {
		return &LengthError{Format: f.Name, Len: len(input), BlockSize: f.BlockSize}
	}
	if len(output) < len(input) {
		return &BufferTooSmallError{Needed: len(input), Actual: len(output)}
	}
	split.Untransform(f, input, output[:len(input)], s.toDSP())
	return nil
}

// transformAuto runs determine_best and, on success, leaves output
// holding the winning transform (§4.4's last paragraph: the search
// itself guarantees this, via buffering rather than a second pass).
func transformAuto(f split.Format, hasAlpha bool, input, output []byte, est estimator.Estimator, mode SearchMode) (TransformSettings, error) {
	return determineBest(f, hasAlpha, input, output, est, mode)
}

// determineBestOnly runs determine_best without retaining the output
// (§6.1's F_determine_best, which discards the scratch transform it
// necessarily performs internally).
func determineBestOnly(f split.Format, hasAlpha bool, input []byte, est estimator.Estimator, mode SearchMode) (TransformSettings, error) {
	scratch := pool.Get(len(input))
	defer pool.Put(scratch)
	return determineBest(f, hasAlpha, input, scratch, est, mode)
}
