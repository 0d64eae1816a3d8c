package bcxform

import (
	"github.com/bcxform/bcxform/estimator"
	"github.com/bcxform/bcxform/internal/split"
)

// BC1TransformManual applies the forward stream-splitting transform to
// input, an 8-byte-per-block BC1 buffer, writing the result to output
// under the given settings.
func BC1TransformManual(input, output []byte, s TransformSettings) error {
	return transformManual(split.BC1, input, output, s)
}

// BC1UntransformManual is BC1TransformManual's inverse.
func BC1UntransformManual(input, output []byte, s TransformSettings) error {
	return untransformManual(split.BC1, input, output, s)
}

// BC1TransformAuto searches for the best-estimated settings and leaves
// output holding the corresponding transform.
func BC1TransformAuto(input, output []byte, est estimator.Estimator, mode SearchMode) (TransformSettings, error) {
	return transformAuto(split.BC1, false, input, output, est, mode)
}

// BC1DetermineBest runs the same search as BC1TransformAuto without
// retaining the transformed output.
func BC1DetermineBest(input []byte, est estimator.Estimator, mode SearchMode) (TransformSettings, error) {
	return determineBestOnly(split.BC1, false, input, est, mode)
}
