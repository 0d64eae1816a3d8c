package bcxform

import (
	"github.com/bcxform/bcxform/estimator"
	"github.com/bcxform/bcxform/internal/split"
)

// BC2TransformManual applies the forward stream-splitting transform to
// input, a 16-byte-per-block BC2 buffer (8-byte explicit-alpha prefix
// plus an 8-byte BC1-shaped colour block), writing the result to output
// under the given settings.
func BC2TransformManual(input, output []byte, s TransformSettings) error {
	return transformManual(split.BC2, input, output, s)
}

// BC2UntransformManual is BC2TransformManual's inverse.
func BC2UntransformManual(input, output []byte, s TransformSettings) error {
	return untransformManual(split.BC2, input, output, s)
}

// BC2TransformAuto searches for the best-estimated settings and leaves
// output holding the corresponding transform.
func BC2TransformAuto(input, output []byte, est estimator.Estimator, mode SearchMode) (TransformSettings, error) {
	return transformAuto(split.BC2, true, input, output, est, mode)
}

// BC2DetermineBest runs the same search as BC2TransformAuto without
// retaining the transformed output.
func BC2DetermineBest(input []byte, est estimator.Estimator, mode SearchMode) (TransformSettings, error) {
	return determineBestOnly(split.BC2, true, input, est, mode)
}
