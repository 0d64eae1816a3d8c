package bcxform

import (
	"github.com/bcxform/bcxform/estimator"
	"github.com/bcxform/bcxform/internal/split"
)

// BC3TransformManual applies the forward stream-splitting transform to
// input, a 16-byte-per-block BC3 buffer (1-byte alpha0 + 1-byte alpha1
// + 6-byte alpha-index prefix plus an 8-byte BC1-shaped colour block),
// writing the result to output under the given settings.
func BC3TransformManual(input, output []byte, s TransformSettings) error {
	return transformManual(split.BC3, input, output, s)
}

// BC3UntransformManual is BC3TransformManual's inverse.
func BC3UntransformManual(input, output []byte, s TransformSettings) error {
	return untransformManual(split.BC3, input, output, s)
}

// BC3TransformAuto searches for the best-estimated settings and leaves
// output holding the corresponding transform.
func BC3TransformAuto(input, output []byte, est estimator.Estimator, mode SearchMode) (TransformSettings, error) {
	return transformAuto(split.BC3, true, input, output, est, mode)
}

// BC3DetermineBest runs the same search as BC3TransformAuto without
// retaining the transformed output.
func BC3DetermineBest(input []byte, est estimator.Estimator, mode SearchMode) (TransformSettings, error) {
	return determineBestOnly(split.BC3, true, input, est, mode)
}
