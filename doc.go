// Package bcxform implements a lossless, bit-exact round-trip byte-layout
// transform for the BC1, BC2 and BC3 GPU block-compressed texture formats
// (also known as DXT1/DXT3/DXT5).
//
// The transform reshapes compressed block data into an alternate byte
// layout — splitting interleaved per-block fields into parallel streams,
// optionally splitting the two 16-bit colour endpoints into independent
// streams, and optionally applying an invertible YCoCg-R colour-space
// decorrelation to the endpoints — that compresses better under a
// general-purpose entropy coder while decoding to pixel-identical
// textures after the inverse transform. It does not itself compress:
// output is always exactly as many bytes as input.
//
// Two usage styles are supported for each format:
//
//   - Manual: the caller supplies an explicit [TransformSettings] and the
//     library performs the transform or untransform directly.
//   - Auto: the caller supplies an [estimator.Estimator] and the library searches a
//     small set of candidate settings, returning whichever one the
//     estimator predicts will compress best.
//
// Basic usage:
//
//	out := make([]byte, len(blocks))
//	settings, err := bcxform.BC1TransformAuto(blocks, out, estimator.NewLTU(), bcxform.SearchFast)
//
//	back := make([]byte, len(out))
//	err = bcxform.BC1UntransformManual(out, back, settings)
package bcxform
