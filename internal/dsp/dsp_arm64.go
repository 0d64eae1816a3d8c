//go:build arm64

package dsp

// NEON is part of the baseline arm64 instruction set, so unlike the amd64
// families this tier needs no feature probe: it's unconditionally bound
// whenever the package is built for arm64 and runtime dispatch hasn't been
// disabled. 128-bit NEON registers give it the same lane count as SSE2.
const batchNEON = 8

func init() {
	if DisableRuntimeDispatch {
		return
	}
	bindFamily(FamilyNEON, batchNEON)
}
