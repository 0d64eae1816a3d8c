//go:build amd64

package dsp

import "golang.org/x/sys/cpu"

// batch sizes per family, mirroring the number of packed 16-bit lanes a
// register of that width would hold: 128-bit registers give 8, 256-bit
// give 16, 512-bit give 32. AVX-512VBMI doesn't widen the register past
// AVX-512F+BW; it adds cheaper byte permutes, modelled here as a larger
// batch to reflect the lower per-block overhead the real instruction
// would have.
const (
	batchSSE2       = 8
	batchAVX2       = 16
	batchAVX512F    = 32
	batchAVX512VBMI = 64
)

// This init() runs after dsp.go's init() (Go runs all of a package's
// init funcs in file-name order within a build; dsp.go < dsp_amd64.go),
// so it always has the scalar bindings to override.
func init() {
	if DisableRuntimeDispatch {
		return
	}

	// amd64 guarantees SSE2; every family past it is a one-shot capability
	// query memoised by golang.org/x/sys/cpu at process start, matching
	// spec §4.3's "query once, cache, branch" requirement.
	bindFamily(FamilySSE2, batchSSE2)
	if cpu.X86.HasAVX2 {
		bindFamily(FamilyAVX2, batchAVX2)
	}
	if cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW {
		bindFamily(FamilyAVX512F, batchAVX512F)
	}
	if cpu.X86.HasAVX512VBMI {
		bindFamily(FamilyAVX512VBMI, batchAVX512VBMI)
	}
}
