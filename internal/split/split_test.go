package split

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/bcxform/bcxform/internal/dsp"
)

func allConfigs() []dsp.Config {
	var out []dsp.Config
	for _, mode := range []dsp.DecorrelateMode{dsp.DecorrelateNone, dsp.DecorrelateVariant1, dsp.DecorrelateVariant2, dsp.DecorrelateVariant3} {
		for _, sp := range []bool{false, true} {
			out = append(out, dsp.Config{Mode: mode, ColourSplit: sp})
		}
	}
	return out
}

// TestS1_BC1SingleBlockIdentity is spec scenario S1.
func TestS1_BC1SingleBlockIdentity(t *testing.T) {
	src := []byte{0x00, 0xF8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	dst := make([]byte, len(src))
	Transform(BC1, src, dst, dsp.Config{Mode: dsp.DecorrelateNone, ColourSplit: false})

	want := []byte{0x00, 0xF8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(dst, want) {
		t.Fatalf("S1: got % x, want % x", dst, want)
	}
}

// TestS2_BC1SplitNoDecorrelation is spec scenario S2.
func TestS2_BC1SplitNoDecorrelation(t *testing.T) {
	src := []byte{0x00, 0xF8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	dst := make([]byte, len(src))
	Transform(BC1, src, dst, dsp.Config{Mode: dsp.DecorrelateNone, ColourSplit: true})

	want := []byte{0x00, 0xF8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(dst, want) {
		t.Fatalf("S2: got % x, want % x", dst, want)
	}
}

// TestS3_BC1RoundTripEverySetting is spec scenario S3.
func TestS3_BC1RoundTripEverySetting(t *testing.T) {
	src := []byte{0x00, 0xF8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	for _, cfg := range allConfigs() {
		dst := make([]byte, len(src))
		Transform(BC1, src, dst, cfg)
		back := make([]byte, len(src))
		Untransform(BC1, dst, back, cfg)
		if !bytes.Equal(back, src) {
			t.Fatalf("S3 cfg=%+v: got % x, want % x", cfg, back, src)
		}
	}
}

// TestS4_BC2SingleBlock is spec scenario S4.
func TestS4_BC2SingleBlock(t *testing.T) {
	src := []byte{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, // alpha
		0x00, 0xF8, 0x00, 0x00, // colours
		0x00, 0x00, 0x00, 0x00, // indices
	}
	dst := make([]byte, len(src))
	Transform(BC2, src, dst, dsp.Config{Mode: dsp.DecorrelateNone, ColourSplit: false})
	if !bytes.Equal(dst, src) {
		t.Fatalf("S4: got % x, want % x", dst, src)
	}
}

// TestS5_BC3RoundTripWithDecorrelation is spec scenario S5.
func TestS5_BC3RoundTripWithDecorrelation(t *testing.T) {
	src := []byte{
		0xFF, 0x00, // alpha endpoints
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // alpha indices
		0x00, 0xF8, 0x00, 0x00, // colours
		0x00, 0x00, 0x00, 0x00, // indices
	}
	for _, mode := range []dsp.DecorrelateMode{dsp.DecorrelateVariant1, dsp.DecorrelateVariant2, dsp.DecorrelateVariant3} {
		cfg := dsp.Config{Mode: mode, ColourSplit: true}
		dst := make([]byte, len(src))
		Transform(BC3, src, dst, cfg)
		back := make([]byte, len(src))
		Untransform(BC3, dst, back, cfg)
		if !bytes.Equal(back, src) {
			t.Fatalf("S5 mode=%v: got % x, want % x", mode, back, src)
		}
	}
}

// TestBC3_AlphaRegionsAreGroupedNotInterleaved verifies spec §3.3's
// required region order for N>1 blocks: a contiguous 2N-byte
// alpha-endpoints array followed by a contiguous 6N-byte alpha-indices
// array, not an 8-byte (endpoints+indices) pair repeated per block.
func TestBC3_AlphaRegionsAreGroupedNotInterleaved(t *testing.T) {
	block := func(a0, a1 byte) []byte {
		return append([]byte{a0, a1}, []byte{0, 0, 0, 0, 0, 0}...)
	}
	src := append(block(0x11, 0x22), []byte{
		0x00, 0xF8, 0x00, 0x00, // colours, block 0
		0x00, 0x00, 0x00, 0x00, // indices, block 0
	}...)
	src = append(src, block(0x33, 0x44)...)
	src = append(src, []byte{
		0x00, 0xF8, 0x00, 0x00, // colours, block 1
		0x00, 0x00, 0x00, 0x00, // indices, block 1
	}...)

	dst := make([]byte, len(src))
	Transform(BC3, src, dst, dsp.Config{Mode: dsp.DecorrelateNone, ColourSplit: false})

	wantEndpoints := []byte{0x11, 0x22, 0x33, 0x44}
	if !bytes.Equal(dst[:4], wantEndpoints) {
		t.Fatalf("alpha-endpoints region = % x, want % x (not interleaved with indices)", dst[:4], wantEndpoints)
	}
	wantIndices := make([]byte, 12)
	if !bytes.Equal(dst[4:16], wantIndices) {
		t.Fatalf("alpha-indices region = % x, want % x", dst[4:16], wantIndices)
	}
}

func randBlocks(n, blockSize int) []byte {
	buf := make([]byte, n*blockSize)
	rand.New(rand.NewSource(7)).Read(buf)
	return buf
}

// TestRoundTrip_AllFormatsAllConfigs exercises property 1 (round trip
// bijection) across representative sizes for every format/config pair.
func TestRoundTrip_AllFormatsAllConfigs(t *testing.T) {
	formats := []Format{BC1, BC2, BC3}
	counts := []int{0, 1, 8, 9, 33}

	for _, f := range formats {
		for _, cfg := range allConfigs() {
			for _, n := range counts {
				src := randBlocks(n, f.BlockSize)
				dst := make([]byte, len(src))
				Transform(f, src, dst, cfg)

				if len(dst) != len(src) {
					t.Fatalf("%s cfg=%+v n=%d: length changed, got %d want %d", f.Name, cfg, n, len(dst), len(src))
				}

				back := make([]byte, len(src))
				Untransform(f, dst, back, cfg)
				if !bytes.Equal(back, src) {
					t.Fatalf("%s cfg=%+v n=%d: round trip mismatch", f.Name, cfg, n)
				}
			}
		}
	}
}

// TestOutputIsolation verifies property 4: bytes beyond the written
// region are left untouched.
func TestOutputIsolation(t *testing.T) {
	f := BC3
	cfg := dsp.Config{Mode: dsp.DecorrelateVariant2, ColourSplit: true}
	n := 3
	src := randBlocks(n, f.BlockSize)

	dst := make([]byte, len(src)+16)
	for i := range dst {
		dst[i] = 0xAA
	}
	sentinel := append([]byte(nil), dst[len(src):]...)

	Transform(f, src, dst[:len(src)], cfg)

	if !bytes.Equal(dst[len(src):], sentinel) {
		t.Fatalf("Transform wrote past declared output length")
	}
}
