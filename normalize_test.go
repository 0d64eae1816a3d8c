package bcxform

import (
	"testing"

	"github.com/bcxform/bcxform/internal/oracle"
)

func TestNormalizeBC1_CollapsesSafeDegenerateBlock(t *testing.T) {
	// c0 == c1, indices use only 0,1,2 (never 3): safe to collapse.
	block := []byte{0x34, 0x12, 0x34, 0x12, 0b10010100, 0b00000000, 0, 0}
	before := oracle.DecodeBC1(block)

	buf := append([]byte(nil), block...)
	if err := NormalizeBC1(buf); err != nil {
		t.Fatalf("NormalizeBC1: %v", err)
	}
	after := oracle.DecodeBC1(buf)
	if before != after {
		t.Fatalf("pixels changed: before=%v after=%v", before, after)
	}
	for i := 4; i < 8; i++ {
		if buf[i] != 0 {
			t.Fatalf("index field not collapsed: %v", buf[4:8])
		}
	}
}

func TestNormalizeBC1_SkipsBlockUsingSlot3(t *testing.T) {
	// c0 == c1, at least one index is 3 (transparent in punch-through
	// mode since c0 <= c1): must be left untouched.
	block := []byte{0x34, 0x12, 0x34, 0x12, 0b11100100, 0, 0, 0}
	orig := append([]byte(nil), block...)

	if err := NormalizeBC1(block); err != nil {
		t.Fatalf("NormalizeBC1: %v", err)
	}
	for i := range block {
		if block[i] != orig[i] {
			t.Fatalf("block was modified despite using slot 3: got %v want %v", block, orig)
		}
	}
}

func TestNormalizeBC1_LeavesNonDegenerateBlocksAlone(t *testing.T) {
	block := []byte{0x00, 0xF8, 0x00, 0x00, 0xE4, 0x00, 0x00, 0x00}
	orig := append([]byte(nil), block...)
	if err := NormalizeBC1(block); err != nil {
		t.Fatalf("NormalizeBC1: %v", err)
	}
	for i := range block {
		if block[i] != orig[i] {
			t.Fatalf("non-degenerate block modified: got %v want %v", block, orig)
		}
	}
}

func TestNormalizeBC1_RejectsBadLength(t *testing.T) {
	if err := NormalizeBC1(make([]byte, 7)); err == nil {
		t.Fatal("expected error for non-multiple-of-8 length")
	}
}

func TestNormalizeBC3Alpha_CollapsesLowIndicesPreservesPixels(t *testing.T) {
	block := []byte{
		100, 100, // a0 == a1: degenerate
		0, 0, 0, 0, 0, 0, // alpha index field, filled below
		0x00, 0xF8, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	indices := [16]uint8{0, 1, 2, 3, 4, 5, 0, 1, 2, 3, 4, 5, 0, 1, 2, 3}
	packAlphaIndices(block[2:8], indices)

	before := oracle.DecodeBC3(block)
	if err := NormalizeBC3Alpha(block); err != nil {
		t.Fatalf("NormalizeBC3Alpha: %v", err)
	}
	after := oracle.DecodeBC3(block)
	if before != after {
		t.Fatalf("pixels changed: before=%v after=%v", before, after)
	}
	got := unpackAlphaIndices(block[2:8])
	for i, v := range got {
		if v != 0 {
			t.Fatalf("index %d = %d, want 0 after collapse", i, v)
		}
	}
}

func TestNormalizeBC3Alpha_PreservesFixedIndices6And7(t *testing.T) {
	block := []byte{
		100, 100,
		0, 0, 0, 0, 0, 0,
		0x00, 0xF8, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	indices := [16]uint8{6, 7, 6, 7, 0, 1, 2, 3, 4, 5, 6, 7, 6, 7, 6, 7}
	packAlphaIndices(block[2:8], indices)

	before := oracle.DecodeBC3(block)
	if err := NormalizeBC3Alpha(block); err != nil {
		t.Fatalf("NormalizeBC3Alpha: %v", err)
	}
	after := oracle.DecodeBC3(block)
	if before != after {
		t.Fatalf("pixels changed: before=%v after=%v", before, after)
	}
	got := unpackAlphaIndices(block[2:8])
	for i, want := range indices {
		if want == 6 || want == 7 {
			if got[i] != want {
				t.Fatalf("index %d = %d, want preserved %d", i, got[i], want)
			}
		}
	}
}

func TestNormalizeBC3Alpha_LeavesNonDegenerateBlocksAlone(t *testing.T) {
	block := []byte{
		255, 0,
		0, 0, 0, 0, 0, 0,
		0x00, 0xF8, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	orig := append([]byte(nil), block...)
	if err := NormalizeBC3Alpha(block); err != nil {
		t.Fatalf("NormalizeBC3Alpha: %v", err)
	}
	for i := range block {
		if block[i] != orig[i] {
			t.Fatalf("non-degenerate block modified: got %v want %v", block, orig)
		}
	}
}

func TestNormalizeBC3Alpha_RejectsBadLength(t *testing.T) {
	if err := NormalizeBC3Alpha(make([]byte, 15)); err == nil {
		t.Fatal("expected error for non-multiple-of-16 length")
	}
}

func TestAlphaIndexPackUnpackRoundTrip(t *testing.T) {
	field := make([]byte, 6)
	indices := [16]uint8{7, 6, 5, 4, 3, 2, 1, 0, 7, 0, 7, 0, 7, 0, 7, 0}
	packAlphaIndices(field, indices)
	got := unpackAlphaIndices(field)
	if got != indices {
		t.Fatalf("round trip = %v, want %v", got, indices)
	}
}
