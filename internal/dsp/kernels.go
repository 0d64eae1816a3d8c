package dsp

import (
	"github.com/bcxform/bcxform/internal/blockio"
	"github.com/bcxform/bcxform/internal/color565"
)

func toColorMode(m DecorrelateMode) color565.Mode {
	switch m {
	case DecorrelateVariant1:
		return color565.Variant1
	case DecorrelateVariant2:
		return color565.Variant2
	case DecorrelateVariant3:
		return color565.Variant3
	default:
		return color565.None
	}
}

// splitOneBlock moves block i's colour/index fields from src into the
// streams described by out, applying decorrelation and/or colour split
// per cfg. This is the single arithmetic reference every dispatch tier
// batches over — see dsp.go's package doc.
func splitOneBlock(src []byte, i int, layout Layout, cfg Config, out Streams) {
	block := src[i*layout.BlockSize:]
	c0 := blockio.U16(block[layout.ColourOff:])
	c1 := blockio.U16(block[layout.ColourOff+2:])

	mode := toColorMode(cfg.Mode)
	if mode != color565.None {
		c0 = color565.Decorrelate(mode, c0)
		c1 = color565.Decorrelate(mode, c1)
	}

	if cfg.ColourSplit {
		blockio.PutU16(out.Colour0[i*2:], c0)
		blockio.PutU16(out.Colour1[i*2:], c1)
	} else {
		blockio.PutU16(out.Colour[i*4:], c0)
		blockio.PutU16(out.Colour[i*4+2:], c1)
	}

	copy(out.Index[i*4:i*4+4], block[layout.IndexOff:layout.IndexOff+4])
}

// mergeOneBlock is the exact inverse of splitOneBlock.
func mergeOneBlock(in Streams, i int, layout Layout, cfg Config, dst []byte) {
	var c0, c1 uint16
	if cfg.ColourSplit {
		c0 = blockio.U16(in.Colour0[i*2:])
		c1 = blockio.U16(in.Colour1[i*2:])
	} else {
		c0 = blockio.U16(in.Colour[i*4:])
		c1 = blockio.U16(in.Colour[i*4+2:])
	}

	mode := toColorMode(cfg.Mode)
	if mode != color565.None {
		c0 = color565.Recorrelate(mode, c0)
		c1 = color565.Recorrelate(mode, c1)
	}

	block := dst[i*layout.BlockSize:]
	blockio.PutU16(block[layout.ColourOff:], c0)
	blockio.PutU16(block[layout.ColourOff+2:], c1)
	copy(block[layout.IndexOff:layout.IndexOff+4], in.Index[i*4:i*4+4])
}

// splitBlocks is the scalar reference: it processes one block per loop
// iteration. Every other family calls runSplitBatched/runMergeBatched
// with a larger stride.
func splitBlocks(src []byte, n int, layout Layout, cfg Config, out Streams) {
	for i := 0; i < n; i++ {
		splitOneBlock(src, i, layout, cfg, out)
	}
}

func mergeBlocks(in Streams, n int, layout Layout, cfg Config, dst []byte) {
	for i := 0; i < n; i++ {
		mergeOneBlock(in, i, layout, cfg, dst)
	}
}

// runSplitBatched processes n blocks in groups of batch, calling
// splitOneBlock batch times per group and falling back to a one-at-a-time
// scalar tail for the remainder — the "batch count" a family advertises
// (8/16/32/64) mirrors the lane count of the register width it claims to
// represent, but the computed bytes are identical for every batch size
// because splitOneBlock is the only place arithmetic happens.
func runSplitBatched(batch int, src []byte, n int, layout Layout, cfg Config, out Streams) {
	i := 0
	for ; i+batch <= n; i += batch {
		for j := 0; j < batch; j++ {
			splitOneBlock(src, i+j, layout, cfg, out)
		}
	}
	for ; i < n; i++ {
		splitOneBlock(src, i, layout, cfg, out)
	}
}

func runMergeBatched(batch int, in Streams, n int, layout Layout, cfg Config, dst []byte) {
	i := 0
	for ; i+batch <= n; i += batch {
		for j := 0; j < batch; j++ {
			mergeOneBlock(in, i+j, layout, cfg, dst)
		}
	}
	for ; i < n; i++ {
		mergeOneBlock(in, i, layout, cfg, dst)
	}
}

// bindFamily binds Split/Merge to batched kernels of the given family's
// stride and records which family is active. Both arch-specific override
// files (dsp_amd64.go, dsp_arm64.go) call this from their init() so the
// per-arch files only need to decide which families apply and in what
// order to layer them.
func bindFamily(family Family, batch int) {
	Split = func(src []byte, n int, layout Layout, cfg Config, out Streams) {
		runSplitBatched(batch, src, n, layout, cfg, out)
	}
	Merge = func(in Streams, n int, layout Layout, cfg Config, dst []byte) {
		runMergeBatched(batch, in, n, layout, cfg, dst)
	}
	ActiveFamily = family
}
