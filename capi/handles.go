package capi

import (
	"sync"
	"sync/atomic"

	"github.com/bcxform/bcxform"
	"github.com/bcxform/bcxform/estimator"
)

// context is the Go-side payload behind an opaque handle: a format plus
// whatever manual settings or auto-search configuration the builder
// functions have accumulated on it.
type context struct {
	format bcxform.Format

	settings bcxform.TransformSettings

	auto bool
	mode bcxform.SearchMode
	est  estimator.Estimator
}

func (c *context) clone() *context {
	cp := *c
	return &cp
}

var (
	handles sync.Map // uint64 -> *context
	nextID  uint64
)

func newHandle(c *context) uint64 {
	id := atomic.AddUint64(&nextID, 1)
	handles.Store(id, c)
	return id
}

func lookup(id uint64) (*context, bool) {
	v, ok := handles.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*context), true
}

// create allocates a new context for format, defaulting to
// {None, false} manual settings. The caller owns the returned handle
// and must eventually call free.
func create(format bcxform.Format) uint64 {
	return newHandle(&context{
		format:   format,
		settings: bcxform.TransformSettings{Mode: bcxform.None, SplitColourEndpoints: false},
		est:      &estimator.NoEstimation{},
	})
}

// clone duplicates the context behind handle into a new, independent
// handle. Mutating the clone (via the set* functions) never affects the
// original.
func clone(handle uint64) (uint64, ResultCode) {
	c, ok := lookup(handle)
	if !ok {
		return 0, ResultInvalidHandle
	}
	return newHandle(c.clone()), ResultOK
}

// free releases handle. Freeing an unknown id is a documented no-op
// that reports ResultInvalidHandle; this package never frees a handle
// on the caller's behalf.
func free(handle uint64) ResultCode {
	if _, ok := handles.LoadAndDelete(handle); !ok {
		return ResultInvalidHandle
	}
	return ResultOK
}

// setManual configures handle for a manual transform with the given
// decorrelation mode and split flag.
func setManual(handle uint64, mode bcxform.DecorrelationMode, split bool) ResultCode {
	c, ok := lookup(handle)
	if !ok {
		return ResultInvalidHandle
	}
	c.auto = false
	c.settings = bcxform.TransformSettings{Mode: mode, SplitColourEndpoints: split}
	return ResultOK
}

// setAuto configures handle for an auto search. useAllModes maps to
// Comprehensive (all eight candidates) versus Fast.
func setAuto(handle uint64, est estimator.Estimator, useAllModes bool) ResultCode {
	c, ok := lookup(handle)
	if !ok {
		return ResultInvalidHandle
	}
	c.auto = true
	c.est = est
	if useAllModes {
		c.mode = bcxform.SearchComprehensive
	} else {
		c.mode = bcxform.SearchFast
	}
	return ResultOK
}

func hasAlpha(f bcxform.Format) bool {
	return f == bcxform.FormatBC2 || f == bcxform.FormatBC3
}

// transform runs handle's configured operation (manual or auto)
// forward. On auto success, the winning settings are recorded back
// into handle's context so a subsequent header-encode call reflects
// them.
func transform(handle uint64, src, dst []byte) (bcxform.TransformSettings, error, ResultCode) {
	c, ok := lookup(handle)
	if !ok {
		return bcxform.TransformSettings{}, nil, ResultInvalidHandle
	}

	if !c.auto {
		err := manualTransform(c.format, src, dst, c.settings, false)
		return c.settings, err, codeFor(err)
	}

	s, err := autoTransform(c.format, hasAlpha(c.format), src, dst, c.est, c.mode)
	if err == nil {
		c.settings = s
	}
	return s, err, codeFor(err)
}

func untransform(handle uint64, src, dst []byte) ResultCode {
	c, ok := lookup(handle)
	if !ok {
		return ResultInvalidHandle
	}
	err := manualTransform(c.format, src, dst, c.settings, true)
	return codeFor(err)
}

func manualTransform(f bcxform.Format, src, dst []byte, s bcxform.TransformSettings, inverse bool) error {
	switch f {
	case bcxform.FormatBC1:
		if inverse {
			return bcxform.BC1UntransformManual(src, dst, s)
		}
		return bcxform.BC1TransformManual(src, dst, s)
	case bcxform.FormatBC2:
		if inverse {
			return bcxform.BC2UntransformManual(src, dst, s)
		}
		return bcxform.BC2TransformManual(src, dst, s)
	default:
		if inverse {
			return bcxform.BC3UntransformManual(src, dst, s)
		}
		return bcxform.BC3TransformManual(src, dst, s)
	}
}

func autoTransform(f bcxform.Format, alpha bool, src, dst []byte, est estimator.Estimator, mode bcxform.SearchMode) (bcxform.TransformSettings, error) {
	switch f {
	case bcxform.FormatBC1:
		return bcxform.BC1TransformAuto(src, dst, est, mode)
	case bcxform.FormatBC2:
		return bcxform.BC2TransformAuto(src, dst, est, mode)
	default:
		return bcxform.BC3TransformAuto(src, dst, est, mode)
	}
}

// codeFor maps an error from the core package to the stable ResultCode
// space; nil maps to ResultOK.
func codeFor(err error) ResultCode {
	if err == nil {
		return ResultOK
	}
	switch err.(type) {
	case *bcxform.LengthError:
		return ResultInvalidLength
	case *bcxform.BufferTooSmallError:
		return ResultBufferTooSmall
	case *bcxform.AllocationError:
		return ResultAllocationFailed
	case *bcxform.EstimationError:
		return ResultEstimationFailed
	default:
		return ResultInvalidArgument
	}
}
