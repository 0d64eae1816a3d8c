package capi

/*
#include <stdint.h>
*/
import "C"
import (
	"unsafe"

	"github.com/bcxform/bcxform"
	"github.com/bcxform/bcxform/estimator"
)

// Format ids used at the C boundary, stable and append-only like the
// ResultCode space.
const (
	cFormatBC1 C.int32_t = 0
	cFormatBC2 C.int32_t = 1
	cFormatBC3 C.int32_t = 2
)

// Estimator kind ids selectable from bcxform_set_auto.
const (
	cEstimatorNone  C.int32_t = 0
	cEstimatorFlate C.int32_t = 1
	cEstimatorLTU   C.int32_t = 2
)

//export bcxform_create
func bcxform_create(formatID C.int32_t) C.uint64_t {
	return C.uint64_t(create(formatFromID(formatID)))
}

//export bcxform_clone
func bcxform_clone(handle C.uint64_t, outHandle *C.uint64_t) C.int32_t {
	id, code := clone(uint64(handle))
	if code == ResultOK {
		*outHandle = C.uint64_t(id)
	}
	return C.int32_t(code)
}

//export bcxform_free
func bcxform_free(handle C.uint64_t) C.int32_t {
	return C.int32_t(free(uint64(handle)))
}

//export bcxform_set_manual
func bcxform_set_manual(handle C.uint64_t, mode C.int32_t, split C.int32_t) C.int32_t {
	return C.int32_t(setManual(uint64(handle), bcxform.DecorrelationMode(mode), split != 0))
}

//export bcxform_set_auto
func bcxform_set_auto(handle C.uint64_t, estimatorKind C.int32_t, flateLevel C.int32_t, useAllModes C.int32_t) C.int32_t {
	est, err := estimatorFromKind(estimatorKind, flateLevel)
	if err != nil {
		return C.int32_t(ResultInvalidArgument)
	}
	return C.int32_t(setAuto(uint64(handle), est, useAllModes != 0))
}

//export bcxform_transform
func bcxform_transform(handle C.uint64_t, src *C.uint8_t, srcLen C.size_t, dst *C.uint8_t, dstLen C.size_t) C.int32_t {
	_, _, code := transform(uint64(handle), cBytes(src, srcLen), cBytes(dst, dstLen))
	return C.int32_t(code)
}

//export bcxform_untransform
func bcxform_untransform(handle C.uint64_t, src *C.uint8_t, srcLen C.size_t, dst *C.uint8_t, dstLen C.size_t) C.int32_t {
	return C.int32_t(untransform(uint64(handle), cBytes(src, srcLen), cBytes(dst, dstLen)))
}

//export bcxform_encode_header
func bcxform_encode_header(handle C.uint64_t, out *C.uint32_t) C.int32_t {
	c, ok := lookup(uint64(handle))
	if !ok {
		return C.int32_t(ResultInvalidHandle)
	}
	v, err := bcxform.EncodeHeader(c.format, c.settings)
	if err != nil {
		return C.int32_t(ResultInvalidArgument)
	}
	*out = C.uint32_t(v)
	return C.int32_t(ResultOK)
}

//export bcxform_decode_header
func bcxform_decode_header(header C.uint32_t, outFormat, outMode, outSplit *C.int32_t) C.int32_t {
	f, s, err := bcxform.DecodeHeader(uint32(header))
	if err != nil {
		return C.int32_t(ResultCorruptHeader)
	}
	*outFormat = C.int32_t(f)
	*outMode = C.int32_t(s.Mode)
	*outSplit = 0
	if s.SplitColourEndpoints {
		*outSplit = 1
	}
	return C.int32_t(ResultOK)
}

// cBytes views a C buffer as a Go byte slice without copying. The
// caller on the C side owns the memory for the duration of the call;
// this package never retains the slice past the exported function's
// return, matching cgo's pointer-passing rules.
func cBytes(p *C.uint8_t, n C.size_t) []byte {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), int(n))
}

func formatFromID(id C.int32_t) bcxform.Format {
	switch id {
	case cFormatBC2:
		return bcxform.FormatBC2
	case cFormatBC3:
		return bcxform.FormatBC3
	default:
		return bcxform.FormatBC1
	}
}

func estimatorFromKind(kind, flateLevel C.int32_t) (estimator.Estimator, error) {
	switch kind {
	case cEstimatorFlate:
		return estimator.NewFlate(int(flateLevel))
	case cEstimatorLTU:
		return estimator.NewLTU(), nil
	default:
		return &estimator.NoEstimation{}, nil
	}
}
