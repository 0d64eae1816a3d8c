package estimator

import (
	"bytes"
	"compress/flate"
	"fmt"
)

// Flate is the "real compressor" estimator: it runs actual DEFLATE
// compression and reports the resulting size. No dependency in the
// example pack this library was modelled on provides a general-purpose
// LZ77+entropy byte compressor, so this wraps the standard library's
// compress/flate rather than introduce an ungrounded third-party
// dependency (see DESIGN.md).
type Flate struct {
	level int
}

// NewFlate returns a Flate estimator at the given compress/flate level
// (any level from flate.HuffmanOnly through flate.BestCompression,
// which includes flate.DefaultCompression and flate.NoCompression).
func NewFlate(level int) (*Flate, error) {
	if level < flate.HuffmanOnly || level > flate.BestCompression {
		return nil, fmt.Errorf("estimator: NewFlate: level %d out of range", level)
	}
	return &Flate{level: level}, nil
}

// MaxOutputSize mirrors compress/flate's documented worst-case
// expansion bound for emitting input as stored (uncompressed) blocks.
func (f *Flate) MaxOutputSize(inputLen int) (int, error) {
	if inputLen < 0 {
		return 0, fmt.Errorf("estimator: Flate.MaxOutputSize: negative length %d", inputLen)
	}
	return inputLen + (inputLen/65535+1)*5 + 11, nil
}

// Estimate compresses input with compress/flate and returns the
// compressed length. scratch backs the output buffer when it's large
// enough to avoid a fresh allocation; tag is ignored, since Flate does
// not differentiate by data type.
func (f *Flate) Estimate(input []byte, _ DataType, scratch []byte) (int, error) {
	buf := bytes.NewBuffer(scratch[:0])
	w, err := flate.NewWriter(buf, f.level)
	if err != nil {
		return 0, fmt.Errorf("estimator: Flate.Estimate: %w", err)
	}
	if _, err := w.Write(input); err != nil {
		return 0, fmt.Errorf("estimator: Flate.Estimate: %w", err)
	}
	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("estimator: Flate.Estimate: %w", err)
	}
	return buf.Len(), nil
}

// SupportsDataTypeDifferentiation always reports false: flate's output
// size depends only on the bytes given to it.
func (f *Flate) SupportsDataTypeDifferentiation() bool {
	return false
}
