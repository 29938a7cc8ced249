package main

import (
	"errors"
	"fmt"
)

var (
	ErrZeroSize          = errors.New("image has zero width or height")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// DecodeError reports an input image that could not be turned into a PixelBuffer.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode: %v", e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// InvalidDimensionError reports a buffer size that cannot be built, or a
// number of downsampling passes that would collapse a dimension to zero.
type InvalidDimensionError struct {
	Width, Height int
	Passes        int // requested pass count, 0 for construction errors
}

func (e *InvalidDimensionError) Error() string {
	if e.Passes > 0 {
		return fmt.Sprintf("invalid dimensions: %dx%d cannot be halved %d time(s) (max %d)",
			e.Width, e.Height, e.Passes, MaxPasses(e.Width, e.Height))
	}
	return fmt.Sprintf("invalid dimensions: %dx%d", e.Width, e.Height)
}

// EncodeError reports a processed buffer that could not be written out.
type EncodeError struct {
	Path   string
	Format string
	Err    error
}

func (e *EncodeError) Error() string {
	switch {
	case e.Path != "" && e.Format != "":
		return fmt.Sprintf("encode %s (%s): %v", e.Path, e.Format, e.Err)
	case e.Path != "":
		return fmt.Sprintf("encode %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("encode: %v", e.Err)
	}
}

func (e *EncodeError) Unwrap() error { return e.Err }

// StageError is returned when a pipeline operation is invoked out of order.
type StageError struct {
	Op    string
	Stage Stage
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline: %s not allowed in stage %s", e.Op, e.Stage)
}
