package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	_ "github.com/xfmoulet/qoi"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeOptions tunes how an input raster becomes a PixelBuffer.
type DecodeOptions struct {
	// AutoOrient applies the EXIF orientation tag of JPEG/TIFF inputs.
	AutoOrient bool
}

// Decoded is a freshly decoded buffer together with its container format name.
type Decoded struct {
	Buffer *PixelBuffer
	Format string
}

// DecodeFile reads and decodes the image at path.
func DecodeFile(path string, opts DecodeOptions) (*Decoded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	d, err := Decode(bytes.NewReader(data), opts)
	if err != nil {
		if de, ok := err.(*DecodeError); ok {
			de.Path = path
		}
		return nil, err
	}
	return d, nil
}

// Decode decodes any registered raster format from r.
func Decode(r io.ReadSeeker, opts DecodeOptions) (*Decoded, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, &DecodeError{Err: fmt.Errorf("%s %dx%d: %w", format, cfg.Width, cfg.Height, ErrZeroSize)}
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, &DecodeError{Err: err}
	}

	img, err := imaging.Decode(r, imaging.AutoOrientation(opts.AutoOrient))
	if err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("%s: %w", format, err)}
	}

	// The decoded model, not cfg.ColorModel: PNG configs stop before tRNS.
	alpha := modelHasAlpha(img.ColorModel()) && !isOpaque(img)
	buf, err := FromImage(img, alpha)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &Decoded{Buffer: buf, Format: format}, nil
}

// modelHasAlpha reports whether a source colour model can carry transparency.
func modelHasAlpha(m color.Model) bool {
	if p, ok := m.(color.Palette); ok {
		for _, c := range p {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
		return false
	}
	switch m {
	case color.GrayModel, color.Gray16Model, color.YCbCrModel, color.CMYKModel:
		return false
	}
	return true
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
