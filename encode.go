package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/xfmoulet/qoi"
)

// Format is an output container format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatQOI  Format = "qoi"
)

var imagingFormats = map[Format]imaging.Format{
	FormatPNG:  imaging.PNG,
	FormatJPEG: imaging.JPEG,
	FormatGIF:  imaging.GIF,
	FormatBMP:  imaging.BMP,
	FormatTIFF: imaging.TIFF,
}

// ParseFormat accepts a format name or a file extension, with or without the dot.
func ParseFormat(name string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(name), ".") {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "gif":
		return FormatGIF, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	case "qoi":
		return FormatQOI, nil
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnsupportedFormat)
}

// FormatFromPath derives the output format from the file extension.
func FormatFromPath(path string) (Format, error) {
	if strings.EqualFold(filepath.Ext(path), ".qoi") {
		return FormatQOI, nil
	}
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return "", fmt.Errorf("%q: %w", filepath.Ext(path), ErrUnsupportedFormat)
	}
	return ParseFormat(f.String())
}

// SupportsAlpha reports whether the format stores a real alpha channel.
// GIF only has a binary transparent index, so it is treated as opaque.
func (f Format) SupportsAlpha() bool {
	switch f {
	case FormatPNG, FormatTIFF, FormatBMP, FormatQOI:
		return true
	}
	return false
}

// Encode writes b to w. Alpha is dropped first when f cannot hold it.
// Quality only affects JPEG.
func Encode(w io.Writer, b *PixelBuffer, f Format, quality int) error {
	if b.HasAlpha() && !f.SupportsAlpha() {
		b = b.DropAlpha()
	}
	img := b.Image()

	if f == FormatQOI {
		if err := qoi.Encode(w, img); err != nil {
			return &EncodeError{Format: string(f), Err: err}
		}
		return nil
	}

	imf, ok := imagingFormats[f]
	if !ok {
		return &EncodeError{Format: string(f), Err: ErrUnsupportedFormat}
	}
	if err := imaging.Encode(w, img, imf, imaging.JPEGQuality(ValidateQuality(quality))); err != nil {
		return &EncodeError{Format: string(f), Err: err}
	}
	return nil
}

// EncodeFile encodes b in memory and writes it to path, so a codec failure
// never leaves a truncated file behind.
func EncodeFile(path string, b *PixelBuffer, f Format, quality int) error {
	var buf bytes.Buffer
	if err := Encode(&buf, b, f, quality); err != nil {
		if ee, ok := err.(*EncodeError); ok {
			ee.Path = path
		}
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return &EncodeError{Path: path, Format: string(f), Err: err}
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		out.Close()
		return &EncodeError{Path: path, Format: string(f), Err: err}
	}
	if err := out.Close(); err != nil {
		return &EncodeError{Path: path, Format: string(f), Err: err}
	}
	return nil
}
