package main

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/klauspost/compress/zstd"
)

// ValidateQuality clamps a JPEG quality into [1..100].
func ValidateQuality(q int) int {
	if q < 1 {
		return 1
	}
	if q > 100 {
		return 100
	}
	return q
}

// ImageToNRGBA copies any image.Image into an *image.NRGBA with bounds starting at (0,0).
// Values are non-premultiplied, so a transparent pixel keeps its colour.
func ImageToNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

func EncodeZstd(w io.Writer, raw *bytes.Buffer) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return err
	}
	if _, err := enc.Write(raw.Bytes()); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return nil
}

func DecodeZstd(r io.Reader) ([]byte, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	plain, err := io.ReadAll(dec)
	if err != nil {
		return nil, err
	}

	if len(plain) == 0 {
		return nil, fmt.Errorf("zstd: empty payload")
	}

	return plain, nil
}
