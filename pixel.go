package main

import (
	"image"
	"image/color"
)

// PixelBuffer is a row-major grid of 8-bit channel values.
// Each pixel occupies Channels consecutive bytes in Pix: R, G, B and,
// when Channels == 4, a non-premultiplied alpha value.
type PixelBuffer struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// NewPixelBuffer allocates a zeroed buffer. Alpha adds a fourth channel.
func NewPixelBuffer(w, h int, alpha bool) (*PixelBuffer, error) {
	if w < 1 || h < 1 {
		return nil, &InvalidDimensionError{Width: w, Height: h}
	}
	ch := 3
	if alpha {
		ch = 4
	}
	return &PixelBuffer{
		Width:    w,
		Height:   h,
		Channels: ch,
		Pix:      make([]uint8, w*h*ch),
	}, nil
}

// FromImage copies img into a new buffer. When alpha is false the alpha
// component of the source is ignored and only R, G, B are kept.
func FromImage(img image.Image, alpha bool) (*PixelBuffer, error) {
	src := ImageToNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()

	b, err := NewPixelBuffer(w, h, alpha)
	if err != nil {
		return nil, err
	}

	// Fast path: both layouts are 4 bytes per pixel.
	if alpha && src.Stride == w*4 {
		copy(b.Pix, src.Pix[:w*h*4])
		return b, nil
	}

	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		dst := b.Pix[y*w*b.Channels:]
		for x := 0; x < w; x++ {
			s := row[x*4 : x*4+4]
			d := dst[x*b.Channels : x*b.Channels+b.Channels]
			d[0], d[1], d[2] = s[0], s[1], s[2]
			if alpha {
				d[3] = s[3]
			}
		}
	}
	return b, nil
}

func (b *PixelBuffer) HasAlpha() bool { return b.Channels == 4 }

// PixOffset returns the index of the first channel of pixel (x, y) in Pix.
func (b *PixelBuffer) PixOffset(x, y int) int {
	return (y*b.Width + x) * b.Channels
}

// At returns the pixel at (x, y). Buffers without alpha report A = 255.
func (b *PixelBuffer) At(x, y int) color.NRGBA {
	i := b.PixOffset(x, y)
	c := color.NRGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: 0xff}
	if b.HasAlpha() {
		c.A = b.Pix[i+3]
	}
	return c
}

// Set stores c at (x, y). The alpha component is dropped on 3-channel buffers.
func (b *PixelBuffer) Set(x, y int, c color.NRGBA) {
	i := b.PixOffset(x, y)
	b.Pix[i], b.Pix[i+1], b.Pix[i+2] = c.R, c.G, c.B
	if b.HasAlpha() {
		b.Pix[i+3] = c.A
	}
}

// Image converts the buffer into an *image.NRGBA anchored at (0,0).
func (b *PixelBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	if b.HasAlpha() {
		copy(img.Pix, b.Pix)
		return img
	}
	for i, j := 0, 0; i < len(b.Pix); i, j = i+3, j+4 {
		img.Pix[j] = b.Pix[i]
		img.Pix[j+1] = b.Pix[i+1]
		img.Pix[j+2] = b.Pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// DropAlpha returns a 3-channel copy of b. The colour values are kept as is,
// transparent pixels are not composited against any background.
func (b *PixelBuffer) DropAlpha() *PixelBuffer {
	out := &PixelBuffer{Width: b.Width, Height: b.Height, Channels: 3, Pix: make([]uint8, b.Width*b.Height*3)}
	if !b.HasAlpha() {
		copy(out.Pix, b.Pix)
		return out
	}
	for i, j := 0, 0; i < len(b.Pix); i, j = i+4, j+3 {
		out.Pix[j] = b.Pix[i]
		out.Pix[j+1] = b.Pix[i+1]
		out.Pix[j+2] = b.Pix[i+2]
	}
	return out
}
