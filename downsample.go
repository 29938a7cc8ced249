package main

// MaxPasses reports how many times a w×h buffer can be halved before
// a dimension reaches zero.
func MaxPasses(w, h int) int {
	n := 0
	for w >= 2 && h >= 2 {
		w /= 2
		h /= 2
		n++
	}
	return n
}

// Downsample returns a new buffer of half the width and height (floored),
// each pixel being the per-channel mean of a 2×2 source block. An odd last
// row or column is dropped.
func Downsample(src *PixelBuffer) (*PixelBuffer, error) {
	if src.Width < 2 || src.Height < 2 {
		return nil, &InvalidDimensionError{Width: src.Width, Height: src.Height, Passes: 1}
	}
	dst, err := NewPixelBuffer(src.Width/2, src.Height/2, src.HasAlpha())
	if err != nil {
		return nil, err
	}

	ch := src.Channels
	rowStride := src.Width * ch
	for y := 0; y < dst.Height; y++ {
		top := 2 * y * rowStride
		bottom := top + rowStride
		out := y * dst.Width * ch
		for x := 0; x < dst.Width; x++ {
			left := 2 * x * ch
			for c := 0; c < ch; c++ {
				sum := int(src.Pix[top+left+c]) +
					int(src.Pix[top+left+ch+c]) +
					int(src.Pix[bottom+left+c]) +
					int(src.Pix[bottom+left+ch+c])
				dst.Pix[out+x*ch+c] = uint8(sum / 4)
			}
		}
	}
	return dst, nil
}

// DownsampleN applies Downsample n times. It validates n against the
// buffer size first and fails without doing any work if n is too large.
func DownsampleN(b *PixelBuffer, n int) (*PixelBuffer, error) {
	if n < 0 || n > MaxPasses(b.Width, b.Height) {
		return nil, &InvalidDimensionError{Width: b.Width, Height: b.Height, Passes: n}
	}
	var err error
	for i := 0; i < n; i++ {
		if b, err = Downsample(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}
