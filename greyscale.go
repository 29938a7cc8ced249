package main

// Greyscale replaces R, G and B of every pixel with their truncated mean.
// Alpha is left untouched.
func (b *PixelBuffer) Greyscale() {
	ch := b.Channels
	for i := 0; i+2 < len(b.Pix); i += ch {
		grey := uint8((int(b.Pix[i]) + int(b.Pix[i+1]) + int(b.Pix[i+2])) / 3)
		b.Pix[i] = grey
		b.Pix[i+1] = grey
		b.Pix[i+2] = grey
	}
}
