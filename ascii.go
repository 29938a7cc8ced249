package main

import "strings"

// Ramp lists the glyphs from densest (darkest) to blank (brightest).
var Ramp = [8]byte{'@', '#', '%', '+', '=', '-', '.', ' '}

// GlyphGrid holds one glyph per pixel of the buffer it was mapped from.
type GlyphGrid struct {
	Width  int
	Height int
	Glyphs []byte
}

// GlyphFor maps a grey value to its ramp glyph: 32 grey levels per glyph.
func GlyphFor(grey uint8) byte {
	return Ramp[grey/32]
}

// MapASCII maps every pixel of b to a glyph. Fully transparent pixels become
// a space; all others use channel 0 as luminance, so b is expected to be
// greyscaled already.
func MapASCII(b *PixelBuffer) *GlyphGrid {
	g := &GlyphGrid{
		Width:  b.Width,
		Height: b.Height,
		Glyphs: make([]byte, b.Width*b.Height),
	}
	ch := b.Channels
	for i := range g.Glyphs {
		p := b.Pix[i*ch : i*ch+ch]
		if ch == 4 && p[3] == 0 {
			g.Glyphs[i] = ' '
			continue
		}
		g.Glyphs[i] = GlyphFor(p[0])
	}
	return g
}

func (g *GlyphGrid) At(x, y int) byte {
	return g.Glyphs[y*g.Width+x]
}

// Lines returns one string per row with sep between glyphs.
func (g *GlyphGrid) Lines(sep string) []string {
	lines := make([]string, g.Height)
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		sb.Reset()
		sb.Grow(g.Width * (1 + len(sep)))
		row := g.Glyphs[y*g.Width : (y+1)*g.Width]
		for x, c := range row {
			if x > 0 {
				sb.WriteString(sep)
			}
			sb.WriteByte(c)
		}
		lines[y] = sb.String()
	}
	return lines
}

// Render joins Lines(sep) with newlines and terminates the last row.
func (g *GlyphGrid) Render(sep string) string {
	return strings.Join(g.Lines(sep), "\n") + "\n"
}
