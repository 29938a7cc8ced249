package main

import (
	"errors"
	"image/color"
	"testing"
)

func fill(t *testing.T, w, h int, alpha bool, c color.NRGBA) *PixelBuffer {
	t.Helper()
	b, err := NewPixelBuffer(w, h, alpha)
	if err != nil {
		t.Fatalf("NewPixelBuffer: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.Set(x, y, c)
		}
	}
	return b
}

func TestDownsample_Dimensions(t *testing.T) {
	for _, tc := range []struct{ w, h int }{
		{2, 2}, {3, 3}, {4, 4}, {5, 2}, {7, 11}, {64, 48},
	} {
		b := fill(t, tc.w, tc.h, false, color.NRGBA{R: 1, G: 2, B: 3})
		out, err := Downsample(b)
		if err != nil {
			t.Fatalf("%dx%d: %v", tc.w, tc.h, err)
		}
		if out.Width != tc.w/2 || out.Height != tc.h/2 {
			t.Fatalf("%dx%d -> %dx%d, want %dx%d", tc.w, tc.h, out.Width, out.Height, tc.w/2, tc.h/2)
		}
	}
}

func TestDownsample_Uniform(t *testing.T) {
	c := color.NRGBA{R: 13, G: 200, B: 77, A: 91}
	out, err := Downsample(fill(t, 9, 6, true, c))
	if err != nil {
		t.Fatalf("Downsample: %v", err)
	}
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			if got := out.At(x, y); got != c {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, got, c)
			}
		}
	}
}

func TestDownsample_BlockMean(t *testing.T) {
	b, _ := NewPixelBuffer(2, 2, true)
	b.Set(0, 0, color.NRGBA{R: 0, G: 10, B: 255, A: 0})
	b.Set(1, 0, color.NRGBA{R: 1, G: 10, B: 255, A: 255})
	b.Set(0, 1, color.NRGBA{R: 1, G: 11, B: 255, A: 255})
	b.Set(1, 1, color.NRGBA{R: 1, G: 12, B: 254, A: 255})

	out, err := Downsample(b)
	if err != nil {
		t.Fatalf("Downsample: %v", err)
	}
	// (0+1+1+1)/4=0, 43/4=10, 1019/4=254, 765/4=191
	if got, want := out.At(0, 0), (color.NRGBA{R: 0, G: 10, B: 254, A: 191}); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDownsample_OddEdgesTruncated(t *testing.T) {
	b := fill(t, 3, 3, false, color.NRGBA{R: 255, G: 255, B: 255})
	b.Set(0, 0, color.NRGBA{R: 40, G: 40, B: 40})
	b.Set(1, 0, color.NRGBA{R: 40, G: 40, B: 40})
	b.Set(0, 1, color.NRGBA{R: 40, G: 40, B: 40})
	b.Set(1, 1, color.NRGBA{R: 40, G: 40, B: 40})
	// Last row and column differ and must not leak into the output.
	for i := 0; i < 3; i++ {
		b.Set(2, i, color.NRGBA{})
		b.Set(i, 2, color.NRGBA{})
	}

	out, err := Downsample(b)
	if err != nil {
		t.Fatalf("Downsample: %v", err)
	}
	if out.Width != 1 || out.Height != 1 {
		t.Fatalf("got %dx%d, want 1x1", out.Width, out.Height)
	}
	if got := out.At(0, 0); got != (color.NRGBA{R: 40, G: 40, B: 40, A: 255}) {
		t.Fatalf("got %v", got)
	}
}

func TestDownsample_TooSmall(t *testing.T) {
	for _, tc := range []struct{ w, h int }{{1, 1}, {1, 8}, {8, 1}} {
		_, err := Downsample(fill(t, tc.w, tc.h, false, color.NRGBA{}))
		var de *InvalidDimensionError
		if !errors.As(err, &de) {
			t.Fatalf("%dx%d: expected InvalidDimensionError, got %v", tc.w, tc.h, err)
		}
	}
}

func TestDownsample_LeavesSourceIntact(t *testing.T) {
	b := fill(t, 4, 4, false, color.NRGBA{R: 7, G: 7, B: 7})
	if _, err := Downsample(b); err != nil {
		t.Fatalf("Downsample: %v", err)
	}
	if b.Width != 4 || b.Height != 4 || len(b.Pix) != 48 {
		t.Fatalf("source buffer was modified")
	}
}

func TestMaxPasses(t *testing.T) {
	for _, tc := range []struct{ w, h, want int }{
		{1, 1, 0}, {2, 2, 1}, {3, 3, 1}, {4, 4, 2}, {4, 100, 2}, {1024, 768, 9}, {17, 33, 4},
	} {
		if got := MaxPasses(tc.w, tc.h); got != tc.want {
			t.Fatalf("MaxPasses(%d,%d) = %d, want %d", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestDownsampleN(t *testing.T) {
	for _, tc := range []struct{ w, h, n int }{
		{64, 48, 0}, {64, 48, 1}, {64, 48, 3}, {37, 21, 2}, {101, 99, 6},
	} {
		b := fill(t, tc.w, tc.h, false, color.NRGBA{R: 9, G: 9, B: 9})
		out, err := DownsampleN(b, tc.n)
		if err != nil {
			t.Fatalf("%dx%d n=%d: %v", tc.w, tc.h, tc.n, err)
		}
		w, h := tc.w, tc.h
		for i := 0; i < tc.n; i++ {
			w, h = w/2, h/2
		}
		if out.Width != w || out.Height != h {
			t.Fatalf("%dx%d n=%d -> %dx%d, want %dx%d", tc.w, tc.h, tc.n, out.Width, out.Height, w, h)
		}
	}

	_, err := DownsampleN(fill(t, 8, 8, false, color.NRGBA{}), 4)
	var de *InvalidDimensionError
	if !errors.As(err, &de) || de.Passes != 4 {
		t.Fatalf("expected InvalidDimensionError for 4 passes on 8x8, got %v", err)
	}
}
