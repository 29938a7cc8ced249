package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Frame is what the pipeline hands to its sinks once mapping is done.
type Frame struct {
	Buffer *PixelBuffer
	Grid   *GlyphGrid
}

// Sink consumes a finished frame. Sinks must not modify the frame.
type Sink interface {
	Emit(f Frame) error
	String() string
}

// ConsoleSink prints the glyph grid, one row per line.
type ConsoleSink struct {
	W   io.Writer
	Sep string
}

func (s ConsoleSink) Emit(f Frame) error {
	_, err := io.WriteString(s.W, f.Grid.Render(s.Sep))
	return err
}

func (s ConsoleSink) String() string { return "console" }

// ImageSink re-encodes the processed buffer (not the glyphs) to Path.
type ImageSink struct {
	Path    string
	Format  Format
	Quality int
}

func (s ImageSink) Emit(f Frame) error {
	return EncodeFile(s.Path, f.Buffer, s.Format, s.Quality)
}

func (s ImageSink) String() string { return fmt.Sprintf("image %s (%s)", s.Path, s.Format) }

// ArtSink stores the glyph grid as text. A ".zst" path is zstd-compressed.
type ArtSink struct {
	Path string
	Sep  string
}

func (s ArtSink) Emit(f Frame) error {
	data := []byte(f.Grid.Render(s.Sep))

	if isCompressedArt(s.Path) {
		var out bytes.Buffer
		if err := EncodeZstd(&out, bytes.NewBuffer(data)); err != nil {
			return &EncodeError{Path: s.Path, Format: "zstd", Err: err}
		}
		data = out.Bytes()
	}

	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return &EncodeError{Path: s.Path, Err: err}
	}
	return nil
}

func (s ArtSink) String() string { return "art " + s.Path }

// ReadArt loads art written by ArtSink.
func ReadArt(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	if !isCompressedArt(path) {
		data, err := io.ReadAll(f)
		if err != nil {
			return "", &DecodeError{Path: path, Err: err}
		}
		return string(data), nil
	}

	plain, err := DecodeZstd(f)
	if err != nil {
		return "", &DecodeError{Path: path, Err: err}
	}
	return string(plain), nil
}

func isCompressedArt(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".zst")
}
