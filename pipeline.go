package main

import (
	"io"
	"log"
)

// Stage is the position of a Pipeline in its one-way state machine:
// Decoded → Greyscaled → Downsampled → Mapped → Emitted.
type Stage int

const (
	StageDecoded Stage = iota
	StageGreyscaled
	StageDownsampled
	StageMapped
	StageEmitted
)

func (s Stage) String() string {
	switch s {
	case StageDecoded:
		return "decoded"
	case StageGreyscaled:
		return "greyscaled"
	case StageDownsampled:
		return "downsampled"
	case StageMapped:
		return "mapped"
	case StageEmitted:
		return "emitted"
	}
	return "unknown"
}

// Pipeline owns a single PixelBuffer and moves it through the stages in order.
// Each method checks the current stage, so luminance is never mapped from
// raw colour channels.
//
// A Pipeline is single-shot and not safe for concurrent use.
type Pipeline struct {
	buf    *PixelBuffer
	grid   *GlyphGrid
	stage  Stage
	passes int
	log    *log.Logger
}

// NewPipeline takes ownership of buf. A nil logger discards stage logs.
func NewPipeline(buf *PixelBuffer, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Pipeline{buf: buf, stage: StageDecoded, log: logger}
}

func (p *Pipeline) Stage() Stage         { return p.stage }
func (p *Pipeline) Passes() int          { return p.passes }
func (p *Pipeline) Buffer() *PixelBuffer { return p.buf }
func (p *Pipeline) Grid() *GlyphGrid     { return p.grid }

func (p *Pipeline) Greyscale() error {
	if p.stage != StageDecoded {
		return &StageError{Op: "greyscale", Stage: p.stage}
	}
	p.buf.Greyscale()
	p.stage = StageGreyscaled
	p.log.Printf("greyscaled %dx%d", p.buf.Width, p.buf.Height)
	return nil
}

// Downsample halves the buffer once. The previous buffer is released.
func (p *Pipeline) Downsample() error {
	if p.stage != StageGreyscaled && p.stage != StageDownsampled {
		return &StageError{Op: "downsample", Stage: p.stage}
	}
	next, err := Downsample(p.buf)
	if err != nil {
		return err
	}
	p.buf = next
	p.passes++
	p.stage = StageDownsampled
	p.log.Printf("pass %d: %dx%d", p.passes, p.buf.Width, p.buf.Height)
	return nil
}

func (p *Pipeline) Map() (*GlyphGrid, error) {
	if p.stage != StageGreyscaled && p.stage != StageDownsampled {
		return nil, &StageError{Op: "map", Stage: p.stage}
	}
	p.grid = MapASCII(p.buf)
	p.stage = StageMapped
	p.log.Printf("mapped %dx%d glyphs", p.grid.Width, p.grid.Height)
	return p.grid, nil
}

// Emit hands the frame to every sink in order and stops at the first error.
func (p *Pipeline) Emit(sinks ...Sink) error {
	if p.stage != StageMapped {
		return &StageError{Op: "emit", Stage: p.stage}
	}
	f := Frame{Buffer: p.buf, Grid: p.grid}
	for _, s := range sinks {
		if err := s.Emit(f); err != nil {
			return err
		}
		p.log.Printf("emitted to %s", s)
	}
	p.stage = StageEmitted
	return nil
}

// Run performs one full conversion described by cfg.
func Run(cfg Config, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	d, err := DecodeFile(cfg.InputPath, DecodeOptions{AutoOrient: cfg.AutoOrient})
	if err != nil {
		return err
	}
	b := d.Buffer
	logger.Printf("decoded %s: %s %dx%d, %d channels", cfg.InputPath, d.Format, b.Width, b.Height, b.Channels)

	// Fail before touching the pixels.
	if cfg.Passes < 0 || cfg.Passes > MaxPasses(b.Width, b.Height) {
		return &InvalidDimensionError{Width: b.Width, Height: b.Height, Passes: cfg.Passes}
	}

	p := NewPipeline(b, logger)
	if err := p.Greyscale(); err != nil {
		return err
	}
	for i := 0; i < cfg.Passes; i++ {
		if err := p.Downsample(); err != nil {
			return err
		}
	}
	if _, err := p.Map(); err != nil {
		return err
	}
	return p.Emit(cfg.Sinks()...)
}
