package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
)

const (
	defaultPasses  = 4
	defaultQuality = 90
)

// Options are the command line flags.
type Options struct {
	Passes     int    `short:"n" long:"passes" default:"4" description:"Number of 2x2 downsampling passes (each halves width and height)"`
	Output     string `short:"o" long:"out" description:"Write the processed greyscale image to this file"`
	Format     string `short:"f" long:"format" description:"Output image format (png, jpeg, gif, bmp, tiff, qoi); defaults to the --out extension"`
	Quality    int    `short:"q" long:"quality" default:"90" description:"JPEG quality (1-100)"`
	NoPrint    bool   `long:"no-print" description:"Do not print the ASCII art to stdout"`
	Dense      bool   `long:"dense" description:"Print glyphs without a separating space"`
	ArtOut     string `long:"art-out" description:"Store the ASCII art in a text file (.zst suffix compresses it)"`
	AutoOrient bool   `long:"auto-orient" description:"Apply the EXIF orientation of the input"`
	Verbose    bool   `short:"V" long:"verbose" description:"Log every pipeline stage to stderr"`

	Args struct {
		Input string `positional-arg-name:"input" description:"Image to convert, or a stored .zst art file to print"`
	} `positional-args:"yes" required:"yes"`
}

var ErrNoInput = errors.New("missing input image argument")

// parseOptions parses args (without the program name).
func parseOptions(args []string) (*Options, error) {
	opts := &Options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "pixelator"
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks everything that can be checked before touching any file.
func (o *Options) Validate() error {
	if o.Args.Input == "" {
		return ErrNoInput
	}
	if o.Passes < 0 {
		return fmt.Errorf("passes must be >= 0, got %d", o.Passes)
	}
	if o.Quality < 1 || o.Quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100, got %d", o.Quality)
	}
	if o.Format != "" {
		if _, err := ParseFormat(o.Format); err != nil {
			return err
		}
		if o.Output == "" {
			return errors.New("--format requires --out")
		}
	}
	if o.Output != "" && o.Format == "" {
		if _, err := FormatFromPath(o.Output); err != nil {
			return fmt.Errorf("output %s: %w", o.Output, err)
		}
	}
	return nil
}

// Config describes one pipeline run.
type Config struct {
	InputPath    string
	Passes       int
	OutputPath   string
	OutputFormat Format
	Quality      int
	EmitConsole  bool
	Separator    string
	ArtPath      string
	AutoOrient   bool

	// Stdout receives the console art; nil means os.Stdout.
	Stdout io.Writer
}

// DefaultConfig mirrors the command line defaults.
func DefaultConfig(input string) Config {
	return Config{
		InputPath:   input,
		Passes:      defaultPasses,
		Quality:     defaultQuality,
		EmitConsole: true,
		Separator:   " ",
	}
}

// Config converts validated options into a run configuration.
func (o *Options) Config() (Config, error) {
	cfg := DefaultConfig(o.Args.Input)
	cfg.Passes = o.Passes
	cfg.OutputPath = o.Output
	cfg.Quality = o.Quality
	cfg.EmitConsole = !o.NoPrint
	cfg.ArtPath = o.ArtOut
	cfg.AutoOrient = o.AutoOrient
	if o.Dense {
		cfg.Separator = ""
	}

	if o.Output != "" {
		var (
			f   Format
			err error
		)
		if o.Format != "" {
			f, err = ParseFormat(o.Format)
		} else {
			f, err = FormatFromPath(o.Output)
		}
		if err != nil {
			return Config{}, err
		}
		cfg.OutputFormat = f
	}
	return cfg, nil
}

// Sinks builds the output sinks. File sinks come first so that nothing is
// printed when a file cannot be written.
func (c Config) Sinks() []Sink {
	var sinks []Sink
	if c.OutputPath != "" {
		sinks = append(sinks, ImageSink{Path: c.OutputPath, Format: c.OutputFormat, Quality: c.Quality})
	}
	if c.ArtPath != "" {
		sinks = append(sinks, ArtSink{Path: c.ArtPath, Sep: c.Separator})
	}
	if c.EmitConsole {
		w := c.Stdout
		if w == nil {
			w = os.Stdout
		}
		sinks = append(sinks, ConsoleSink{W: w, Sep: c.Separator})
	}
	return sinks
}

// newLogger returns the stage logger: stderr when verbose, silent otherwise.
func newLogger(verbose bool) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "pixelator: ", log.LstdFlags|log.Lshortfile)
}
