// Pixelator turns a raster image into greyscale ASCII art.
//
// The image is averaged to grey, halved N times with a 2x2 box filter and
// mapped onto an 8-glyph ramp. The art is printed to stdout; the processed
// image can be written back out, and the art stored as (zstd-compressed) text.
// Passing a stored .zst art file prints it again.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		if flags.WroteHelp(err) {
			fmt.Println(err)
			return
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		fmt.Fprintln(os.Stderr, "usage: pixelator [options] <input-image>   (see --help)")
		os.Exit(1)
	}
	if err := opts.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	logger := newLogger(opts.Verbose)

	// Stored art → print it back.
	if isCompressedArt(opts.Args.Input) {
		art, err := ReadArt(opts.Args.Input)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		fmt.Print(art)
		return
	}

	cfg, err := opts.Config()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if err := Run(cfg, logger); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if cfg.OutputPath != "" {
		fmt.Fprintf(os.Stderr, "Saved %s → %s (%s, %d pass(es))\n", cfg.InputPath, cfg.OutputPath, cfg.OutputFormat, cfg.Passes)
	}
}
