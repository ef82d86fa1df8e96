// Command tiffgdal turns a window of a GeoTIFF elevation model into a
// lithophane STL.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/rneatherway/lithophane/internal/geotiff"
	"github.com/rneatherway/lithophane/internal/lithophane"
	"github.com/rneatherway/lithophane/internal/logger"
)

type options struct {
	window      geotiff.Window
	baseHeight  float64
	modelHeight float64
	output      string
	ascii       bool
	debug       bool
	diff        string
	input       string
}

func parseArgs(args []string) (*options, error) {
	fs := flag.NewFlagSet("tiffgdal", flag.ContinueOnError)
	x := fs.Uint("x", 0, "x coordinate")
	y := fs.Uint("y", 0, "y coordinate")
	w := fs.Uint("w", 0, "width (default max)")
	h := fs.Uint("h", 0, "height (default max)")
	opts := &options{}
	fs.Float64Var(&opts.baseHeight, "base-height", 1, "thickness of the solid below its lowest point")
	fs.Float64Var(&opts.modelHeight, "model-height", 5, "height of the highest point above the lowest")
	fs.StringVar(&opts.output, "output", "out.stl", "output STL file")
	fs.BoolVar(&opts.ascii, "ascii", false, "write ASCII instead of binary STL")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	fs.StringVar(&opts.diff, "d", "", "a second file to compare against")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage of %s [OPTIONS] <input geotiff file>:\n", fs.Name())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if filepath.Ext(opts.output) != ".stl" {
		return nil, fmt.Errorf("unsupported output format")
	}
	switch fs.NArg() {
	case 0:
		fs.Usage()
		return nil, fmt.Errorf("no input file given")
	case 1:
		// Great
	default:
		fs.Usage()
		return nil, fmt.Errorf("unrecognised arguments %s", strings.Join(fs.Args()[1:], ", "))
	}

	opts.window = geotiff.Window{X: *x, Y: *y, W: *w, H: *h}
	opts.input = fs.Arg(0)
	return opts, nil
}

func realMain(args []string) error {
	opts, err := parseArgs(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	level := "info"
	if opts.debug {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("reading GeoTIFF window",
		zap.String("input", opts.input),
		zap.Uint("x", opts.window.X),
		zap.Uint("y", opts.window.Y),
		zap.Uint("w", opts.window.W),
		zap.Uint("h", opts.window.H))
	var minus []string
	if opts.diff != "" {
		minus = append(minus, opts.diff)
	}
	img, err := geotiff.ReadLuma(opts.input, opts.window, minus...)
	if err != nil {
		return err
	}

	hm, err := lithophane.NewHeightmap(img, float32(opts.modelHeight))
	if err != nil {
		return err
	}

	mesh := lithophane.Build(hm, float32(opts.baseHeight))

	logger.Info("writing STL", zap.String("path", opts.output))
	return lithophane.Solid(strings.TrimSuffix(filepath.Base(opts.input), filepath.Ext(opts.input)), mesh, opts.ascii).WriteFile(opts.output)
}

func main() {
	err := realMain(os.Args[1:])
	if err != nil {
		logger.Error("conversion failed", zap.Error(err))
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}
}
