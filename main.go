package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/rneatherway/lithophane/internal/config"
	"github.com/rneatherway/lithophane/internal/lithophane"
	"github.com/rneatherway/lithophane/internal/logger"
	"github.com/rneatherway/lithophane/internal/raster"
)

func realMain(args []string) error {
	fs := flag.NewFlagSet("lithophane", flag.ContinueOnError)
	flags := config.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage of %s [OPTIONS] <input image file>:\n", fs.Name())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	switch fs.NArg() {
	case 0:
		fs.Usage()
		return fmt.Errorf("no input file given")
	case 1:
		// Great
	default:
		fs.Usage()
		return fmt.Errorf("unrecognised arguments %s", strings.Join(fs.Args()[1:], ", "))
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return err
	}
	defer logger.Sync()

	if path := flags.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		logger.Info("wrote config", zap.String("path", path))
	}

	return convert(cfg, fs.Arg(0))
}

func convert(cfg *config.Config, input string) error {
	logger.Info("reading image",
		zap.String("input", input),
		zap.String("output", cfg.Output.Path),
		zap.Float32("base_height", cfg.Model.BaseHeight),
		zap.Float32("model_height", cfg.Model.ModelHeight))

	img, err := raster.Open(input)
	if err != nil {
		return err
	}
	if img.Depth > 8 {
		logger.Warn("reducing luma precision to 8 bits", zap.Int("depth", img.Depth))
	}

	logger.Info("generating heightmap", zap.String("format", img.Format))
	hm, err := lithophane.NewHeightmap(img.Gray, cfg.Model.ModelHeight)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	logger.Debug("heightmap ready",
		zap.Uint("width", hm.Width()),
		zap.Uint("height", hm.Height()),
		zap.Float32("min_height", hm.Min()),
		zap.Float32("max_height", hm.Max()))

	switch filepath.Ext(cfg.Output.Path) {
	case ".png":
		return writePreview(hm, cfg.Output.Path)
	default:
		return writeSTL(hm, cfg)
	}
}

func writeSTL(hm *lithophane.Heightmap, cfg *config.Config) error {
	mesh := lithophane.Build(hm, cfg.Model.BaseHeight)

	logger.Info("writing STL", zap.String("path", cfg.Output.Path), zap.Bool("ascii", cfg.Output.ASCII))
	return lithophane.Solid(cfg.Output.Name, mesh, cfg.Output.ASCII).WriteFile(cfg.Output.Path)
}

func writePreview(hm *lithophane.Heightmap, path string) error {
	logger.Info("writing heightmap preview",
		zap.String("path", path),
		zap.Float32("min_height", hm.Min()),
		zap.Float32("max_height", hm.Max()))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, hm.ToImage()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func main() {
	err := realMain(os.Args[1:])
	if err != nil {
		logger.Error("conversion failed", zap.Error(err))
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}
}
