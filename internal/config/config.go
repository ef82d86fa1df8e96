// Package config handles lithophane configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
)

var (
	// ErrOutputFormat is returned for output paths that are neither .stl
	// nor .png.
	ErrOutputFormat = errors.New("unsupported output format")
	// ErrNotFinite is returned for NaN or infinite model dimensions.
	ErrNotFinite = errors.New("value must be a finite number")
)

// Config holds all settings for one conversion.
type Config struct {
	Model   ModelConfig   `yaml:"model"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ModelConfig holds the dimensions of the generated solid.
type ModelConfig struct {
	BaseHeight  float32 `yaml:"base_height"`  // Thickness below the lowest surface point
	ModelHeight float32 `yaml:"model_height"` // Height of a white pixel above a black one
}

// OutputConfig holds where and how the result is written.
type OutputConfig struct {
	Path  string `yaml:"path"`  // .stl for a mesh, .png for a heightmap preview
	ASCII bool   `yaml:"ascii"` // ASCII instead of binary STL
	Name  string `yaml:"name"`  // Solid name recorded in the STL
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			BaseHeight:  1,
			ModelHeight: 5,
		},
		Output: OutputConfig{
			Path: "out.stl",
			Name: "lithophane",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks the settings the generator cannot work with.
func (c *Config) Validate() error {
	for name, v := range map[string]float32{
		"base_height":  c.Model.BaseHeight,
		"model_height": c.Model.ModelHeight,
	} {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("%s: %w", name, ErrNotFinite)
		}
	}

	switch ext := filepath.Ext(c.Output.Path); ext {
	case ".stl", ".png":
	default:
		return fmt.Errorf("%w %q", ErrOutputFormat, ext)
	}
	return nil
}
