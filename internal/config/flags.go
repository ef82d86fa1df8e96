package config

import "flag"

// Flags are the command-line overrides for a Config. Only flags given
// explicitly override values from the config file.
type Flags struct {
	fs *flag.FlagSet

	config      *string
	writeConfig *string
	debug       *bool
	logFile     *string
	baseHeight  *float64
	modelHeight *float64
	output      *string
	ascii       *bool
	name        *string
}

// RegisterFlags defines the config flags on fs. Call fs.Parse before Load.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs:          fs,
		config:      fs.String("config", "", "path to config file"),
		writeConfig: fs.String("write-config", "", "write the effective config to this path"),
		debug:       fs.Bool("debug", false, "enable debug logging"),
		logFile:     fs.String("log-file", "", "also log to this file"),
		baseHeight:  fs.Float64("base-height", 1, "thickness of the solid below its lowest point"),
		modelHeight: fs.Float64("model-height", 5, "height of a white pixel above a black one"),
		output:      fs.String("output", "out.stl", "output file, .stl for a mesh or .png for a heightmap preview"),
		ascii:       fs.Bool("ascii", false, "write ASCII instead of binary STL"),
		name:        fs.String("name", "lithophane", "solid name recorded in the STL"),
	}
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	return *f.config
}

// WriteConfigPath returns the -write-config path, if any.
func (f *Flags) WriteConfigPath() string {
	return *f.writeConfig
}

func (f *Flags) given() map[string]bool {
	set := map[string]bool{}
	f.fs.Visit(func(fl *flag.Flag) {
		set[fl.Name] = true
	})
	return set
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	set := f.given()

	if *f.debug {
		cfg.Logging.Level = "debug"
	}
	if set["log-file"] {
		cfg.Logging.LogFile = *f.logFile
	}
	if set["base-height"] {
		cfg.Model.BaseHeight = float32(*f.baseHeight)
	}
	if set["model-height"] {
		cfg.Model.ModelHeight = float32(*f.modelHeight)
	}
	if set["output"] {
		cfg.Output.Path = *f.output
	}
	if set["ascii"] {
		cfg.Output.ASCII = *f.ascii
	}
	if set["name"] {
		cfg.Output.Name = *f.name
	}
}
