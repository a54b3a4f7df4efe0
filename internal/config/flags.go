package config

import (
	"flag"
	"strings"
)

// Flags holds command line overrides applied on top of the config file.
type Flags struct {
	ConfigFile string
	Preset     string
	Debug      bool
	Width      int
	Height     int
	Fullscreen bool
	Windowed   bool
}

// ParseFlags parses the command line into a Flags value.
func ParseFlags() *Flags {
	f := &Flags{}

	flag.StringVar(&f.ConfigFile, "config", "", "path to config file")
	flag.StringVar(&f.Preset, "preset", "", "scene preset ("+strings.Join(Presets(), ", ")+")")
	flag.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	flag.IntVar(&f.Width, "width", 0, "window width")
	flag.IntVar(&f.Height, "height", 0, "window height")
	flag.BoolVar(&f.Fullscreen, "fullscreen", false, "start fullscreen")
	flag.BoolVar(&f.Windowed, "windowed", false, "force windowed mode")

	flag.Parse()
	return f
}

func (f *Flags) apply(cfg *Config) error {
	if f.Preset != "" {
		if err := ApplyPreset(cfg, f.Preset); err != nil {
			return err
		}
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Width > 0 {
		cfg.Graphics.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Graphics.Height = f.Height
	}
	if f.Fullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if f.Windowed {
		cfg.Graphics.Fullscreen = false
	}
	return nil
}
