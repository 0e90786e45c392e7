package app

import (
	"flag"

	"psi-bounce/internal/bounce"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Preset   string
	Pressure float64
	Width    int
	Height   int
	HUDWidth int
	TPS      int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := bounce.DefaultConfig()
	return &Config{Pressure: d.Pressure, Width: d.Width, Height: d.Height, HUDWidth: 220, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "config", c.Preset, "YAML preset to load before applying flags")
	fs.Float64Var(&c.Pressure, "pressure", c.Pressure, "initial ball pressure in PSI (2.0-8.5)")
	fs.IntVar(&c.Width, "width", c.Width, "ball view width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}

// Resolve builds the demo configuration: the preset (or defaults) with any
// flags explicitly set on fs layered on top.
func (c *Config) Resolve(fs *flag.FlagSet) (bounce.Config, error) {
	cfg := bounce.DefaultConfig()
	if c.Preset != "" {
		loaded, err := bounce.LoadConfig(c.Preset)
		if err != nil {
			return bounce.Config{}, err
		}
		cfg = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "pressure":
			cfg.Pressure = c.Pressure
		case "width":
			cfg.Width = c.Width
		case "height":
			cfg.Height = c.Height
		}
	})
	if err := cfg.Validate(); err != nil {
		return bounce.Config{}, err
	}
	return cfg, nil
}
