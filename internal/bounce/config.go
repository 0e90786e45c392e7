package bounce

import "strconv"

// Physics holds the tunables of the bounce integration and the scaled scene.
type Physics struct {
	Gravity         float64 `yaml:"gravity"`
	RestThreshold   float64 `yaml:"rest_threshold"`
	RecordedBounces int     `yaml:"recorded_bounces"`
	MaxBounces      int     `yaml:"max_bounces"`

	BallDiameter float64 `yaml:"ball_diameter"`
	DropHeight   float64 `yaml:"drop_height"`
	ViewMeters   float64 `yaml:"view_meters"`
}

// Config controls the demo window and the pressure a run starts with.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Pressure     float64 `yaml:"pressure"`
	PressureStep float64 `yaml:"pressure_step"`

	Physics Physics `yaml:"physics"`
}

// DefaultConfig returns the standard configuration: a basketball dropped from
// 1.1 m in a view that fits 2.2 m.
func DefaultConfig() Config {
	return Config{
		Width:        480,
		Height:       640,
		Pressure:     5.0,
		PressureStep: 0.1,
		Physics: Physics{
			Gravity:         9.81,
			RestThreshold:   0.5,
			RecordedBounces: 5,
			MaxBounces:      10,
			BallDiameter:    0.246,
			DropHeight:      1.1,
			ViewMeters:      2.2,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed or out-of-domain values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["pressure"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= PressureMin && parsed <= PressureMax {
			c.Pressure = parsed
		}
	}
	if v, ok := cfg["pressure_step"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.PressureStep = parsed
		}
	}
	if v, ok := cfg["gravity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Physics.Gravity = parsed
		}
	}
	if v, ok := cfg["rest_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Physics.RestThreshold = parsed
		}
	}
	if v, ok := cfg["max_bounces"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Physics.MaxBounces = parsed
		}
	}
	if v, ok := cfg["recorded_bounces"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Physics.RecordedBounces = parsed
		}
	}
	if c.Physics.RecordedBounces > c.Physics.MaxBounces {
		c.Physics.RecordedBounces = c.Physics.MaxBounces
	}
	if v, ok := cfg["ball_diameter"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Physics.BallDiameter = parsed
		}
	}
	if v, ok := cfg["drop_height"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Physics.DropHeight = parsed
		}
	}
	if v, ok := cfg["view_meters"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Physics.ViewMeters = parsed
		}
	}
	return c
}
