package bounce

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML preset from path. Keys missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read bounce preset: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML preset over the defaults and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse bounce preset: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid bounce preset: %w", err)
	}
	return cfg, nil
}

// Validate reports configuration defects. Pressure is checked here so the
// restitution model never sees an out-of-domain value from a preset.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("view size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.Pressure < PressureMin || c.Pressure > PressureMax {
		errs = append(errs, fmt.Errorf("pressure %.2f outside [%.1f, %.1f]", c.Pressure, PressureMin, PressureMax))
	}
	if c.PressureStep <= 0 {
		errs = append(errs, fmt.Errorf("pressure_step must be positive, got %v", c.PressureStep))
	}
	p := c.Physics
	if p.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("gravity must be positive, got %v", p.Gravity))
	}
	if p.RestThreshold < 0 {
		errs = append(errs, fmt.Errorf("rest_threshold must not be negative, got %v", p.RestThreshold))
	}
	if p.MaxBounces <= 0 {
		errs = append(errs, fmt.Errorf("max_bounces must be positive, got %d", p.MaxBounces))
	}
	if p.RecordedBounces < 0 || p.RecordedBounces > p.MaxBounces {
		errs = append(errs, fmt.Errorf("recorded_bounces must be within [0, %d], got %d", p.MaxBounces, p.RecordedBounces))
	}
	if p.BallDiameter <= 0 {
		errs = append(errs, fmt.Errorf("ball_diameter must be positive, got %v", p.BallDiameter))
	}
	if p.DropHeight < 0 {
		errs = append(errs, fmt.Errorf("drop_height must not be negative, got %v", p.DropHeight))
	}
	if p.ViewMeters <= 0 {
		errs = append(errs, fmt.Errorf("view_meters must be positive, got %v", p.ViewMeters))
	}
	return errors.Join(errs...)
}
