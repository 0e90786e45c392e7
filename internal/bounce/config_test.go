package bounce

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                "320",
		"h":                "bogus",
		"pressure":         "7.25",
		"max_bounces":      "4",
		"recorded_bounces": "6",
		"gravity":          "-1",
	})
	def := DefaultConfig()
	if cfg.Width != 320 {
		t.Fatalf("expected width 320, got %d", cfg.Width)
	}
	if cfg.Height != def.Height {
		t.Fatalf("malformed height should keep default, got %d", cfg.Height)
	}
	if cfg.Pressure != 7.25 {
		t.Fatalf("expected pressure 7.25, got %f", cfg.Pressure)
	}
	if cfg.Physics.MaxBounces != 4 || cfg.Physics.RecordedBounces != 4 {
		t.Fatalf("recorded bounces should clamp to max, got %d/%d", cfg.Physics.RecordedBounces, cfg.Physics.MaxBounces)
	}
	if cfg.Physics.Gravity != def.Physics.Gravity {
		t.Fatalf("negative gravity should be ignored, got %f", cfg.Physics.Gravity)
	}

	if got := FromMap(map[string]string{"pressure": "9"}).Pressure; got != def.Pressure {
		t.Fatalf("out-of-range pressure should keep default, got %f", got)
	}
	if got := FromMap(nil); got != def {
		t.Fatalf("nil map should return defaults, got %+v", got)
	}
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		errContains string
		validate    func(*testing.T, Config)
	}{
		{
			name: "partial preset keeps defaults",
			yamlContent: `
pressure: 3.5
physics:
  drop_height: 1.5
`,
			validate: func(t *testing.T, cfg Config) {
				if cfg.Pressure != 3.5 {
					t.Errorf("expected pressure 3.5, got %f", cfg.Pressure)
				}
				if cfg.Physics.DropHeight != 1.5 {
					t.Errorf("expected drop height 1.5, got %f", cfg.Physics.DropHeight)
				}
				if cfg.Physics.Gravity != 9.81 {
					t.Errorf("expected default gravity, got %f", cfg.Physics.Gravity)
				}
				if cfg.Width != DefaultConfig().Width {
					t.Errorf("expected default width, got %d", cfg.Width)
				}
			},
		},
		{
			name:        "pressure out of range",
			yamlContent: "pressure: 9.5\n",
			errContains: "pressure",
		},
		{
			name: "recorded above cap",
			yamlContent: `
physics:
  max_bounces: 3
  recorded_bounces: 5
`,
			errContains: "recorded_bounces",
		},
		{
			name:        "malformed yaml",
			yamlContent: "pressure: [1, 2\n",
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.yamlContent))
			if tt.errContains != "" {
				if err == nil {
					t.Fatalf("expected error containing %q", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Fatalf("error %q does not mention %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preset.yaml")
	if err := os.WriteFile(path, []byte("width: 300\nheight: 500\npressure: 8.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 300 || cfg.Height != 500 || cfg.Pressure != 8.5 {
		t.Fatalf("unexpected config %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing preset")
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}
