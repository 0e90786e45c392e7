package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"psi-bounce/internal/bounce"
)

func parse(t *testing.T, args ...string) (*Config, *flag.FlagSet) {
	t.Helper()
	fs := flag.NewFlagSet("bounce", flag.ContinueOnError)
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	return cfg, fs
}

func TestResolveDefaults(t *testing.T) {
	cfg, fs := parse(t)
	got, err := cfg.Resolve(fs)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != bounce.DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestResolveFlagsOverridePreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte("pressure: 3\nwidth: 200\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, fs := parse(t, "-config", path, "-pressure", "7.5")
	got, err := cfg.Resolve(fs)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Pressure != 7.5 {
		t.Fatalf("flag should override preset pressure, got %f", got.Pressure)
	}
	if got.Width != 200 {
		t.Fatalf("unset width flag should keep the preset, got %d", got.Width)
	}
}

func TestResolveRejectsOutOfRangePressure(t *testing.T) {
	cfg, fs := parse(t, "-pressure", "1.5")
	if _, err := cfg.Resolve(fs); err == nil {
		t.Fatal("expected an error for pressure below range")
	}
}
