package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/mapramp/internal/legend"
	"github.com/jmylchreest/mapramp/internal/scale"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mapramp.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestBuildDefaults(t *testing.T) {
	cfg, err := NewBuilder().WithLookup(env(nil)).WithEnvConfig().Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if diff := cmp.Diff(Default(), *cfg); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPrecedence(t *testing.T) {
	path := writeConfig(t, `{
  "legend": {"position": "topright", "bar_width_px": 200},
  "workers": 2,
  "normalise": {"min": 0, "max": 100, "clamp": true}
}`)

	cfg, err := NewBuilder().
		WithFile(path).
		WithEnvConfig().
		WithLookup(env(map[string]string{EnvBarWidth: "250", EnvWorkers: "8"})).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := Default()
	want.Legend.Position = legend.PositionTopRight
	want.Legend.BarWidthPx = 250
	want.Workers = 8
	want.Normalise = &scale.Normaliser{Min: 0, Max: 100, Clamp: true}

	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildEnvIgnoredWithoutOptIn(t *testing.T) {
	cfg, err := NewBuilder().WithLookup(env(map[string]string{EnvWorkers: "8"})).Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0", cfg.Workers)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
	}{
		{name: "bad json", file: `{"legend":`},
		{name: "bad position", file: `{"legend": {"position": "middle"}}`},
		{name: "negative workers", file: `{"workers": -1}`},
		{name: "bad normaliser", file: `{"normalise": {"min": 5, "max": 1}}`},
		{name: "non-numeric env", env: map[string]string{EnvStripWidth: "wide"}},
		{name: "invalid env position", env: map[string]string{EnvLegendPosition: "centre"}},
		{name: "zero bar width", env: map[string]string{EnvBarWidth: "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder().WithEnvConfig().WithLookup(env(tt.env))
			if tt.file != "" {
				b.WithFile(writeConfig(t, tt.file))
			}
			if _, err := b.Build(); err == nil {
				t.Error("Build() should fail")
			}
		})
	}
}

func TestBuildMissingFile(t *testing.T) {
	_, err := NewBuilder().WithFile(filepath.Join(t.TempDir(), "absent.json")).Build()
	if err == nil {
		t.Error("Build() should fail for a missing file")
	}
}
