package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if !reflect.DeepEqual(cfg, DefaultPongConfig()) {
		t.Errorf("embedded defaults differ from DefaultPongConfig():\n%+v\n%+v", cfg, DefaultPongConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	data := "arena:\n  width: 1024\n  height: 768\nphysics:\n  max_ball_speed: 30\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceCustom {
		t.Errorf("source = %q, expected %q", source, SourceCustom)
	}
	if cfg.Arena.Width != 1024 || cfg.Arena.Height != 768 {
		t.Errorf("arena = %+v, expected 1024x768", cfg.Arena)
	}
	if cfg.Physics.MaxBallSpeed != 30 {
		t.Errorf("max_ball_speed = %g, expected 30", cfg.Physics.MaxBallSpeed)
	}
	// Missing fields keep defaults
	if cfg.Ball.ServeSpeed != 4 || cfg.Physics.BounceFactor != 1.1 {
		t.Errorf("unset fields should keep defaults, got ball=%+v physics=%+v", cfg.Ball, cfg.Physics)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena: [not, a, map"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	degenerate := filepath.Join(dir, "degenerate.yaml")
	if err := os.WriteFile(degenerate, []byte("arena:\n  width: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	_, _, err := Load(degenerate)
	if !errors.Is(err, ErrInvalidArena) {
		t.Errorf("Load() of zero-width arena: err = %v, expected ErrInvalidArena", err)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".pong", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pong.yaml"), []byte("ball:\n  serve_speed: 6\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceUser {
		t.Errorf("source = %q, expected %q", source, SourceUser)
	}
	if cfg.Ball.ServeSpeed != 6 {
		t.Errorf("serve_speed = %g, expected 6", cfg.Ball.ServeSpeed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *PongConfig)
		wantErr error
	}{
		{"defaults", func(c *PongConfig) {}, nil},
		{"negative height", func(c *PongConfig) { c.Arena.Height = -1 }, ErrInvalidArena},
		{"paddles too wide", func(c *PongConfig) { c.Paddles.Width = 400 }, ErrInvalidArena},
		{"zero ball", func(c *PongConfig) { c.Ball.Size = 0 }, ErrInvalidConfig},
		{"zero serve speed", func(c *PongConfig) { c.Ball.ServeSpeed = 0 }, ErrInvalidConfig},
		{"zero bounce factor", func(c *PongConfig) { c.Physics.BounceFactor = 0 }, ErrInvalidConfig},
		{"negative cap", func(c *PongConfig) { c.Physics.MaxBallSpeed = -2 }, ErrInvalidConfig},
		{"negative nudge", func(c *PongConfig) { c.Input.NudgeStep = -1 }, ErrInvalidConfig},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, expected %v", err, tc.wantErr)
			}
		})
	}
}

func TestWarnings(t *testing.T) {
	cfg := DefaultPongConfig()
	if w := cfg.Warnings(); len(w) != 0 {
		t.Errorf("default config should have no warnings, got %v", w)
	}

	cfg.Arena.X = 100
	cfg.Physics.MaxBallSpeed = 2
	w := cfg.Warnings()
	if len(w) != 2 {
		t.Fatalf("expected 2 warnings, got %v", w)
	}
	if !strings.Contains(w[0], "right goal line") {
		t.Errorf("unexpected arena warning: %q", w[0])
	}
}
