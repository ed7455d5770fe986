package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Game.Host != "localhost" || cfg.Game.Port != 8000 {
		t.Errorf("unexpected game defaults %+v", cfg.Game)
	}
	if !strings.HasPrefix(cfg.Game.AgentName, "elite_") || len(cfg.Game.AgentName) != len("elite_")+8 {
		t.Errorf("unexpected generated agent name %q", cfg.Game.AgentName)
	}
	if cfg.Strategy.ReserveRatio != 0.15 || cfg.Strategy.Accumulation.Targets != 3 {
		t.Errorf("expected stock strategy tuning, got %+v", cfg.Strategy)
	}
	if cfg.Relay.WSAddr != ":8765" || cfg.Relay.HTTPAddr != ":8050" {
		t.Errorf("unexpected relay defaults %+v", cfg.Relay)
	}
	if err := cfg.ValidateAgent(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	if err := cfg.ValidateRelay(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_YAMLKeepsUnsetTuning(t *testing.T) {
	path := writeConfig(t, `
game:
  host: arena
  port: 9000
strategy:
  exposure_cap: 0.3
  maximize:
    targets: 5
    overbid: 1.1
    proportional: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.GameURL() != "ws://arena:9000/ws/elite_player_id" {
		t.Errorf("unexpected game url %s", cfg.GameURL())
	}
	if cfg.Strategy.ExposureCap != 0.3 || cfg.Strategy.Maximize.Targets != 5 {
		t.Errorf("yaml values not applied: %+v", cfg.Strategy)
	}
	if cfg.Strategy.ReserveRatio != 0.15 || cfg.Strategy.Conservative.Targets != 2 {
		t.Errorf("unset tuning lost its defaults: %+v", cfg.Strategy)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "game:\n  host: arena\n")
	t.Setenv("GAME_HOST", "override")
	t.Setenv("GAME_PORT", "8123")
	t.Setenv("AGENT_NAME", "tester")
	t.Setenv("DASHBOARD_URL", "ws://localhost:8765/ws")
	t.Setenv("DEBUG", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Game.Host != "override" || cfg.Game.Port != 8123 || cfg.Game.AgentName != "tester" {
		t.Errorf("env overrides not applied: %+v", cfg.Game)
	}
	if cfg.Dashboard.PublishURL != "ws://localhost:8765/ws" || !cfg.Agent.Debug {
		t.Errorf("env overrides not applied: %+v %+v", cfg.Dashboard, cfg.Agent)
	}

	t.Setenv("GAME_PORT", "eighty")
	if _, err := Load(path); err == nil {
		t.Error("expected error for non-numeric GAME_PORT")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "game: [unclosed")); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidateAgent(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port", func(c *Config) { c.Game.Port = 70000 }},
		{"profile", func(c *Config) { c.Agent.Profile = "block" }},
		{"reserve", func(c *Config) { c.Strategy.ReserveRatio = 1 }},
		{"exposure", func(c *Config) { c.Strategy.ExposureCap = 0 }},
		{"targets", func(c *Config) { c.Strategy.Conservative.Targets = 0 }},
		{"overbid", func(c *Config) { c.Strategy.Accumulation.Overbid = 0.9 }},
	}
	for _, tt := range tests {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatal(err)
		}
		tt.mutate(cfg)
		if err := cfg.ValidateAgent(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}
