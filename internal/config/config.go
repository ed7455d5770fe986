package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"AuctionAgent/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Game struct {
		Host      string `yaml:"host"`
		Port      int    `yaml:"port"`
		AgentName string `yaml:"agent_name"`
		PlayerID  string `yaml:"player_id"`
	} `yaml:"game"`
	Agent struct {
		LogDir  string `yaml:"log_dir"`
		Debug   bool   `yaml:"debug"`
		Profile string `yaml:"profile"` // "", "cpu" or "mem"
	} `yaml:"agent"`
	Strategy  model.Tuning `yaml:"strategy"`
	Dashboard struct {
		PublishURL string `yaml:"publish_url"`
	} `yaml:"dashboard"`
	Relay struct {
		WSAddr     string `yaml:"ws_addr"`
		HTTPAddr   string `yaml:"http_addr"`
		ChartCron  string `yaml:"chart_cron"`
		StatusCron string `yaml:"status_cron"`
	} `yaml:"relay"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Strategy constants not present in the file keep their stock values.
func Load(path string) (*Config, error) {
	cfg := &Config{Strategy: model.DefaultTuning()}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("GAME_HOST"); v != "" {
		cfg.Game.Host = v
	}
	if v := os.Getenv("GAME_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse GAME_PORT: %w", err)
		}
		cfg.Game.Port = port
	}
	if v := os.Getenv("AGENT_NAME"); v != "" {
		cfg.Game.AgentName = v
	}
	if v := os.Getenv("PLAYER_ID"); v != "" {
		cfg.Game.PlayerID = v
	}
	if v := os.Getenv("LOG_DIR"); v != "" {
		cfg.Agent.LogDir = v
	}
	if v := os.Getenv("AGENT_PROFILE"); v != "" {
		cfg.Agent.Profile = v
	}
	if v := os.Getenv("DEBUG"); v != "" {
		cfg.Agent.Debug = v == "true" || v == "1"
	}
	if v := os.Getenv("DASHBOARD_URL"); v != "" {
		cfg.Dashboard.PublishURL = v
	}
	if v := os.Getenv("RELAY_WS_ADDR"); v != "" {
		cfg.Relay.WSAddr = v
	}
	if v := os.Getenv("RELAY_HTTP_ADDR"); v != "" {
		cfg.Relay.HTTPAddr = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Game.Host == "" {
		cfg.Game.Host = "localhost"
	}
	if cfg.Game.Port == 0 {
		cfg.Game.Port = 8000
	}
	if cfg.Game.AgentName == "" {
		cfg.Game.AgentName = "elite_" + uuid.NewString()[:8]
	}
	if cfg.Game.PlayerID == "" {
		cfg.Game.PlayerID = "elite_player_id"
	}
	if cfg.Agent.LogDir == "" {
		cfg.Agent.LogDir = "logs"
	}
	if cfg.Relay.WSAddr == "" {
		cfg.Relay.WSAddr = ":8765"
	}
	if cfg.Relay.HTTPAddr == "" {
		cfg.Relay.HTTPAddr = ":8050"
	}
	if cfg.Relay.ChartCron == "" {
		cfg.Relay.ChartCron = "*/5 * * * * *"
	}
	if cfg.Relay.StatusCron == "" {
		cfg.Relay.StatusCron = "0 * * * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/dashboard.db"
	}

	return cfg, nil
}

// GameURL returns the websocket address of the game server for this agent.
func (c *Config) GameURL() string {
	return fmt.Sprintf("ws://%s:%d/ws/%s", c.Game.Host, c.Game.Port, c.Game.PlayerID)
}

// ValidateAgent checks the settings the bidding agent needs.
func (c *Config) ValidateAgent() error {
	if c.Game.Port <= 0 || c.Game.Port > 65535 {
		return fmt.Errorf("game.port %d out of range", c.Game.Port)
	}
	if c.Game.PlayerID == "" {
		return fmt.Errorf("game.player_id is required")
	}
	switch c.Agent.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("agent.profile must be cpu or mem, got %q", c.Agent.Profile)
	}
	s := c.Strategy
	if s.ReserveRatio < 0 || s.ReserveRatio >= 1 {
		return fmt.Errorf("strategy.reserve_ratio must be in [0,1)")
	}
	if s.ExposureCap <= 0 || s.ExposureCap > 1 {
		return fmt.Errorf("strategy.exposure_cap must be in (0,1]")
	}
	if s.DefaultWinCost < 0 {
		return fmt.Errorf("strategy.default_win_cost must not be negative")
	}
	for name, p := range map[string]model.PhasePolicy{
		"accumulation": s.Accumulation,
		"conservative": s.Conservative,
		"maximize":     s.Maximize,
	} {
		if p.Targets <= 0 {
			return fmt.Errorf("strategy.%s.targets must be positive", name)
		}
		if p.Overbid < 1 {
			return fmt.Errorf("strategy.%s.overbid must be at least 1", name)
		}
	}
	return nil
}

// ValidateRelay checks the settings the dashboard relay needs.
func (c *Config) ValidateRelay() error {
	if c.Relay.WSAddr == "" {
		return fmt.Errorf("relay.ws_addr is required")
	}
	if c.Relay.HTTPAddr == "" {
		return fmt.Errorf("relay.http_addr is required")
	}
	if c.Relay.WSAddr == c.Relay.HTTPAddr {
		return fmt.Errorf("relay.ws_addr and relay.http_addr must differ")
	}
	return nil
}
