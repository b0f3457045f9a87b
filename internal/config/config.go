// Package config loads bot settings from an HCL file and the environment
// variables set by the engine's bot spawner.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/tdobratz/dobratzbot/internal/strategy"
)

// Environment variable names used by the spawner
const (
	EnvServer = "POKERFORBOTS_SERVER"
	EnvSeed   = "POKERFORBOTS_SEED"
	EnvBotID  = "POKERFORBOTS_BOT_ID"
	EnvGame   = "POKERFORBOTS_GAME"
)

// Config is the complete bot configuration
type Config struct {
	Server  *ServerSettings  `hcl:"server,block"`
	Bot     *BotSettings     `hcl:"bot,block"`
	Preflop *PreflopSettings `hcl:"preflop,block"`
}

// ServerSettings describes how to reach the engine
type ServerSettings struct {
	URL               string `hcl:"url,optional"`
	Game              string `hcl:"game,optional"`
	ReconnectAttempts int    `hcl:"reconnect_attempts,optional"`
	ReconnectDelay    int    `hcl:"reconnect_delay,optional"` // seconds
}

// BotSettings holds per-instance settings
type BotSettings struct {
	Name     string `hcl:"name,optional"`
	Seed     int64  `hcl:"seed,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogJSON  bool   `hcl:"log_json,optional"`
}

// PreflopSettings replaces the built-in raising table when present
type PreflopSettings struct {
	Hands []HandSettings `hcl:"hand,block"`
}

// HandSettings is one raising table entry, e.g. hand "AKs" { ... }
type HandSettings struct {
	Notation      string  `hcl:"notation,label"`
	Increment     int     `hcl:"increment"`
	MaxCommitment float64 `hcl:"max_commitment"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Server: &ServerSettings{
			URL:               "ws://localhost:8080/ws",
			Game:              "default",
			ReconnectAttempts: 3,
			ReconnectDelay:    5,
		},
		Bot: &BotSettings{
			Name:     "dobratz",
			LogLevel: "info",
		},
	}
}

// Load reads an HCL configuration file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills unset values with defaults
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()
	if cfg.Server == nil {
		cfg.Server = defaults.Server
	}
	if cfg.Bot == nil {
		cfg.Bot = defaults.Bot
	}

	if cfg.Server.URL == "" {
		cfg.Server.URL = defaults.Server.URL
	}
	if cfg.Server.Game == "" {
		cfg.Server.Game = defaults.Server.Game
	}
	if cfg.Server.ReconnectAttempts == 0 {
		cfg.Server.ReconnectAttempts = defaults.Server.ReconnectAttempts
	}
	if cfg.Server.ReconnectDelay == 0 {
		cfg.Server.ReconnectDelay = defaults.Server.ReconnectDelay
	}
	if cfg.Bot.Name == "" {
		cfg.Bot.Name = defaults.Bot.Name
	}
	if cfg.Bot.LogLevel == "" {
		cfg.Bot.LogLevel = defaults.Bot.LogLevel
	}

	if _, err := cfg.Table(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnv overlays the spawner's environment variables. lookup is normally
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvServer); ok && v != "" {
		c.Server.URL = v
	}
	if v, ok := lookup(EnvGame); ok && v != "" {
		c.Server.Game = v
	}
	if v, ok := lookup(EnvBotID); ok && v != "" {
		c.Bot.Name = c.Bot.Name + "-" + v
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		c.Bot.Seed = seed
	}
	return nil
}

// ReconnectDelay returns the pause between connection attempts
func (c *Config) ReconnectDelay() time.Duration {
	return time.Duration(c.Server.ReconnectDelay) * time.Second
}

// Table builds the preflop raising table, falling back to the built-in one
func (c *Config) Table() (*strategy.Table, error) {
	if c.Preflop == nil || len(c.Preflop.Hands) == 0 {
		return strategy.DefaultTable, nil
	}

	entries := make([]strategy.Entry, 0, len(c.Preflop.Hands))
	for _, h := range c.Preflop.Hands {
		e, err := strategy.ParseEntry(h.Notation, h.Increment, h.MaxCommitment)
		if err != nil {
			return nil, fmt.Errorf("preflop table: %w", err)
		}
		entries = append(entries, e)
	}
	table, err := strategy.NewTable(entries)
	if err != nil {
		return nil, fmt.Errorf("preflop table: %w", err)
	}
	return table, nil
}
