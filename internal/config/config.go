// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"ticket-upgrade/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Engine contains upgrade-engine settings
	Engine EngineConfig `json:"engine"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// EngineConfig contains upgrade-engine settings
type EngineConfig struct {
	// Currency is the display currency code
	Currency string `json:"currency"`

	// BestDealHorizonDays is the default horizon for best-deal scans
	BestDealHorizonDays int `json:"best_deal_horizon_days"`

	// CalendarDaysAhead is the default availability calendar span
	CalendarDaysAhead int `json:"calendar_days_ahead"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (text, json)
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows detailed pricing breakdown
	ShowDetails bool `json:"show_details"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Engine: EngineConfig{
			Currency:            "USD",
			BestDealHorizonDays: 30,
			CalendarDaysAhead:   90,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ShowDetails:   true,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, then applies environment overrides.
// A missing file yields defaults, not an error.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		} else if err := json.Unmarshal(data, config); err != nil {
			return nil, err
		}
	}

	config.applyEnv()
	return config, nil
}

// applyEnv overrides configuration from the environment. A .env file in
// the working directory is loaded first if present.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("UPGRADE_SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("UPGRADE_CURRENCY"); v != "" {
		c.Engine.Currency = v
	}
	if v := os.Getenv("UPGRADE_DEAL_HORIZON_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Engine.BestDealHorizonDays = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
