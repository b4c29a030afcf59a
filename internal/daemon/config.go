// Package daemon manages the Retrofolio daemon lifecycle and
// configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all daemon configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Data      DataConfig      `toml:"data"`
	Catalog   CatalogConfig   `toml:"catalog"`
	Assistant AssistantConfig `toml:"assistant"`
	Telemetry TelemetryConfig `toml:"telemetry"`
}

// ServerConfig controls the HTTP API server.
type ServerConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
}

// DataConfig controls persistent state storage.
type DataConfig struct {
	Dir string `toml:"dir"`
}

// CatalogConfig points at an optional portfolio content override.
type CatalogConfig struct {
	Path string `toml:"path"`
}

// AssistantConfig controls the text-generation fallback.
type AssistantConfig struct {
	Enabled bool   `toml:"enabled"`
	Model   string `toml:"model"`
}

// TelemetryConfig controls the metrics endpoint.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	homeDir := retrofolioHome()
	return Config{
		Server: ServerConfig{
			Host:        "127.0.0.1",
			Port:        8080,
			CORSOrigins: []string{"*"},
		},
		Data: DataConfig{
			Dir: filepath.Join(homeDir, "data"),
		},
		Assistant: AssistantConfig{
			Enabled: true,
			Model:   "gemini-1.5-flash",
		},
		Telemetry: TelemetryConfig{
			Prometheus: true,
		},
	}
}

// LoadConfig reads config from ~/.retrofolio/config.toml, falling back
// to defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(retrofolioHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet — use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes the config to ~/.retrofolio/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(retrofolioHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// retrofolioHome returns the Retrofolio data directory.
func retrofolioHome() string {
	if env := os.Getenv("RETROFOLIO_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".retrofolio")
}

// Home is exported for use by other packages.
func Home() string {
	return retrofolioHome()
}
