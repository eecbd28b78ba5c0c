// Package config loads CLI configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries the settings shared by the CLI commands.
type Config struct {
	// Endpoint is the base URL of the key-value service.
	Endpoint string `yaml:"endpoint"`
	// Token is the bearer token presented on every request.
	Token string `yaml:"token"`
	// Language selects the active language for prompts and messages.
	Language string `yaml:"language"`
	// Timeout bounds each storage call. Zero means the client default.
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Endpoint: "http://localhost:8787",
		Language: "en",
	}
}

// Load reads path and merges it over Default. A missing file is not an
// error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)
	cfg.Token = strings.TrimSpace(cfg.Token)
	cfg.Language = strings.TrimSpace(cfg.Language)
	if cfg.Language == "" {
		cfg.Language = Default().Language
	}
	return cfg, nil
}
