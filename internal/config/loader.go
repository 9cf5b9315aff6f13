package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted when the corresponding flags and
// file settings are absent.
const (
	EnvURL   = "HA_URL"
	EnvToken = "HA_TOKEN"
)

// Overrides carries the command-line flag values. Empty strings mean
// the flag was not given.
type Overrides struct {
	URL      string
	Token    string
	Output   string
	Registry bool
}

// Load reads and parses a YAML config file. Environment variable
// references like ${HA_TOKEN} are expanded before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	return &cfg, nil
}

// Resolve builds the effective configuration. The file at path is
// optional (empty path skips it); environment variables override file
// values, flags override both, then defaults fill the gaps and the
// result is validated.
func Resolve(path string, ov Overrides) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnv(cfg)
	applyOverrides(cfg, ov)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvURL); v != "" {
		cfg.Hub.URL = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		cfg.Hub.Token = v
	}
}

func applyOverrides(cfg *Config, ov Overrides) {
	if ov.URL != "" {
		cfg.Hub.URL = ov.URL
	}
	if ov.Token != "" {
		cfg.Hub.Token = ov.Token
	}
	if ov.Output != "" {
		cfg.Export.Output = ov.Output
	}
	if ov.Registry {
		cfg.Registry.Enabled = true
	}
}
