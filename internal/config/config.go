package config

import "time"

// Config is the complete exporter configuration.
type Config struct {
	Hub      HubConfig      `yaml:"hub"`
	Registry RegistryConfig `yaml:"registry"`
	Export   ExportConfig   `yaml:"export"`
}

// HubConfig holds the Home Assistant connection settings.
type HubConfig struct {
	// URL is the hub base URL, e.g. http://homeassistant.local:8123.
	URL string `yaml:"url"`

	// Token is the long-lived access token.
	Token string `yaml:"token"`

	// Timeout bounds each REST request.
	Timeout time.Duration `yaml:"timeout"`
}

// RegistryConfig controls the optional WebSocket registry lookup.
type RegistryConfig struct {
	// Enabled turns on registry annotation of fetched states.
	Enabled bool `yaml:"enabled"`

	// URL overrides the WebSocket endpoint. When empty it is derived
	// from the hub URL.
	URL string `yaml:"url"`

	// Timeout bounds the handshake and each registry command.
	Timeout time.Duration `yaml:"timeout"`
}

// ExportConfig controls selection and output.
type ExportConfig struct {
	// Output is the CSV file path. Empty means a timestamped name in
	// the working directory.
	Output string `yaml:"output"`

	// Vendor is the keyword entities are matched against.
	Vendor string `yaml:"vendor"`
}
