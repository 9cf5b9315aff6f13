package config

import "time"

// Default values applied by Resolve for settings left unset.
const (
	// DefaultHubTimeout is the REST request timeout.
	DefaultHubTimeout = 30 * time.Second

	// DefaultRegistryTimeout is the WebSocket handshake and command
	// timeout.
	DefaultRegistryTimeout = 10 * time.Second

	// DefaultVendor is the vendor keyword.
	DefaultVendor = "shelly"
)

func applyDefaults(cfg *Config) {
	if cfg.Hub.Timeout == 0 {
		cfg.Hub.Timeout = DefaultHubTimeout
	}
	if cfg.Registry.Timeout == 0 {
		cfg.Registry.Timeout = DefaultRegistryTimeout
	}
	if cfg.Export.Vendor == "" {
		cfg.Export.Vendor = DefaultVendor
	}
}
