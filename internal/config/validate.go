package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks the resolved configuration. It is called by Resolve
// after all layers are applied.
func (c *Config) Validate() error {
	if c.Hub.URL == "" {
		return errors.New("hub.url is required (flag --url or HA_URL)")
	}
	u, err := url.Parse(c.Hub.URL)
	if err != nil {
		return fmt.Errorf("hub.url is not a valid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("hub.url scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("hub.url is missing a host")
	}

	if c.Hub.Token == "" {
		return errors.New("hub.token is required (flag --token or HA_TOKEN)")
	}
	if c.Hub.Timeout < 0 {
		return errors.New("hub.timeout must not be negative")
	}

	if c.Registry.URL != "" {
		ru, err := url.Parse(c.Registry.URL)
		if err != nil {
			return fmt.Errorf("registry.url is not a valid url: %w", err)
		}
		if ru.Scheme != "ws" && ru.Scheme != "wss" {
			return fmt.Errorf("registry.url scheme must be ws or wss, got %q", ru.Scheme)
		}
	}
	if c.Registry.Timeout < 0 {
		return errors.New("registry.timeout must not be negative")
	}

	if c.Export.Vendor == "" {
		return errors.New("export.vendor is required")
	}
	return nil
}
