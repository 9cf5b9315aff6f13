// Package config defines the exporter configuration and its loading
// rules.
//
// Settings come from four layers, later layers winning: built-in
// defaults, an optional YAML file, the HA_URL and HA_TOKEN environment
// variables, and command-line flags. Resolve applies all four and
// validates the result before any network call is made.
package config
