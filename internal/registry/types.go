package registry

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	// ErrAuthInvalid is returned when the hub rejects the access token
	// during the WebSocket handshake.
	ErrAuthInvalid = errors.New("registry: access token rejected")

	// ErrNotConnected is returned when a command is issued before
	// Connect or after Close.
	ErrNotConnected = errors.New("registry: not connected")
)

// WebSocket message types used by the Home Assistant API.
const (
	typeAuthRequired = "auth_required"
	typeAuth         = "auth"
	typeAuthOK       = "auth_ok"
	typeAuthInvalid  = "auth_invalid"
	typeResult       = "result"
)

// Registry list commands.
const (
	cmdEntityRegistryList = "config/entity_registry/list"
	cmdDeviceRegistryList = "config/device_registry/list"
)

// command is a client-to-hub message. The auth message must not carry
// an id, so ID is omitted when zero.
type command struct {
	ID          int64  `json:"id,omitempty"`
	Type        string `json:"type"`
	AccessToken string `json:"access_token,omitempty"`
}

// response is a hub-to-client message. Result is kept raw so each
// command can unmarshal into its own shape.
type response struct {
	ID      int64           `json:"id"`
	Type    string          `json:"type"`
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
	Error   *commandError   `json:"error"`

	// Message and HAVersion appear on handshake frames.
	Message   string `json:"message"`
	HAVersion string `json:"ha_version"`
}

type commandError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// EntityEntry is one row of the entity registry.
type EntityEntry struct {
	EntityID   string `json:"entity_id"`
	DeviceID   string `json:"device_id"`
	Platform   string `json:"platform"`
	DisabledBy string `json:"disabled_by"`
}

// DeviceEntry is one row of the device registry.
type DeviceEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	NameByUser   string `json:"name_by_user"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
}

// ClientConfig holds the registry client settings.
type ClientConfig struct {
	// URL is the WebSocket endpoint, e.g. ws://hub.local:8123/api/websocket.
	URL string

	// Token is the long-lived access token used for authentication.
	Token string

	// HandshakeTimeout bounds the dial and auth exchange.
	HandshakeTimeout time.Duration

	// CallTimeout bounds each registry list command.
	CallTimeout time.Duration
}

// DefaultClientConfig returns a config with sensible timeouts. URL and
// Token must still be set by the caller.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		HandshakeTimeout: 10 * time.Second,
		CallTimeout:      10 * time.Second,
	}
}
