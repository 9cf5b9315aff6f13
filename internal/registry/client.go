package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
)

// Client is a synchronous WebSocket client for the registry API. It is
// not safe for concurrent use; the exporter issues one command at a
// time.
type Client struct {
	cfg    ClientConfig
	logger *slog.Logger

	conn   *websocket.Conn
	nextID int64
}

// NewClient creates a registry client. Zero timeouts are replaced with
// the defaults from DefaultClientConfig.
func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	defaults := DefaultClientConfig()
	if cfg.HandshakeTimeout == 0 {
		cfg.HandshakeTimeout = defaults.HandshakeTimeout
	}
	if cfg.CallTimeout == 0 {
		cfg.CallTimeout = defaults.CallTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		logger: logger,
	}
}

// Connect dials the WebSocket endpoint and completes the auth
// handshake. It must be called before Entities or Devices.
func (c *Client) Connect(ctx context.Context) error {
	dialer := websocket.Dialer{
		HandshakeTimeout: c.cfg.HandshakeTimeout,
	}
	conn, _, err := dialer.DialContext(ctx, c.cfg.URL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.cfg.URL, err)
	}
	c.conn = conn

	if err := c.authenticate(); err != nil {
		conn.Close()
		c.conn = nil
		return err
	}
	return nil
}

// authenticate runs the auth exchange: the hub greets with
// auth_required, the client answers with the token, the hub replies
// auth_ok or auth_invalid.
func (c *Client) authenticate() error {
	deadline := time.Now().Add(c.cfg.HandshakeTimeout)

	var greeting response
	if err := c.read(deadline, &greeting); err != nil {
		return fmt.Errorf("read auth greeting: %w", err)
	}
	if greeting.Type != typeAuthRequired {
		return fmt.Errorf("unexpected greeting type %q", greeting.Type)
	}

	auth := command{Type: typeAuth, AccessToken: c.cfg.Token}
	if err := c.write(deadline, auth); err != nil {
		return fmt.Errorf("send auth: %w", err)
	}

	var result response
	if err := c.read(deadline, &result); err != nil {
		return fmt.Errorf("read auth result: %w", err)
	}
	switch result.Type {
	case typeAuthOK:
		c.logger.Debug("websocket authenticated", "ha_version", result.HAVersion)
		return nil
	case typeAuthInvalid:
		return fmt.Errorf("%w: %s", ErrAuthInvalid, result.Message)
	default:
		return fmt.Errorf("unexpected auth result type %q", result.Type)
	}
}

// Close sends a close frame and tears down the connection. It is safe
// to call on a client that never connected.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	conn := c.conn
	c.conn = nil

	deadline := time.Now().Add(time.Second)
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	conn.WriteControl(websocket.CloseMessage, msg, deadline)
	return conn.Close()
}

// Entities fetches the entity registry.
func (c *Client) Entities(ctx context.Context) ([]EntityEntry, error) {
	var entries []EntityEntry
	if err := c.call(ctx, cmdEntityRegistryList, &entries); err != nil {
		return nil, fmt.Errorf("list entity registry: %w", err)
	}
	return entries, nil
}

// Devices fetches the device registry.
func (c *Client) Devices(ctx context.Context) ([]DeviceEntry, error) {
	var entries []DeviceEntry
	if err := c.call(ctx, cmdDeviceRegistryList, &entries); err != nil {
		return nil, fmt.Errorf("list device registry: %w", err)
	}
	return entries, nil
}

// call sends one command and waits for its result, skipping unrelated
// frames such as events. The result payload is unmarshaled into out.
func (c *Client) call(ctx context.Context, msgType string, out any) error {
	if c.conn == nil {
		return ErrNotConnected
	}

	deadline := time.Now().Add(c.cfg.CallTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	c.nextID++
	id := c.nextID
	if err := c.write(deadline, command{ID: id, Type: msgType}); err != nil {
		return fmt.Errorf("send %s: %w", msgType, err)
	}

	for {
		var resp response
		if err := c.read(deadline, &resp); err != nil {
			return fmt.Errorf("read %s result: %w", msgType, err)
		}
		if resp.ID != id || resp.Type != typeResult {
			continue
		}
		if !resp.Success {
			if resp.Error != nil {
				return fmt.Errorf("%s failed: %s (%s)", msgType, resp.Error.Message, resp.Error.Code)
			}
			return fmt.Errorf("%s failed", msgType)
		}
		if err := json.Unmarshal(resp.Result, out); err != nil {
			return fmt.Errorf("unmarshal %s result: %w", msgType, err)
		}
		return nil
	}
}

func (c *Client) write(deadline time.Time, v any) error {
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return err
	}
	return c.conn.WriteJSON(v)
}

func (c *Client) read(deadline time.Time, v any) error {
	if err := c.conn.SetReadDeadline(deadline); err != nil {
		return err
	}
	return c.conn.ReadJSON(v)
}

// EndpointURL derives the WebSocket endpoint from the hub base URL,
// mapping http to ws and https to wss.
func EndpointURL(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse hub url: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported hub url scheme %q", u.Scheme)
	}
	u.Path = "/api/websocket"
	u.RawQuery = ""
	return u.String(), nil
}
