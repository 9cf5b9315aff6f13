// Package registry fetches the Home Assistant entity and device
// registries over the WebSocket API.
//
// The registry resolver:
//   - Authenticates on /api/websocket with the long-lived access token
//   - Issues config/entity_registry/list and config/device_registry/list
//   - Annotates fetched states with device id, manufacturer, and
//     integration, so devices renamed away from their default entity
//     ids can still be attributed to a vendor
//
// The client is synchronous: one command is in flight at a time, and
// each call waits for its matching result, skipping unrelated frames
// such as events.
package registry
