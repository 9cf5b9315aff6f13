// Package ha provides the Home Assistant REST API client.
//
// Endpoints used:
//   - GET /api/config: hub metadata, used as a connectivity probe
//   - GET /api/states: state and attributes of every entity
//
// All requests carry a long-lived access token in a bearer Authorization
// header. Requests are never retried; the exporter makes one attempt per
// run.
package ha
