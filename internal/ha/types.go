package ha

import "strings"

// Entity is one entry in the hub's entity state list, as returned by
// GET /api/states.
type Entity struct {
	EntityID    string     `json:"entity_id"`
	State       string     `json:"state"`
	Attributes  Attributes `json:"attributes"`
	LastChanged string     `json:"last_changed"`
	LastUpdated string     `json:"last_updated"`
}

// Attributes is the subset of entity attributes the exporter reads.
// device_id, manufacturer and integration are normally absent from the
// REST payload; the registry resolver fills them in when enabled.
type Attributes struct {
	FriendlyName string `json:"friendly_name"`
	DeviceClass  string `json:"device_class"`
	DeviceID     string `json:"device_id"`
	Manufacturer string `json:"manufacturer"`
	Integration  string `json:"integration"`
}

// InstanceInfo is the hub metadata returned by GET /api/config.
type InstanceInfo struct {
	LocationName string `json:"location_name"`
	Version      string `json:"version"`
}

// Domain returns the entity_id segment before the first dot, or "" when
// the entity_id has no dot.
func (e Entity) Domain() string {
	domain, _, ok := strings.Cut(e.EntityID, ".")
	if !ok {
		return ""
	}
	return domain
}

// ObjectID returns the entity_id segment after the first dot.
func (e Entity) ObjectID() string {
	_, object, _ := strings.Cut(e.EntityID, ".")
	return object
}
