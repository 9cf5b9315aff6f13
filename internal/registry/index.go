package registry

import (
	"context"

	"github.com/calundra/shelly-export/internal/ha"
)

// Index holds both registries keyed for entity lookup.
type Index struct {
	entries map[string]EntityEntry
	devices map[string]DeviceEntry
}

// NewIndex builds an index from registry rows.
func NewIndex(entities []EntityEntry, devices []DeviceEntry) *Index {
	idx := &Index{
		entries: make(map[string]EntityEntry, len(entities)),
		devices: make(map[string]DeviceEntry, len(devices)),
	}
	for _, e := range entities {
		idx.entries[e.EntityID] = e
	}
	for _, d := range devices {
		idx.devices[d.ID] = d
	}
	return idx
}

// Fetch pulls both registries from a connected client and builds the
// index.
func Fetch(ctx context.Context, client *Client) (*Index, error) {
	entities, err := client.Entities(ctx)
	if err != nil {
		return nil, err
	}
	devices, err := client.Devices(ctx)
	if err != nil {
		return nil, err
	}
	return NewIndex(entities, devices), nil
}

// Device looks up the device owning an entity. When the entity is
// registered but its device has no registry row, the returned entry
// carries just the device id.
func (idx *Index) Device(entityID string) (DeviceEntry, bool) {
	e, ok := idx.entries[entityID]
	if !ok || e.DeviceID == "" {
		return DeviceEntry{}, false
	}
	d, ok := idx.devices[e.DeviceID]
	if !ok {
		return DeviceEntry{ID: e.DeviceID}, true
	}
	return d, true
}

// Annotate returns a copy of states with registry attributes filled
// in: the integration that provides each entity, its device id, and
// the device manufacturer. States without registry rows pass through
// unchanged.
func (idx *Index) Annotate(states []ha.Entity) []ha.Entity {
	out := make([]ha.Entity, len(states))
	copy(out, states)
	for i := range out {
		e, ok := idx.entries[out[i].EntityID]
		if !ok {
			continue
		}
		if e.Platform != "" {
			out[i].Attributes.Integration = e.Platform
		}
		out[i].Attributes.DeviceID = e.DeviceID
		if d, ok := idx.devices[e.DeviceID]; ok && d.Manufacturer != "" {
			out[i].Attributes.Manufacturer = d.Manufacturer
		}
	}
	return out
}

// EntityCount returns the number of indexed entity registry rows.
func (idx *Index) EntityCount() int { return len(idx.entries) }

// DeviceCount returns the number of indexed device registry rows.
func (idx *Index) DeviceCount() int { return len(idx.devices) }
