package model

// DeviceRecord is one physical device in the export output. Several
// entities (one per relay channel) may collapse into a single record.
type DeviceRecord struct {
	// ID is the stable device key, either the registry device id or
	// the entity object id with its channel suffix removed.
	ID string

	// Name is the human-readable device name with any per-channel
	// suffix removed.
	Name string
}
