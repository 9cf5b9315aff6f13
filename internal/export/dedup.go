package export

import (
	"regexp"
	"strings"

	"github.com/calundra/shelly-export/internal/ha"
	"github.com/calundra/shelly-export/internal/model"
)

// keySuffix matches the per-channel tail of an entity object id, e.g.
// the "_relay_0" in "shelly1_relay_0".
var keySuffix = regexp.MustCompile(`(?i)_(relay|channel|switch|output)_?\d+$`)

// nameSuffix matches the per-channel tail of a friendly name, e.g.
// the " Relay 1" in "Porch Light Relay 1".
var nameSuffix = regexp.MustCompile(`(?i)\s+(relay|channel|switch|output)\s*\d+$`)

// DeviceKey derives the stable device identity for an entity. The
// registry device id wins when present; otherwise the object id with
// its channel suffix stripped.
func DeviceKey(e ha.Entity) string {
	if e.Attributes.DeviceID != "" {
		return e.Attributes.DeviceID
	}
	return keySuffix.ReplaceAllString(e.ObjectID(), "")
}

// DisplayName derives the human-readable device name for an entity,
// falling back to the entity id when no friendly name is set.
func DisplayName(e ha.Entity) string {
	name := e.Attributes.FriendlyName
	if name == "" {
		name = e.EntityID
	}
	return strings.TrimSpace(nameSuffix.ReplaceAllString(name, ""))
}

// Deduplicate collapses entities into one record per device key. The
// first entity seen for a key supplies the record; later entities with
// the same key are dropped. Output order follows the first appearance
// of each key. Entities with an empty key are skipped.
func Deduplicate(entities []ha.Entity) []model.DeviceRecord {
	seen := make(map[string]struct{}, len(entities))
	records := make([]model.DeviceRecord, 0, len(entities))
	for _, e := range entities {
		key := DeviceKey(e)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		records = append(records, model.DeviceRecord{
			ID:   key,
			Name: DisplayName(e),
		})
	}
	return records
}

// Records runs the full pipeline: select vendor switch entities, then
// collapse them to one record per device.
func Records(entities []ha.Entity, opts Options) []model.DeviceRecord {
	return Deduplicate(Select(entities, opts))
}
