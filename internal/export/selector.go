package export

import (
	"strings"

	"github.com/calundra/shelly-export/internal/ha"
)

// DefaultVendor is the vendor keyword used when none is configured.
const DefaultVendor = "shelly"

// switchDomain is the only entity domain eligible for export.
const switchDomain = "switch"

// diagnosticMarkers flag entities that report device health rather
// than a controllable output.
var diagnosticMarkers = []string{"availability", "connectivity"}

// Options controls entity selection.
type Options struct {
	// Vendor is the keyword matched against the entity object id, the
	// registry manufacturer, and the integration name. Empty means
	// DefaultVendor.
	Vendor string
}

// Select returns the entities that represent vendor switch outputs,
// in input order. Entities from other domains, other vendors, and
// diagnostic entities are dropped.
func Select(entities []ha.Entity, opts Options) []ha.Entity {
	vendor := opts.Vendor
	if vendor == "" {
		vendor = DefaultVendor
	}

	selected := make([]ha.Entity, 0, len(entities))
	for _, e := range entities {
		if matches(e, vendor) {
			selected = append(selected, e)
		}
	}
	return selected
}

func matches(e ha.Entity, vendor string) bool {
	return e.Domain() == switchDomain && fromVendor(e, vendor) && !isDiagnostic(e)
}

// fromVendor reports whether the entity belongs to the vendor. The
// object id is the primary signal; registry attributes, when present,
// catch devices whose entity ids were renamed by the user.
func fromVendor(e ha.Entity, vendor string) bool {
	v := strings.ToLower(vendor)
	if strings.Contains(strings.ToLower(e.ObjectID()), v) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Attributes.Manufacturer), v) {
		return true
	}
	return e.Attributes.Integration != "" && strings.EqualFold(e.Attributes.Integration, vendor)
}

func isDiagnostic(e ha.Entity) bool {
	id := strings.ToLower(e.EntityID)
	for _, marker := range diagnosticMarkers {
		if strings.Contains(id, marker) {
			return true
		}
	}
	return e.Attributes.DeviceClass == "connectivity"
}
