package export

import (
	"testing"

	"github.com/calundra/shelly-export/internal/ha"
)

func switchEntity(entityID, friendlyName string) ha.Entity {
	return ha.Entity{
		EntityID: entityID,
		State:    "on",
		Attributes: ha.Attributes{
			FriendlyName: friendlyName,
		},
	}
}

func TestSelect(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		got := Select(nil, Options{})
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("keeps vendor switches", func(t *testing.T) {
		entities := []ha.Entity{
			switchEntity("switch.shelly1_relay_0", "Porch Light"),
			switchEntity("switch.shellyplus2pm_channel_1", "Garage Door"),
		}
		got := Select(entities, Options{})
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
	})

	t.Run("drops other domains", func(t *testing.T) {
		entities := []ha.Entity{
			switchEntity("light.shelly_dimmer", "Hall Dimmer"),
			switchEntity("binary_sensor.shelly1_overheating", "Shelly1 Overheating"),
			switchEntity("sensor.shelly1_power", "Shelly1 Power"),
		}
		got := Select(entities, Options{})
		if len(got) != 0 {
			t.Errorf("len = %d, want 0: %v", len(got), got)
		}
	})

	t.Run("drops non-vendor switches", func(t *testing.T) {
		entities := []ha.Entity{
			switchEntity("switch.tasmota_relay_0", "Basement Fan"),
			switchEntity("switch.sonoff_basic", "Desk Lamp"),
		}
		got := Select(entities, Options{})
		if len(got) != 0 {
			t.Errorf("len = %d, want 0: %v", len(got), got)
		}
	})

	t.Run("drops availability entities", func(t *testing.T) {
		entities := []ha.Entity{
			switchEntity("switch.shelly1_availability", "Shelly1 Availability"),
			switchEntity("switch.shelly1_connectivity_0", "Shelly1 Connectivity"),
		}
		got := Select(entities, Options{})
		if len(got) != 0 {
			t.Errorf("len = %d, want 0: %v", len(got), got)
		}
	})

	t.Run("drops connectivity device class", func(t *testing.T) {
		e := switchEntity("switch.shelly1_relay_0", "Porch Light")
		e.Attributes.DeviceClass = "connectivity"
		got := Select([]ha.Entity{e}, Options{})
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("matches registry manufacturer", func(t *testing.T) {
		e := switchEntity("switch.porch_light", "Porch Light")
		e.Attributes.Manufacturer = "Shelly"
		got := Select([]ha.Entity{e}, Options{})
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
	})

	t.Run("matches integration name", func(t *testing.T) {
		e := switchEntity("switch.porch_light", "Porch Light")
		e.Attributes.Integration = "shelly"
		got := Select([]ha.Entity{e}, Options{})
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
	})

	t.Run("renamed entity without registry data is dropped", func(t *testing.T) {
		got := Select([]ha.Entity{switchEntity("switch.porch_light", "Porch Light")}, Options{})
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("custom vendor", func(t *testing.T) {
		entities := []ha.Entity{
			switchEntity("switch.tasmota_relay_0", "Basement Fan"),
			switchEntity("switch.shelly1_relay_0", "Porch Light"),
		}
		got := Select(entities, Options{Vendor: "tasmota"})
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		if got[0].EntityID != "switch.tasmota_relay_0" {
			t.Errorf("EntityID = %q, want %q", got[0].EntityID, "switch.tasmota_relay_0")
		}
	})

	t.Run("vendor match is case-insensitive", func(t *testing.T) {
		got := Select([]ha.Entity{switchEntity("switch.SHELLY1_relay_0", "Porch Light")}, Options{})
		if len(got) != 1 {
			t.Errorf("len = %d, want 1", len(got))
		}
	})

	t.Run("malformed entity id is dropped", func(t *testing.T) {
		entities := []ha.Entity{
			switchEntity("", ""),
			switchEntity("shelly_no_domain", "Broken"),
		}
		got := Select(entities, Options{})
		if len(got) != 0 {
			t.Errorf("len = %d, want 0: %v", len(got), got)
		}
	})

	t.Run("preserves input order", func(t *testing.T) {
		entities := []ha.Entity{
			switchEntity("switch.shelly_c", "C"),
			switchEntity("sensor.other", "Other"),
			switchEntity("switch.shelly_a", "A"),
			switchEntity("switch.shelly_b", "B"),
		}
		got := Select(entities, Options{})
		want := []string{"switch.shelly_c", "switch.shelly_a", "switch.shelly_b"}
		if len(got) != len(want) {
			t.Fatalf("len = %d, want %d", len(got), len(want))
		}
		for i, id := range want {
			if got[i].EntityID != id {
				t.Errorf("got[%d].EntityID = %q, want %q", i, got[i].EntityID, id)
			}
		}
	})
}
