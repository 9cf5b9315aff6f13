package writer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/calundra/shelly-export/internal/model"
)

func TestWriteTo(t *testing.T) {
	t.Run("records", func(t *testing.T) {
		records := []model.DeviceRecord{
			{ID: "shelly1", Name: "Porch Light"},
			{ID: "shellyplus1", Name: "Garden Pump"},
		}

		var sb strings.Builder
		if err := WriteTo(&sb, records); err != nil {
			t.Fatalf("WriteTo failed: %v", err)
		}

		want := "id,name\nshelly1,Porch Light\nshellyplus1,Garden Pump\n"
		if sb.String() != want {
			t.Errorf("output = %q, want %q", sb.String(), want)
		}
	})

	t.Run("empty records write header only", func(t *testing.T) {
		var sb strings.Builder
		if err := WriteTo(&sb, nil); err != nil {
			t.Fatalf("WriteTo failed: %v", err)
		}
		if sb.String() != "id,name\n" {
			t.Errorf("output = %q, want header only", sb.String())
		}
	})

	t.Run("special characters are quoted", func(t *testing.T) {
		records := []model.DeviceRecord{
			{ID: "shelly1", Name: `Porch, "front" light`},
		}

		var sb strings.Builder
		if err := WriteTo(&sb, records); err != nil {
			t.Fatalf("WriteTo failed: %v", err)
		}

		want := "id,name\nshelly1,\"Porch, \"\"front\"\" light\"\n"
		if sb.String() != want {
			t.Errorf("output = %q, want %q", sb.String(), want)
		}
	})
}

func TestWrite(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "devices.csv")
		records := []model.DeviceRecord{{ID: "shelly1", Name: "Porch Light"}}

		if err := Write(path, records); err != nil {
			t.Fatalf("Write failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		want := "id,name\nshelly1,Porch Light\n"
		if string(data) != want {
			t.Errorf("file = %q, want %q", string(data), want)
		}
	})

	t.Run("unwritable path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing-dir", "devices.csv")
		err := Write(path, nil)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "create") {
			t.Errorf("error = %v, want create error", err)
		}
	})
}

func TestDefaultFilename(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 30, 45, 0, time.UTC)
	got := DefaultFilename(now)
	want := "shelly_devices_20240115_123045.csv"
	if got != want {
		t.Errorf("DefaultFilename = %q, want %q", got, want)
	}
}
