package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/calundra/shelly-export/internal/model"
)

// header is the fixed CSV column set.
var header = []string{"id", "name"}

// DefaultFilename returns the timestamped output name used when no
// path is configured, e.g. shelly_devices_20240115_123045.csv.
func DefaultFilename(now time.Time) string {
	return "shelly_devices_" + now.Format("20060102_150405") + ".csv"
}

// WriteTo writes the header and records to w.
func WriteTo(w io.Writer, records []model.DeviceRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write([]string{r.ID, r.Name}); err != nil {
			return fmt.Errorf("write record %s: %w", r.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Write creates the file at path and writes all records to it.
func Write(path string, records []model.DeviceRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteTo(f, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
