package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/unraid-mqtt-stats/agent/internal/sensor"
)

// Dump is the serializable export of the resolved sensor metadata, shaped
// as override entries so the file can be fed back in as a user
// configuration. Reporters are not exported; the built-in value sources
// cannot be changed, only their metadata.
type Dump struct {
	Sensors map[string]DumpEntry `toml:"sensors"`
}

// DumpEntry is one override-shaped record of a sensor's metadata.
type DumpEntry struct {
	Type        string `toml:"type"`
	Name        string `toml:"name"`
	Unit        string `toml:"unit,omitempty"`
	DeviceClass string `toml:"device_class,omitempty"`
	Icon        string `toml:"icon,omitempty"`
	Disabled    bool   `toml:"disabled"`
}

// DumpSensors converts the final sensor list into its export form.
func DumpSensors(sensors []*sensor.Sensor) Dump {
	entries := make(map[string]DumpEntry, len(sensors))
	for _, s := range sensors {
		entries[s.ID] = DumpEntry{
			Type:        "override",
			Name:        s.Name,
			Unit:        s.Unit,
			DeviceClass: string(s.DeviceClass),
			Icon:        s.Icon,
			Disabled:    s.Disabled,
		}
	}
	return Dump{Sensors: entries}
}

// WriteFile serializes the dump to a TOML file. The encoder writes
// sensors in id order.
func (d Dump) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dump file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(d); err != nil {
		return fmt.Errorf("encoding sensor dump: %w", err)
	}
	return nil
}
