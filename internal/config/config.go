// Package config loads the user sensor configuration: a TOML file whose
// [sensors.<id>] tables map sensor ids (or wildcard ids) to override
// patches and user-defined command sensors, discriminated by a "type"
// tag. A malformed configuration is fatal at load time; a loaded Config
// is fully validated.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/unraid-mqtt-stats/agent/internal/sensor"
)

// Config is the decoded user configuration, with the tagged union split
// by variant. Ids are unique across both maps (TOML table semantics).
type Config struct {
	Overrides map[string]*sensor.Override
	Commands  map[string]*CommandSensor
}

// CommandSensor is a user-defined sensor sourced from a shell command.
// Unlike an override it is a full definition; absent optional fields stay
// empty rather than meaning "keep".
type CommandSensor struct {
	ID          string             `toml:"-"`
	Name        string             `toml:"name"`
	Unit        string             `toml:"unit"`
	DeviceClass sensor.DeviceClass `toml:"device_class"`
	Icon        string             `toml:"icon"`
	Command     string             `toml:"command"`
	Args        []string           `toml:"args"`
	PostProcess PostProcess        `toml:"post_process"`
	Disabled    bool               `toml:"disabled"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a TOML configuration and validates every entry.
func Parse(data []byte) (*Config, error) {
	var raw struct {
		Sensors map[string]toml.Primitive `toml:"sensors"`
	}
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg := &Config{
		Overrides: make(map[string]*sensor.Override),
		Commands:  make(map[string]*CommandSensor),
	}
	for id, prim := range raw.Sensors {
		var tag struct {
			Type string `toml:"type"`
		}
		if err := md.PrimitiveDecode(prim, &tag); err != nil {
			return nil, fmt.Errorf("sensor %q: %w", id, err)
		}
		switch tag.Type {
		case "override":
			var o sensor.Override
			if err := md.PrimitiveDecode(prim, &o); err != nil {
				return nil, fmt.Errorf("sensor %q: %w", id, err)
			}
			o.ID = id
			if o.DeviceClass != nil && !o.DeviceClass.Valid() {
				return nil, fmt.Errorf("sensor %q: unknown device class %q", id, *o.DeviceClass)
			}
			cfg.Overrides[id] = &o
		case "command":
			var c CommandSensor
			if err := md.PrimitiveDecode(prim, &c); err != nil {
				return nil, fmt.Errorf("sensor %q: %w", id, err)
			}
			c.ID = id
			if c.Name == "" {
				return nil, fmt.Errorf("sensor %q: name is required", id)
			}
			if c.Command == "" {
				return nil, fmt.Errorf("sensor %q: command is required", id)
			}
			if c.DeviceClass != "" && !c.DeviceClass.Valid() {
				return nil, fmt.Errorf("sensor %q: unknown device class %q", id, c.DeviceClass)
			}
			if !c.PostProcess.Valid() {
				return nil, fmt.Errorf("sensor %q: unknown post_process %q", id, c.PostProcess)
			}
			cfg.Commands[id] = &c
		default:
			return nil, fmt.Errorf("sensor %q: unknown type %q", id, tag.Type)
		}
	}
	return cfg, nil
}
