// Override engine: layers the user configuration onto the built-in
// catalog. Wildcard overrides apply first, exact overrides second (so an
// exact override wins per field), then user-defined command sensors are
// appended.
package catalog

import (
	"strings"

	"go.uber.org/zap"

	"github.com/unraid-mqtt-stats/agent/internal/config"
	"github.com/unraid-mqtt-stats/agent/internal/sensor"
)

// WildcardID derives the wildcard override key for a sensor id: the
// first underscore-delimited segment, a literal "*", and the last
// segment ("dockercontainer_myapp_cpu" -> "dockercontainer_*_cpu").
// Ids without an underscore reuse the whole id on both sides
// ("uptime" -> "uptime_*_uptime").
func WildcardID(id string) string {
	parts := strings.Split(id, "_")
	return parts[0] + "_*_" + parts[len(parts)-1]
}

// Apply merges the user configuration into the catalog and returns the
// final sensor list. Overrides mutate the built-ins in place; command
// sensors are appended in map iteration order, which callers must not
// depend on. A nil config leaves the catalog untouched.
func Apply(sensors []*sensor.Sensor, cfg *config.Config, runner sensor.Runner, logger *zap.Logger) []*sensor.Sensor {
	if cfg == nil {
		return sensors
	}
	for _, s := range sensors {
		if o, ok := cfg.Overrides[WildcardID(s.ID)]; ok {
			s.Merge(*o)
		}
		if o, ok := cfg.Overrides[s.ID]; ok {
			s.Merge(*o)
		}
	}
	for _, c := range cfg.Commands {
		sensors = append(sensors, CommandSensor(c, runner, logger))
	}
	return sensors
}

// CommandSensor converts a user command sensor definition into a Sensor
// with a bound shell-command reporter.
func CommandSensor(c *config.CommandSensor, runner sensor.Runner, logger *zap.Logger) *sensor.Sensor {
	return &sensor.Sensor{
		ID:          c.ID,
		Name:        c.Name,
		Unit:        c.Unit,
		DeviceClass: c.DeviceClass,
		Icon:        c.Icon,
		Disabled:    c.Disabled,
		Reporter:    sensor.NewCommandReporter(runner, logger, c.Command, c.Args, c.PostProcess.Transform()),
	}
}
