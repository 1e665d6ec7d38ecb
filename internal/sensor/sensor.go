// Package sensor defines the Sensor entity, the Reporter interface that
// supplies sensor values, and the concrete reporters for host statistics,
// shell commands, and the Docker engine.
package sensor

import (
	"encoding/json"
	"strings"
)

// Sensor is one named, independently enable/disable-able metric with a
// bound value source and its MQTT topic identity.
type Sensor struct {
	ID          string
	Name        string
	Unit        string
	DeviceClass DeviceClass
	Icon        string
	Disabled    bool
	Reporter    Reporter
}

// Override is a sparse user patch applied to a Sensor's metadata. Nil
// fields mean "leave the current value"; Disabled only ever turns a
// sensor off (a false value is indistinguishable from absence).
type Override struct {
	ID          string       `toml:"-"`
	Name        *string      `toml:"name"`
	Unit        *string      `toml:"unit"`
	DeviceClass *DeviceClass `toml:"device_class"`
	Icon        *string      `toml:"icon"`
	Disabled    bool         `toml:"disabled"`
}

// Merge applies an override patch to the sensor's metadata. The patch is
// ignored unless its id matches the sensor's id or is a wildcard key.
// The reporter is never touched.
func (s *Sensor) Merge(patch Override) {
	if s.ID != patch.ID && !strings.Contains(patch.ID, "_*_") {
		return
	}
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Unit != nil {
		s.Unit = *patch.Unit
	}
	if patch.DeviceClass != nil {
		s.DeviceClass = *patch.DeviceClass
	}
	if patch.Icon != nil {
		s.Icon = *patch.Icon
	}
	if patch.Disabled {
		s.Disabled = true
	}
}

// StateTopic returns the topic the sensor's values are published to.
func (s *Sensor) StateTopic(nodeID string) string {
	return nodeID + "/sensor/" + s.ID + "/state"
}

// DiscoveryTopic returns the Home Assistant discovery topic for the sensor.
func (s *Sensor) DiscoveryTopic(discoveryPrefix, nodeID string) string {
	return discoveryPrefix + "/sensor/" + nodeID + "/" + s.ID + "/config"
}

// DiscoveryConfig renders the Home Assistant discovery document for the
// sensor. deviceInfo is passed through under the "device" key. An empty
// unit serializes as null; device_class and icon are omitted when unset,
// and the icon is namespaced with the "mdi:" prefix.
func (s *Sensor) DiscoveryConfig(deviceName, nodeID string, deviceInfo map[string]any) ([]byte, error) {
	var unit any
	if s.Unit != "" {
		unit = s.Unit
	}
	doc := map[string]any{
		"name":                deviceName + " " + s.Name,
		"state_topic":         s.StateTopic(nodeID),
		"unique_id":           nodeID + "_" + s.ID,
		"device":              deviceInfo,
		"unit_of_measurement": unit,
	}
	if s.DeviceClass != "" {
		doc["device_class"] = string(s.DeviceClass)
	}
	if s.Icon != "" {
		doc["icon"] = "mdi:" + s.Icon
	}
	return json.Marshal(doc)
}
