package sensor

import (
	"encoding/json"
	"testing"
)

func strptr(s string) *string { return &s }

func classptr(d DeviceClass) *DeviceClass { return &d }

func testSensor() *Sensor {
	return &Sensor{
		ID:          "cpu_temp",
		Name:        "CPU Temperature",
		Unit:        "°C",
		DeviceClass: ClassTemperature,
		Icon:        "thermometer",
	}
}

func TestMerge_SparsePatchKeepsAbsentFields(t *testing.T) {
	s := testSensor()
	s.Merge(Override{
		ID:   "cpu_temp",
		Name: strptr("Package Temperature"),
		Icon: strptr("chip"),
	})

	if s.Name != "Package Temperature" {
		t.Errorf("Name = %q, want patched value", s.Name)
	}
	if s.Icon != "chip" {
		t.Errorf("Icon = %q, want patched value", s.Icon)
	}
	if s.Unit != "°C" {
		t.Errorf("Unit = %q, want unchanged", s.Unit)
	}
	if s.DeviceClass != ClassTemperature {
		t.Errorf("DeviceClass = %q, want unchanged", s.DeviceClass)
	}
	if s.Disabled {
		t.Error("Disabled = true, want unchanged")
	}
}

func TestMerge_MismatchedIDIsNoOp(t *testing.T) {
	s := testSensor()
	s.Merge(Override{
		ID:       "memory_usage",
		Name:     strptr("Other"),
		Disabled: true,
	})

	if s.Name != "CPU Temperature" || s.Disabled {
		t.Errorf("sensor changed by mismatched patch: %+v", s)
	}
}

func TestMerge_WildcardIDApplies(t *testing.T) {
	s := &Sensor{ID: "dockercontainer_web_cpu", Name: "web CPU"}
	s.Merge(Override{
		ID:   "dockercontainer_*_cpu",
		Unit: strptr("%"),
	})

	if s.Unit != "%" {
		t.Errorf("Unit = %q, want wildcard patch applied", s.Unit)
	}
	if s.ID != "dockercontainer_web_cpu" {
		t.Errorf("ID = %q, merge must never change the id", s.ID)
	}
}

func TestMerge_DisabledIsOneDirectional(t *testing.T) {
	s := testSensor()
	s.Merge(Override{ID: "cpu_temp", Disabled: true})
	if !s.Disabled {
		t.Fatal("Disabled = false, want disabled by patch")
	}

	// An explicit disabled=false is indistinguishable from absence and
	// never re-enables.
	s.Merge(Override{ID: "cpu_temp", Disabled: false})
	if !s.Disabled {
		t.Error("Disabled = false, a false patch must not re-enable")
	}
}

func TestMerge_ReapplyIsIdempotent(t *testing.T) {
	patch := Override{
		ID:          "cpu_temp",
		Name:        strptr("Temp"),
		Unit:        strptr("K"),
		DeviceClass: classptr(ClassTemperature),
		Disabled:    true,
	}
	s := testSensor()
	s.Merge(patch)
	first := *s
	first.Reporter = nil
	s.Merge(patch)
	s.Reporter = nil

	if *s != first {
		t.Errorf("second merge changed the sensor: %+v != %+v", *s, first)
	}
}

func TestTopics_Deterministic(t *testing.T) {
	s := testSensor()
	state := s.StateTopic("unraid_tower")
	if state != "unraid_tower/sensor/cpu_temp/state" {
		t.Errorf("StateTopic = %q", state)
	}
	if state != s.StateTopic("unraid_tower") {
		t.Error("StateTopic is not deterministic")
	}

	discovery := s.DiscoveryTopic("homeassistant", "unraid_tower")
	if discovery != "homeassistant/sensor/unraid_tower/cpu_temp/config" {
		t.Errorf("DiscoveryTopic = %q", discovery)
	}
}

func TestDiscoveryConfig_AllFields(t *testing.T) {
	s := testSensor()
	device := map[string]any{"name": "Unraid tower"}

	data, err := s.DiscoveryConfig("tower", "unraid_tower", device)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}

	if doc["name"] != "tower CPU Temperature" {
		t.Errorf("name = %v", doc["name"])
	}
	if doc["state_topic"] != "unraid_tower/sensor/cpu_temp/state" {
		t.Errorf("state_topic = %v", doc["state_topic"])
	}
	if doc["unique_id"] != "unraid_tower_cpu_temp" {
		t.Errorf("unique_id = %v", doc["unique_id"])
	}
	if doc["unit_of_measurement"] != "°C" {
		t.Errorf("unit_of_measurement = %v", doc["unit_of_measurement"])
	}
	if doc["device_class"] != "temperature" {
		t.Errorf("device_class = %v", doc["device_class"])
	}
	if doc["icon"] != "mdi:thermometer" {
		t.Errorf("icon = %v, want mdi namespace prefix", doc["icon"])
	}
	if dev, ok := doc["device"].(map[string]any); !ok || dev["name"] != "Unraid tower" {
		t.Errorf("device = %v, want passthrough", doc["device"])
	}
}

func TestDiscoveryConfig_OmitsOptionalFields(t *testing.T) {
	s := &Sensor{ID: "array_status", Name: "Array Status"}

	data, err := s.DiscoveryConfig("tower", "unraid_tower", nil)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}

	if _, ok := doc["device_class"]; ok {
		t.Error("device_class present, want omitted")
	}
	if _, ok := doc["icon"]; ok {
		t.Error("icon present, want omitted")
	}
	if unit, ok := doc["unit_of_measurement"]; !ok || unit != nil {
		t.Errorf("unit_of_measurement = %v, want null", unit)
	}
}
