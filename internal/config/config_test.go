package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unraid-mqtt-stats/agent/internal/sensor"
)

const exampleConfig = `
[sensors.cpu_temp]
type = "override"
name = "Package Temperature"
unit = "°C"
device_class = "temperature"
icon = "thermometer"
disabled = false

[sensors."dockercontainer_*_memory"]
type = "override"
disabled = true

[sensors.appdata_usage]
type = "command"
name = "Appdata Usage"
unit = "%"
command = "df"
args = ["-h", "/mnt/user/appdata"]
icon = "harddisk"
post_process = "extract_number"
`

func TestParse_TaggedUnion(t *testing.T) {
	cfg, err := Parse([]byte(exampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Overrides) != 2 {
		t.Fatalf("overrides = %d, want 2", len(cfg.Overrides))
	}
	if len(cfg.Commands) != 1 {
		t.Fatalf("commands = %d, want 1", len(cfg.Commands))
	}

	o := cfg.Overrides["cpu_temp"]
	if o == nil {
		t.Fatal("cpu_temp override missing")
	}
	if o.ID != "cpu_temp" {
		t.Errorf("ID = %q, want derived from table key", o.ID)
	}
	if o.Name == nil || *o.Name != "Package Temperature" {
		t.Errorf("Name = %v", o.Name)
	}
	if o.Unit == nil || *o.Unit != "°C" {
		t.Errorf("Unit = %v", o.Unit)
	}
	if o.DeviceClass == nil || *o.DeviceClass != sensor.ClassTemperature {
		t.Errorf("DeviceClass = %v", o.DeviceClass)
	}
	if o.Disabled {
		t.Error("Disabled = true, want false")
	}

	wild := cfg.Overrides["dockercontainer_*_memory"]
	if wild == nil || !wild.Disabled {
		t.Fatalf("wildcard override = %+v, want disabled", wild)
	}
	if wild.Name != nil {
		t.Error("absent name decoded as present")
	}

	c := cfg.Commands["appdata_usage"]
	if c == nil {
		t.Fatal("appdata_usage command missing")
	}
	if c.ID != "appdata_usage" || c.Name != "Appdata Usage" || c.Command != "df" {
		t.Errorf("command entry = %+v", c)
	}
	if len(c.Args) != 2 || c.Args[0] != "-h" {
		t.Errorf("Args = %v", c.Args)
	}
	if c.PostProcess != PostExtractNumber {
		t.Errorf("PostProcess = %q", c.PostProcess)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unknown type", "[sensors.x]\ntype = \"widget\"\n", "unknown type"},
		{"missing type", "[sensors.x]\nname = \"X\"\n", "unknown type"},
		{"unknown device class", "[sensors.x]\ntype = \"override\"\ndevice_class = \"warp_core\"\n", "unknown device class"},
		{"command without name", "[sensors.x]\ntype = \"command\"\ncommand = \"df\"\n", "name is required"},
		{"command without command", "[sensors.x]\ntype = \"command\"\nname = \"X\"\n", "command is required"},
		{"unknown post process", "[sensors.x]\ntype = \"command\"\nname = \"X\"\ncommand = \"df\"\npost_process = \"reverse\"\n", "unknown post_process"},
		{"malformed toml", "[sensors.x\n", "parsing config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if err == nil {
				t.Fatal("Parse succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sensors.toml")
	if err := os.WriteFile(path, []byte(exampleConfig), 0640); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Overrides)+len(cfg.Commands) != 3 {
		t.Errorf("entries = %d, want 3", len(cfg.Overrides)+len(cfg.Commands))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load succeeded for a missing file")
	}
}
