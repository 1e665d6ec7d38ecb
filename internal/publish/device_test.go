package publish

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUnraidVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unraid-version")
	content := "version=\"7.0.1\"\ntimestamp=1700000000\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if got := unraidVersion(path); got != "7.0.1" {
		t.Errorf("unraidVersion = %q, want quotes stripped", got)
	}
}

func TestUnraidVersion_Unknown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unraid-version")
	if err := os.WriteFile(path, []byte("timestamp=1700000000\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := unraidVersion(path); got != "Unknown" {
		t.Errorf("no version line: got %q", got)
	}

	if got := unraidVersion(filepath.Join(t.TempDir(), "absent")); got != "Unknown" {
		t.Errorf("missing file: got %q", got)
	}
}

func TestDeviceInfo(t *testing.T) {
	info := DeviceInfo("tower")

	ids, ok := info["identifiers"].([]string)
	if !ok || len(ids) != 1 || ids[0] != "unraid_tower" {
		t.Errorf("identifiers = %v", info["identifiers"])
	}
	if info["name"] != "Unraid tower" {
		t.Errorf("name = %v", info["name"])
	}
	if info["manufacturer"] != "Lime Technology" {
		t.Errorf("manufacturer = %v", info["manufacturer"])
	}
}
