package publish

import (
	"os"
	"strings"
)

// unraidVersionFile carries the host's Unraid release, one key=value per line.
const unraidVersionFile = "/etc/unraid-version"

// DeviceInfo builds the Home Assistant device document shared by every
// sensor's discovery config.
func DeviceInfo(deviceName string) map[string]any {
	return map[string]any{
		"identifiers":  []string{"unraid_" + deviceName},
		"name":         "Unraid " + deviceName,
		"model":        "Unraid Server",
		"manufacturer": "Lime Technology",
		"sw_version":   unraidVersion(unraidVersionFile),
	}
}

// unraidVersion reads the version= line from the release file, with
// surrounding quotes stripped. Returns "Unknown" when the file is
// missing or carries no version line.
func unraidVersion(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return "Unknown"
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "version=") {
			return strings.Trim(strings.TrimPrefix(line, "version="), `"`)
		}
	}
	return "Unknown"
}
