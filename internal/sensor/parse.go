// Output parsers for the built-in command sensors. Parsing failures
// always degrade to "no value", never to an error.
package sensor

import (
	"strconv"
	"strings"
)

// DiskInfo holds the fields extracted from one df(1) output line.
type DiskInfo struct {
	Total        string
	Available    string
	UsagePercent float64
}

// ParseDiskUsage extracts total, available, and usage percent from df
// output. It reads the first data line after the header; a line with
// fewer than 5 whitespace-separated fields yields no value.
func ParseDiskUsage(dfOutput string) (DiskInfo, bool) {
	lines := strings.Split(dfOutput, "\n")
	if len(lines) < 2 {
		return DiskInfo{}, false
	}
	parts := strings.Fields(lines[1])
	if len(parts) < 5 {
		return DiskInfo{}, false
	}
	usage, err := strconv.ParseFloat(strings.TrimSuffix(parts[4], "%"), 64)
	if err != nil {
		return DiskInfo{}, false
	}
	return DiskInfo{
		Total:        parts[1],
		Available:    parts[3],
		UsagePercent: usage,
	}, true
}

// ParseCPUTemp extracts the CPU package temperature from lm-sensors
// output, reading the "Package id 0" line.
func ParseCPUTemp(sensorsOutput string) (float64, bool) {
	for _, line := range strings.Split(sensorsOutput, "\n") {
		if !strings.Contains(line, "Package id 0") {
			continue
		}
		for _, word := range strings.Fields(line) {
			if !strings.Contains(word, "°C") {
				continue
			}
			word = strings.TrimPrefix(word, "+")
			word = strings.TrimSuffix(word, "°C")
			temp, err := strconv.ParseFloat(word, 64)
			if err != nil {
				return 0, false
			}
			return temp, true
		}
	}
	return 0, false
}

// ParseArrayStatus extracts the mdState value from mdcmd status output.
func ParseArrayStatus(statusOutput string) (string, bool) {
	for _, line := range strings.Split(statusOutput, "\n") {
		if strings.HasPrefix(line, "mdState=") {
			return strings.TrimPrefix(line, "mdState="), true
		}
	}
	return "", false
}
