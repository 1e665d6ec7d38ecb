// Package catalog builds the built-in sensor list and applies user
// configuration overrides to produce the final sensor set for a cycle.
package catalog

import (
	"context"
	"strconv"
	"strings"

	"github.com/docker/docker/api/types/container"
	"go.uber.org/zap"

	"github.com/unraid-mqtt-stats/agent/internal/sensor"
)

// userShare is the mount point the disk sensors report on.
const userShare = "/mnt/user"

// Builder assembles the built-in sensor catalog.
type Builder struct {
	engine     sensor.Engine
	runner     sensor.Runner
	logger     *zap.Logger
	deviceName string
}

// NewBuilder creates a catalog builder for the given device.
func NewBuilder(engine sensor.Engine, runner sensor.Runner, logger *zap.Logger, deviceName string) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		engine:     engine,
		runner:     runner,
		logger:     logger,
		deviceName: deviceName,
	}
}

// Build produces the built-in sensors in their fixed order: host stats,
// disk and temperature and array command sensors, Docker aggregates,
// then a CPU/memory/status triplet per running container. The snapshot
// must already be collected by the caller. Container enumeration failure
// degrades to a host-only catalog.
func (b *Builder) Build(ctx context.Context, snap *sensor.Snapshot) []*sensor.Sensor {
	sensors := []*sensor.Sensor{
		{
			ID:       "cpu_usage",
			Name:     "CPU Usage",
			Unit:     "%",
			Reporter: sensor.NewSystemReporter(snap, sensor.CPUUsage),
		},
		{
			ID:       "memory_usage",
			Name:     "Memory Usage",
			Unit:     "%",
			Reporter: sensor.NewSystemReporter(snap, sensor.MemoryUsage),
		},
		{
			ID:          "memory_total",
			Name:        "Memory Total",
			Unit:        "B",
			DeviceClass: sensor.ClassDataSize,
			Icon:        "memory",
			Reporter:    sensor.NewSystemReporter(snap, sensor.MemoryTotal),
		},
		{
			ID:          "memory_used",
			Name:        "Memory Used",
			Unit:        "B",
			DeviceClass: sensor.ClassDataSize,
			Icon:        "memory",
			Reporter:    sensor.NewSystemReporter(snap, sensor.MemoryUsed),
		},
		{
			ID:       "disk_usage",
			Name:     "Disk Usage",
			Unit:     "%",
			Reporter: b.command("df", []string{"-BM", userShare}, diskUsageTransform),
		},
		{
			ID:          "disk_total",
			Name:        "Disk Total",
			Unit:        "B",
			DeviceClass: sensor.ClassDataSize,
			Icon:        "data_size",
			Reporter:    b.command("df", []string{userShare}, diskTotalTransform),
		},
		{
			ID:          "disk_available",
			Name:        "Disk Available",
			Unit:        "B",
			DeviceClass: sensor.ClassDataSize,
			Icon:        "data_size",
			Reporter:    b.command("df", []string{userShare}, diskAvailableTransform),
		},
		{
			ID:          "cpu_temp",
			Name:        "CPU Temperature",
			Unit:        "°C",
			DeviceClass: sensor.ClassTemperature,
			Reporter:    b.command("sensors", nil, cpuTempTransform),
		},
		{
			ID:       "uptime",
			Name:     "Uptime",
			Icon:     "duration",
			Reporter: sensor.NewSystemReporter(snap, sensor.Uptime),
		},
		{
			ID:       "array_status",
			Name:     "Array Status",
			Reporter: b.command("mdcmd", []string{"status"}, arrayStatusTransform),
		},
		{
			ID:       "docker_containers_running",
			Name:     "Docker Containers Running",
			Icon:     "docker",
			Reporter: sensor.NewEngineReporter(b.engine, b.logger, sensor.RunningCount),
		},
		{
			ID:       "docker_containers_unhealthy",
			Name:     "Docker Containers Unhealthy",
			Icon:     "docker",
			Reporter: sensor.NewEngineReporter(b.engine, b.logger, sensor.UnhealthyCount),
		},
		{
			ID:       "docker_images_count",
			Name:     "Docker Images",
			Icon:     "docker",
			Reporter: sensor.NewEngineReporter(b.engine, b.logger, sensor.ImagesCount),
		},
		{
			ID:          "docker_images_size",
			Name:        "Docker Images Size",
			Unit:        "B",
			DeviceClass: sensor.ClassDataSize,
			Icon:        "data_size",
			Reporter:    sensor.NewEngineReporter(b.engine, b.logger, sensor.ImagesSize),
		},
		{
			ID:       "docker_volumes_count",
			Name:     "Docker Volumes",
			Icon:     "docker",
			Reporter: sensor.NewEngineReporter(b.engine, b.logger, sensor.VolumesCount),
		},
	}

	containers, err := b.engine.ListContainers(ctx, "status", "running")
	if err != nil {
		b.logger.Warn("Container enumeration failed, skipping container sensors",
			zap.Error(err))
		return sensors
	}
	for _, c := range containers {
		sensors = append(sensors, b.containerSensors(c)...)
	}
	return sensors
}

// containerSensors builds the CPU/memory/status triplet for one running
// container. The CPU and memory reporters share one stats cache so only
// one stats query is issued per container per cycle.
func (b *Builder) containerSensors(c container.Summary) []*sensor.Sensor {
	name := containerName(c)
	cache := sensor.NewStatsCache()
	return []*sensor.Sensor{
		{
			ID:       "dockercontainer_" + name + "_cpu",
			Name:     b.deviceName + " Docker " + name + " CPU",
			Unit:     "%",
			Icon:     "cpu-64-bit",
			Reporter: sensor.NewContainerReporter(b.engine, b.logger, c, cache, sensor.ContainerCPU),
		},
		{
			ID:          "dockercontainer_" + name + "_memory",
			Name:        b.deviceName + " Docker " + name + " Memory",
			Unit:        "B",
			DeviceClass: sensor.ClassDataSize,
			Icon:        "memory",
			Reporter:    sensor.NewContainerReporter(b.engine, b.logger, c, cache, sensor.ContainerMemory),
		},
		{
			ID:       "dockercontainer_" + name + "_uptime",
			Name:     b.deviceName + " Docker " + name + " Uptime",
			Icon:     "docker",
			Reporter: sensor.NewContainerReporter(b.engine, b.logger, c, cache, sensor.ContainerStatus),
		},
	}
}

func (b *Builder) command(name string, args []string, transform sensor.Transform) sensor.Reporter {
	return sensor.NewCommandReporter(b.runner, b.logger, name, args, transform)
}

// containerName returns the container's first engine-supplied alias with
// the leading path separator stripped, or "unknown".
func containerName(c container.Summary) string {
	if len(c.Names) == 0 || c.Names[0] == "" {
		return "unknown"
	}
	return strings.TrimPrefix(c.Names[0], "/")
}

func diskUsageTransform(out string) (string, bool) {
	info, ok := sensor.ParseDiskUsage(out)
	if !ok {
		return "", false
	}
	return strconv.FormatFloat(info.UsagePercent, 'f', -1, 64), true
}

func diskTotalTransform(out string) (string, bool) {
	info, ok := sensor.ParseDiskUsage(out)
	if !ok {
		return "", false
	}
	return info.Total, true
}

func diskAvailableTransform(out string) (string, bool) {
	info, ok := sensor.ParseDiskUsage(out)
	if !ok {
		return "", false
	}
	return info.Available, true
}

func cpuTempTransform(out string) (string, bool) {
	temp, ok := sensor.ParseCPUTemp(out)
	if !ok {
		return "", false
	}
	return strconv.FormatFloat(temp, 'f', 1, 64), true
}

func arrayStatusTransform(out string) (string, bool) {
	return sensor.ParseArrayStatus(out)
}
