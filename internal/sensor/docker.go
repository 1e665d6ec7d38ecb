// Docker engine aggregate reporter: reports counts and sizes derived
// from engine listing queries. An engine failure degrades to "no value"
// for the affected sensor, never to an error.
package sensor

import (
	"context"
	"strconv"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/volume"
	"go.uber.org/zap"
)

// Engine is the narrow container-engine surface the Docker reporters
// consume. The production implementation wraps the Docker SDK client.
type Engine interface {
	ListImages(ctx context.Context) ([]image.Summary, error)
	ListVolumes(ctx context.Context) ([]*volume.Volume, error)
	ListContainers(ctx context.Context, filterKey, filterValue string) ([]container.Summary, error)
	// ContainerStats takes exactly one sample from the engine's
	// streaming stats endpoint for the given container.
	ContainerStats(ctx context.Context, containerID string) (container.StatsResponse, error)
}

// EngineStat selects the aggregate Docker metric an EngineReporter reports.
type EngineStat int

const (
	ImagesCount EngineStat = iota
	ImagesSize
	VolumesCount
	RunningCount
	UnhealthyCount
)

// EngineReporter reports one engine-wide aggregate.
type EngineReporter struct {
	engine Engine
	stat   EngineStat
	logger *zap.Logger
}

// NewEngineReporter creates a reporter for one engine aggregate.
func NewEngineReporter(engine Engine, logger *zap.Logger, stat EngineStat) *EngineReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EngineReporter{engine: engine, stat: stat, logger: logger}
}

// ProduceValue queries the engine and returns the derived scalar.
func (r *EngineReporter) ProduceValue(ctx context.Context) (string, bool) {
	switch r.stat {
	case ImagesCount:
		images, err := r.engine.ListImages(ctx)
		if err != nil {
			return r.noValue("listing images", err)
		}
		return strconv.Itoa(len(images)), true
	case ImagesSize:
		images, err := r.engine.ListImages(ctx)
		if err != nil {
			return r.noValue("listing images", err)
		}
		var total int64
		for _, img := range images {
			total += img.Size
		}
		return strconv.FormatInt(total, 10), true
	case VolumesCount:
		volumes, err := r.engine.ListVolumes(ctx)
		if err != nil {
			return r.noValue("listing volumes", err)
		}
		return strconv.Itoa(len(volumes)), true
	case RunningCount:
		return r.countContainers(ctx, "status", "running")
	case UnhealthyCount:
		return r.countContainers(ctx, "health", "unhealthy")
	}
	return "", false
}

func (r *EngineReporter) countContainers(ctx context.Context, filterKey, filterValue string) (string, bool) {
	containers, err := r.engine.ListContainers(ctx, filterKey, filterValue)
	if err != nil {
		return r.noValue("listing containers", err)
	}
	return strconv.Itoa(len(containers)), true
}

func (r *EngineReporter) noValue(op string, err error) (string, bool) {
	r.logger.Debug("Engine query failed", zap.String("op", op), zap.Error(err))
	return "", false
}
