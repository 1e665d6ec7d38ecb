// Per-container reporter: reports CPU%, memory usage, or lifecycle
// status for one container. The CPU and memory reporters of a container
// share one stats cache so a single streaming stats query serves both.
package sensor

import (
	"context"
	"strconv"
	"sync"

	"github.com/docker/docker/api/types/container"
	"go.uber.org/zap"
)

// StatsCache holds the most recent stats sample for one container. The
// cache is lazily populated under a mutex: concurrent CPU and memory
// reads for the same container serialize on it, so at most one stats
// query per container is issued per cycle.
type StatsCache struct {
	mu     sync.Mutex
	sample *container.StatsResponse
}

// NewStatsCache creates an empty cache shared by a container's reporters.
func NewStatsCache() *StatsCache {
	return &StatsCache{}
}

// ContainerStat selects the per-container metric a ContainerReporter reports.
type ContainerStat int

const (
	ContainerCPU ContainerStat = iota
	ContainerMemory
	ContainerStatus
)

// ContainerReporter reports one metric for one specific container.
type ContainerReporter struct {
	engine  Engine
	summary container.Summary
	cache   *StatsCache
	stat    ContainerStat
	logger  *zap.Logger
}

// NewContainerReporter creates a reporter for one container metric. The
// cache must be shared between the CPU and memory reporters constructed
// for the same container.
func NewContainerReporter(engine Engine, logger *zap.Logger, summary container.Summary, cache *StatsCache, stat ContainerStat) *ContainerReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContainerReporter{
		engine:  engine,
		summary: summary,
		cache:   cache,
		stat:    stat,
		logger:  logger,
	}
}

// ProduceValue returns the selected container metric. A failed stats
// query or a missing response field degrades to "no value" or 0.
func (r *ContainerReporter) ProduceValue(ctx context.Context) (string, bool) {
	if r.stat == ContainerStatus {
		if r.summary.Status == "" {
			return "", false
		}
		return r.summary.Status, true
	}

	stats, ok := r.sample(ctx)
	if !ok {
		return "", false
	}
	switch r.stat {
	case ContainerCPU:
		return strconv.FormatFloat(CPUPercent(stats), 'f', -1, 64), true
	case ContainerMemory:
		return strconv.FormatUint(stats.MemoryStats.Usage, 10), true
	}
	return "", false
}

// sample returns the cached stats sample, fetching it on first access.
func (r *ContainerReporter) sample(ctx context.Context) (*container.StatsResponse, bool) {
	r.cache.mu.Lock()
	defer r.cache.mu.Unlock()

	if r.cache.sample != nil {
		return r.cache.sample, true
	}
	stats, err := r.engine.ContainerStats(ctx, r.summary.ID)
	if err != nil {
		r.logger.Debug("Container stats query failed",
			zap.String("container", r.summary.ID),
			zap.Error(err))
		return nil, false
	}
	r.cache.sample = &stats
	return r.cache.sample, true
}

// CPUPercent computes container CPU utilization from the engine's
// before/after counters: (cpuDelta / systemDelta) * onlineCPUs * 100.
// Non-positive deltas (zero, missing, or wrapped counters) yield 0.
func CPUPercent(stats *container.StatsResponse) float64 {
	cpuDelta := int64(stats.CPUStats.CPUUsage.TotalUsage) - int64(stats.PreCPUStats.CPUUsage.TotalUsage)
	systemDelta := int64(stats.CPUStats.SystemUsage) - int64(stats.PreCPUStats.SystemUsage)
	if systemDelta <= 0 || cpuDelta <= 0 {
		return 0
	}
	return float64(cpuDelta) / float64(systemDelta) * float64(stats.CPUStats.OnlineCPUs) * 100.0
}
