package sensor

import (
	"context"
	"errors"
	"testing"

	"github.com/docker/docker/api/types/container"
)

func sampleStats() container.StatsResponse {
	return container.StatsResponse{
		CPUStats: container.CPUStats{
			CPUUsage:    container.CPUUsage{TotalUsage: 150},
			SystemUsage: 1100,
			OnlineCPUs:  4,
		},
		PreCPUStats: container.CPUStats{
			CPUUsage:    container.CPUUsage{TotalUsage: 100},
			SystemUsage: 1000,
		},
		MemoryStats: container.MemoryStats{Usage: 1024},
	}
}

func TestCPUPercent(t *testing.T) {
	tests := []struct {
		name  string
		stats container.StatsResponse
		want  float64
	}{
		{"normal", sampleStats(), 200.0},
		{"zero cpu delta", container.StatsResponse{
			CPUStats: container.CPUStats{
				CPUUsage:    container.CPUUsage{TotalUsage: 100},
				SystemUsage: 2000,
				OnlineCPUs:  4,
			},
			PreCPUStats: container.CPUStats{
				CPUUsage:    container.CPUUsage{TotalUsage: 100},
				SystemUsage: 1000,
			},
		}, 0.0},
		{"zero system delta", container.StatsResponse{
			CPUStats: container.CPUStats{
				CPUUsage:    container.CPUUsage{TotalUsage: 200},
				SystemUsage: 1000,
				OnlineCPUs:  4,
			},
			PreCPUStats: container.CPUStats{
				CPUUsage:    container.CPUUsage{TotalUsage: 100},
				SystemUsage: 1000,
			},
		}, 0.0},
		{"wrapped counters", container.StatsResponse{
			CPUStats: container.CPUStats{
				CPUUsage:    container.CPUUsage{TotalUsage: 50},
				SystemUsage: 500,
				OnlineCPUs:  4,
			},
			PreCPUStats: container.CPUStats{
				CPUUsage:    container.CPUUsage{TotalUsage: 100},
				SystemUsage: 1000,
			},
		}, 0.0},
		{"empty response", container.StatsResponse{}, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CPUPercent(&tt.stats); got != tt.want {
				t.Errorf("CPUPercent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContainerReporter_SharedCacheSingleQuery(t *testing.T) {
	engine := &fakeEngine{stats: sampleStats()}
	summary := container.Summary{ID: "abc123"}
	cache := NewStatsCache()

	cpu := NewContainerReporter(engine, nil, summary, cache, ContainerCPU)
	mem := NewContainerReporter(engine, nil, summary, cache, ContainerMemory)

	cpuVal, ok := cpu.ProduceValue(context.Background())
	if !ok || cpuVal != "200" {
		t.Errorf("CPU value = (%q, %v), want 200", cpuVal, ok)
	}
	memVal, ok := mem.ProduceValue(context.Background())
	if !ok || memVal != "1024" {
		t.Errorf("memory value = (%q, %v), want 1024", memVal, ok)
	}

	if engine.statsCalls != 1 {
		t.Errorf("stats queries = %d, want 1 shared sample per container", engine.statsCalls)
	}
}

func TestContainerReporter_Status(t *testing.T) {
	r := NewContainerReporter(&fakeEngine{}, nil, container.Summary{ID: "abc", Status: "Up 2 hours"}, NewStatsCache(), ContainerStatus)

	got, ok := r.ProduceValue(context.Background())
	if !ok || got != "Up 2 hours" {
		t.Errorf("status = (%q, %v), want passthrough", got, ok)
	}
}

func TestContainerReporter_MissingStatusNoValue(t *testing.T) {
	engine := &fakeEngine{}
	r := NewContainerReporter(engine, nil, container.Summary{ID: "abc"}, NewStatsCache(), ContainerStatus)

	if got, ok := r.ProduceValue(context.Background()); ok {
		t.Errorf("status = %q, want no value", got)
	}
	if engine.statsCalls != 0 {
		t.Error("status read issued a stats query")
	}
}

func TestContainerReporter_StatsErrorNoValue(t *testing.T) {
	engine := &fakeEngine{err: errors.New("container gone")}
	cache := NewStatsCache()
	r := NewContainerReporter(engine, nil, container.Summary{ID: "abc"}, cache, ContainerCPU)

	if got, ok := r.ProduceValue(context.Background()); ok {
		t.Errorf("ProduceValue = %q, want no value on stats error", got)
	}

	// A failed fetch must not poison the cache; the next access retries.
	engine.err = nil
	engine.stats = sampleStats()
	if _, ok := r.ProduceValue(context.Background()); !ok {
		t.Error("ProduceValue failed after engine recovered")
	}
	if engine.statsCalls != 2 {
		t.Errorf("stats queries = %d, want retry after failure", engine.statsCalls)
	}
}
