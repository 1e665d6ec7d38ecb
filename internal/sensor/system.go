// Host statistics reporter: reports CPU, memory, and uptime values from
// a point-in-time snapshot. Uses gopsutil for cross-platform metrics.
package sensor

import (
	"context"
	"strconv"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Snapshot is a point-in-time read of host metrics, collected once per
// cycle and shared by all system sensors.
type Snapshot struct {
	MemoryTotal   uint64
	MemoryUsed    uint64
	CPUPercent    float64
	UptimeSeconds uint64
}

// CollectSnapshot reads the current host metrics. The CPU measurement
// blocks for 1 second to compute an accurate utilization percentage.
func CollectSnapshot(ctx context.Context) (*Snapshot, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, err
	}
	percents, err := cpu.PercentWithContext(ctx, time.Second, false)
	if err != nil {
		return nil, err
	}
	uptime, err := host.UptimeWithContext(ctx)
	if err != nil {
		return nil, err
	}
	snap := &Snapshot{
		MemoryTotal:   vm.Total,
		MemoryUsed:    vm.Used,
		UptimeSeconds: uptime,
	}
	if len(percents) > 0 {
		snap.CPUPercent = percents[0]
	}
	return snap, nil
}

// SystemStat selects which snapshot field a SystemReporter reports.
type SystemStat int

const (
	CPUUsage SystemStat = iota
	MemoryUsage
	MemoryUsed
	MemoryTotal
	Uptime
)

// SystemReporter reports one host statistic from a shared Snapshot.
// It is pure computation over the snapshot and always produces a value;
// a degenerate snapshot (zero total memory) yields 0 rather than a fault.
type SystemReporter struct {
	snapshot *Snapshot
	stat     SystemStat
}

// NewSystemReporter creates a reporter for one statistic of the snapshot.
func NewSystemReporter(snapshot *Snapshot, stat SystemStat) *SystemReporter {
	return &SystemReporter{snapshot: snapshot, stat: stat}
}

// ProduceValue returns the selected statistic formatted for publishing.
func (r *SystemReporter) ProduceValue(ctx context.Context) (string, bool) {
	switch r.stat {
	case CPUUsage:
		return strconv.FormatFloat(r.snapshot.CPUPercent, 'f', 1, 64), true
	case MemoryUsage:
		if r.snapshot.MemoryTotal == 0 {
			return "0.0", true
		}
		pct := float64(r.snapshot.MemoryUsed) / float64(r.snapshot.MemoryTotal) * 100.0
		return strconv.FormatFloat(pct, 'f', 1, 64), true
	case MemoryUsed:
		return strconv.FormatFloat(float64(r.snapshot.MemoryUsed), 'f', 1, 64), true
	case MemoryTotal:
		return strconv.FormatFloat(float64(r.snapshot.MemoryTotal), 'f', 1, 64), true
	case Uptime:
		return strconv.FormatUint(r.snapshot.UptimeSeconds, 10), true
	}
	return "", false
}
