// Package sysmon samples host-wide CPU and memory usage for the dashboard.
package sysmon

import (
	"context"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of host resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0, all cores combined
	MemPercent float64 // 0.0 .. 100.0
	// Available is false when neither reading could be taken, for example in
	// a sandbox without /proc.
	Available bool
}

// Sample collects a CPU and memory snapshot. CPU uses a zero interval, so the
// reading is the delta since the previous call (the first call in a process
// reports usage since boot). Failed readings are left at zero.
func Sample(ctx context.Context) Stats {
	var s Stats
	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = clampPercent(pcts[0])
		s.Available = true
	}
	if vmem, err := mem.VirtualMemoryWithContext(ctx); err == nil && vmem != nil {
		s.MemPercent = clampPercent(vmem.UsedPercent)
		s.Available = true
	}
	return s
}

func clampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
