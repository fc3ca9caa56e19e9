package rslimiter

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/mem"
)

// ResourceUsage is a snapshot of process and system memory.
type ResourceUsage struct {
	AllocMB              int64   // heap currently allocated by the process
	SysMB                int64   // memory obtained from the OS by the Go runtime
	GCCount              int64
	SystemMemUsedMB      int64
	SystemMemTotalMB     int64
	SystemMemUsedPercent float64
}

// GetResourceUsage returns current resource usage statistics. System fields
// stay zero when the platform does not report them.
func GetResourceUsage() ResourceUsage {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	usage := ResourceUsage{
		AllocMB: int64(m.Alloc / 1024 / 1024),
		SysMB:   int64(m.Sys / 1024 / 1024),
		GCCount: int64(m.NumGC),
	}

	if vmStat, err := mem.VirtualMemory(); err == nil {
		usage.SystemMemUsedMB = int64(vmStat.Used / 1024 / 1024)
		usage.SystemMemTotalMB = int64(vmStat.Total / 1024 / 1024)
		usage.SystemMemUsedPercent = vmStat.UsedPercent
	}

	return usage
}
