package rslimiter

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/aleister1102/faultyurls/internal/config"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/mem"
)

var (
	// ErrMemoryLimitExceeded is returned when the process heap passes MaxMemoryMB.
	ErrMemoryLimitExceeded = errors.New("memory limit exceeded")
	// ErrSystemMemoryExceeded is returned when system memory use passes SystemMemThreshold.
	ErrSystemMemoryExceeded = errors.New("system memory threshold exceeded")
)

// ResourceLimiter checks memory use against the configured limits. It is
// polled by the caller; nothing runs in the background.
type ResourceLimiter struct {
	config config.ResourceLimiterConfig
	logger zerolog.Logger

	allocMB       func() int64
	virtualMemory func() (*mem.VirtualMemoryStat, error)
}

// NewResourceLimiter creates a new resource limiter
func NewResourceLimiter(cfg config.ResourceLimiterConfig, logger zerolog.Logger) *ResourceLimiter {
	return &ResourceLimiter{
		config:        cfg,
		logger:        logger.With().Str("component", "ResourceLimiter").Logger(),
		allocMB:       currentAllocMB,
		virtualMemory: mem.VirtualMemory,
	}
}

// CheckMemoryLimit fails when the heap is above MaxMemoryMB.
func (rl *ResourceLimiter) CheckMemoryLimit() error {
	if rl.config.MaxMemoryMB <= 0 {
		return nil
	}

	currentMB := rl.allocMB()
	if currentMB > rl.config.MaxMemoryMB {
		return fmt.Errorf("%w: current %dMB > limit %dMB", ErrMemoryLimitExceeded, currentMB, rl.config.MaxMemoryMB)
	}
	return nil
}

// CheckSystemMemoryLimit fails when system memory use is above
// SystemMemThreshold. Platforms without memory stats are never limited.
func (rl *ResourceLimiter) CheckSystemMemoryLimit() error {
	if rl.config.SystemMemThreshold <= 0 {
		return nil
	}

	vmStat, err := rl.virtualMemory()
	if err != nil {
		rl.logger.Debug().Err(err).Msg("System memory stats unavailable, skipping check")
		return nil
	}

	usedPercent := vmStat.UsedPercent / 100.0
	if usedPercent > rl.config.SystemMemThreshold {
		rl.logger.Warn().
			Float64("used_percent", vmStat.UsedPercent).
			Float64("threshold_percent", rl.config.SystemMemThreshold*100).
			Uint64("used_mb", vmStat.Used/1024/1024).
			Uint64("total_mb", vmStat.Total/1024/1024).
			Msg("System memory usage exceeded threshold")
		return fmt.Errorf("%w: %.1f%% used", ErrSystemMemoryExceeded, vmStat.UsedPercent)
	}
	return nil
}

// Check runs every configured check.
func (rl *ResourceLimiter) Check() error {
	if err := rl.CheckMemoryLimit(); err != nil {
		return err
	}
	return rl.CheckSystemMemoryLimit()
}

// LogUsage writes a debug snapshot of current usage.
func (rl *ResourceLimiter) LogUsage(msg string) {
	usage := GetResourceUsage()
	rl.logger.Debug().
		Int64("alloc_mb", usage.AllocMB).
		Int64("sys_mb", usage.SysMB).
		Int64("gc_count", usage.GCCount).
		Int64("system_mem_used_mb", usage.SystemMemUsedMB).
		Int64("system_mem_total_mb", usage.SystemMemTotalMB).
		Float64("system_mem_used_percent", usage.SystemMemUsedPercent).
		Msg(msg)
}

func currentAllocMB() int64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return int64(m.Alloc / 1024 / 1024)
}
