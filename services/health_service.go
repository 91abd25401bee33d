package services

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"golang.org/x/sync/errgroup"
)

var uptimeStart = time.Now()

type serverHealthStatus struct {
	Uptime       float64   `json:"uptime"`        // in seconds
	CurrentTime  time.Time `json:"current_time"`  // server current time
	ServiceAlive bool      `json:"service_alive"` // always true if service is running
	RamStats     *RamStats `json:"ram_stats"`
}

type RamStats struct {
	TotalMB     uint64 `json:"total_mb"`
	UsedMB      uint64 `json:"used_mb"`
	FreeMB      uint64 `json:"free_mb"`
	UsedPercent uint64 `json:"used_percent"`
}

type DependencyStatus struct {
	Name           string    `json:"name"`
	Connected      bool      `json:"connected"`
	Error          string    `json:"error,omitempty"`
	LastChecked    time.Time `json:"last_checked"`
	ResponseTimeMs int64     `json:"response_time_ms"`
}

// HealthCheck reports whether a dependency is reachable
type HealthCheck func(ctx context.Context) error

type HealthService struct {
	logger   *gecho.Logger
	database HealthCheck
	checks   map[string]HealthCheck
}

// NewHealthService takes the database check plus optional named checks for the other backends
func NewHealthService(logger *gecho.Logger, database HealthCheck, checks map[string]HealthCheck) *HealthService {
	all := map[string]HealthCheck{"database": database}
	for name, check := range checks {
		if check != nil {
			all[name] = check
		}
	}

	return &HealthService{
		logger:   logger,
		database: database,
		checks:   all,
	}
}

func getRamStats() *RamStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	totalMB := m.Sys / 1024 / 1024
	usedMB := m.Alloc / 1024 / 1024
	freeMB := totalMB - usedMB
	usedPercent := uint64(0)
	if totalMB > 0 {
		usedPercent = (usedMB * 100) / totalMB
	}

	return &RamStats{
		TotalMB:     totalMB,
		UsedMB:      usedMB,
		FreeMB:      freeMB,
		UsedPercent: usedPercent,
	}
}

func (hs *HealthService) GetServerHealthStatus() serverHealthStatus {
	return serverHealthStatus{
		Uptime:       time.Since(uptimeStart).Seconds(),
		CurrentTime:  time.Now(),
		ServiceAlive: true,
		RamStats:     getRamStats(),
	}
}

func (hs *HealthService) GetDatabaseHealthStatus(ctx context.Context) (DependencyStatus, error) {
	status, err := runCheck(ctx, "database", hs.database)
	if err != nil {
		hs.logger.Error("Database health check failed", gecho.Field("error", err))
	}
	return status, err
}

// GetDependencyStatuses checks every backend concurrently. healthy is false when any check failed.
func (hs *HealthService) GetDependencyStatuses(ctx context.Context) (statuses []DependencyStatus, healthy bool) {
	var (
		mu sync.Mutex
		g  errgroup.Group
	)

	healthy = true
	for name, check := range hs.checks {
		g.Go(func() error {
			status, err := runCheck(ctx, name, check)

			mu.Lock()
			defer mu.Unlock()
			statuses = append(statuses, status)
			if err != nil {
				healthy = false
				hs.logger.Warn("Dependency health check failed", gecho.Field("dependency", name), gecho.Field("error", err))
			}
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Name < statuses[j].Name })
	return statuses, healthy
}

func runCheck(ctx context.Context, name string, check HealthCheck) (DependencyStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	start := time.Now()
	err := check(ctx)

	status := DependencyStatus{
		Name:           name,
		Connected:      err == nil,
		LastChecked:    time.Now(),
		ResponseTimeMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		status.Error = err.Error()
	}
	return status, err
}
