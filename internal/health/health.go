package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/park-live-board/internal/domain"
)

// Status represents the health status of a service or dependency.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// CheckResult represents the health check result for a single dependency.
type CheckResult struct {
	Status     Status `json:"status"`
	LatencyMs  int64  `json:"latency_ms,omitempty"`
	AgeSeconds int64  `json:"age_seconds,omitempty"`
	Error      string `json:"error,omitempty"`
}

// HealthStatus represents the overall health status of the service.
type HealthStatus struct {
	Status  Status                 `json:"status"`
	Version string                 `json:"version,omitempty"`
	Checks  map[string]CheckResult `json:"checks,omitempty"`
}

// SnapshotSource reports whether a view has been refreshed at least once.
type SnapshotSource interface {
	Get(view domain.View) (*domain.Snapshot, bool)
}

// Checker performs health checks on service dependencies.
type Checker struct {
	redisClient *redis.Client
	snapshots   SnapshotSource
	version     string
	maxAge      map[domain.View]time.Duration
	now         func() time.Time
}

type Option func(*Checker)

// WithMaxAge degrades the status when a view's snapshot is older than its
// entry in maxAge. Views without an entry are never stale.
func WithMaxAge(maxAge map[domain.View]time.Duration) Option {
	return func(c *Checker) {
		c.maxAge = maxAge
	}
}

// NewChecker creates a new health checker with the given dependencies.
// Either dependency may be nil.
func NewChecker(redisClient *redis.Client, snapshots SnapshotSource, version string, opts ...Option) *Checker {
	c := &Checker{
		redisClient: redisClient,
		snapshots:   snapshots,
		version:     version,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check performs health checks on all dependencies and returns the overall
// status. A missing snapshot makes the service unhealthy. An unreachable
// Redis or a stale snapshot only degrades it.
func (c *Checker) Check(ctx context.Context) *HealthStatus {
	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := &HealthStatus{
		Status:  StatusHealthy,
		Version: c.version,
		Checks:  make(map[string]CheckResult),
	}

	if c.redisClient != nil {
		start := time.Now()
		if err := c.redisClient.Ping(checkCtx).Err(); err != nil {
			status.Status = StatusDegraded
			status.Checks["redis"] = CheckResult{
				Status: StatusUnhealthy,
				Error:  err.Error(),
			}
		} else {
			status.Checks["redis"] = CheckResult{
				Status:    StatusHealthy,
				LatencyMs: time.Since(start).Milliseconds(),
			}
		}
	}

	if c.snapshots != nil {
		for _, view := range domain.AllViews() {
			name := "snapshot_" + view.String()
			snap, ok := c.snapshots.Get(view)
			if !ok {
				status.Status = StatusUnhealthy
				status.Checks[name] = CheckResult{
					Status: StatusUnhealthy,
					Error:  "snapshot not ready",
				}
				continue
			}
			status.Checks[name] = c.checkAge(view, snap, status)
		}
	}

	return status
}

func (c *Checker) checkAge(view domain.View, snap *domain.Snapshot, status *HealthStatus) CheckResult {
	maxAge, ok := c.maxAge[view]
	if !ok || maxAge <= 0 {
		return CheckResult{Status: StatusHealthy}
	}

	age := c.now().Sub(snap.GeneratedAt)
	result := CheckResult{
		Status:     StatusHealthy,
		AgeSeconds: int64(age.Seconds()),
	}
	if age > maxAge {
		result.Status = StatusDegraded
		result.Error = "snapshot stale"
		if status.Status == StatusHealthy {
			status.Status = StatusDegraded
		}
	}
	return result
}

// LiveHandler returns a Gin handler for the liveness check.
func (c *Checker) LiveHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// ReadyHandler returns a Gin handler for the readiness check.
func (c *Checker) ReadyHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := c.Check(ctx.Request.Context())

		httpStatus := http.StatusOK
		if status.Status == StatusUnhealthy {
			httpStatus = http.StatusServiceUnavailable
		}

		ctx.JSON(httpStatus, status)
	}
}

// StatusHandler reports the full check result without failing the request.
func (c *Checker) StatusHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, c.Check(ctx.Request.Context()))
	}
}
