package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/park-live-board/internal/domain"
)

type fakeSnapshots map[domain.View]bool

func (f fakeSnapshots) Get(view domain.View) (*domain.Snapshot, bool) {
	if !f[view] {
		return nil, false
	}
	return &domain.Snapshot{View: view}, true
}

func allReady() fakeSnapshots {
	return fakeSnapshots{domain.ViewMap: true, domain.ViewAttractions: true, domain.ViewShows: true}
}

func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestChecker_Check(t *testing.T) {
	tests := []struct {
		name       string
		redis      bool
		snapshots  SnapshotSource
		wantStatus Status
	}{
		{
			name:       "no dependencies",
			wantStatus: StatusHealthy,
		},
		{
			name:       "all snapshots ready",
			snapshots:  allReady(),
			wantStatus: StatusHealthy,
		},
		{
			name:       "missing snapshot",
			snapshots:  fakeSnapshots{domain.ViewMap: true},
			wantStatus: StatusUnhealthy,
		},
		{
			name:       "redis unreachable",
			redis:      true,
			snapshots:  allReady(),
			wantStatus: StatusDegraded,
		},
		{
			name:       "redis unreachable and snapshot missing",
			redis:      true,
			snapshots:  fakeSnapshots{},
			wantStatus: StatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var client *redis.Client
			if tt.redis {
				client = unreachableRedis(t)
			}

			status := NewChecker(client, tt.snapshots, "test").Check(context.Background())

			if status.Status != tt.wantStatus {
				t.Errorf("Check().Status = %v, want %v (checks: %v)", status.Status, tt.wantStatus, status.Checks)
			}
			if status.Version != "test" {
				t.Errorf("Check().Version = %q, want %q", status.Version, "test")
			}
		})
	}
}

type agedSnapshots map[domain.View]time.Time

func (a agedSnapshots) Get(view domain.View) (*domain.Snapshot, bool) {
	at, ok := a[view]
	if !ok {
		return nil, false
	}
	return &domain.Snapshot{View: view, GeneratedAt: at}, true
}

func TestChecker_MaxAge(t *testing.T) {
	now := time.Date(2026, 7, 14, 12, 0, 0, 0, time.UTC)
	maxAge := map[domain.View]time.Duration{
		domain.ViewMap:         3 * time.Minute,
		domain.ViewAttractions: 270 * time.Second,
	}

	tests := []struct {
		name       string
		snapshots  agedSnapshots
		wantStatus Status
		wantStale  string
	}{
		{
			name: "all fresh",
			snapshots: agedSnapshots{
				domain.ViewMap:         now.Add(-time.Minute),
				domain.ViewAttractions: now.Add(-time.Minute),
				domain.ViewShows:       now.Add(-time.Hour),
			},
			wantStatus: StatusHealthy,
		},
		{
			name: "stale map",
			snapshots: agedSnapshots{
				domain.ViewMap:         now.Add(-10 * time.Minute),
				domain.ViewAttractions: now.Add(-time.Minute),
				domain.ViewShows:       now,
			},
			wantStatus: StatusDegraded,
			wantStale:  "snapshot_map",
		},
		{
			name: "stale and missing",
			snapshots: agedSnapshots{
				domain.ViewMap:         now.Add(-10 * time.Minute),
				domain.ViewAttractions: now,
			},
			wantStatus: StatusUnhealthy,
			wantStale:  "snapshot_map",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewChecker(nil, tt.snapshots, "test", WithMaxAge(maxAge))
			checker.now = func() time.Time { return now }

			status := checker.Check(context.Background())

			if status.Status != tt.wantStatus {
				t.Errorf("Check().Status = %v, want %v (checks: %v)", status.Status, tt.wantStatus, status.Checks)
			}
			if tt.wantStale != "" {
				got := status.Checks[tt.wantStale]
				if got.Status != StatusDegraded || got.AgeSeconds != 600 {
					t.Errorf("Check().Checks[%s] = %+v, want degraded with age 600", tt.wantStale, got)
				}
			}
		})
	}
}

func TestChecker_ReadyHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		snapshots SnapshotSource
		wantCode  int
	}{
		{name: "ready", snapshots: allReady(), wantCode: http.StatusOK},
		{name: "not ready", snapshots: fakeSnapshots{}, wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewChecker(nil, tt.snapshots, "test")

			router := gin.New()
			router.GET("/health/ready", checker.ReadyHandler())
			router.GET("/health", checker.StatusHandler())

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			if w.Code != tt.wantCode {
				t.Errorf("ready status = %d, want %d", w.Code, tt.wantCode)
			}

			var body HealthStatus
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if len(body.Checks) != len(domain.AllViews()) {
				t.Errorf("got %d checks, want %d", len(body.Checks), len(domain.AllViews()))
			}

			w = httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			if w.Code != http.StatusOK {
				t.Errorf("status endpoint = %d, want %d", w.Code, http.StatusOK)
			}
		})
	}
}

func TestChecker_LiveHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/health/live", NewChecker(nil, nil, "test").LiveHandler())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if w.Code != http.StatusOK {
		t.Errorf("live status = %d, want %d", w.Code, http.StatusOK)
	}
}
