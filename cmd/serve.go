package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KasumiMercury/park-live-board/internal/config"
	"github.com/KasumiMercury/park-live-board/internal/domain"
	"github.com/KasumiMercury/park-live-board/internal/handler"
	"github.com/KasumiMercury/park-live-board/internal/health"
	"github.com/KasumiMercury/park-live-board/internal/infra/catalog"
	"github.com/KasumiMercury/park-live-board/internal/infra/repository"
	"github.com/KasumiMercury/park-live-board/internal/infra/themeparks"
	"github.com/KasumiMercury/park-live-board/internal/infra/waitrecorder"
	"github.com/KasumiMercury/park-live-board/internal/observability"
	"github.com/KasumiMercury/park-live-board/internal/observability/logging"
	"github.com/KasumiMercury/park-live-board/internal/observability/metrics"
	"github.com/KasumiMercury/park-live-board/internal/observability/middleware"
	"github.com/KasumiMercury/park-live-board/internal/presentation"
	"github.com/KasumiMercury/park-live-board/internal/service/merge"
	"github.com/KasumiMercury/park-live-board/internal/service/refresh"
	"github.com/KasumiMercury/park-live-board/internal/service/status"
	"github.com/KasumiMercury/park-live-board/internal/service/threshold"
	"github.com/KasumiMercury/park-live-board/internal/service/zone"
)

const (
	shutdownTimeout  = 10 * time.Second
	staleAfterCycles = 3
)

func serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, obs, err := setup(ctx, os.Stdout)
	if err != nil {
		return err
	}
	defer shutdownObservability(obs)

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return err
	}

	boardMetrics, err := metrics.NewBoardMetrics()
	if err != nil {
		slog.Error("failed to initialize board metrics", slog.String("error", err.Error()))
		return err
	}

	// InfluxDB for local, BigQuery for gcloud
	recorder, err := waitrecorder.NewRecorder(ctx, waitrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize wait time recorder", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := recorder.Flush(flushCtx); err != nil {
			slog.Warn("failed to flush wait time recorder", slog.String("error", err.Error()))
		}
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to close wait time recorder", slog.String("error", err.Error()))
		}
	}()

	var (
		redisClient  *redis.Client
		snapshotRepo domain.SnapshotRepository
	)
	if cfg.Redis.Disabled {
		slog.Warn("redis disabled, snapshots are kept in memory only")
	} else {
		redisClient, err = initRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Warn("failed to close redis client", slog.String("error", err.Error()))
			}
		}()
		snapshotRepo = repository.NewSnapshotRepository(redisClient)
	}

	svc, err := newRefreshService(cfg, snapshotRepo, recorder, boardMetrics)
	if err != nil {
		return err
	}
	svc.Warm(ctx)

	boardHandler := handler.NewBoardHandler(
		svc.Store(),
		presentation.NewPresenter(zone.NewClassifier()),
		snapshotRepo,
		httpMetrics,
	)

	// Setup router with observability middleware
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		Module:      logging.Module("board"),
		TracerName:  "github.com/KasumiMercury/park-live-board/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	// Health check endpoints
	// a view is stale once it has missed a few refreshes in a row
	maxAge := make(map[domain.View]time.Duration)
	for _, view := range domain.AllViews() {
		maxAge[view] = staleAfterCycles * cfg.Refresh.Interval(view)
	}
	healthChecker := health.NewChecker(redisClient, svc.Store(), Version, health.WithMaxAge(maxAge))
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.StatusHandler())

	boardHandler.Register(r.Group("/api/v1"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	for _, view := range domain.AllViews() {
		interval := cfg.Refresh.Interval(view)
		g.Go(func() error {
			return svc.Run(gctx, view, interval)
		})
	}

	g.Go(func() error {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Duration("map_refresh", cfg.Refresh.Map),
			slog.Duration("attractions_refresh", cfg.Refresh.Attractions),
			slog.Duration("shows_refresh", cfg.Refresh.Shows),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server exited with error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")

		boardHandler.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("board exited with error", slog.String("error", err.Error()))
		return err
	}

	slog.Info("server exited properly")
	return nil
}

// setup loads and validates the configuration and installs the process
// logger, tracer and meter providers.
func setup(ctx context.Context, logOutput io.Writer) (*config.Config, *observability.Resources, error) {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return nil, nil, err
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return nil, nil, err
	}

	obs, err := initObservability(ctx, cfg.LogLevel, logOutput)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return nil, nil, err
	}

	slog.SetDefault(obs.Logger())

	return cfg, obs, nil
}

func shutdownObservability(obs *observability.Resources) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := obs.Shutdown(shutdownCtx); err != nil {
		slog.Warn("observability shutdown error", slog.String("error", err.Error()))
	}
}

func initRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	redisClient := redis.NewClient(opts)

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		_ = redisClient.Close()
		return nil, err
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		_ = redisClient.Close()
		return nil, err
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		_ = redisClient.Close()
		return nil, err
	}

	slog.Info("redis connected",
		slog.String("addr", cfg.Addr),
	)

	return redisClient, nil
}

// newRefreshService wires the feed client, catalog loader and classifiers.
// snapshotRepo, recorder and boardMetrics may be nil.
func newRefreshService(
	cfg *config.Config,
	snapshotRepo domain.SnapshotRepository,
	recorder domain.WaitTimeRecorder,
	boardMetrics *metrics.BoardMetrics,
) (*refresh.Service, error) {
	thresholds := threshold.Default()
	if err := thresholds.Validate(); err != nil {
		slog.Error("invalid threshold table", slog.String("error", err.Error()))
		return nil, err
	}

	return refresh.NewService(
		themeparks.NewClient(cfg.Feed.BaseURL, cfg.Feed.DestinationID, cfg.Feed.Timeout),
		catalog.NewLoader(cfg.Feed.CatalogLocation, cfg.Feed.Timeout),
		merge.NewMerger(),
		status.NewClassifier(thresholds, cfg.Classify.Options()),
		zone.NewClassifier(),
		refresh.NewStore(),
		snapshotRepo,
		recorder,
		boardMetrics,
	), nil
}
