package observability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/KasumiMercury/park-live-board/internal/observability/logging"
)

type Config struct {
	ServiceInfo   logging.ServiceInfo
	Environment   logging.Environment
	GCPProjectID  string
	SamplingRate  float64
	DefaultModule logging.Module
	LogLevel      slog.Leveler
	// Output receives the log stream; nil means stdout.
	Output io.Writer
}

// Resources owns the logger and the global tracer and meter providers.
type Resources struct {
	logger         *slog.Logger
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
}

func Init(ctx context.Context, cfg Config) (*Resources, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	logger := slog.New(logging.NewHandler(out, logging.HandlerConfig{
		ServiceInfo:   cfg.ServiceInfo,
		Environment:   cfg.Environment,
		GCPProjectID:  cfg.GCPProjectID,
		DefaultModule: cfg.DefaultModule,
		Level:         cfg.LogLevel,
	}))

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", cfg.ServiceInfo.Name),
			attribute.String("service.version", cfg.ServiceInfo.Version),
			attribute.String("deployment.environment", string(cfg.Environment)),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build resource: %w", err)
	}

	exp, err := newExporters(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tpOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SamplingRate))),
	}
	if exp.span != nil {
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exp.span))
	}
	tp := sdktrace.NewTracerProvider(tpOpts...)

	mpOpts := []sdkmetric.Option{sdkmetric.WithResource(res)}
	if exp.metric != nil {
		mpOpts = append(mpOpts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp.metric)))
	}
	mp := sdkmetric.NewMeterProvider(mpOpts...)

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Resources{
		logger:         logger,
		tracerProvider: tp,
		meterProvider:  mp,
	}, nil
}

func (r *Resources) Logger() *slog.Logger {
	return r.logger
}

func (r *Resources) Shutdown(ctx context.Context) error {
	return errors.Join(
		r.tracerProvider.Shutdown(ctx),
		r.meterProvider.Shutdown(ctx),
	)
}
