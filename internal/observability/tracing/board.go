package tracing

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const boardTracerName = "github.com/KasumiMercury/park-live-board/internal/service/refresh"

func BoardTracer() trace.Tracer {
	return otel.Tracer(boardTracerName)
}

func StartRefreshCycleSpan(ctx context.Context, view string, startedAt time.Time) (context.Context, trace.Span) {
	return BoardTracer().Start(ctx, "board.refresh_cycle",
		trace.WithAttributes(
			attribute.String("board.view", view),
			attribute.String("cycle.started_at", startedAt.Format(time.RFC3339)),
		),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return BoardTracer().Start(ctx, "board.external_api."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func StartRedisOperationSpan(ctx context.Context, operation, key string) (context.Context, trace.Span) {
	return BoardTracer().Start(ctx, "board.redis."+operation,
		trace.WithAttributes(
			attribute.String("db.system", "redis"),
			attribute.String("db.operation", operation),
			attribute.String("db.key", key),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordRefreshCycleResult(span trace.Span, stage string, recordCount, collisionCount int, err error) {
	span.SetAttributes(
		attribute.Int("cycle.record_count", recordCount),
		attribute.Int("cycle.collision_count", collisionCount),
	)
	RecordError(span, stage, err)
}

// RecordError marks the span failed at stage, or OK when err is nil.
func RecordError(span trace.Span, stage string, err error) {
	if err != nil {
		span.SetAttributes(attribute.String("error.stage", stage))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

// InjectToHTTPRequest propagates the span context of ctx into req headers.
func InjectToHTTPRequest(ctx context.Context, req *http.Request) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
}

// ExtractFromHTTPRequest returns ctx carrying the remote span context of req.
func ExtractFromHTTPRequest(ctx context.Context, req *http.Request) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, propagation.HeaderCarrier(req.Header))
}
