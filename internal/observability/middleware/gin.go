package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KasumiMercury/park-live-board/internal/observability/logging"
	"github.com/KasumiMercury/park-live-board/internal/observability/metrics"
	"github.com/KasumiMercury/park-live-board/internal/observability/tracing"
)

const RequestIDHeader = "x-request-id"

type GinConfig struct {
	SkipPaths   []string
	Module      logging.Module
	TracerName  string
	HTTPMetrics *metrics.HTTPMetrics
}

// Gin attaches a request id, a server span, request metrics and an access
// log line to every request outside SkipPaths.
func Gin(cfg GinConfig) gin.HandlerFunc {
	tracer := otel.Tracer(cfg.TracerName)

	return func(c *gin.Context) {
		if slices.Contains(cfg.SkipPaths, c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()

		requestID := logging.ValidateAndExtractRequestID(c.GetHeader(RequestIDHeader))
		c.Header(RequestIDHeader, requestID)

		ctx := tracing.ExtractFromHTTPRequest(c.Request.Context(), c.Request)
		ctx = logging.WithRequestID(ctx, requestID)
		if cfg.Module != "" {
			ctx = logging.WithModule(ctx, cfg.Module)
		}

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx, span := tracer.Start(ctx, c.Request.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", c.Request.Method),
				attribute.String("http.route", route),
				attribute.String("request_id", requestID),
			),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		duration := time.Since(start)

		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}

		if cfg.HTTPMetrics != nil {
			cfg.HTTPMetrics.RecordRequest(ctx, c.Request.Method, route, status, duration)
		}

		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		} else if status >= http.StatusBadRequest {
			level = slog.LevelWarn
		}

		slog.Log(ctx, level, "http request",
			slog.String("method", c.Request.Method),
			slog.String("route", route),
			slog.Int("status", status),
			slog.Duration("duration", duration),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}

// PanicRecoveryGin turns a handler panic into a logged 500.
func PanicRecoveryGin() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				ctx := c.Request.Context()
				slog.ErrorContext(ctx, "panic recovered",
					slog.String("error", fmt.Sprint(r)),
					slog.String("stack", string(debug.Stack())),
				)
				trace.SpanFromContext(ctx).SetStatus(codes.Error, "panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}
