package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

type Environment string

const (
	EnvDev     Environment = "dev"
	EnvStaging Environment = "staging"
	EnvProd    Environment = "prod"
)

// Module names the component a log line comes from.
type Module string

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type contextKey int

const (
	requestIDKey contextKey = iota
	moduleKey
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ValidateAndExtractRequestID returns id when it is a UUID, otherwise a
// freshly generated one.
func ValidateAndExtractRequestID(id string) string {
	if id != "" {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	return uuid.NewString()
}

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

func ModuleFromContext(ctx context.Context) Module {
	if v, ok := ctx.Value(moduleKey).(Module); ok {
		return v
	}
	return ""
}

type HandlerConfig struct {
	ServiceInfo   ServiceInfo
	Environment   Environment
	GCPProjectID  string
	DefaultModule Module
	Level         slog.Leveler
}

// handler decorates every record with service, request and trace fields.
type handler struct {
	inner         slog.Handler
	projectID     string
	defaultModule Module
}

func NewHandler(w io.Writer, cfg HandlerConfig) slog.Handler {
	level := cfg.Level
	if level == nil {
		level = slog.LevelInfo
	}

	inner := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceAttr,
	}).WithAttrs([]slog.Attr{
		slog.Group("service",
			slog.String("name", cfg.ServiceInfo.Name),
			slog.String("version", cfg.ServiceInfo.Version),
			slog.String("revision", cfg.ServiceInfo.Revision),
		),
		slog.String("env", string(cfg.Environment)),
	})

	return &handler{
		inner:         inner,
		projectID:     cfg.GCPProjectID,
		defaultModule: cfg.DefaultModule,
	}
}

func (h *handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	module := ModuleFromContext(ctx)
	if module == "" {
		module = h.defaultModule
	}
	if module != "" {
		r.AddAttrs(slog.String("module", string(module)))
	}

	if requestID := RequestIDFromContext(ctx); requestID != "" {
		r.AddAttrs(slog.String("request_id", requestID))
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
		r.AddAttrs(gcpTraceAttrs(ctx, h.projectID)...)
	}

	return h.inner.Handle(ctx, r)
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &handler{inner: h.inner.WithAttrs(attrs), projectID: h.projectID, defaultModule: h.defaultModule}
}

func (h *handler) WithGroup(name string) slog.Handler {
	return &handler{inner: h.inner.WithGroup(name), projectID: h.projectID, defaultModule: h.defaultModule}
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.LevelKey:
		return slog.String("severity", a.Value.String())
	case slog.MessageKey:
		return slog.String("message", a.Value.String())
	}
	return a
}

// ParseLevel maps LOG_LEVEL values to slog levels; unknown values mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
