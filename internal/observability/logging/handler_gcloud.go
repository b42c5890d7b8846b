//go:build gcloud

package logging

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// gcpTraceAttrs adds the fields Cloud Logging uses to correlate entries
// with Cloud Trace.
func gcpTraceAttrs(ctx context.Context, projectID string) []slog.Attr {
	if projectID == "" {
		return nil
	}
	sc := trace.SpanContextFromContext(ctx)
	return []slog.Attr{
		slog.String("logging.googleapis.com/trace", fmt.Sprintf("projects/%s/traces/%s", projectID, sc.TraceID().String())),
		slog.String("logging.googleapis.com/spanId", sc.SpanID().String()),
		slog.Bool("logging.googleapis.com/trace_sampled", sc.IsSampled()),
	}
}
