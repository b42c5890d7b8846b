//go:build !gcloud

package logging

import (
	"context"
	"log/slog"
)

// gcpTraceAttrs returns empty outside GCP; trace_id and span_id are enough
// for a local collector.
func gcpTraceAttrs(_ context.Context, _ string) []slog.Attr {
	return nil
}
