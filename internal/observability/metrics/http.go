package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const httpMeterName = "board.http"

type HTTPMetrics struct {
	requests        metric.Int64Counter
	requestDuration metric.Float64Histogram
	streamClients   metric.Int64UpDownCounter
}

func NewHTTPMetrics() (*HTTPMetrics, error) {
	meter := otel.Meter(httpMeterName)

	requests, err := meter.Int64Counter(
		"http_server_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"http_server_request_duration_seconds",
		metric.WithDescription("HTTP request duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5,
		),
	)
	if err != nil {
		return nil, err
	}

	streamClients, err := meter.Int64UpDownCounter(
		"board_stream_clients",
		metric.WithDescription("Connected snapshot stream clients"),
		metric.WithUnit("{client}"),
	)
	if err != nil {
		return nil, err
	}

	return &HTTPMetrics{
		requests:        requests,
		requestDuration: requestDuration,
		streamClients:   streamClients,
	}, nil
}

func (m *HTTPMetrics) RecordRequest(ctx context.Context, method, route string, status int, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", route),
		attribute.Int("http.status_code", status),
	)
	m.requests.Add(ctx, 1, attrs)
	m.requestDuration.Record(ctx, duration.Seconds(), attrs)
}

func (m *HTTPMetrics) StreamConnected(ctx context.Context, view string) {
	m.streamClients.Add(ctx, 1, metric.WithAttributes(attribute.String("view", view)))
}

func (m *HTTPMetrics) StreamDisconnected(ctx context.Context, view string) {
	m.streamClients.Add(ctx, -1, metric.WithAttributes(attribute.String("view", view)))
}
