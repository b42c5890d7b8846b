//go:build !gcloud

package waitrecorder

import (
	"context"
	"log/slog"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/park-live-board/internal/domain"
)

const measurement = "wait_time"

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.WaitTimeRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "wait time recording disabled")
		return NewNoopRecorder(), nil
	}

	if !cfg.influxReady() {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, wait time recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "wait time recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) RecordWaitSamples(ctx context.Context, samples []domain.WaitSample) error {
	if len(samples) == 0 {
		return nil
	}

	points := make([]*write.Point, 0, len(samples))
	for _, s := range samples {
		points = append(points, toPoint(s))
	}

	if err := r.writeAPI.WritePoint(ctx, points...); err != nil {
		slog.WarnContext(ctx, "failed to write wait samples to InfluxDB",
			slog.String("error", err.Error()),
			slog.Int("sample_count", len(samples)),
		)
	}

	return nil
}

func toPoint(s domain.WaitSample) *write.Point {
	fields := map[string]any{
		"operating": s.Status.IsOperating(),
	}
	if s.Standby != nil {
		fields["standby"] = *s.Standby
	}
	if s.SingleRider != nil {
		fields["single_rider"] = *s.SingleRider
	}

	return influxdb2.NewPoint(
		measurement,
		map[string]string{
			"cycle_id": s.CycleID,
			"view":     s.View.String(),
			"park_id":  s.ParkID,
			"land":     s.Land,
			"name":     s.Name,
			"status":   s.Status.String(),
			"tier":     s.Tier.String(),
		},
		fields,
		s.SampledAt,
	)
}

func (r *influxDBRecorder) Flush(ctx context.Context) error {
	return r.writeAPI.Flush(ctx)
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
