//go:build gcloud

package waitrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/option"

	"github.com/KasumiMercury/park-live-board/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt  time.Time          `bigquery:"recorded_at"`
	SampledAt   time.Time          `bigquery:"sampled_at"`
	CycleID     string             `bigquery:"cycle_id"`
	View        string             `bigquery:"view"`
	Name        string             `bigquery:"name"`
	ParkID      string             `bigquery:"park_id"`
	Land        string             `bigquery:"land"`
	Status      string             `bigquery:"status"`
	Tier        string             `bigquery:"tier"`
	Standby     bigquery.NullInt64 `bigquery:"standby"`
	SingleRider bigquery.NullInt64 `bigquery:"single_rider"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.WaitTimeRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "wait time recording disabled")
		return NewNoopRecorder(), nil
	}

	if !cfg.bigQueryReady() {
		slog.WarnContext(ctx, "BigQuery project ID not configured, wait time recording disabled")
		return NewNoopRecorder(), nil
	}

	var opts []option.ClientOption
	if cfg.BigQueryCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.BigQueryCredentialsFile))
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID, opts...)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, wait time recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	table := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable)
	inserter := table.Inserter()

	slog.InfoContext(ctx, "wait time recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) RecordWaitSamples(ctx context.Context, samples []domain.WaitSample) error {
	if len(samples) == 0 {
		return nil
	}

	now := time.Now()
	bqRecords := make([]*bigQueryRecord, 0, len(samples))
	for _, s := range samples {
		bqRecords = append(bqRecords, &bigQueryRecord{
			RecordedAt:  now,
			SampledAt:   s.SampledAt,
			CycleID:     s.CycleID,
			View:        s.View.String(),
			Name:        s.Name,
			ParkID:      s.ParkID,
			Land:        s.Land,
			Status:      s.Status.String(),
			Tier:        s.Tier.String(),
			Standby:     nullInt(s.Standby),
			SingleRider: nullInt(s.SingleRider),
		})
	}

	if err := r.inserter.Put(ctx, bqRecords); err != nil {
		slog.WarnContext(ctx, "failed to insert wait samples to BigQuery",
			slog.String("error", err.Error()),
			slog.Int("sample_count", len(samples)),
		)
	}

	return nil
}

func nullInt(v *int) bigquery.NullInt64 {
	if v == nil {
		return bigquery.NullInt64{}
	}
	return bigquery.NullInt64{Int64: int64(*v), Valid: true}
}

func (r *bigQueryRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
