package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	boardMeterName = "board.refresh"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type BoardMetrics struct {
	refreshCycles        metric.Int64Counter
	refreshCycleDuration metric.Float64Histogram
	refreshRecords       metric.Int64Counter
	mergeCollisions      metric.Int64Counter
	tierDistribution     metric.Int64Counter
}

func NewBoardMetrics() (*BoardMetrics, error) {
	meter := otel.Meter(boardMeterName)

	refreshCycles, err := meter.Int64Counter(
		"refresh_cycles_total",
		metric.WithDescription("Total number of refresh cycles by outcome"),
		metric.WithUnit("{cycle}"),
	)
	if err != nil {
		return nil, err
	}

	refreshCycleDuration, err := meter.Float64Histogram(
		"refresh_cycle_duration_seconds",
		metric.WithDescription("Refresh cycle duration from fetch to snapshot swap"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30,
		),
	)
	if err != nil {
		return nil, err
	}

	refreshRecords, err := meter.Int64Counter(
		"refresh_records_total",
		metric.WithDescription("Total number of classified records published"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, err
	}

	mergeCollisions, err := meter.Int64Counter(
		"merge_collisions_total",
		metric.WithDescription("Duplicate names resolved by last-write-wins during merge"),
		metric.WithUnit("{collision}"),
	)
	if err != nil {
		return nil, err
	}

	tierDistribution, err := meter.Int64Counter(
		"tier_distribution_total",
		metric.WithDescription("Distribution of classified records across tiers"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, err
	}

	return &BoardMetrics{
		refreshCycles:        refreshCycles,
		refreshCycleDuration: refreshCycleDuration,
		refreshRecords:       refreshRecords,
		mergeCollisions:      mergeCollisions,
		tierDistribution:     tierDistribution,
	}, nil
}

func (m *BoardMetrics) RecordCycle(ctx context.Context, view, outcome, stage string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("view", view),
		attribute.String("outcome", outcome),
		attribute.String("stage", stage),
	)
	m.refreshCycles.Add(ctx, 1, attrs)
	m.refreshCycleDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("view", view),
		attribute.String("outcome", outcome),
	))
}

func (m *BoardMetrics) RecordRecords(ctx context.Context, view string, count int) {
	m.refreshRecords.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("view", view),
	))
}

func (m *BoardMetrics) RecordMergeCollision(ctx context.Context, view, side string) {
	m.mergeCollisions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("view", view),
		attribute.String("side", side),
	))
}

func (m *BoardMetrics) RecordTier(ctx context.Context, view, tier string) {
	m.tierDistribution.Add(ctx, 1, metric.WithAttributes(
		attribute.String("view", view),
		attribute.String("tier", tier),
	))
}
