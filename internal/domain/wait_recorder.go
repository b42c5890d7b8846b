package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=wait_recorder.go -destination=wait_recorder_mock.go -package=domain

type WaitSample struct {
	CycleID     string
	View        View
	Name        string
	ParkID      string
	Land        string
	Status      Status
	Tier        Tier
	Standby     *int
	SingleRider *int
	SampledAt   time.Time
}

type WaitTimeRecorder interface {
	RecordWaitSamples(ctx context.Context, samples []WaitSample) error
	Flush(ctx context.Context) error
	Close() error
}
