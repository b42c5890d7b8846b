package waitrecorder

import (
	"context"

	"github.com/KasumiMercury/park-live-board/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.WaitTimeRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordWaitSamples(_ context.Context, _ []domain.WaitSample) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
