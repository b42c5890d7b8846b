package domain

import "context"

//go:generate mockgen -source=snapshot_repository.go -destination=snapshot_repository_mock.go -package=domain

type SnapshotRepository interface {
	// SaveSnapshot returns ErrStaleSnapshot when a snapshot generated at or
	// after snapshot.GeneratedAt is already stored.
	SaveSnapshot(ctx context.Context, snapshot *Snapshot) error
	GetSnapshot(ctx context.Context, view View) (*Snapshot, error)
	CycleCount(ctx context.Context, view View) (int, error)
}
