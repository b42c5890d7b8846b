package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/park-live-board/internal/domain"
	"github.com/KasumiMercury/park-live-board/internal/observability/tracing"
)

const (
	snapshotKeyPrefix   = "board:snapshot:"
	cycleCountKeyPrefix = "board:cycles:"

	snapshotTTL   = 30 * time.Minute
	cycleCountTTL = 24 * time.Hour

	// concurrent writers to the same key retry this many times
	maxSaveAttempts = 3
)

type snapshotRecord struct {
	ID          string                    `json:"id"`
	View        string                    `json:"view"`
	GeneratedAt time.Time                 `json:"generated_at"`
	Records     []domain.ClassifiedRecord `json:"records"`
}

type snapshotRepository struct {
	client *redis.Client
}

func NewSnapshotRepository(client *redis.Client) domain.SnapshotRepository {
	return &snapshotRepository{
		client: client,
	}
}

func SnapshotKey(view domain.View) string {
	return snapshotKeyPrefix + view.String()
}

// SaveSnapshot stores the snapshot as JSON and bumps the per-view cycle
// counter in one transaction. The write is skipped with
// domain.ErrStaleSnapshot when the stored snapshot is not older, so cycles
// persisting out of order never roll the key back.
func (r *snapshotRepository) SaveSnapshot(ctx context.Context, snapshot *domain.Snapshot) error {
	if snapshot == nil || !snapshot.View.IsValid() {
		return ErrInvalidSnapshotData
	}

	key := SnapshotKey(snapshot.View)
	ctx, span := tracing.StartRedisOperationSpan(ctx, "set", key)
	defer span.End()

	record := snapshotRecord{
		ID:          snapshot.ID.String(),
		View:        snapshot.View.String(),
		GeneratedAt: snapshot.GeneratedAt,
		Records:     snapshot.Records,
	}

	data, err := json.Marshal(record)
	if err != nil {
		tracing.RecordError(span, "marshal", err)
		return fmt.Errorf("%w: %v", ErrInvalidSnapshotData, err)
	}

	counterKey := cycleCountKeyPrefix + snapshot.View.String()

	save := func(tx *redis.Tx) error {
		stored, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return err
		default:
			var current snapshotRecord
			// an undecodable value is overwritten
			if json.Unmarshal(stored, &current) == nil && !snapshot.GeneratedAt.After(current.GeneratedAt) {
				return domain.ErrStaleSnapshot
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, snapshotTTL)
			pipe.Incr(ctx, counterKey)
			pipe.Expire(ctx, counterKey, cycleCountTTL)
			return nil
		})
		return err
	}

	for range maxSaveAttempts {
		err = r.client.Watch(ctx, save, key)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrStaleSnapshot):
		return err
	default:
		tracing.RecordError(span, "exec", err)
		return fmt.Errorf("%w: %v", ErrRedisConnection, err)
	}
}

func (r *snapshotRepository) GetSnapshot(ctx context.Context, view domain.View) (*domain.Snapshot, error) {
	key := SnapshotKey(view)
	ctx, span := tracing.StartRedisOperationSpan(ctx, "get", key)
	defer span.End()

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSnapshotNotFound
		}
		tracing.RecordError(span, "get", err)
		return nil, fmt.Errorf("%w: %v", ErrRedisConnection, err)
	}

	var record snapshotRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidSnapshotData
	}

	id, err := uuid.Parse(record.ID)
	if err != nil {
		return nil, ErrInvalidSnapshotData
	}

	return &domain.Snapshot{
		ID:          id,
		View:        domain.View(record.View),
		GeneratedAt: record.GeneratedAt,
		Records:     record.Records,
	}, nil
}

// CycleCount returns how many snapshots of view were saved in the last day.
func (r *snapshotRepository) CycleCount(ctx context.Context, view domain.View) (int, error) {
	val, err := r.client.Get(ctx, cycleCountKeyPrefix+view.String()).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %v", ErrRedisConnection, err)
	}
	return val, nil
}
