package refresh

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/KasumiMercury/park-live-board/internal/domain"
	"github.com/KasumiMercury/park-live-board/internal/infra/catalog"
	"github.com/KasumiMercury/park-live-board/internal/infra/themeparks"
	"github.com/KasumiMercury/park-live-board/internal/observability/metrics"
	"github.com/KasumiMercury/park-live-board/internal/observability/tracing"
	"github.com/KasumiMercury/park-live-board/internal/service/merge"
	"github.com/KasumiMercury/park-live-board/internal/service/status"
	"github.com/KasumiMercury/park-live-board/internal/service/zone"
)

const (
	StageFetch   = "fetch"
	StageCatalog = "catalog"
)

// boardParks are the parks whose entities appear on the list views.
var boardParks = map[string]struct{}{
	zone.DisneylandParkID: {},
	zone.StudiosParkID:    {},
}

type Service struct {
	feed         themeparks.LiveFeedRepository
	catalog      catalog.Source
	merger       *merge.Merger
	classifier   *status.Classifier
	zones        *zone.Classifier
	store        *Store
	snapshotRepo domain.SnapshotRepository
	recorder     domain.WaitTimeRecorder
	boardMetrics *metrics.BoardMetrics
	now          func() time.Time

	catalogMu     sync.Mutex
	catalogPoints []domain.StaticPoint
	catalogLoaded bool
}

func NewService(
	feed themeparks.LiveFeedRepository,
	catalogSource catalog.Source,
	merger *merge.Merger,
	classifier *status.Classifier,
	zones *zone.Classifier,
	store *Store,
	snapshotRepo domain.SnapshotRepository,
	recorder domain.WaitTimeRecorder,
	boardMetrics *metrics.BoardMetrics,
) *Service {
	return &Service{
		feed:         feed,
		catalog:      catalogSource,
		merger:       merger,
		classifier:   classifier,
		zones:        zones,
		store:        store,
		snapshotRepo: snapshotRepo,
		recorder:     recorder,
		boardMetrics: boardMetrics,
		now:          time.Now,
	}
}

func (s *Service) Store() *Store {
	return s.store
}

// Run refreshes view once immediately and then on every tick. Each cycle
// runs in its own goroutine; a slow cycle never delays or cancels the next
// one. Run returns after ctx is done and in-flight cycles have finished.
func (s *Service) Run(ctx context.Context, view domain.View, interval time.Duration) error {
	if !view.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrUnknownView, view)
	}
	if interval <= 0 {
		return fmt.Errorf("invalid refresh interval for %s: %s", view, interval)
	}

	slog.InfoContext(ctx, "refresh loop started",
		slog.String("view", view.String()),
		slog.Duration("interval", interval),
	)

	var wg sync.WaitGroup
	start := func() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// errors are logged and counted inside RunCycle
			_, _ = s.RunCycle(ctx, view)
		}()
	}

	start()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			slog.InfoContext(ctx, "refresh loop stopped",
				slog.String("view", view.String()),
			)
			return nil
		case <-ticker.C:
			start()
		}
	}
}

// RunCycle fetches, merges and classifies one view and swaps the result
// into the store. On failure the previous snapshot stays in place.
func (s *Service) RunCycle(ctx context.Context, view domain.View) (*domain.Snapshot, error) {
	if !view.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownView, view)
	}

	startedAt := s.now()
	ctx, span := tracing.StartRefreshCycleSpan(ctx, view.String(), startedAt)
	defer span.End()

	entities, err := s.feed.GetLiveData(ctx)
	if err != nil {
		s.cycleFailed(ctx, span, view, StageFetch, startedAt, err)
		return nil, fmt.Errorf("failed to fetch live data: %w", err)
	}

	var (
		merged     []domain.MergedRecord
		collisions []merge.Collision
	)
	switch view {
	case domain.ViewMap:
		points, err := s.loadCatalog(ctx)
		if err != nil {
			s.cycleFailed(ctx, span, view, StageCatalog, startedAt, err)
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		merged, collisions = s.merger.Merge(points, entities)
	case domain.ViewAttractions:
		merged = s.merger.FromLive(filterEntities(entities, domain.EntityTypeAttraction))
	case domain.ViewShows:
		merged = s.merger.FromLive(filterEntities(entities, domain.EntityTypeShow))
	}

	for _, c := range collisions {
		slog.WarnContext(ctx, "duplicate entity name, last one wins",
			slog.String("view", view.String()),
			slog.String("side", string(c.Side)),
			slog.String("name", c.Key),
		)
		if s.boardMetrics != nil {
			s.boardMetrics.RecordMergeCollision(ctx, view.String(), string(c.Side))
		}
	}

	records := s.classify(ctx, view, merged, startedAt)

	snap := &domain.Snapshot{
		ID:          uuid.New(),
		View:        view,
		GeneratedAt: startedAt,
		Records:     records,
	}

	if !s.store.Swap(snap) {
		slog.DebugContext(ctx, "discarding snapshot older than current",
			slog.String("view", view.String()),
			slog.String("snapshot_id", snap.ID.String()),
		)
	} else {
		s.persist(ctx, snap)
		s.recordWaits(ctx, snap)
	}

	duration := s.now().Sub(startedAt)
	if s.boardMetrics != nil {
		s.boardMetrics.RecordCycle(ctx, view.String(), metrics.OutcomeSuccess, "", duration)
		s.boardMetrics.RecordRecords(ctx, view.String(), len(records))
	}
	tracing.RecordRefreshCycleResult(span, "", len(records), len(collisions), nil)

	slog.InfoContext(ctx, "refresh cycle completed",
		slog.String("view", view.String()),
		slog.String("snapshot_id", snap.ID.String()),
		slog.Int("record_count", len(records)),
		slog.Int("collision_count", len(collisions)),
		slog.Duration("duration", duration),
	)

	return snap, nil
}

func (s *Service) classify(ctx context.Context, view domain.View, merged []domain.MergedRecord, now time.Time) []domain.ClassifiedRecord {
	records := make([]domain.ClassifiedRecord, 0, len(merged))
	for _, rec := range merged {
		result := s.classifier.Classify(rec, now)
		records = append(records, domain.ClassifiedRecord{
			MergedRecord:    rec,
			Classification:  result,
			Location:        s.zones.Locate(rec),
			StandbyWait:     rec.Queue.StandbyWait(),
			SingleRiderWait: rec.Queue.SingleRiderWait(),
		})
		if s.boardMetrics != nil {
			s.boardMetrics.RecordTier(ctx, view.String(), result.Tier.String())
		}
	}
	return records
}

// Warm fills the store with the snapshots persisted by a previous run so
// the board can serve before the first cycle finishes.
func (s *Service) Warm(ctx context.Context) {
	if s.snapshotRepo == nil {
		return
	}

	for _, view := range domain.AllViews() {
		snap, err := s.snapshotRepo.GetSnapshot(ctx, view)
		if err != nil {
			if errors.Is(err, domain.ErrSnapshotNotFound) {
				slog.DebugContext(ctx, "no persisted snapshot",
					slog.String("view", view.String()),
				)
				continue
			}
			slog.WarnContext(ctx, "failed to load persisted snapshot",
				slog.String("view", view.String()),
				slog.String("error", err.Error()),
			)
			continue
		}

		if s.store.Swap(snap) {
			slog.InfoContext(ctx, "restored persisted snapshot",
				slog.String("view", view.String()),
				slog.String("snapshot_id", snap.ID.String()),
				slog.Time("generated_at", snap.GeneratedAt),
			)
		}
	}
}

// loadCatalog returns the static catalog, loading it on first use. A
// failed load is retried on the next cycle; a successful one is kept for
// the life of the process.
func (s *Service) loadCatalog(ctx context.Context) ([]domain.StaticPoint, error) {
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()

	if s.catalogLoaded {
		return s.catalogPoints, nil
	}
	if s.catalog == nil {
		return nil, domain.ErrCatalogNotLoaded
	}

	points, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}

	s.catalogPoints = points
	s.catalogLoaded = true

	slog.InfoContext(ctx, "static catalog loaded",
		slog.Int("point_count", len(points)),
	)

	return points, nil
}

func (s *Service) persist(ctx context.Context, snap *domain.Snapshot) {
	if s.snapshotRepo == nil {
		return
	}
	err := s.snapshotRepo.SaveSnapshot(ctx, snap)
	if errors.Is(err, domain.ErrStaleSnapshot) {
		slog.DebugContext(ctx, "persisted snapshot is newer, skipping",
			slog.String("view", snap.View.String()),
			slog.String("snapshot_id", snap.ID.String()),
		)
		return
	}
	if err != nil {
		slog.WarnContext(ctx, "failed to persist snapshot",
			slog.String("view", snap.View.String()),
			slog.String("snapshot_id", snap.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// recordWaits writes the wait history of the attractions view. Other views
// carry the same attractions and would duplicate the samples.
func (s *Service) recordWaits(ctx context.Context, snap *domain.Snapshot) {
	if s.recorder == nil || snap.View != domain.ViewAttractions {
		return
	}

	samples := make([]domain.WaitSample, 0, len(snap.Records))
	for _, r := range snap.Records {
		if r.EntityType != domain.EntityTypeAttraction {
			continue
		}
		samples = append(samples, domain.WaitSample{
			CycleID:     snap.ID.String(),
			View:        snap.View,
			Name:        r.Name,
			ParkID:      r.ParkID,
			Land:        r.Location.Land,
			Status:      r.Status,
			Tier:        r.Classification.Tier,
			Standby:     r.StandbyWait,
			SingleRider: r.SingleRiderWait,
			SampledAt:   snap.GeneratedAt,
		})
	}

	if err := s.recorder.RecordWaitSamples(ctx, samples); err != nil {
		slog.WarnContext(ctx, "failed to record wait samples",
			slog.String("snapshot_id", snap.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) cycleFailed(ctx context.Context, span trace.Span, view domain.View, stage string, startedAt time.Time, err error) {
	slog.ErrorContext(ctx, "refresh cycle failed",
		slog.String("view", view.String()),
		slog.String("stage", stage),
		slog.String("error", err.Error()),
	)
	if s.boardMetrics != nil {
		s.boardMetrics.RecordCycle(ctx, view.String(), metrics.OutcomeFailure, stage, s.now().Sub(startedAt))
	}
	tracing.RecordRefreshCycleResult(span, stage, 0, 0, err)
}

// filterEntities keeps the entities of kind that belong to a board park.
// Reserved viewing areas are reported as shows and are dropped too.
func filterEntities(entities []domain.LiveEntity, kind domain.EntityType) []domain.LiveEntity {
	out := make([]domain.LiveEntity, 0, len(entities))
	for _, e := range entities {
		if e.EntityType != kind {
			continue
		}
		if _, ok := boardParks[e.ParkID]; !ok {
			continue
		}
		if kind == domain.EntityTypeShow && zone.IsExcludedShow(e.Name) {
			continue
		}
		out = append(out, e)
	}
	return out
}
