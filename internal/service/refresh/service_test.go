package refresh

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/park-live-board/internal/domain"
	"github.com/KasumiMercury/park-live-board/internal/infra/catalog"
	"github.com/KasumiMercury/park-live-board/internal/infra/themeparks"
	"github.com/KasumiMercury/park-live-board/internal/service/merge"
	"github.com/KasumiMercury/park-live-board/internal/service/status"
	"github.com/KasumiMercury/park-live-board/internal/service/threshold"
	"github.com/KasumiMercury/park-live-board/internal/service/zone"
)

func intPtr(v int) *int {
	return &v
}

// steppingClock returns a clock that advances by one minute on each call.
func steppingClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		now := current
		current = current.Add(time.Minute)
		return now
	}
}

func createTestService(
	feed themeparks.LiveFeedRepository,
	source catalog.Source,
	repo domain.SnapshotRepository,
	recorder domain.WaitTimeRecorder,
) *Service {
	svc := NewService(
		feed,
		source,
		merge.NewMerger(),
		status.NewClassifier(threshold.Default(), status.DefaultOptions()),
		zone.NewClassifier(),
		NewStore(),
		repo,
		recorder,
		nil,
	)
	svc.now = steppingClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	return svc
}

func liveEntities() []domain.LiveEntity {
	return []domain.LiveEntity{
		{
			ID:         "btm",
			Name:       "Big Thunder Mountain",
			EntityType: domain.EntityTypeAttraction,
			Status:     domain.StatusOperating,
			ParkID:     zone.DisneylandParkID,
			ExternalID: "P1RA00",
			Queue: domain.Queue{
				Standby:     &domain.WaitQueue{WaitTime: intPtr(35)},
				SingleRider: &domain.WaitQueue{WaitTime: intPtr(10)},
			},
		},
		{
			ID:         "rc",
			Name:       "Ratatouille: The Adventure",
			EntityType: domain.EntityTypeAttraction,
			Status:     domain.StatusClosed,
			ParkID:     zone.StudiosParkID,
			ExternalID: "P2ZA02",
		},
		{
			ID:         "elsewhere",
			Name:       "Other Resort Coaster",
			EntityType: domain.EntityTypeAttraction,
			Status:     domain.StatusOperating,
			ParkID:     "other-park",
		},
		{
			ID:         "parade",
			Name:       "Disney Stars on Parade",
			EntityType: domain.EntityTypeShow,
			Status:     domain.StatusOperating,
			ParkID:     zone.DisneylandParkID,
			Schedule: []domain.ShowTime{
				{Start: time.Date(2025, 6, 1, 17, 30, 0, 0, time.UTC)},
			},
		},
		{
			ID:         "seating",
			Name:       "Reserved viewing area: Disney Stars on Parade",
			EntityType: domain.EntityTypeShow,
			Status:     domain.StatusOperating,
			ParkID:     zone.DisneylandParkID,
		},
	}
}

func TestService_RunCycle_Attractions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeed := themeparks.NewMockLiveFeedRepository(ctrl)
	mockRepo := domain.NewMockSnapshotRepository(ctrl)
	mockRecorder := domain.NewMockWaitTimeRecorder(ctrl)

	mockFeed.EXPECT().GetLiveData(gomock.Any()).Return(liveEntities(), nil)

	var saved *domain.Snapshot
	mockRepo.EXPECT().
		SaveSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snap *domain.Snapshot) error {
			saved = snap
			return nil
		})

	var samples []domain.WaitSample
	mockRecorder.EXPECT().
		RecordWaitSamples(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s []domain.WaitSample) error {
			samples = s
			return nil
		})

	svc := createTestService(mockFeed, nil, mockRepo, mockRecorder)

	snap, err := svc.RunCycle(context.Background(), domain.ViewAttractions)
	if err != nil {
		t.Fatalf("RunCycle() error = %v", err)
	}

	if len(snap.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(snap.Records))
	}
	if saved != snap {
		t.Error("persisted snapshot differs from returned one")
	}

	current, ok := svc.Store().Get(domain.ViewAttractions)
	if !ok || current.ID != snap.ID {
		t.Errorf("store holds %v, want %v", current, snap.ID)
	}

	btm := snap.Records[0]
	if btm.Classification.Tier != domain.TierGreen {
		t.Errorf("Big Thunder Mountain tier = %v, want %v", btm.Classification.Tier, domain.TierGreen)
	}
	if btm.Location.Park != zone.DisneylandParkName {
		t.Errorf("Big Thunder Mountain park = %q, want %q", btm.Location.Park, zone.DisneylandParkName)
	}
	if btm.StandbyWait == nil || *btm.StandbyWait != 35 {
		t.Errorf("Big Thunder Mountain standby = %v, want 35", btm.StandbyWait)
	}

	if len(samples) != 2 {
		t.Fatalf("got %d wait samples, want 2", len(samples))
	}
	for _, s := range samples {
		if s.CycleID != snap.ID.String() {
			t.Errorf("sample cycle id = %q, want %q", s.CycleID, snap.ID.String())
		}
	}
	if samples[0].SingleRider == nil || *samples[0].SingleRider != 10 {
		t.Errorf("single rider sample = %v, want 10", samples[0].SingleRider)
	}
}

func TestService_RunCycle_ShowsDropsReservedViewingAreas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeed := themeparks.NewMockLiveFeedRepository(ctrl)
	mockFeed.EXPECT().GetLiveData(gomock.Any()).Return(liveEntities(), nil)

	svc := createTestService(mockFeed, nil, nil, nil)

	snap, err := svc.RunCycle(context.Background(), domain.ViewShows)
	if err != nil {
		t.Fatalf("RunCycle() error = %v", err)
	}

	if len(snap.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(snap.Records))
	}
	rec := snap.Records[0]
	if rec.Name != "Disney Stars on Parade" {
		t.Errorf("record name = %q, want %q", rec.Name, "Disney Stars on Parade")
	}
	if rec.Classification.NextShow == nil || !rec.Classification.NextShow.Found {
		t.Errorf("expected an upcoming show, got %v", rec.Classification.NextShow)
	}
}

func TestService_RunCycle_FetchFailureKeepsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeed := themeparks.NewMockLiveFeedRepository(ctrl)
	mockRepo := domain.NewMockSnapshotRepository(ctrl)

	fetchErr := errors.New("connection refused")
	gomock.InOrder(
		mockFeed.EXPECT().GetLiveData(gomock.Any()).Return(liveEntities(), nil),
		mockFeed.EXPECT().GetLiveData(gomock.Any()).Return(nil, fetchErr),
	)
	mockRepo.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	svc := createTestService(mockFeed, nil, mockRepo, nil)
	ctx := context.Background()

	first, err := svc.RunCycle(ctx, domain.ViewShows)
	if err != nil {
		t.Fatalf("first RunCycle() error = %v", err)
	}

	snap, err := svc.RunCycle(ctx, domain.ViewShows)
	if !errors.Is(err, fetchErr) {
		t.Errorf("RunCycle() error = %v, want %v", err, fetchErr)
	}
	if snap != nil {
		t.Errorf("RunCycle() snapshot = %v, want nil", snap)
	}

	current, ok := svc.Store().Get(domain.ViewShows)
	if !ok || current.ID != first.ID {
		t.Error("failed cycle must leave the previous snapshot in place")
	}
}

func TestService_RunCycle_MapRetriesCatalogUntilLoaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeed := themeparks.NewMockLiveFeedRepository(ctrl)
	mockSource := catalog.NewMockSource(ctrl)

	points := []domain.StaticPoint{
		{Name: "Big Thunder Mountain", Type: domain.EntityTypeAttraction, Coordinates: &domain.Coordinates{Latitude: 48.87, Longitude: 2.77}},
		{Name: "Closed Kiosk", Type: domain.EntityTypeShop},
	}

	mockFeed.EXPECT().GetLiveData(gomock.Any()).Return(liveEntities(), nil).Times(3)
	gomock.InOrder(
		mockSource.EXPECT().Load(gomock.Any()).Return(nil, errors.New("catalog unavailable")),
		mockSource.EXPECT().Load(gomock.Any()).Return(points, nil),
	)

	svc := createTestService(mockFeed, mockSource, nil, nil)
	ctx := context.Background()

	if _, err := svc.RunCycle(ctx, domain.ViewMap); err == nil {
		t.Fatal("expected catalog failure to abort the cycle")
	}
	if _, ok := svc.Store().Get(domain.ViewMap); ok {
		t.Fatal("no snapshot expected after a failed cycle")
	}

	for i := 0; i < 2; i++ {
		snap, err := svc.RunCycle(ctx, domain.ViewMap)
		if err != nil {
			t.Fatalf("RunCycle() error = %v", err)
		}
		if len(snap.Records) != len(points) {
			t.Fatalf("got %d records, want %d", len(snap.Records), len(points))
		}
		if !snap.Records[0].Matched || snap.Records[1].Matched {
			t.Errorf("unexpected match flags: %v, %v", snap.Records[0].Matched, snap.Records[1].Matched)
		}
		if snap.Records[1].Classification.Tier != domain.TierUnknown {
			t.Errorf("unmatched tier = %v, want %v", snap.Records[1].Classification.Tier, domain.TierUnknown)
		}
	}
}

func TestService_RunCycle_PersistFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeed := themeparks.NewMockLiveFeedRepository(ctrl)
	mockRepo := domain.NewMockSnapshotRepository(ctrl)
	mockRecorder := domain.NewMockWaitTimeRecorder(ctrl)

	mockFeed.EXPECT().GetLiveData(gomock.Any()).Return(liveEntities(), nil)
	mockRepo.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	mockRecorder.EXPECT().RecordWaitSamples(gomock.Any(), gomock.Any()).Return(errors.New("influx down"))

	svc := createTestService(mockFeed, nil, mockRepo, mockRecorder)

	if _, err := svc.RunCycle(context.Background(), domain.ViewAttractions); err != nil {
		t.Fatalf("RunCycle() error = %v, want nil", err)
	}
	if _, ok := svc.Store().Get(domain.ViewAttractions); !ok {
		t.Error("snapshot should be served even when persistence fails")
	}
}

func TestService_RunCycle_NewerPersistedSnapshotKept(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeed := themeparks.NewMockLiveFeedRepository(ctrl)
	mockRepo := domain.NewMockSnapshotRepository(ctrl)
	mockRecorder := domain.NewMockWaitTimeRecorder(ctrl)

	mockFeed.EXPECT().GetLiveData(gomock.Any()).Return(liveEntities(), nil)
	mockRepo.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).Return(domain.ErrStaleSnapshot)
	mockRecorder.EXPECT().RecordWaitSamples(gomock.Any(), gomock.Any()).Return(nil)

	svc := createTestService(mockFeed, nil, mockRepo, mockRecorder)

	snap, err := svc.RunCycle(context.Background(), domain.ViewAttractions)
	if err != nil {
		t.Fatalf("RunCycle() error = %v, want nil", err)
	}
	if current, ok := svc.Store().Get(domain.ViewAttractions); !ok || current.ID != snap.ID {
		t.Error("snapshot should be served when a newer one is already persisted")
	}
}

func TestService_RunCycle_StaleSnapshotNotPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeed := themeparks.NewMockLiveFeedRepository(ctrl)
	mockRepo := domain.NewMockSnapshotRepository(ctrl)

	mockFeed.EXPECT().GetLiveData(gomock.Any()).Return(liveEntities(), nil)
	mockRepo.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).Times(0)

	svc := createTestService(mockFeed, nil, mockRepo, nil)

	later := snapshotAt(domain.ViewShows, time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC))
	svc.Store().Swap(later)

	if _, err := svc.RunCycle(context.Background(), domain.ViewShows); err != nil {
		t.Fatalf("RunCycle() error = %v", err)
	}

	current, _ := svc.Store().Get(domain.ViewShows)
	if current.ID != later.ID {
		t.Error("older cycle must not replace a newer snapshot")
	}
}

func TestService_RunCycle_UnknownView(t *testing.T) {
	svc := createTestService(nil, nil, nil, nil)

	if _, err := svc.RunCycle(context.Background(), domain.View("parking")); !errors.Is(err, domain.ErrUnknownView) {
		t.Errorf("RunCycle() error = %v, want %v", err, domain.ErrUnknownView)
	}
}

func TestService_Warm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockSnapshotRepository(ctrl)

	persisted := snapshotAt(domain.ViewMap, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	mockRepo.EXPECT().GetSnapshot(gomock.Any(), domain.ViewMap).Return(persisted, nil)
	mockRepo.EXPECT().GetSnapshot(gomock.Any(), domain.ViewAttractions).Return(nil, domain.ErrSnapshotNotFound)
	mockRepo.EXPECT().GetSnapshot(gomock.Any(), domain.ViewShows).Return(nil, errors.New("redis down"))

	svc := createTestService(nil, nil, mockRepo, nil)
	svc.Warm(context.Background())

	tests := []struct {
		view   domain.View
		wantOK bool
	}{
		{view: domain.ViewMap, wantOK: true},
		{view: domain.ViewAttractions, wantOK: false},
		{view: domain.ViewShows, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.view.String(), func(t *testing.T) {
			if _, ok := svc.Store().Get(tt.view); ok != tt.wantOK {
				t.Errorf("Get(%s) ok = %v, want %v", tt.view, ok, tt.wantOK)
			}
		})
	}
}

func TestService_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeed := themeparks.NewMockLiveFeedRepository(ctrl)
	mockFeed.EXPECT().GetLiveData(gomock.Any()).Return(liveEntities(), nil).MinTimes(1)

	svc := createTestService(mockFeed, nil, nil, nil)
	svc.now = time.Now

	ctx, cancel := context.WithCancel(context.Background())
	ch, unsubscribe := svc.Store().Subscribe(domain.ViewShows)
	defer unsubscribe()

	done := make(chan error, 1)
	go func() {
		done <- svc.Run(ctx, domain.ViewShows, time.Hour)
	}()

	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the first cycle")
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestService_Run_InvalidArguments(t *testing.T) {
	svc := createTestService(nil, nil, nil, nil)

	if err := svc.Run(context.Background(), domain.View("parking"), time.Minute); !errors.Is(err, domain.ErrUnknownView) {
		t.Errorf("Run() error = %v, want %v", err, domain.ErrUnknownView)
	}
	if err := svc.Run(context.Background(), domain.ViewMap, 0); err == nil {
		t.Error("Run() with zero interval should fail")
	}
}
