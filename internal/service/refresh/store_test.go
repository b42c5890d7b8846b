package refresh

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/park-live-board/internal/domain"
)

func snapshotAt(view domain.View, at time.Time) *domain.Snapshot {
	return &domain.Snapshot{ID: uuid.New(), View: view, GeneratedAt: at}
}

func TestStore_Swap(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		existing *domain.Snapshot
		incoming *domain.Snapshot
		want     bool
	}{
		{
			name:     "first snapshot",
			incoming: snapshotAt(domain.ViewMap, base),
			want:     true,
		},
		{
			name:     "newer snapshot replaces",
			existing: snapshotAt(domain.ViewMap, base),
			incoming: snapshotAt(domain.ViewMap, base.Add(time.Minute)),
			want:     true,
		},
		{
			name:     "older snapshot rejected",
			existing: snapshotAt(domain.ViewMap, base.Add(time.Minute)),
			incoming: snapshotAt(domain.ViewMap, base),
			want:     false,
		},
		{
			name:     "same cycle start rejected",
			existing: snapshotAt(domain.ViewMap, base),
			incoming: snapshotAt(domain.ViewMap, base),
			want:     false,
		},
		{
			name:     "unknown view rejected",
			incoming: snapshotAt(domain.View("parking"), base),
			want:     false,
		},
		{
			name: "nil rejected",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			if tt.existing != nil {
				store.Swap(tt.existing)
			}

			if got := store.Swap(tt.incoming); got != tt.want {
				t.Errorf("Swap() = %v, want %v", got, tt.want)
			}

			if tt.incoming == nil || !tt.incoming.View.IsValid() {
				return
			}
			current, ok := store.Get(tt.incoming.View)
			if !ok {
				t.Fatal("expected a snapshot in the store")
			}
			want := tt.existing
			if tt.want {
				want = tt.incoming
			}
			if current.ID != want.ID {
				t.Errorf("Get() id = %v, want %v", current.ID, want.ID)
			}
		})
	}
}

func TestStore_GetBeforeFirstSwap(t *testing.T) {
	store := NewStore()

	for _, view := range domain.AllViews() {
		if snap, ok := store.Get(view); ok || snap != nil {
			t.Errorf("Get(%s) = %v, %v, want nil, false", view, snap, ok)
		}
	}
}

func TestStore_Subscribe(t *testing.T) {
	store := NewStore()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	ch, cancel := store.Subscribe(domain.ViewShows)

	store.Swap(snapshotAt(domain.ViewMap, base))
	select {
	case snap := <-ch:
		t.Fatalf("received snapshot of another view: %v", snap.View)
	default:
	}

	first := snapshotAt(domain.ViewShows, base)
	second := snapshotAt(domain.ViewShows, base.Add(time.Minute))
	store.Swap(first)
	store.Swap(second)

	select {
	case snap := <-ch:
		if snap.ID != second.ID {
			t.Errorf("received %v, want latest %v", snap.ID, second.ID)
		}
	default:
		t.Fatal("expected a snapshot on the channel")
	}

	cancel()
	cancel()

	if _, open := <-ch; open {
		t.Error("channel should be closed after cancel")
	}

	// swaps after cancel must not panic on the closed channel
	store.Swap(snapshotAt(domain.ViewShows, base.Add(2*time.Minute)))
}
