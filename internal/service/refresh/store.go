package refresh

import (
	"sync"
	"sync/atomic"

	"github.com/KasumiMercury/park-live-board/internal/domain"
)

// Store holds the latest snapshot of every view. Readers never block on a
// refresh cycle and never observe a half-built snapshot.
type Store struct {
	snapshots map[domain.View]*atomic.Pointer[domain.Snapshot]

	mu          sync.Mutex
	nextID      int
	subscribers map[domain.View]map[int]chan *domain.Snapshot
}

func NewStore() *Store {
	snapshots := make(map[domain.View]*atomic.Pointer[domain.Snapshot], len(domain.AllViews()))
	for _, v := range domain.AllViews() {
		snapshots[v] = &atomic.Pointer[domain.Snapshot]{}
	}

	return &Store{
		snapshots:   snapshots,
		subscribers: make(map[domain.View]map[int]chan *domain.Snapshot),
	}
}

// Get returns the current snapshot of view, or false before the first
// successful cycle.
func (s *Store) Get(view domain.View) (*domain.Snapshot, bool) {
	p, ok := s.snapshots[view]
	if !ok {
		return nil, false
	}
	snap := p.Load()
	return snap, snap != nil
}

// Swap installs snap unless a snapshot from a later cycle is already in
// place. Overlapping cycles may finish out of order; only forward swaps
// are accepted.
func (s *Store) Swap(snap *domain.Snapshot) bool {
	if snap == nil {
		return false
	}
	p, ok := s.snapshots[snap.View]
	if !ok {
		return false
	}

	for {
		current := p.Load()
		if !snap.NewerThan(current) {
			return false
		}
		if p.CompareAndSwap(current, snap) {
			break
		}
	}

	s.notify(snap)
	return true
}

// Subscribe registers for swaps of view. The channel holds at most the
// latest snapshot; a slow reader skips intermediate ones. Call cancel to
// unsubscribe.
func (s *Store) Subscribe(view domain.View) (<-chan *domain.Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	ch := make(chan *domain.Snapshot, 1)
	if s.subscribers[view] == nil {
		s.subscribers[view] = make(map[int]chan *domain.Snapshot)
	}
	s.subscribers[view][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subscribers[view], id)
			close(ch)
		})
	}

	return ch, cancel
}

// notify sends the view's current snapshot rather than snap, so that two
// swaps finishing close together never deliver an older snapshot last.
func (s *Store) notify(snap *domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current := s.snapshots[snap.View].Load(); current != nil {
		snap = current
	}

	for _, ch := range s.subscribers[snap.View] {
		select {
		case ch <- snap:
		default:
			// drop the unread snapshot and replace it with the newer one
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
