package feedstub

import "sync"

type failure struct {
	remaining int
	status    int
}

// Storage holds the seeded feed of each destination.
type Storage struct {
	mu       sync.RWMutex
	entities map[string][]SeedEntity // destination -> entities
	failures map[string]*failure     // destination -> pending failures
}

func NewStorage() *Storage {
	return &Storage{
		entities: make(map[string][]SeedEntity),
		failures: make(map[string]*failure),
	}
}

func (s *Storage) Reset(destination string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entities, destination)
	delete(s.failures, destination)
}

func (s *Storage) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities = make(map[string][]SeedEntity)
	s.failures = make(map[string]*failure)
}

// Seed replaces the destination's entities.
func (s *Storage) Seed(destination string, entities []SeedEntity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities[destination] = append([]SeedEntity(nil), entities...)
}

func (s *Storage) Entities(destination string) ([]SeedEntity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entities, ok := s.entities[destination]
	if !ok {
		return nil, false
	}
	return append([]SeedEntity(nil), entities...), true
}

func (s *Storage) FailNext(destination string, count, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if count <= 0 {
		delete(s.failures, destination)
		return
	}
	s.failures[destination] = &failure{remaining: count, status: status}
}

// takeFailure consumes one pending failure and returns its status code.
func (s *Storage) takeFailure(destination string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.failures[destination]
	if !ok {
		return 0, false
	}
	f.remaining--
	if f.remaining <= 0 {
		delete(s.failures, destination)
	}
	return f.status, true
}
