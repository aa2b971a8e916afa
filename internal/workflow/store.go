package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Store owns the canonical requisition collection. Implementations hand out
// snapshots; only the engine mutates entities, through Create and Update.
type Store interface {
	NextID(ctx context.Context) (string, error)
	Create(ctx context.Context, req Requisition) error
	Get(ctx context.Context, id string) (Requisition, error)
	Update(ctx context.Context, req Requisition) error
	List(ctx context.Context) ([]Requisition, error)
}

// InMemoryStore keeps requisitions in an in-process map.
// NOTE: swap for the Postgres store (internal/store/pg) for durability.
type InMemoryStore struct {
	mu    sync.RWMutex
	reqs  map[string]*Requisition
	order []string // creation order, newest appended last
	seq   int
	now   func() time.Time
}

// NewInMemoryStore creates an empty store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		reqs: make(map[string]*Requisition),
		now:  time.Now,
	}
}

// NextID issues the next sequential identifier in the original
// "REQ-<year>-NNN" shape. Uniqueness is the invariant, not the format.
func (s *InMemoryStore) NextID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return fmt.Sprintf("REQ-%d-%03d", s.now().UTC().Year(), s.seq), nil
}

func (s *InMemoryStore) Create(ctx context.Context, req Requisition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reqs[req.ID]; ok {
		return fmt.Errorf("requisition %s already exists", req.ID)
	}
	stored := req.Clone()
	s.reqs[req.ID] = &stored
	s.order = append(s.order, req.ID)
	return nil
}

func (s *InMemoryStore) Get(ctx context.Context, id string) (Requisition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	req, ok := s.reqs[id]
	if !ok {
		return Requisition{}, ErrNotFound
	}
	return req.Clone(), nil
}

func (s *InMemoryStore) Update(ctx context.Context, req Requisition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reqs[req.ID]; !ok {
		return ErrNotFound
	}
	stored := req.Clone()
	s.reqs[req.ID] = &stored
	return nil
}

// List returns snapshots of all requisitions, newest first.
func (s *InMemoryStore) List(ctx context.Context) ([]Requisition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Requisition, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		out = append(out, s.reqs[s.order[i]].Clone())
	}
	return out, nil
}
