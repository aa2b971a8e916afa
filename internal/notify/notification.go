// Package notify stores and dispatches in-app notifications for workflow
// transitions.
package notify

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/peusirf-a11y/requisicao-digital/internal/directory"
)

var ErrNotFound = errors.New("notification not found")

// Notification is one inbox entry. Role-targeted notifications carry
// TargetRole and an empty TargetUserID; direct ones the reverse.
type Notification struct {
	ID            string         `json:"id"`
	Text          string         `json:"text"`
	CreatedAt     time.Time      `json:"date"`
	Read          bool           `json:"read"`
	TargetUserID  string         `json:"target_user_id,omitempty"`
	TargetRole    directory.Role `json:"role,omitempty"`
	RequisitionID string         `json:"requisition_id,omitempty"`
}

// Store persists notifications.
type Store interface {
	Add(ctx context.Context, n Notification) error
	// ListFor returns the inbox of one user: direct rows plus rows
	// targeting the user's role, newest first.
	ListFor(ctx context.Context, userID string, role directory.Role) ([]Notification, error)
	// MarkRead flags every row visible to the user as read.
	MarkRead(ctx context.Context, userID string, role directory.Role) error
	// Delete removes one row, but only if it is visible to the user. A row
	// outside the user's view reports ErrNotFound.
	Delete(ctx context.Context, id, userID string, role directory.Role) error
}

// InMemoryStore is the default Store. Safe for concurrent use.
type InMemoryStore struct {
	mu   sync.RWMutex
	rows map[string]Notification
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{rows: make(map[string]Notification)}
}

func (s *InMemoryStore) Add(_ context.Context, n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[n.ID] = n
	return nil
}

func (s *InMemoryStore) ListFor(_ context.Context, userID string, role directory.Role) ([]Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Notification, 0)
	for _, n := range s.rows {
		if visibleTo(n, userID, role) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *InMemoryStore) MarkRead(_ context.Context, userID string, role directory.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, n := range s.rows {
		if visibleTo(n, userID, role) && !n.Read {
			n.Read = true
			s.rows[id] = n
		}
	}
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, id, userID string, role directory.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.rows[id]
	if !ok || !visibleTo(n, userID, role) {
		return ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func visibleTo(n Notification, userID string, role directory.Role) bool {
	if n.TargetUserID != "" {
		return n.TargetUserID == userID
	}
	return n.TargetRole == role
}
