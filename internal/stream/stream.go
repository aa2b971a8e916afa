package stream

import (
	"context"
	"sync"
	"time"

	"github.com/peusirf-a11y/requisicao-digital/internal/directory"
	"github.com/peusirf-a11y/requisicao-digital/internal/notify"
)

// Event is one live update pushed to SSE subscribers. Role-targeted
// notifications carry Role; direct ones carry TargetUserID.
type Event struct {
	ID            string         `json:"id"`
	Text          string         `json:"text"`
	Timestamp     time.Time      `json:"timestamp"`
	TargetUserID  string         `json:"target_user_id,omitempty"`
	Role          directory.Role `json:"role,omitempty"`
	RequisitionID string         `json:"requisition_id,omitempty"`
}

// Stream fan-outs notification events to all active subscribers (SSE clients).
type Stream struct {
	mu   sync.RWMutex
	subs map[int]chan Event
	next int
}

// New initialises an empty stream.
func New() *Stream {
	return &Stream{subs: make(map[int]chan Event)}
}

// Subscribe registers a subscriber and returns a channel which will receive
// events. The channel is closed when the provided context ends.
func (s *Stream) Subscribe(ctx context.Context) <-chan Event {
	ch := make(chan Event, 16)

	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = ch
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

// Publish fan-outs the notification to all subscribers. Implements
// notify.Publisher.
func (s *Stream) Publish(n notify.Notification) {
	evt := Event{
		ID:            n.ID,
		Text:          n.Text,
		Timestamp:     n.CreatedAt,
		TargetUserID:  n.TargetUserID,
		Role:          n.TargetRole,
		RequisitionID: n.RequisitionID,
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- evt:
		default:
			// Drop when subscriber is slow to avoid blocking.
		}
	}
}

// For filters one event down to a single viewer. Role-targeted events are
// visible to everyone holding the role; direct events only to their user.
func (e Event) For(userID string, role directory.Role) bool {
	if e.TargetUserID != "" {
		return e.TargetUserID == userID
	}
	return e.Role == role
}
