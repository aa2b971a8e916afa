package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/peusirf-a11y/requisicao-digital/internal/directory"
	"github.com/peusirf-a11y/requisicao-digital/internal/ids"
	"github.com/peusirf-a11y/requisicao-digital/internal/obs"
	"github.com/peusirf-a11y/requisicao-digital/internal/workflow"
)

// Publisher pushes a notification onto the live event stream.
type Publisher interface {
	Publish(n Notification)
}

// Pusher delivers a notification to connected sockets of one user.
type Pusher interface {
	Push(userID string, payload any)
}

// RoleLookup resolves the members of a role for socket delivery.
type RoleLookup interface {
	UsersByRole(ctx context.Context, role directory.Role) []directory.User
}

// Dispatcher turns workflow transitions into notifications. Every path is
// best effort: failures are counted and logged, never returned, so a lost
// notification can never roll back or fail a transition.
type Dispatcher struct {
	store     Store
	publisher Publisher
	pusher    Pusher
	roles     RoleLookup
	now       func() time.Time
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

func WithPublisher(p Publisher) DispatcherOption {
	return func(d *Dispatcher) { d.publisher = p }
}

func WithPusher(p Pusher, roles RoleLookup) DispatcherOption {
	return func(d *Dispatcher) {
		d.pusher = p
		d.roles = roles
	}
}

func WithDispatcherClock(now func() time.Time) DispatcherOption {
	return func(d *Dispatcher) { d.now = now }
}

func NewDispatcher(store Store, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{store: store, now: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// TransitionApplied implements workflow.Notifier. A role-targeted event
// produces exactly one row for the whole role, not one per member.
func (d *Dispatcher) TransitionApplied(ctx context.Context, ev workflow.TransitionEvent) {
	n := Notification{
		ID:            ids.New(),
		Text:          eventText(ev),
		CreatedAt:     d.now().UTC(),
		TargetUserID:  ev.TargetUserID,
		TargetRole:    ev.TargetRole,
		RequisitionID: ev.Requisition.ID,
	}
	if err := d.store.Add(ctx, n); err != nil {
		obs.ObserveNotification("failed")
		obs.LogEntry(map[string]any{
			"event":       "notification_store_failed",
			"requisition": ev.Requisition.ID,
			"action":      string(ev.Action),
			"error":       err.Error(),
		})
		return
	}
	obs.ObserveNotification("dispatched")

	if d.publisher != nil {
		d.publisher.Publish(n)
	}
	if d.pusher != nil {
		for _, id := range d.socketTargets(ctx, ev) {
			d.pusher.Push(id, n)
		}
	}
}

func (d *Dispatcher) socketTargets(ctx context.Context, ev workflow.TransitionEvent) []string {
	if ev.TargetUserID != "" {
		return []string{ev.TargetUserID}
	}
	if d.roles == nil {
		return nil
	}
	users := d.roles.UsersByRole(ctx, ev.TargetRole)
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}

// eventText renders the Portuguese inbox text for one transition.
func eventText(ev workflow.TransitionEvent) string {
	id := ev.Requisition.ID
	switch ev.Action {
	case workflow.ActionSubmit:
		return fmt.Sprintf("Nova requisição %s de %s precisa de sua aprovação.", id, ev.Actor.Name)
	case workflow.ActionReject:
		if ev.Actor.Role == directory.RoleSafetyTechnician {
			return fmt.Sprintf("A requisição %s foi recusada pelo técnico de segurança.", id)
		}
		return fmt.Sprintf("A requisição %s foi recusada pelo seu supervisor.", id)
	}
	switch ev.Requisition.Status {
	case workflow.StatusPendingTechnician:
		return fmt.Sprintf("Requisição %s foi aprovada pelo supervisor, aguardando sua análise.", id)
	case workflow.StatusApproved:
		return fmt.Sprintf("A requisição %s foi aprovada e está pronta para reserva.", id)
	case workflow.StatusReserved:
		return fmt.Sprintf("Itens da requisição %s foram reservados e aguardam entrega.", id)
	case workflow.StatusDelivered:
		return fmt.Sprintf("Sua requisição %s foi entregue.", id)
	default:
		return fmt.Sprintf("Requisição %s foi atualizada: %s.", id, ev.Label)
	}
}
