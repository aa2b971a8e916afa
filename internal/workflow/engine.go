package workflow

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/peusirf-a11y/requisicao-digital/internal/catalog"
	"github.com/peusirf-a11y/requisicao-digital/internal/directory"
	"github.com/peusirf-a11y/requisicao-digital/internal/obs"
)

// Payload shape checks. The original UI enabled confirmation only for a
// drawn signature plus a password longer than 3 characters, and rejections
// with a trimmed justification longer than 10 characters.
const (
	minPasswordLen      = 4
	minJustificationLen = 11
)

// Catalog is the read-only item lookup the engine validates carts against.
type Catalog interface {
	Item(id string) (catalog.Item, bool)
}

// TransitionEvent describes one applied transition for the notification
// dispatcher. Exactly one of TargetRole / TargetUserID is set.
type TransitionEvent struct {
	Requisition  Requisition
	Action       Action
	Label        string
	Actor        directory.User
	TargetRole   directory.Role
	TargetUserID string
}

// Notifier receives applied transitions. Delivery is best effort: the engine
// only guarantees the synchronous invocation, never the outcome.
type Notifier interface {
	TransitionApplied(ctx context.Context, ev TransitionEvent)
}

// Engine validates and applies workflow transitions. Transitions against the
// same requisition id are mutually exclusive; different ids proceed in
// parallel.
type Engine struct {
	store    Store
	catalog  Catalog
	notifier Notifier
	now      func() time.Time

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// Option configures the engine.
type Option func(*Engine)

// WithNotifier wires the notification dispatcher.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine constructs an engine over the given store and catalog.
func NewEngine(store Store, cat Catalog, opts ...Option) *Engine {
	e := &Engine{
		store:   store,
		catalog: cat,
		now:     time.Now,
		locks:   make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Submit creates a requisition from a cart. The acting user becomes the
// requester; the requisition starts pending supervisor approval.
func (e *Engine) Submit(ctx context.Context, actor directory.User, in SubmitInput) (Requisition, error) {
	if !actor.Role.Valid() {
		obs.ObserveTransition(string(ActionSubmit), "unauthorized")
		return Requisition{}, fmt.Errorf("%w: unknown actor role %q", ErrUnauthorized, actor.Role)
	}
	items, err := e.validateCart(in.Items)
	if err != nil {
		obs.ObserveTransition(string(ActionSubmit), "invalid_input")
		return Requisition{}, err
	}
	urgency := in.Urgency
	switch urgency {
	case "":
		urgency = UrgencyNormal
	case UrgencyNormal, UrgencyUrgent:
	default:
		obs.ObserveTransition(string(ActionSubmit), "invalid_input")
		return Requisition{}, fmt.Errorf("%w: unknown urgency %q", ErrValidation, in.Urgency)
	}

	id, err := e.store.NextID(ctx)
	if err != nil {
		return Requisition{}, err
	}
	now := e.now().UTC()
	req := Requisition{
		ID:        id,
		Requester: actor,
		Date:      now,
		Items:     items,
		Status:    StatusPendingSupervisor,
		Urgency:   urgency,
		History: []HistoryEntry{
			{Label: labelSubmitted, At: now, Actor: actor.Name},
		},
	}
	if err := e.store.Create(ctx, req); err != nil {
		return Requisition{}, err
	}
	obs.ObserveTransition(string(ActionSubmit), "applied")

	e.dispatch(ctx, TransitionEvent{
		Requisition: req.Clone(),
		Action:      ActionSubmit,
		Label:       labelSubmitted,
		Actor:       actor,
		TargetRole:  directory.RoleSupervisor,
	})
	return req, nil
}

// Approve moves a pending requisition to its next stage. Valid for a
// supervisor on PendingSupervisor and a safety technician on
// PendingTechnician; requires a signature and a shape-valid password.
func (e *Engine) Approve(ctx context.Context, id string, actor directory.User, cred Credentials) (Requisition, error) {
	return e.transition(ctx, id, actor, ActionApprove, func() error {
		return validateCredentials(cred)
	}, nil)
}

// Reject refuses a pending requisition with a justification. Terminal.
func (e *Engine) Reject(ctx context.Context, id string, actor directory.User, justification string) (Requisition, error) {
	justification = strings.TrimSpace(justification)
	return e.transition(ctx, id, actor, ActionReject, func() error {
		if utf8.RuneCountInString(justification) < minJustificationLen {
			return fmt.Errorf("%w: justification must be longer than 10 characters", ErrValidation)
		}
		return nil
	}, func(label string) string {
		return label + ": " + justification
	})
}

// Reserve marks an approved requisition's items as set aside in the
// warehouse. No payload beyond the acting reservist.
func (e *Engine) Reserve(ctx context.Context, id string, actor directory.User) (Requisition, error) {
	return e.transition(ctx, id, actor, ActionReserve, nil, nil)
}

// Deliver hands the reserved items to the requester, confirmed by the
// warehouse with a signature and a shape-valid password. Terminal.
func (e *Engine) Deliver(ctx context.Context, id string, actor directory.User, cred Credentials) (Requisition, error) {
	return e.transition(ctx, id, actor, ActionDeliver, func() error {
		return validateCredentials(cred)
	}, nil)
}

// Get returns a snapshot of one requisition.
func (e *Engine) Get(ctx context.Context, id string) (Requisition, error) {
	return e.store.Get(ctx, id)
}

// GetFor returns one requisition only if it falls inside the user's view.
// A requisition outside the view is indistinguishable from a missing one.
func (e *Engine) GetFor(ctx context.Context, id string, user directory.User) (Requisition, error) {
	req, err := e.store.Get(ctx, id)
	if err != nil {
		return Requisition{}, err
	}
	if !VisibleOne(req, user) {
		return Requisition{}, ErrNotFound
	}
	return req, nil
}

// List returns snapshots of all requisitions.
func (e *Engine) List(ctx context.Context) ([]Requisition, error) {
	return e.store.List(ctx)
}

// VisibleTo returns the role-scoped view for the given user. The filter is
// re-evaluated on every call; it is a derived view, never cached.
func (e *Engine) VisibleTo(ctx context.Context, user directory.User) ([]Requisition, error) {
	all, err := e.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return Visible(all, user), nil
}

// transition applies one edge of the table. Checks run in contract order:
// existence, edge, role, payload. Nothing is mutated on any failure.
func (e *Engine) transition(ctx context.Context, id string, actor directory.User, action Action, validate func() error, decorate func(string) string) (Requisition, error) {
	lock := e.idLock(id)
	lock.Lock()
	defer lock.Unlock()

	req, err := e.store.Get(ctx, id)
	if err != nil {
		obs.ObserveTransition(string(action), "not_found")
		return Requisition{}, err
	}

	r, ok := lookup(req.Status, action)
	if !ok {
		obs.ObserveTransition(string(action), "invalid_state")
		return Requisition{}, fmt.Errorf("%w: cannot %s a requisition in status %q", ErrInvalidState, action, req.Status)
	}
	if actor.Role != r.Role {
		obs.ObserveTransition(string(action), "unauthorized")
		return Requisition{}, fmt.Errorf("%w: %s requires role %q", ErrUnauthorized, action, r.Role)
	}
	if validate != nil {
		if err := validate(); err != nil {
			obs.ObserveTransition(string(action), "invalid_input")
			return Requisition{}, err
		}
	}

	label := r.Label
	if decorate != nil {
		label = decorate(label)
	}
	req.Status = r.To
	req.History = append([]HistoryEntry{{Label: label, At: e.now().UTC(), Actor: actor.Name}}, req.History...)

	if err := e.store.Update(ctx, req); err != nil {
		return Requisition{}, err
	}
	obs.ObserveTransition(string(action), "applied")

	ev := TransitionEvent{
		Requisition: req.Clone(),
		Action:      action,
		Label:       label,
		Actor:       actor,
		TargetRole:  r.NotifyRole,
	}
	if ev.TargetRole == "" {
		ev.TargetUserID = req.Requester.ID
	}
	e.dispatch(ctx, ev)
	return req, nil
}

func (e *Engine) dispatch(ctx context.Context, ev TransitionEvent) {
	if e.notifier == nil {
		return
	}
	e.notifier.TransitionApplied(ctx, ev)
}

func (e *Engine) validateCart(items []SubmitItem) ([]RequisitionItem, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: requisition must contain at least one item", ErrValidation)
	}
	out := make([]RequisitionItem, 0, len(items))
	for i, line := range items {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: item %d quantity must be at least 1", ErrValidation, i)
		}
		it, ok := e.catalog.Item(line.EPIItemID)
		if !ok {
			return nil, fmt.Errorf("%w: unknown catalog item %q", ErrValidation, line.EPIItemID)
		}
		size := strings.TrimSpace(line.Size)
		if !it.HasSize(size) {
			return nil, fmt.Errorf("%w: item %q has no size %q", ErrValidation, line.EPIItemID, line.Size)
		}
		out = append(out, RequisitionItem{Item: it, Quantity: line.Quantity, Size: size})
	}
	return out, nil
}

func (e *Engine) idLock(id string) *sync.Mutex {
	e.locksMu.Lock()
	defer e.locksMu.Unlock()
	lock, ok := e.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[id] = lock
	}
	return lock
}

func validateCredentials(cred Credentials) error {
	if strings.TrimSpace(cred.Signature) == "" {
		return fmt.Errorf("%w: signature is required", ErrValidation)
	}
	if len(cred.Password) < minPasswordLen {
		return fmt.Errorf("%w: password is too short", ErrValidation)
	}
	return nil
}
