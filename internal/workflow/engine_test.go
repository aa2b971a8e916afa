package workflow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/peusirf-a11y/requisicao-digital/internal/catalog"
	"github.com/peusirf-a11y/requisicao-digital/internal/directory"
)

var (
	requester  = directory.User{ID: "1", Name: "João Silva", Role: directory.RoleCollaborator}
	supervisor = directory.User{ID: "2", Name: "Carlos Oliveira", Role: directory.RoleSupervisor}
	technician = directory.User{ID: "5", Name: "Ana Carolina Souza", Role: directory.RoleSafetyTechnician}
	reservist  = directory.User{ID: "7", Name: "Ricardo Pereira", Role: directory.RoleReservist}
	warehouse  = directory.User{ID: "6", Name: "Almoxarife", Role: directory.RoleWarehouse}
)

var validCred = Credentials{Signature: "data:image/png;base64,abc", Password: "epi2024"}

type captureNotifier struct {
	mu     sync.Mutex
	events []TransitionEvent
}

func (c *captureNotifier) TransitionApplied(_ context.Context, ev TransitionEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

func (c *captureNotifier) last(t *testing.T) TransitionEvent {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.events) == 0 {
		t.Fatal("no events captured")
	}
	return c.events[len(c.events)-1]
}

func newTestEngine(t *testing.T) (*Engine, *captureNotifier) {
	t.Helper()
	cat := catalog.New(catalog.Seed())
	n := &captureNotifier{}
	return NewEngine(NewInMemoryStore(), cat, WithNotifier(n)), n
}

func submit(t *testing.T, e *Engine) Requisition {
	t.Helper()
	req, err := e.Submit(context.Background(), requester, SubmitInput{
		Items: []SubmitItem{{EPIItemID: "epi1", Size: "Único", Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	return req
}

func TestSubmit(t *testing.T) {
	e, n := newTestEngine(t)
	req := submit(t, e)

	if req.Status != StatusPendingSupervisor {
		t.Fatalf("status = %q, want %q", req.Status, StatusPendingSupervisor)
	}
	if req.Urgency != UrgencyNormal {
		t.Fatalf("urgency = %q, want %q", req.Urgency, UrgencyNormal)
	}
	if len(req.History) != 1 || req.History[0].Label != "Requisição Feita" {
		t.Fatalf("history = %+v", req.History)
	}
	if req.History[0].Actor != requester.Name {
		t.Fatalf("history actor = %q", req.History[0].Actor)
	}
	ev := n.last(t)
	if ev.TargetRole != directory.RoleSupervisor {
		t.Fatalf("notify target = %q, want supervisor role", ev.TargetRole)
	}
}

func TestSubmitValidation(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   SubmitInput
	}{
		{"empty cart", SubmitInput{}},
		{"zero quantity", SubmitInput{Items: []SubmitItem{{EPIItemID: "epi1", Size: "Único", Quantity: 0}}}},
		{"unknown item", SubmitInput{Items: []SubmitItem{{EPIItemID: "epi999", Size: "Único", Quantity: 1}}}},
		{"wrong size", SubmitInput{Items: []SubmitItem{{EPIItemID: "epi1", Size: "42", Quantity: 1}}}},
		{"bad urgency", SubmitInput{Items: []SubmitItem{{EPIItemID: "epi1", Size: "Único", Quantity: 1}}, Urgency: "Alta"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := e.Submit(ctx, requester, tc.in); !errors.Is(err, ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestHappyPath(t *testing.T) {
	e, n := newTestEngine(t)
	ctx := context.Background()
	req := submit(t, e)

	req2, err := e.Approve(ctx, req.ID, supervisor, validCred)
	if err != nil {
		t.Fatalf("supervisor approve: %v", err)
	}
	if req2.Status != StatusPendingTechnician {
		t.Fatalf("status = %q, want %q", req2.Status, StatusPendingTechnician)
	}
	if got := n.last(t); got.TargetRole != directory.RoleSafetyTechnician {
		t.Fatalf("notify target = %q, want technician role", got.TargetRole)
	}

	req3, err := e.Approve(ctx, req.ID, technician, validCred)
	if err != nil {
		t.Fatalf("technician approve: %v", err)
	}
	if req3.Status != StatusApproved {
		t.Fatalf("status = %q, want %q", req3.Status, StatusApproved)
	}
	if got := n.last(t); got.TargetRole != directory.RoleReservist {
		t.Fatalf("notify target = %q, want reservist role", got.TargetRole)
	}

	req4, err := e.Reserve(ctx, req.ID, reservist)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if req4.Status != StatusReserved {
		t.Fatalf("status = %q, want %q", req4.Status, StatusReserved)
	}
	if got := n.last(t); got.TargetRole != directory.RoleWarehouse {
		t.Fatalf("notify target = %q, want warehouse role", got.TargetRole)
	}

	req5, err := e.Deliver(ctx, req.ID, warehouse, validCred)
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if req5.Status != StatusDelivered {
		t.Fatalf("status = %q, want %q", req5.Status, StatusDelivered)
	}
	got := n.last(t)
	if got.TargetUserID != requester.ID || got.TargetRole != "" {
		t.Fatalf("final notify target = %+v, want requester", got)
	}

	if len(req5.History) != 5 {
		t.Fatalf("history length = %d, want 5", len(req5.History))
	}
	wantLabels := []string{
		"Entregue",
		"Reservado",
		"Aprovado por Técnico de Segurança",
		"Aprovado por Supervisor",
		"Requisição Feita",
	}
	for i, w := range wantLabels {
		if req5.History[i].Label != w {
			t.Fatalf("history[%d] = %q, want %q", i, req5.History[i].Label, w)
		}
	}
}

func TestSupervisorRejection(t *testing.T) {
	e, n := newTestEngine(t)
	ctx := context.Background()
	req := submit(t, e)

	got, err := e.Reject(ctx, req.ID, supervisor, "Itens fora do padrão da área.")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if got.Status != StatusRejected {
		t.Fatalf("status = %q, want %q", got.Status, StatusRejected)
	}
	wantLabel := "Recusado por Supervisor: Itens fora do padrão da área."
	if got.History[0].Label != wantLabel {
		t.Fatalf("history[0] = %q, want %q", got.History[0].Label, wantLabel)
	}
	ev := n.last(t)
	if ev.TargetUserID != requester.ID {
		t.Fatalf("notify target user = %q, want requester", ev.TargetUserID)
	}

	// Terminal: nothing else applies.
	if _, err := e.Approve(ctx, req.ID, supervisor, validCred); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("approve after rejection: %v, want ErrInvalidState", err)
	}
}

func TestTechnicianRejection(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()
	req := submit(t, e)

	if _, err := e.Approve(ctx, req.ID, supervisor, validCred); err != nil {
		t.Fatalf("approve: %v", err)
	}
	got, err := e.Reject(ctx, req.ID, technician, "Risco não coberto pelo EPI pedido.")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if got.Status != StatusRejected {
		t.Fatalf("status = %q, want %q", got.Status, StatusRejected)
	}
	if want := "Recusado por Técnico de Segurança: Risco não coberto pelo EPI pedido."; got.History[0].Label != want {
		t.Fatalf("history[0] = %q, want %q", got.History[0].Label, want)
	}
}

func TestErrorPrecedence(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()
	req := submit(t, e)

	// Unknown id wins over everything else.
	if _, err := e.Approve(ctx, "REQ-2024-999", supervisor, Credentials{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id: %v, want ErrNotFound", err)
	}
	// No edge wins over wrong role and bad payload.
	if _, err := e.Deliver(ctx, req.ID, requester, Credentials{}); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("no edge: %v, want ErrInvalidState", err)
	}
	// Wrong role wins over bad payload.
	if _, err := e.Approve(ctx, req.ID, technician, Credentials{}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("wrong role: %v, want ErrUnauthorized", err)
	}
	// Bad payload last.
	if _, err := e.Approve(ctx, req.ID, supervisor, Credentials{Signature: "sig", Password: "abc"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("short password: %v, want ErrValidation", err)
	}
	if _, err := e.Approve(ctx, req.ID, supervisor, Credentials{Signature: "  ", Password: "epi2024"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("blank signature: %v, want ErrValidation", err)
	}
	if _, err := e.Reject(ctx, req.ID, supervisor, "  curto  "); !errors.Is(err, ErrValidation) {
		t.Fatalf("short justification: %v, want ErrValidation", err)
	}

	// After all the failures the requisition is untouched.
	cur, err := e.Get(ctx, req.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cur.Status != StatusPendingSupervisor || len(cur.History) != 1 {
		t.Fatalf("requisition mutated by failed transitions: %+v", cur)
	}
}

func TestReserveBeforeTechnicianApproval(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()
	req := submit(t, e)

	if _, err := e.Approve(ctx, req.ID, supervisor, validCred); err != nil {
		t.Fatalf("supervisor approve: %v", err)
	}

	// Reserve has no edge out of the technician queue.
	if _, err := e.Reserve(ctx, req.ID, reservist); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("early reserve: %v, want ErrInvalidState", err)
	}

	cur, err := e.Get(ctx, req.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cur.Status != StatusPendingTechnician || len(cur.History) != 2 {
		t.Fatalf("requisition mutated by failed reserve: %+v", cur)
	}
}

func TestDeliverRequiresSignature(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()
	req := submit(t, e)

	if _, err := e.Approve(ctx, req.ID, supervisor, validCred); err != nil {
		t.Fatalf("supervisor approve: %v", err)
	}
	if _, err := e.Approve(ctx, req.ID, technician, validCred); err != nil {
		t.Fatalf("technician approve: %v", err)
	}
	if _, err := e.Reserve(ctx, req.ID, reservist); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	if _, err := e.Deliver(ctx, req.ID, warehouse, Credentials{Signature: "   ", Password: "epi2024"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("blank signature: %v, want ErrValidation", err)
	}

	cur, err := e.Get(ctx, req.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cur.Status != StatusReserved || len(cur.History) != 4 {
		t.Fatalf("requisition mutated by failed deliver: %+v", cur)
	}
}

func TestGetForScopesView(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()
	req := submit(t, e)

	if _, err := e.GetFor(ctx, req.ID, requester); err != nil {
		t.Fatalf("requester fetch: %v", err)
	}
	if _, err := e.GetFor(ctx, req.ID, supervisor); err != nil {
		t.Fatalf("supervisor fetch: %v", err)
	}

	other := directory.User{ID: "4", Name: "Maria Oliveira", Role: directory.RoleCollaborator}
	if _, err := e.GetFor(ctx, req.ID, other); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign requester fetch: %v, want ErrNotFound", err)
	}
	// Warehouse acts on reserved requisitions only.
	if _, err := e.GetFor(ctx, req.ID, warehouse); !errors.Is(err, ErrNotFound) {
		t.Fatalf("out-of-stage fetch: %v, want ErrNotFound", err)
	}
}

func TestConcurrentSameID(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()
	req := submit(t, e)

	const attempts = 16
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.Approve(ctx, req.ID, supervisor, validCred)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var applied, conflicted int
	for err := range errs {
		switch {
		case err == nil:
			applied++
		case errors.Is(err, ErrInvalidState):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if applied != 1 || conflicted != attempts-1 {
		t.Fatalf("applied=%d conflicted=%d, want 1/%d", applied, conflicted, attempts-1)
	}

	cur, err := e.Get(ctx, req.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cur.Status != StatusPendingTechnician || len(cur.History) != 2 {
		t.Fatalf("requisition after racing approvals: %+v", cur)
	}
}

func TestConcurrentDifferentIDs(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	ids := make([]string, 8)
	for i := range ids {
		ids[i] = submit(t, e).ID
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(ids))
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := e.Approve(ctx, id, supervisor, validCred)
			errs <- err
		}(id)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("parallel approve: %v", err)
		}
	}
	for _, id := range ids {
		cur, err := e.Get(ctx, id)
		if err != nil {
			t.Fatalf("get %s: %v", id, err)
		}
		if cur.Status != StatusPendingTechnician {
			t.Fatalf("%s status = %q", id, cur.Status)
		}
	}
}

func TestHistoryTimestampsUTC(t *testing.T) {
	fixed := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	cat := catalog.New(catalog.Seed())
	e := NewEngine(NewInMemoryStore(), cat, WithClock(func() time.Time { return fixed }))

	req, err := e.Submit(context.Background(), requester, SubmitInput{
		Items: []SubmitItem{{EPIItemID: "epi1", Size: "Único", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !req.History[0].At.Equal(fixed) {
		t.Fatalf("history at = %v, want %v", req.History[0].At, fixed)
	}
	if req.History[0].At.Location() != time.UTC {
		t.Fatalf("history timestamp not UTC")
	}
}
