package workflow

import (
	"errors"
	"time"

	"github.com/peusirf-a11y/requisicao-digital/internal/catalog"
	"github.com/peusirf-a11y/requisicao-digital/internal/directory"
)

// Status is the lifecycle state of a requisition. The values are the labels
// used by the original EPI system and are kept wire-compatible.
type Status string

const (
	StatusPendingSupervisor Status = "Pendente Supervisor"
	StatusPendingTechnician Status = "Pendente Técnico Seg."
	StatusApproved          Status = "Aprovado"
	StatusReserved          Status = "Reservado"
	StatusDelivered         Status = "Entregue"
	StatusRejected          Status = "Recusado"
)

var statuses = map[Status]struct{}{
	StatusPendingSupervisor: {},
	StatusPendingTechnician: {},
	StatusApproved:          {},
	StatusReserved:          {},
	StatusDelivered:         {},
	StatusRejected:          {},
}

// Valid reports whether s is one of the defined states.
func (s Status) Valid() bool {
	_, ok := statuses[s]
	return ok
}

// Terminal reports whether no further transitions exist from s.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusRejected
}

// Action is a workflow operation requested against a requisition.
type Action string

const (
	ActionSubmit  Action = "submit"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionReserve Action = "reserve"
	ActionDeliver Action = "deliver"
)

// Urgency is informational only and never alters transition rules.
type Urgency string

const (
	UrgencyNormal Urgency = "Normal"
	UrgencyUrgent Urgency = "Urgente"
)

// HistoryEntry is one append-only audit record. Label may embed a free-text
// justification in the form "<label>: <justification>".
type HistoryEntry struct {
	Label string    `json:"status"`
	At    time.Time `json:"date"`
	Actor string    `json:"user"`
}

// RequisitionItem is one catalog item requested in a specific size.
type RequisitionItem struct {
	Item     catalog.Item `json:"epi_item"`
	Quantity int          `json:"quantity"`
	Size     string       `json:"size"`
}

// Requisition is the central entity tracked by the workflow. History is
// ordered newest first and grows by exactly one entry per applied transition.
type Requisition struct {
	ID        string            `json:"id"`
	Requester directory.User    `json:"requester"`
	Date      time.Time         `json:"date"`
	Items     []RequisitionItem `json:"items"`
	Status    Status            `json:"status"`
	Urgency   Urgency           `json:"urgency"`
	History   []HistoryEntry    `json:"history"`
}

// Clone returns a deep copy so callers can never mutate the stored entity.
func (r Requisition) Clone() Requisition {
	out := r
	out.Items = make([]RequisitionItem, len(r.Items))
	copy(out.Items, r.Items)
	out.History = make([]HistoryEntry, len(r.History))
	copy(out.History, r.History)
	return out
}

// SubmitItem is the raw cart line of a submission.
type SubmitItem struct {
	EPIItemID string `json:"epi_item_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// SubmitInput is a new requisition request.
type SubmitInput struct {
	Items   []SubmitItem `json:"items"`
	Urgency Urgency      `json:"urgency"`
}

// Credentials carry the confirmation payload for approve and deliver. The
// signature is an opaque image blob; only presence is checked here. The
// password is shape-checked only, real verification belongs to the identity
// provider.
type Credentials struct {
	Signature string `json:"signature"`
	Password  string `json:"password"`
}

var (
	ErrNotFound     = errors.New("workflow: requisition not found")
	ErrInvalidState = errors.New("workflow: no transition from current status")
	ErrUnauthorized = errors.New("workflow: role not allowed to perform this action")
	ErrValidation   = errors.New("workflow: invalid input")
)
