package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/peusirf-a11y/requisicao-digital/internal/audit"
	"github.com/peusirf-a11y/requisicao-digital/internal/workflow"
)

type submitRequest struct {
	Items []struct {
		EPIItemID string `json:"epi_item_id"`
		Size      string `json:"size"`
		Quantity  int    `json:"quantity"`
	} `json:"items"`
	Urgency string `json:"urgency"`
}

type approveRequest struct {
	Signature string `json:"signature"`
	Password  string `json:"password"`
}

type rejectRequest struct {
	Justification string `json:"justification"`
}

func (a *API) handleRequisitionsCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		a.submitRequisition(w, r)
	case http.MethodGet:
		a.listRequisitions(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) handleRequisitionResource(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/v1/requisitions/")
	if path == "" {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}

	id, action, hasAction := strings.Cut(path, "/")
	if id == "" {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	if !hasAction {
		if r.Method != http.MethodGet {
			methodNotAllowed(w, r, http.MethodGet)
			return
		}
		a.getRequisition(w, r, id)
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	switch action {
	case "approve":
		a.approveRequisition(w, r, id)
	case "reject":
		a.rejectRequisition(w, r, id)
	case "reserve":
		a.reserveRequisition(w, r, id)
	case "deliver":
		a.deliverRequisition(w, r, id)
	default:
		writeError(w, r, http.StatusNotFound, "resource not found")
	}
}

func (a *API) submitRequisition(w http.ResponseWriter, r *http.Request) {
	actor, err := a.actor(r)
	if err != nil {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}
	var req submitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	in := workflow.SubmitInput{Urgency: workflow.Urgency(req.Urgency)}
	for _, item := range req.Items {
		in.Items = append(in.Items, workflow.SubmitItem{
			EPIItemID: item.EPIItemID,
			Size:      item.Size,
			Quantity:  item.Quantity,
		})
	}

	created, err := a.engine.Submit(r.Context(), actor, in)
	if err != nil {
		handleWorkflowError(w, r, err)
		return
	}
	_ = audit.LogEvent(r.Context(), "requisition.submitted", map[string]any{
		"requisition": created.ID,
		"items":       len(created.Items),
		"urgency":     string(created.Urgency),
	})
	w.Header().Set("Location", "/v1/requisitions/"+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (a *API) listRequisitions(w http.ResponseWriter, r *http.Request) {
	actor, err := a.actor(r)
	if err != nil {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}
	items, err := a.engine.VisibleTo(r.Context(), actor)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": items,
	})
}

func (a *API) getRequisition(w http.ResponseWriter, r *http.Request, id string) {
	actor, err := a.actor(r)
	if err != nil {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}
	req, err := a.engine.GetFor(r.Context(), id, actor)
	if err != nil {
		handleWorkflowError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (a *API) approveRequisition(w http.ResponseWriter, r *http.Request, id string) {
	actor, err := a.actor(r)
	if err != nil {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}
	var req approveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := a.engine.Approve(r.Context(), id, actor, workflow.Credentials{
		Signature: req.Signature,
		Password:  req.Password,
	})
	if err != nil {
		handleWorkflowError(w, r, err)
		return
	}
	_ = audit.LogEvent(r.Context(), "requisition.approved", map[string]any{
		"requisition": id,
		"status":      string(updated.Status),
	})
	writeJSON(w, http.StatusOK, updated)
}

func (a *API) rejectRequisition(w http.ResponseWriter, r *http.Request, id string) {
	actor, err := a.actor(r)
	if err != nil {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}
	var req rejectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := a.engine.Reject(r.Context(), id, actor, req.Justification)
	if err != nil {
		handleWorkflowError(w, r, err)
		return
	}
	_ = audit.LogEvent(r.Context(), "requisition.rejected", map[string]any{
		"requisition": id,
	})
	writeJSON(w, http.StatusOK, updated)
}

func (a *API) reserveRequisition(w http.ResponseWriter, r *http.Request, id string) {
	actor, err := a.actor(r)
	if err != nil {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}
	updated, err := a.engine.Reserve(r.Context(), id, actor)
	if err != nil {
		handleWorkflowError(w, r, err)
		return
	}
	_ = audit.LogEvent(r.Context(), "requisition.reserved", map[string]any{
		"requisition": id,
	})
	writeJSON(w, http.StatusOK, updated)
}

func (a *API) deliverRequisition(w http.ResponseWriter, r *http.Request, id string) {
	actor, err := a.actor(r)
	if err != nil {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}
	var req approveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := a.engine.Deliver(r.Context(), id, actor, workflow.Credentials{
		Signature: req.Signature,
		Password:  req.Password,
	})
	if err != nil {
		handleWorkflowError(w, r, err)
		return
	}
	_ = audit.LogEvent(r.Context(), "requisition.delivered", map[string]any{
		"requisition": id,
	})
	writeJSON(w, http.StatusOK, updated)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	reader := http.MaxBytesReader(w, r.Body, 1<<20)
	defer reader.Close()
	dec := json.NewDecoder(reader)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return errors.New("unexpected data after JSON body")
		}
		return err
	}
	return nil
}

func handleWorkflowError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, workflow.ErrValidation):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, workflow.ErrUnauthorized):
		writeError(w, r, http.StatusForbidden, err.Error())
	case errors.Is(err, workflow.ErrNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, workflow.ErrInvalidState):
		writeError(w, r, http.StatusConflict, err.Error())
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	payload := map[string]any{
		"error": msg,
	}
	if rid := RequestIDFromContext(r.Context()); rid != "" {
		payload["request_id"] = rid
	}
	writeJSON(w, code, payload)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}
