package httpapi

import (
	"net/http"
	"strings"

	"github.com/peusirf-a11y/requisicao-digital/internal/directory"
)

func (a *API) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": a.catalog.List(),
	})
}

func (a *API) handleUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	raw := strings.TrimSpace(r.URL.Query().Get("role"))
	if raw == "" {
		writeJSON(w, http.StatusOK, map[string]any{
			"users": a.directory.List(r.Context()),
		})
		return
	}
	role, err := directory.ParseRole(raw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"users": a.directory.UsersByRole(r.Context(), role),
	})
}
