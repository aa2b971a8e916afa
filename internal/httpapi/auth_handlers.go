package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/peusirf-a11y/requisicao-digital/internal/audit"
	"github.com/peusirf-a11y/requisicao-digital/internal/auth"
	"github.com/peusirf-a11y/requisicao-digital/internal/directory"
)

type tokenRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	User      directory.User `json:"user"`
}

func (a *API) handleAuthToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req tokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		writeError(w, r, http.StatusBadRequest, "user_id is required")
		return
	}
	if req.Password == "" {
		writeError(w, r, http.StatusBadRequest, "password is required")
		return
	}

	user, err := a.directory.Authenticate(r.Context(), req.UserID, req.Password)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) || errors.Is(err, directory.ErrInvalidCredentials) {
			writeError(w, r, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "authentication error")
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Name, string(user.Role), a.tokenTTL)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "token generation failed")
		return
	}

	expiresAt := time.Now().UTC().Add(a.tokenTTL)
	_ = audit.LogEvent(r.Context(), "auth.token.issued", map[string]any{
		"user":       user.ID,
		"role":       string(user.Role),
		"expires_at": expiresAt.Format(time.RFC3339),
	})

	writeJSON(w, http.StatusOK, tokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	})
}

// actor resolves the authenticated principal back to its directory record.
func (a *API) actor(r *http.Request) (directory.User, error) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		return directory.User{}, errors.New("missing principal")
	}
	return a.directory.Get(r.Context(), principal.UserID)
}
