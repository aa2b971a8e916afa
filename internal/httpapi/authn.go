package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/peusirf-a11y/requisicao-digital/internal/auth"
)

const (
	authHeader = "Authorization"
	bearer     = "Bearer "
)

var publicPaths = []string{
	"/v1/auth/token",
	"/metrics",
	"/healthz",
	"/readyz",
	"/",
}

// tokenQueryPaths accept ?token= because EventSource and the browser
// WebSocket API cannot set an Authorization header.
var tokenQueryPaths = []string{
	"/v1/stream",
	"/v1/ws",
}

func (a *API) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions || isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		token, err := extractBearerToken(r.Header.Get(authHeader))
		if err != nil && allowsTokenQuery(r.URL.Path) {
			if qt := strings.TrimSpace(r.URL.Query().Get("token")); qt != "" {
				token, err = qt, nil
			}
		}
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Bearer realm="requisicao"`)
			writeError(w, r, http.StatusUnauthorized, err.Error())
			return
		}

		claims, err := auth.ParseAndValidate(token)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				w.Header().Set("WWW-Authenticate", `Bearer realm="requisicao"`)
				writeError(w, r, http.StatusUnauthorized, "invalid token")
				return
			}
			writeError(w, r, http.StatusInternalServerError, "authentication error")
			return
		}

		principal := auth.Principal{
			UserID: claims.Subject,
			Name:   claims.Name,
			Role:   claims.Role,
		}
		ctx := auth.ContextWithPrincipal(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractBearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", errors.New("missing bearer token")
	}
	if !strings.HasPrefix(strings.ToLower(header), strings.ToLower(bearer)) {
		return "", errors.New("invalid authorization scheme")
	}
	token := strings.TrimSpace(header[len(bearer):])
	if token == "" {
		return "", errors.New("missing bearer token")
	}
	return token, nil
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	return false
}

func allowsTokenQuery(path string) bool {
	for _, p := range tokenQueryPaths {
		if path == p {
			return true
		}
	}
	return false
}
