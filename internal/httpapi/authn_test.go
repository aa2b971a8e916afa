package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/peusirf-a11y/requisicao-digital/internal/auth"
)

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name       string
		principal  *auth.Principal
		wantStatus int
	}{
		{"matching role", &auth.Principal{UserID: "3", Role: "Admin"}, http.StatusOK},
		{"wrong role", &auth.Principal{UserID: "1", Role: "Colaborador"}, http.StatusForbidden},
		{"no principal", nil, http.StatusUnauthorized},
	}

	handler := RequireRole("Admin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
			if tc.principal != nil {
				req = req.WithContext(auth.ContextWithPrincipal(req.Context(), *tc.principal))
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if tc.wantStatus != http.StatusOK && rr.Header().Get("WWW-Authenticate") == "" {
				t.Fatal("WWW-Authenticate header missing")
			}
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc", "abc", false},
		{"bearer abc", "abc", false},
		{"Bearer   abc  ", "abc", false},
		{"", "", true},
		{"Basic abc", "", true},
		{"Bearer ", "", true},
	}
	for _, tc := range cases {
		got, err := extractBearerToken(tc.header)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("header %q: expected error", tc.header)
			}
			continue
		}
		if err != nil {
			t.Fatalf("header %q: %v", tc.header, err)
		}
		if got != tc.want {
			t.Fatalf("header %q: got %q want %q", tc.header, got, tc.want)
		}
	}
}
