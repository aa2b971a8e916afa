package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/peusirf-a11y/requisicao-digital/internal/catalog"
	"github.com/peusirf-a11y/requisicao-digital/internal/directory"
	"github.com/peusirf-a11y/requisicao-digital/internal/notify"
	"github.com/peusirf-a11y/requisicao-digital/internal/obs"
	"github.com/peusirf-a11y/requisicao-digital/internal/socket"
	"github.com/peusirf-a11y/requisicao-digital/internal/stream"
	"github.com/peusirf-a11y/requisicao-digital/internal/workflow"
)

// Pinger reports backend connectivity for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadyProbe checks the persistence backend, if any.
type ReadyProbe struct {
	Backend Pinger
}

func (rp ReadyProbe) Check(ctx context.Context) error {
	if rp.Backend == nil {
		return nil
	}
	return rp.Backend.Ping(ctx)
}

// API is the HTTP layer over the requisition workflow.
type API struct {
	mux           *http.ServeMux
	readyProbe    ReadyProbe
	version       string
	engine        *workflow.Engine
	directory     *directory.Directory
	catalog       *catalog.Catalog
	notifications notify.Store
	stream        *stream.Stream
	hub           *socket.Hub

	tokenTTL   time.Duration
	rateBurst  int
	ratePerSec int
}

// Option adjusts API construction defaults.
type Option func(*API)

// WithTokenTTL sets the lifetime of issued tokens.
func WithTokenTTL(ttl time.Duration) Option {
	return func(a *API) {
		if ttl > 0 {
			a.tokenTTL = ttl
		}
	}
}

// WithRateLimit sets the per-client request budget.
func WithRateLimit(perSec, burst int) Option {
	return func(a *API) {
		if perSec > 0 {
			a.ratePerSec = perSec
		}
		if burst > 0 {
			a.rateBurst = burst
		}
	}
}

func New(rp ReadyProbe, version string, engine *workflow.Engine, dir *directory.Directory, cat *catalog.Catalog, notifications notify.Store, st *stream.Stream, hub *socket.Hub, opts ...Option) *API {
	a := &API{
		mux:           http.NewServeMux(),
		readyProbe:    rp,
		version:       version,
		engine:        engine,
		directory:     dir,
		catalog:       cat,
		notifications: notifications,
		stream:        st,
		hub:           hub,
		tokenTTL:      12 * time.Hour,
		rateBurst:     100,
		ratePerSec:    50,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.mux.HandleFunc("/healthz", a.Healthz)
	a.mux.HandleFunc("/readyz", a.Ready)
	a.mux.HandleFunc("/v1/info", a.Info)
	a.mux.Handle("/metrics", obs.Handler())

	a.mux.HandleFunc("/v1/auth/token", a.handleAuthToken)
	a.mux.HandleFunc("/v1/catalog", a.handleCatalog)
	a.mux.Handle("/v1/users", RequireRole(string(directory.RoleAdmin))(http.HandlerFunc(a.handleUsers)))
	a.mux.HandleFunc("/v1/requisitions", a.handleRequisitionsCollection)
	a.mux.HandleFunc("/v1/requisitions/", a.handleRequisitionResource)
	a.mux.HandleFunc("/v1/notifications", a.handleNotifications)
	a.mux.HandleFunc("/v1/notifications/read", a.handleNotificationsRead)
	a.mux.HandleFunc("/v1/notifications/", a.handleNotificationResource)
	a.mux.HandleFunc("/v1/stream", a.Stream)
	a.mux.HandleFunc("/v1/ws", a.WebSocket)

	a.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	return a
}

// Handler returns the full middleware chain around the mux.
func (a *API) Handler() http.Handler {
	h := a.withAuth(a.mux)
	h = RateLimit(h, a.rateBurst, a.ratePerSec)
	h = MaxBodyBytes(h, 1<<20)
	h = CORS(h)
	h = SecurityHeaders(h)
	h = LoggingJSON(h)
	h = RequestID(h)
	return obs.Instrument(h)
}

// --- Handlers ---

func (a *API) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "requisicao-api",
		"version": a.version,
	})
}

func (a *API) Ready(w http.ResponseWriter, r *http.Request) {
	if err := a.readyProbe.Check(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status": "not_ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ready",
	})
}

func (a *API) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":    "requisicao-api",
		"time":    time.Now().UTC().Format(time.RFC3339),
		"version": a.version,
	})
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
