package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/peusirf-a11y/requisicao-digital/internal/catalog"
	"github.com/peusirf-a11y/requisicao-digital/internal/config"
	"github.com/peusirf-a11y/requisicao-digital/internal/directory"
	"github.com/peusirf-a11y/requisicao-digital/internal/httpapi"
	"github.com/peusirf-a11y/requisicao-digital/internal/notify"
	"github.com/peusirf-a11y/requisicao-digital/internal/obs"
	"github.com/peusirf-a11y/requisicao-digital/internal/socket"
	"github.com/peusirf-a11y/requisicao-digital/internal/store/pg"
	"github.com/peusirf-a11y/requisicao-digital/internal/stream"
	"github.com/peusirf-a11y/requisicao-digital/internal/workflow"
)

var version = "0.3.1"

func main() {
	obs.Init()

	cfgPath := os.Getenv("REQDIG_CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "."
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	dir := directory.New()
	if cfg.Seed.Demo {
		if err := directory.SeedDemo(ctx, dir); err != nil {
			log.Fatalf("seed directory: %v", err)
		}
	}
	cat := catalog.New(catalog.Seed())

	// Stores default to memory; a DSN switches both to PostgreSQL.
	var (
		reqStore workflow.Store = workflow.NewInMemoryStore()
		inbox    notify.Store   = notify.NewInMemoryStore()
		probe    httpapi.ReadyProbe
		pgStore  *pg.Store
	)
	if cfg.Postgres.DSN != "" {
		pgStore, err = pg.Open(cfg.Postgres.DSN)
		if err != nil {
			log.Fatalf("open postgres: %v", err)
		}
		reqStore = pgStore
		inbox = pgStore
		probe = httpapi.ReadyProbe{Backend: pgStore}
	}

	st := stream.New()
	hub := socket.NewHub()
	dispatcher := notify.NewDispatcher(inbox,
		notify.WithPublisher(st),
		notify.WithPusher(hub, dir),
	)
	engine := workflow.NewEngine(reqStore, cat, workflow.WithNotifier(dispatcher))

	api := httpapi.New(probe, version, engine, dir, cat, inbox, st, hub,
		httpapi.WithTokenTTL(cfg.Auth.TokenTTL),
		httpapi.WithRateLimit(int(cfg.RateLimit.RPS), cfg.RateLimit.Burst),
	)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.Handler(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	log.Printf("Starting requisicao-api %s on %s", version, srv.Addr)
	obs.SetReady(true)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")
	obs.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	_ = srv.Shutdown(shutdownCtx)
	if pgStore != nil {
		_ = pgStore.Close()
	}
	log.Println("Stopped")
}
