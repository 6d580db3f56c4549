package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rollcall/internal/legislators/handler"
	"rollcall/internal/legislators/service"
	"rollcall/internal/legislators/store"
	"rollcall/internal/metadata"
	"rollcall/internal/platform/config"
	"rollcall/internal/platform/httpserver"
	"rollcall/internal/platform/logger"
	"rollcall/internal/platform/metrics"
	"rollcall/internal/platform/middleware"
	"rollcall/internal/platform/otel"
	"rollcall/internal/platform/postgres"
	"rollcall/internal/platform/redis"
	"rollcall/pkg/platform/httputil"
)

// main wires configuration, stores and the HTTP router. Role logic lives in
// internal/legislators.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "rollcall: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, "rollcall", cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracing shutdown failed", "error", err.Error())
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	cols, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	registry, closeRegistry, err := openRegistry(ctx, cfg, m, log)
	if err != nil {
		return err
	}
	defer closeRegistry()

	svc, err := service.New(cols.Legislators, cols.Committees, cols.Votes, cols.Bills, registry,
		service.WithLogger(log),
		service.WithMetrics(m),
	)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Logger(log))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	handler.New(svc, log).Register(r)

	return httpserver.Run(ctx, httpserver.New(cfg.Addr, r), 10*time.Second, log)
}

// openStore returns Postgres collections when a database is configured and
// in-memory collections otherwise. Fixtures, when configured, are loaded into
// whichever store is chosen.
func openStore(ctx context.Context, cfg config.Server, log *slog.Logger) (*store.Collections, func(), error) {
	cols := store.NewMemory()
	closeFn := func() {}

	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := store.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		cols = store.NewPostgres(db)
		closeFn = func() { _ = db.Close() }
		log.Info("using postgres document store")
	} else {
		log.Info("using in-memory document store")
	}

	if cfg.FixturesDir != "" {
		if err := store.LoadFixtures(ctx, cfg.FixturesDir, cols); err != nil {
			closeFn()
			return nil, nil, err
		}
		log.Info("fixtures loaded", "dir", cfg.FixturesDir)
	}
	return cols, closeFn, nil
}

// openRegistry reads jurisdiction metadata from YAML files, behind a Redis
// cache when one is configured.
func openRegistry(ctx context.Context, cfg config.Server, m *metrics.Metrics, log *slog.Logger) (metadata.Registry, func(), error) {
	files := metadata.NewFileRegistry(cfg.MetadataDir)

	client, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		return files, func() {}, nil
	}
	log.Info("metadata cache enabled", "ttl", cfg.MetadataCacheTTL.String())
	cache := metadata.NewRedisCache(files, client.Client, cfg.MetadataCacheTTL, m,
		metadata.WithCacheLogger(log),
	)
	return cache, func() { _ = client.Close() }, nil
}
