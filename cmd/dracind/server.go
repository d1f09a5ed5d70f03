package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vmunix/dracin/internal/api/proxy"
	v1 "github.com/vmunix/dracin/internal/api/v1"
	"github.com/vmunix/dracin/internal/catalog"
	"github.com/vmunix/dracin/internal/config"
	"github.com/vmunix/dracin/internal/server"
	"github.com/vmunix/dracin/internal/upstream"
	"github.com/vmunix/dracin/pkg/normalize"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 200 { // Only capture first WriteHeader call
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &statusRecorder{ResponseWriter: w, status: 200}
			next.ServeHTTP(wrapped, r)
			log.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrapped.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// newHandler wires the gateway, normalizer and catalog behind the router.
func newHandler(cfg *config.Config, logger *slog.Logger) (http.Handler, *upstream.Client, error) {
	norm, err := normalize.New(normalize.WithAliases(cfg.Normalize.Aliases))
	if err != nil {
		return nil, nil, fmt.Errorf("normalizer: %w", err)
	}

	client, err := upstream.New(cfg.Upstream.ProviderURLs(), cfg.Upstream.Default,
		upstream.WithUserAgent(cfg.Upstream.UserAgent),
		upstream.WithTimeout(cfg.Upstream.Timeout),
		upstream.WithLogger(logger.With("component", "upstream")),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("upstream: %w", err)
	}

	svc := catalog.NewService(client, norm, logger.With("component", "catalog"))

	api, err := v1.New(v1.ServerDeps{Catalog: svc, Providers: client}, v1.Config{
		Version: version,
		Logger:  logger.With("component", "api"),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("api: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logRequests(logger))
	r.Use(middleware.Recoverer)
	r.Use(proxy.CORS)

	// v1 routes first; the proxy owns the rest of /api.
	api.RegisterRoutes(r)
	proxy.New(client, logger.With("component", "proxy")).RegisterRoutes(r)

	return r, client, nil
}

func runServer(configPath string) error {
	if configPath == "" {
		p, err := config.Discover()
		if err != nil {
			return err
		}
		configPath = p
	}

	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	handler, client, err := newHandler(cfg, logger)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting",
		"addr", addr,
		"config", configPath,
		"providers", client.Providers(),
		"default_provider", client.DefaultProvider(),
		"log_level", cfg.Server.LogLevel,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := server.NewRunner(server.Config{Addr: addr}, handler, logger.With("component", "server"))
	if err := runner.Run(ctx); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
