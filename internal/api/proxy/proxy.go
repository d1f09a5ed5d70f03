// Package proxy forwards raw catalog requests to an upstream provider and
// returns the upstream JSON unchanged.
package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vmunix/dracin/internal/upstream"
)

// Fetcher performs one raw upstream GET. *upstream.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, provider, path string, query url.Values) (*upstream.Response, error)
}

// Handler serves GET /api/* by forwarding the wildcard path and query
// string to the selected provider.
type Handler struct {
	fetcher Fetcher
	log     *slog.Logger
}

// New creates a proxy handler.
func New(fetcher Fetcher, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{fetcher: fetcher, log: log}
}

// RegisterRoutes mounts the catch-all route. Register more specific /api
// routes before calling it.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/*", h.ServeHTTP)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	path := chi.URLParam(r, "*")
	if path == "" {
		path = query.Get("path")
	}
	provider := query.Get("provider")

	ctx := r.Context()
	if id := middleware.GetReqID(ctx); id != "" {
		ctx = upstream.WithRequestID(ctx, id)
	}

	resp, err := h.fetcher.Fetch(ctx, provider, path, query)
	if err != nil {
		if errors.Is(err, upstream.ErrUnknownProvider) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Warn("proxy error", "path", path, "provider", provider, "error", err)
		writeError(w, http.StatusInternalServerError, "Proxy error")
		return
	}

	if !json.Valid(resp.Body) {
		h.log.Warn("upstream returned invalid JSON", "path", path, "provider", provider, "status", resp.StatusCode)
		writeError(w, http.StatusInternalServerError, "Proxy error: invalid upstream JSON")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(resp.Body)
}

// CORS allows any origin and answers preflight requests directly.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message})
}
