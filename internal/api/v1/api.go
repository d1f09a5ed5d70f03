// Package v1 implements the normalized REST API.
package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vmunix/dracin/internal/catalog"
	"github.com/vmunix/dracin/internal/upstream"
	"github.com/vmunix/dracin/pkg/normalize"
)

// Config holds API server configuration.
type Config struct {
	Version string
	Logger  *slog.Logger
}

// Server is the v1 API server.
type Server struct {
	deps ServerDeps
	cfg  Config
	log  *slog.Logger
}

// New creates a v1 API server.
func New(deps ServerDeps, cfg Config) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingDependency, err)
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Server{deps: deps, cfg: cfg, log: log}, nil
}

// RegisterRoutes registers API routes on the given router. It must run
// before the raw proxy claims /api/*.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", s.status)

		// Listings
		r.Get("/home", s.home)
		r.Get("/recommend", s.recommend)
		r.Get("/vip", s.vip)
		r.Get("/search", s.search)
		r.Get("/lookup", s.lookup)
		r.Get("/types/{type}", s.byType)

		// Categories
		r.Get("/categories", s.listCategories)
		r.Get("/categories/{id}", s.getCategory)

		// Dramas
		r.Get("/dramas/{bookId}", s.getDrama)
		r.Get("/dramas/{bookId}/episodes", s.listEpisodes)
		r.Get("/dramas/{bookId}/episodes/{n}", s.getEpisode)
		r.Get("/dramas/{bookId}/episodes/{n}/stream", s.stream)
	})
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// writeCatalogError maps catalog and upstream errors onto HTTP statuses.
func (s *Server) writeCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	var statusErr *upstream.StatusError
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, upstream.ErrUnknownProvider):
		writeError(w, http.StatusBadRequest, "UNKNOWN_PROVIDER", err.Error())
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to write.
	case errors.As(err, &statusErr):
		s.log.Warn("upstream status", "path", r.URL.Path, "status", statusErr.Code, "error", err)
		writeError(w, http.StatusBadGateway, "UPSTREAM_STATUS", err.Error())
	default:
		s.log.Warn("upstream error", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
	}
}

// requestContext carries the inbound request id to the upstream call.
func requestContext(r *http.Request) context.Context {
	ctx := r.Context()
	if id := middleware.GetReqID(ctx); id != "" {
		ctx = upstream.WithRequestID(ctx, id)
	}
	return ctx
}

// queryPage parses the optional page parameter. Absent means page 1.
func queryPage(r *http.Request) (int, error) {
	val := r.URL.Query().Get("page")
	if val == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(val)
	if err != nil || page < 1 {
		return 0, fmt.Errorf("invalid page %q", val)
	}
	return page, nil
}

// pathInt extracts a positive integer from the URL path.
func pathInt(r *http.Request, name string) (int, error) {
	val := chi.URLParam(r, name)
	if val == "" {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q", name, val)
	}
	return n, nil
}

func provider(r *http.Request) string {
	return r.URL.Query().Get("provider")
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	providers := s.deps.Providers.Providers()
	if providers == nil {
		providers = []string{}
	}
	writeJSON(w, http.StatusOK, statusResponse{
		Status:          "ok",
		Version:         s.cfg.Version,
		Providers:       providers,
		DefaultProvider: s.deps.Providers.DefaultProvider(),
	})
}

type listFunc func(ctx context.Context, provider string, page int) ([]normalize.Drama, error)

func (s *Server) pagedList(fn listFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := queryPage(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_PAGE", err.Error())
			return
		}
		dramas, err := fn(requestContext(r), provider(r), page)
		if err != nil {
			s.writeCatalogError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, dramaListResponse{Items: dramas, Total: len(dramas), Page: page})
	}
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	s.pagedList(s.deps.Catalog.Home)(w, r)
}

func (s *Server) recommend(w http.ResponseWriter, r *http.Request) {
	s.pagedList(s.deps.Catalog.Recommend)(w, r)
}

func (s *Server) vip(w http.ResponseWriter, r *http.Request) {
	s.pagedList(s.deps.Catalog.VIP)(w, r)
}

func (s *Server) byType(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "type")
	s.pagedList(func(ctx context.Context, p string, page int) ([]normalize.Drama, error) {
		return s.deps.Catalog.ByType(ctx, p, kind, page)
	})(w, r)
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	s.pagedList(func(ctx context.Context, p string, page int) ([]normalize.Drama, error) {
		return s.deps.Catalog.Category(ctx, p, id, page)
	})(w, r)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "INVALID_QUERY", "q is required")
		return
	}
	dramas, err := s.deps.Catalog.Search(requestContext(r), provider(r), q)
	if err != nil {
		s.writeCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dramaListResponse{Items: dramas, Total: len(dramas)})
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(r.URL.Query().Get("title"))
	if title == "" {
		writeError(w, http.StatusBadRequest, "INVALID_QUERY", "title is required")
		return
	}
	res, err := s.deps.Catalog.Lookup(requestContext(r), provider(r), title)
	if err != nil {
		s.writeCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lookupResponse{
		Drama:      res.Drama,
		MatchedOn:  res.Match.Title,
		Score:      res.Match.Score,
		Confidence: res.Match.Confidence.String(),
	})
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.deps.Catalog.Categories(requestContext(r), provider(r))
	if err != nil {
		s.writeCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryListResponse{Items: cats, Total: len(cats)})
}

func (s *Server) getDrama(w http.ResponseWriter, r *http.Request) {
	d, err := s.deps.Catalog.Detail(requestContext(r), provider(r), chi.URLParam(r, "bookId"))
	if err != nil {
		s.writeCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) listEpisodes(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookId")
	eps, err := s.deps.Catalog.Episodes(requestContext(r), provider(r), bookID)
	if err != nil {
		s.writeCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, episodeListResponse{BookID: bookID, Items: eps, Total: len(eps)})
}

func (s *Server) getEpisode(w http.ResponseWriter, r *http.Request) {
	n, err := pathInt(r, "n")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_EPISODE", err.Error())
		return
	}
	ep, err := s.deps.Catalog.Play(requestContext(r), provider(r), chi.URLParam(r, "bookId"), n)
	if err != nil {
		s.writeCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ep)
}

func (s *Server) stream(w http.ResponseWriter, r *http.Request) {
	n, err := pathInt(r, "n")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_EPISODE", err.Error())
		return
	}
	bookID := chi.URLParam(r, "bookId")
	opts, err := s.deps.Catalog.Stream(requestContext(r), provider(r), bookID, n)
	if err != nil {
		s.writeCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, streamResponse{BookID: bookID, Episode: n, Qualities: opts})
}
