package proxy_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/dracin/internal/api/proxy"
	"github.com/vmunix/dracin/internal/upstream"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newProxy wires a proxy in front of a fake upstream and returns the router.
func newProxy(t *testing.T, upstreamHandler http.HandlerFunc) http.Handler {
	t.Helper()
	srv := httptest.NewServer(upstreamHandler)
	t.Cleanup(srv.Close)

	client, err := upstream.New(map[string]string{
		"secondary": srv.URL + "/api",
		"mirror":    srv.URL + "/mirror",
	}, "secondary", upstream.WithLogger(testLogger()))
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(proxy.CORS)
	proxy.New(client, testLogger()).RegisterRoutes(r)
	return r
}

func TestProxy_ForwardsPathAndQuery(t *testing.T) {
	var gotPath, gotQuery string
	h := newProxy(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"data":[{"bookId":"1"}],"success":true}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/search?keyword=ceo&provider=secondary", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/api/search", gotPath)
	assert.Equal(t, "keyword=ceo", gotQuery)
	assert.JSONEq(t, `{"data":[{"bookId":"1"}],"success":true}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestProxy_SelectsProvider(t *testing.T) {
	var gotPath string
	h := newProxy(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/home?provider=mirror", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/mirror/home", gotPath)
}

func TestProxy_MirrorsStatus(t *testing.T) {
	h := newProxy(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"book not found"}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/download/42", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"book not found"}`, rec.Body.String())
}

func TestProxy_InvalidJSON(t *testing.T) {
	h := newProxy(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/home", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "Proxy error")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestProxy_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := upstream.New(map[string]string{"secondary": url}, "secondary", upstream.WithLogger(testLogger()))
	require.NoError(t, err)
	r := chi.NewRouter()
	r.Use(proxy.CORS)
	proxy.New(client, testLogger()).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/home", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Proxy error"}`, rec.Body.String())
}

func TestProxy_UnknownProvider(t *testing.T) {
	h := newProxy(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/home?provider=nope", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown provider")
}

func TestProxy_ForwardsRequestID(t *testing.T) {
	var gotID string
	h := newProxy(t, func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`{}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/home", nil)
	req.Header.Set("X-Request-Id", "req-123")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "req-123", gotID)
}

func TestCORS_Preflight(t *testing.T) {
	h := newProxy(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream should not be called")
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/home", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Empty(t, rec.Body.String())
}
