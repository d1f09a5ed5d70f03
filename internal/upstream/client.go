// Package upstream forwards catalog requests to third-party drama APIs.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultUserAgent is sent on every outbound request unless overridden.
const DefaultUserAgent = "Dracin-Stream/2.0"

const defaultTimeout = 15 * time.Second

// maxBodySize bounds how much of an upstream response is read.
const maxBodySize = 16 << 20

// ErrUnknownProvider is returned when a request names a provider that is
// not configured.
var ErrUnknownProvider = errors.New("unknown provider")

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	Code   int
	Status string
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream error: %s", e.Status)
}

// Response is a raw upstream response.
type Response struct {
	StatusCode int
	Body       []byte
}

// Client resolves provider URLs and performs single-attempt GETs.
// The provider table is fixed at construction.
type Client struct {
	providers       map[string]string
	defaultProvider string
	userAgent       string
	httpClient      *http.Client
	log             *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d}
		}
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a client for the given provider base URLs. defaultProvider
// is used when a request does not name one.
func New(providers map[string]string, defaultProvider string, opts ...Option) (*Client, error) {
	if len(providers) == 0 {
		return nil, errors.New("no providers configured")
	}
	table := make(map[string]string, len(providers))
	for name, base := range providers {
		base = strings.TrimRight(strings.TrimSpace(base), "/")
		if _, err := url.ParseRequestURI(base); err != nil {
			return nil, fmt.Errorf("provider %s: invalid url: %w", name, err)
		}
		table[name] = base
	}
	if _, ok := table[defaultProvider]; !ok {
		return nil, fmt.Errorf("default provider %q: %w", defaultProvider, ErrUnknownProvider)
	}

	c := &Client{
		providers:       table,
		defaultProvider: defaultProvider,
		userAgent:       DefaultUserAgent,
		httpClient:      &http.Client{Timeout: defaultTimeout},
		log:             slog.Default().With("component", "upstream"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Providers returns the configured provider names, sorted.
func (c *Client) Providers() []string {
	names := make([]string, 0, len(c.providers))
	for name := range c.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultProvider returns the provider used when none is requested.
func (c *Client) DefaultProvider() string {
	return c.defaultProvider
}

// Resolve builds the upstream URL for a logical path. The "path" and
// "provider" query keys are routing parameters and are not forwarded.
func (c *Client) Resolve(provider, path string, query url.Values) (string, error) {
	if provider == "" {
		provider = c.defaultProvider
	}
	base, ok := c.providers[provider]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}

	forward := url.Values{}
	for k, vs := range query {
		if k == "path" || k == "provider" {
			continue
		}
		forward[k] = vs
	}

	target := base + "/" + strings.TrimLeft(path, "/")
	if qs := forward.Encode(); qs != "" {
		target += "?" + qs
	}
	return target, nil
}

// Fetch performs one GET against the resolved URL and returns the raw
// response whatever its status. Only transport failures are errors.
func (c *Client) Fetch(ctx context.Context, provider, path string, query url.Values) (*Response, error) {
	target, err := c.Resolve(provider, path, query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID(ctx))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.log.Debug("upstream request",
		"provider", providerName(provider, c.defaultProvider),
		"url", target,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// Get fetches a path and decodes its JSON body, applying Unwrap. Non-2xx
// responses are reported as *StatusError.
func (c *Client) Get(ctx context.Context, provider, path string, query url.Values) (any, error) {
	resp, err := c.Fetch(ctx, provider, path, query)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Code:   resp.StatusCode,
			Status: fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			URL:    path,
		}
	}
	v, err := Decode(resp.Body)
	if err != nil {
		return nil, err
	}
	return Unwrap(v), nil
}

// Decode parses a JSON document keeping numbers as json.Number so large
// identifiers are not rounded.
func Decode(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return v, nil
}

// Unwrap strips the { data, success, statusCode } envelope. Objects that
// carry both info and data (the download shape) are returned whole.
func Unwrap(v any) any {
	obj, ok := v.(map[string]any)
	if !ok {
		return v
	}
	data, hasData := obj["data"]
	if !hasData {
		return v
	}
	if info, hasInfo := obj["info"]; hasInfo && info != nil {
		return v
	}
	return data
}

type requestIDKey struct{}

// WithRequestID attaches an id that Fetch forwards as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

func providerName(p, def string) string {
	if p == "" {
		return def
	}
	return p
}
