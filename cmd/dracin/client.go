package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vmunix/dracin/pkg/normalize"
)

// Client wraps HTTP calls to the dracind server.
type Client struct {
	baseURL    string
	provider   string
	httpClient *http.Client
}

// NewClient creates a new dracind API client. A non-empty provider is sent
// with every request.
func NewClient(serverURL, provider string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(serverURL, "/"),
		provider: provider,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) get(path string, query url.Values, result any) error {
	if query == nil {
		query = url.Values{}
	}
	if c.provider != "" {
		query.Set("provider", c.provider)
	}
	target := c.baseURL + path
	if qs := query.Encode(); qs != "" {
		target += "?" + qs
	}

	resp, err := c.httpClient.Get(target)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("server error %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

// API response types (mirror server types)

type StatusResponse struct {
	Status          string   `json:"status"`
	Version         string   `json:"version"`
	Providers       []string `json:"providers"`
	DefaultProvider string   `json:"defaultProvider"`
}

type DramaListResponse struct {
	Items []normalize.Drama `json:"items"`
	Total int               `json:"total"`
	Page  int               `json:"page,omitempty"`
}

type CategoryListResponse struct {
	Items []normalize.Category `json:"items"`
	Total int                  `json:"total"`
}

type EpisodeListResponse struct {
	BookID string              `json:"bookId"`
	Items  []normalize.Episode `json:"items"`
	Total  int                 `json:"total"`
}

type StreamResponse struct {
	BookID    string                    `json:"bookId"`
	Episode   int                       `json:"episode"`
	Qualities []normalize.QualityOption `json:"qualities"`
}

type LookupResponse struct {
	Drama      normalize.Drama `json:"drama"`
	MatchedOn  string          `json:"matchedOn"`
	Score      float64         `json:"score"`
	Confidence string          `json:"confidence"`
}

func pageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}
	return url.Values{"page": {strconv.Itoa(page)}}
}

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// List fetches a paged drama listing: home, recommend or vip.
func (c *Client) List(listing string, page int) (*DramaListResponse, error) {
	var resp DramaListResponse
	if err := c.get("/api/v1/"+listing, pageQuery(page), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Type fetches a listing by type name or numeric category id.
func (c *Client) Type(kind string, page int) (*DramaListResponse, error) {
	var resp DramaListResponse
	if err := c.get("/api/v1/types/"+url.PathEscape(kind), pageQuery(page), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Category(id, page int) (*DramaListResponse, error) {
	var resp DramaListResponse
	if err := c.get("/api/v1/categories/"+strconv.Itoa(id), pageQuery(page), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Categories() (*CategoryListResponse, error) {
	var resp CategoryListResponse
	if err := c.get("/api/v1/categories", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Search(query string) (*DramaListResponse, error) {
	var resp DramaListResponse
	if err := c.get("/api/v1/search", url.Values{"q": {query}}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Lookup(title string) (*LookupResponse, error) {
	var resp LookupResponse
	if err := c.get("/api/v1/lookup", url.Values{"title": {title}}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Drama(bookID string) (*normalize.Drama, error) {
	var resp normalize.Drama
	if err := c.get("/api/v1/dramas/"+url.PathEscape(bookID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Episodes(bookID string) (*EpisodeListResponse, error) {
	var resp EpisodeListResponse
	if err := c.get("/api/v1/dramas/"+url.PathEscape(bookID)+"/episodes", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Episode(bookID string, n int) (*normalize.Episode, error) {
	var resp normalize.Episode
	if err := c.get(fmt.Sprintf("/api/v1/dramas/%s/episodes/%d", url.PathEscape(bookID), n), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Stream(bookID string, n int) (*StreamResponse, error) {
	var resp StreamResponse
	if err := c.get(fmt.Sprintf("/api/v1/dramas/%s/episodes/%d/stream", url.PathEscape(bookID), n), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
