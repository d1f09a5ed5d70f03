// internal/api/v1/types.go
package v1

import "github.com/vmunix/dracin/pkg/normalize"

// dramaListResponse is the response for drama listings.
type dramaListResponse struct {
	Items []normalize.Drama `json:"items"`
	Total int               `json:"total"`
	Page  int               `json:"page,omitempty"`
}

type categoryListResponse struct {
	Items []normalize.Category `json:"items"`
	Total int                  `json:"total"`
}

type episodeListResponse struct {
	BookID string              `json:"bookId"`
	Items  []normalize.Episode `json:"items"`
	Total  int                 `json:"total"`
}

// streamResponse is the response for GET /dramas/{bookId}/episodes/{n}/stream.
type streamResponse struct {
	BookID    string                    `json:"bookId"`
	Episode   int                       `json:"episode"`
	Qualities []normalize.QualityOption `json:"qualities"`
}

// lookupResponse is the response for GET /lookup.
type lookupResponse struct {
	Drama      normalize.Drama `json:"drama"`
	MatchedOn  string          `json:"matchedOn"`
	Score      float64         `json:"score"`
	Confidence string          `json:"confidence"`
}

// statusResponse is the response for GET /status.
type statusResponse struct {
	Status          string   `json:"status"`
	Version         string   `json:"version"`
	Providers       []string `json:"providers"`
	DefaultProvider string   `json:"defaultProvider"`
}
