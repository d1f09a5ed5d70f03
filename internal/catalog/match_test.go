package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Flash Marriage!", "flash marriage"},
		{"Love & War", "love and war"},
		{"Café: Reborn", "cafe reborn"},
		{"  The   CEO's  Wife ", "the ceo s wife"},
		{"霸道总裁", "霸道总裁"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTitle(tt.input))
		})
	}
}

func TestMatchTitle(t *testing.T) {
	candidates := []string{"Revenge of the Heiress", "The Heiress Returns", "Flash Marriage"}

	m := MatchTitle("the heiress returns", candidates)
	assert.Equal(t, 1, m.Index)
	assert.Equal(t, "The Heiress Returns", m.Title)
	assert.Equal(t, ConfidenceHigh, m.Confidence)
	assert.InDelta(t, 1.0, m.Score, 0.0001)
}

func TestMatchTitle_NoCandidates(t *testing.T) {
	m := MatchTitle("anything", nil)
	assert.Equal(t, -1, m.Index)
	assert.Equal(t, ConfidenceNone, m.Confidence)
}

func TestMatchTitle_EmptyQuery(t *testing.T) {
	m := MatchTitle("  !! ", []string{"A"})
	assert.Equal(t, -1, m.Index)
}

func TestMatchTitle_BelowThreshold(t *testing.T) {
	m := MatchTitle("zzzz", []string{"Flash Marriage"})
	assert.Equal(t, -1, m.Index)
	assert.Empty(t, m.Title)
	assert.Equal(t, ConfidenceNone, m.Confidence)
}

func TestConfidence_String(t *testing.T) {
	assert.Equal(t, "high", ConfidenceHigh.String())
	assert.Equal(t, "medium", ConfidenceMedium.String())
	assert.Equal(t, "low", ConfidenceLow.String())
	assert.Equal(t, "none", ConfidenceNone.String())
}
