package catalog

import (
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Confidence is how sure a title lookup is about its best candidate.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // Score < 0.70
	ConfidenceLow                      // Score >= 0.70
	ConfidenceMedium                   // Score >= 0.85
	ConfidenceHigh                     // Score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Match is the best candidate for a title lookup.
type Match struct {
	Index      int // position in the candidate list, -1 when nothing matched
	Title      string
	Score      float64 // Jaro-Winkler similarity of the cleaned titles
	Confidence Confidence
}

// CleanTitle folds a drama title for comparison: lowercase, accents
// removed, punctuation dropped, whitespace collapsed. Non-Latin scripts
// are kept as-is.
func CleanTitle(title string) string {
	s := strings.ToLower(removeAccents(title))
	s = strings.ReplaceAll(s, "&", " and ")

	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// MatchTitle picks the candidate most similar to query. Exact matches of
// the cleaned titles score 1.
func MatchTitle(query string, candidates []string) Match {
	best := Match{Index: -1}
	q := CleanTitle(query)
	if q == "" {
		return best
	}

	for i, c := range candidates {
		score := float64(edlib.JaroWinklerSimilarity(q, CleanTitle(c)))
		if score > best.Score {
			best = Match{Index: i, Title: c, Score: score}
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		return Match{Index: -1, Score: best.Score}
	}
	return best
}
