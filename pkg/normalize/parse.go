package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	maxRating = 10.0
	minYear   = 1900
	maxYear   = 2100
)

// viewCountPattern matches abbreviated counts such as "1.2M", "750k" or "42".
var viewCountPattern = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*([MK])?$`)

// ParseViewCount converts an upstream view count to an integer. Numbers are
// rounded; strings may carry an M (millions) or K (thousands) suffix.
// Negative numbers and anything unparseable report ok=false.
func ParseViewCount(v any) (int64, bool) {
	if s, isString := v.(string); isString {
		m := viewCountPattern.FindStringSubmatch(strings.TrimSpace(s))
		if m == nil {
			return 0, false
		}
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		switch strings.ToUpper(m[2]) {
		case "M":
			n *= 1_000_000
		case "K":
			n *= 1_000
		}
		return roundCount(n)
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, false
	}
	return roundCount(f)
}

// roundCount rejects values that do not fit a non-negative int64.
func roundCount(f float64) (int64, bool) {
	f = math.Round(f)
	if f < 0 || f >= math.MaxInt64 || math.IsNaN(f) {
		return 0, false
	}
	return int64(f), true
}

// ParseRating clamps an upstream rating to the 0-10 display scale.
// Non-numeric input yields 0.
func ParseRating(v any) float64 {
	f, ok := toFloat(v)
	if !ok {
		return 0
	}
	return math.Max(0, math.Min(maxRating, f))
}

// ParseYear accepts integers, numeric strings and dates starting with a
// four-digit year. Values outside 1900-2100 yield 0.
func ParseYear(v any) int {
	var year int
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if len(s) < 4 {
			return 0
		}
		n, err := strconv.Atoi(s[:4])
		if err != nil {
			return 0
		}
		year = n
	} else {
		n, ok := toInt(v)
		if !ok {
			return 0
		}
		year = n
	}
	if year < minYear || year > maxYear {
		return 0
	}
	return year
}

// FixURL turns protocol-relative, plain-http and scheme-less host URLs into
// absolute https URLs. Relative paths without a host are returned unchanged.
func FixURL(raw string) string {
	s := strings.TrimSpace(raw)
	lower := strings.ToLower(s)
	switch {
	case s == "":
		return ""
	case strings.HasPrefix(lower, "https://"):
		return s
	case strings.HasPrefix(s, "//"):
		return "https:" + s
	case strings.HasPrefix(lower, "http://"):
		return "https://" + s[len("http://"):]
	case strings.HasPrefix(lower, "https:"):
		return "https://" + strings.TrimLeft(s[len("https:"):], "/")
	case strings.HasPrefix(lower, "http:"):
		return "https://" + strings.TrimLeft(s[len("http:"):], "/")
	case looksLikeHost(s):
		return "https://" + s
	}
	return s
}

// looksLikeHost reports whether the first path segment is a dotted host name.
func looksLikeHost(s string) bool {
	if strings.HasPrefix(s, "/") || strings.HasPrefix(s, ".") {
		return false
	}
	host, _, hasPath := strings.Cut(s, "/")
	if !hasPath && strings.Count(host, ".") < 2 {
		return false
	}
	if strings.Contains(host, ":") {
		host, _, _ = strings.Cut(host, ":")
	}
	dot := strings.LastIndexByte(host, '.')
	if dot <= 0 || dot == len(host)-1 {
		return false
	}
	tld := host[dot+1:]
	for _, r := range tld {
		if r < 'a' || r > 'z' {
			if r < 'A' || r > 'Z' {
				return false
			}
		}
	}
	return true
}

// cleanText trims and NFC-normalizes free text from upstreams.
func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
