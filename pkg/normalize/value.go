package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Object is a decoded upstream JSON object. Values are whatever
// encoding/json produces (with or without UseNumber), so numbers may be
// float64 or json.Number. Plain Go ints are accepted as well.
type Object map[string]any

// AsObject returns v as an Object if it is a JSON object.
func AsObject(v any) (Object, bool) {
	switch o := v.(type) {
	case Object:
		return o, o != nil
	case map[string]any:
		return Object(o), o != nil
	}
	return nil, false
}

// AsList returns v as a slice if it is a JSON array.
func AsList(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

// present reports whether v counts as a defined value for fallback purposes.
// Null and blank strings are treated as absent.
func present(v any) bool {
	switch s := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(s) != ""
	}
	return true
}

// first returns the first present value among keys.
func (o Object) first(keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := o[k]; ok && present(v) {
			return v, true
		}
	}
	return nil, false
}

// toString renders scalar values as strings. Numbers never use exponent
// notation so large numeric IDs survive intact.
func toString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s), true
	case json.Number:
		return s.String(), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case bool:
		return strconv.FormatBool(s), true
	}
	return "", false
}

// toFloat converts numbers and numeric strings.
func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// toInt converts numbers and numeric strings, rounding fractions.
func toInt(v any) (int, bool) {
	f, ok := toFloat(v)
	if !ok || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(math.Round(f)), true
}

func (o Object) stringOr(keys []string, def string) string {
	if v, ok := o.first(keys); ok {
		if s, ok := toString(v); ok && s != "" {
			return s
		}
	}
	return def
}

func (o Object) intOr(keys []string, def int) int {
	if n, ok := o.optInt(keys); ok {
		return n
	}
	return def
}

// optInt resolves a non-negative integer, distinguishing unknown from zero.
func (o Object) optInt(keys []string) (int, bool) {
	v, ok := o.first(keys)
	if !ok {
		return 0, false
	}
	n, ok := toInt(v)
	if !ok || n < 0 {
		return 0, false
	}
	return n, true
}
