package command

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Fields is the extracted data map a handler receives. Values arrive as
// whatever JSON shape the extractor produced, so accessors coerce the
// common cases instead of assuming a type.
type Fields map[string]interface{}

// String returns the field as a trimmed string, with ok reporting presence
// of a non-empty value.
func (f Fields) String(key string) (string, bool) {
	v, ok := f[key]
	if !ok || v == nil {
		return "", false
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(t)
	default:
		s = fmt.Sprintf("%v", t)
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Float returns the field as a float64, accepting numeric strings with
// common thousands separators stripped.
func (f Fields) Float(key string) (float64, bool) {
	v, ok := f[key]
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		cleaned := strings.NewReplacer(",", "", " ", "").Replace(strings.TrimSpace(t))
		n, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// Int returns the field as an int.
func (f Fields) Int(key string) (int, bool) {
	n, ok := f.Float(key)
	if !ok {
		return 0, false
	}
	return int(n), true
}

// Date returns the field parsed from the canonical YYYY-MM-DD form.
func (f Fields) Date(key string) (time.Time, bool) {
	s, ok := f.String(key)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// StringSlice returns the field as a list of strings. A scalar string is
// split on commas so "cost, compliance" and ["cost","compliance"] read the
// same.
func (f Fields) StringSlice(key string) ([]string, bool) {
	v, ok := f[key]
	if !ok || v == nil {
		return nil, false
	}
	switch t := v.(type) {
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s := strings.TrimSpace(fmt.Sprintf("%v", item)); s != "" {
				out = append(out, s)
			}
		}
		return out, len(out) > 0
	case string:
		parts := strings.Split(t, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				out = append(out, s)
			}
		}
		return out, len(out) > 0
	}
	return nil, false
}

// Has reports whether the field is present with a non-empty value.
func (f Fields) Has(key string) bool {
	v, ok := f[key]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr {
		return strings.TrimSpace(s) != ""
	}
	if arr, isArr := v.([]interface{}); isArr {
		return len(arr) > 0
	}
	return true
}
