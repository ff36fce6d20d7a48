package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Record is a flat campaign or submission row as persisted: snake_case keys,
// loosely typed values. Nested structures are either JSON text or values
// that were already decoded (maps, slices).
type Record map[string]any

// String returns the trimmed string value of key, or "" when absent.
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case []byte:
		return strings.TrimSpace(string(v))
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// Has reports whether key holds a non-empty value.
func (r Record) Has(key string) bool {
	switch v := r[key].(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case []byte:
		return len(v) > 0
	default:
		return true
	}
}

// Float returns the numeric value of key. ok is false when the value is
// present but not a number; an absent key yields (0, true).
func (r Record) Float(key string) (float64, bool) {
	var f float64
	switch v := r[key].(type) {
	case nil:
		return 0, true
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, true
		}
		parsed, err := strconv.ParseFloat(s, 64)
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

// Int is Float truncated toward zero.
func (r Record) Int(key string) (int64, bool) {
	f, ok := r.Float(key)
	return int64(f), ok
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Time parses key as a date. present is false when the key is absent or
// empty; err is set when a value is present but cannot be parsed.
func (r Record) Time(key string) (t time.Time, present bool, err error) {
	switch v := r[key].(type) {
	case nil:
		return time.Time{}, false, nil
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false, nil
		}
		return v.UTC(), true, nil
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false, nil
		}
		return v.UTC(), true, nil
	}

	s := r.String(key)
	if s == "" {
		return time.Time{}, false, nil
	}
	for _, layout := range dateLayouts {
		if t, err = time.Parse(layout, s); err == nil {
			return t.UTC(), true, nil
		}
	}
	return time.Time{}, true, fmt.Errorf("parse %s %q: %w", key, s, err)
}

// Strings returns key as a list of trimmed, non-empty strings. It accepts a
// JSON array, a decoded slice or a comma separated string. ok is false when
// the value is present but none of those.
func (r Record) Strings(key string) ([]string, bool) {
	var items []string
	switch v := r[key].(type) {
	case nil:
		return nil, true
	case []string:
		items = v
	case []any:
		for _, item := range v {
			if s, isString := item.(string); isString {
				items = append(items, s)
			} else if item != nil {
				items = append(items, fmt.Sprint(item))
			}
		}
	case string, []byte:
		s := r.String(key)
		if s == "null" {
			return nil, true
		}
		if strings.HasPrefix(s, "[") {
			res := Decode[[]string](s)
			if res.Err != nil {
				return nil, false
			}
			items = res.Value
		} else if s != "" {
			items = strings.Split(s, ",")
		}
	default:
		return nil, false
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil, true
	}
	return out, true
}
