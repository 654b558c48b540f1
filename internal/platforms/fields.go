package platforms

import (
	"encoding/json"
	"time"
)

// Safe accessors for loosely-typed platform records. Each tries the given
// keys in order and returns the first value of a usable type; a missing or
// mistyped field yields the zero value and false, never a panic.

func stringField(m map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if s, ok := m[key].(string); ok {
			return s, true
		}
	}
	return "", false
}

func intField(m map[string]any, keys ...string) (int, bool) {
	for _, key := range keys {
		switch v := m[key].(type) {
		case int:
			return v, true
		case int64:
			return int(v), true
		case float64:
			return int(v), true
		case json.Number:
			if n, err := v.Int64(); err == nil {
				return int(n), true
			}
		}
	}
	return 0, false
}

// timeField accepts time.Time values, RFC3339 strings, and Unix-second
// numbers (Reddit-style float epochs included).
func timeField(m map[string]any, keys ...string) (time.Time, bool) {
	for _, key := range keys {
		switch v := m[key].(type) {
		case time.Time:
			return v, true
		case string:
			if t, err := time.Parse(time.RFC3339, v); err == nil {
				return t, true
			}
		case float64:
			return time.Unix(int64(v), 0).UTC(), true
		case int64:
			return time.Unix(v, 0).UTC(), true
		case int:
			return time.Unix(int64(v), 0).UTC(), true
		case json.Number:
			if n, err := v.Int64(); err == nil {
				return time.Unix(n, 0).UTC(), true
			}
		}
	}
	return time.Time{}, false
}
