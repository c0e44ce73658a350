package pricing

import "time"

// Accepted string layouts for date coercion, tried in order.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// CoerceDate converts a value of unknown shape into a canonical time.Time.
//
// Dates cross the persistence boundary in several historical shapes:
// native time.Time, RFC3339 (or date-only) strings, and timestamp-like
// maps exposing epoch seconds. CoerceDate accepts all of them and reports
// ok=false for nil, zero, or unrecognized values. It never panics.
func CoerceDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return d, true
	case *time.Time:
		if d == nil || d.IsZero() {
			return time.Time{}, false
		}
		return *d, true
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case map[string]any:
		for _, key := range []string{"seconds", "_seconds"} {
			if sec, ok := epochSeconds(d[key]); ok {
				return time.Unix(sec, 0).UTC(), true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func epochSeconds(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
