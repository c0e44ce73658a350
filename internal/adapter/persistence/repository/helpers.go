package repository

import (
	"os"
	"strconv"
	"time"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// sanitizePartialUpdate prepares a partial-update payload for persistence:
// the id attribute is stripped (the key is never rewritten), nil values are
// dropped recursively, and time.Time values pass through untouched. The
// input map is not modified.
func sanitizePartialUpdate(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == "id" {
			continue
		}
		cleaned, keep := sanitizeValue(v)
		if keep {
			out[k] = cleaned
		}
	}
	return out
}

func sanitizeValue(v any) (any, bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case time.Time:
		return val, true
	case *time.Time:
		if val == nil {
			return nil, false
		}
		return *val, true
	case map[string]any:
		cleaned := make(map[string]any, len(val))
		for k, nested := range val {
			if c, keep := sanitizeValue(nested); keep {
				cleaned[k] = c
			}
		}
		return cleaned, true
	case []any:
		cleaned := make([]any, 0, len(val))
		for _, nested := range val {
			if c, keep := sanitizeValue(nested); keep {
				cleaned = append(cleaned, c)
			}
		}
		return cleaned, true
	default:
		return val, true
	}
}
