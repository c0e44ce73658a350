package repository

import (
	"reflect"
	"testing"
	"time"
)

func TestSanitizePartialUpdate(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	t.Run("strips id attribute", func(t *testing.T) {
		got := sanitizePartialUpdate(map[string]any{
			"id":     "est-1",
			"status": "sent",
		})
		if _, ok := got["id"]; ok {
			t.Fatalf("expected id to be stripped, got %v", got)
		}
		if got["status"] != "sent" {
			t.Fatalf("expected status to survive, got %v", got)
		}
	})

	t.Run("drops nil values recursively", func(t *testing.T) {
		got := sanitizePartialUpdate(map[string]any{
			"total_amount": 4650.0,
			"notes":        nil,
			"specs": map[string]any{
				"height": 10.0,
				"width":  nil,
			},
			"tags": []any{"a", nil, "b"},
		})
		want := map[string]any{
			"total_amount": 4650.0,
			"specs":        map[string]any{"height": 10.0},
			"tags":         []any{"a", "b"},
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("preserves time values", func(t *testing.T) {
		ptr := now.Add(24 * time.Hour)
		got := sanitizePartialUpdate(map[string]any{
			"start_date": now,
			"end_date":   &ptr,
		})
		if got["start_date"] != now {
			t.Fatalf("expected start_date %v, got %v", now, got["start_date"])
		}
		if got["end_date"] != ptr {
			t.Fatalf("expected end_date %v, got %v", ptr, got["end_date"])
		}
	})

	t.Run("drops nil time pointer", func(t *testing.T) {
		var ptr *time.Time
		got := sanitizePartialUpdate(map[string]any{
			"end_date": ptr,
			"status":   "draft",
		})
		if _, ok := got["end_date"]; ok {
			t.Fatalf("expected nil end_date to be dropped, got %v", got)
		}
	})

	t.Run("does not modify the input", func(t *testing.T) {
		in := map[string]any{
			"id":     "est-1",
			"status": "sent",
			"specs":  map[string]any{"height": nil},
		}
		_ = sanitizePartialUpdate(in)
		if len(in) != 3 {
			t.Fatalf("input map was modified: %v", in)
		}
		if _, ok := in["specs"].(map[string]any)["height"]; !ok {
			t.Fatalf("nested input map was modified: %v", in)
		}
	})
}
