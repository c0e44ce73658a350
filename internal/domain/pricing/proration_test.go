package pricing

import (
	"math"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestProratedPrice(t *testing.T) {
	t.Run("full single month", func(t *testing.T) {
		got, err := ProratedPrice(3000, date(2024, time.January, 1), date(2024, time.January, 31))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(got, 3000) {
			t.Fatalf("expected 3000, got %v", got)
		}
	})

	t.Run("partial months across leap february", func(t *testing.T) {
		got, err := ProratedPrice(3000, date(2024, time.January, 15), date(2024, time.February, 14))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := (3000.0/31)*17 + (3000.0/29)*14
		if !almostEqual(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("partial months across non-leap february", func(t *testing.T) {
		got, err := ProratedPrice(3000, date(2023, time.January, 15), date(2023, time.February, 14))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := (3000.0/31)*17 + (3000.0/28)*14
		if !almostEqual(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("single day", func(t *testing.T) {
		got, err := ProratedPrice(3100, date(2024, time.January, 1), date(2024, time.January, 1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(got, 3100.0/31) {
			t.Fatalf("expected %v, got %v", 3100.0/31, got)
		}
	})

	t.Run("year boundary", func(t *testing.T) {
		got, err := ProratedPrice(3000, date(2023, time.December, 1), date(2024, time.January, 31))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(got, 6000) {
			t.Fatalf("expected 6000, got %v", got)
		}
	})

	t.Run("multi year", func(t *testing.T) {
		got, err := ProratedPrice(1000, date(2023, time.December, 16), date(2025, time.January, 15))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 16 of 31 December days, all of 2024, 15 of 31 January days.
		want := (1000.0/31)*16 + 12000.0 + (1000.0/31)*15
		if !almostEqual(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		if _, err := ProratedPrice(3000, date(2024, time.March, 2), date(2024, time.March, 1)); err != ErrInvalidDateRange {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})
}

func TestInclusiveDays(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"same day", date(2024, time.May, 1), date(2024, time.May, 1), 1},
		{"full january", date(2024, time.January, 1), date(2024, time.January, 31), 31},
		{"leap year", date(2024, time.January, 1), date(2024, time.December, 31), 366},
		{"across dst-free utc months", date(2024, time.March, 15), date(2024, time.April, 14), 31},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := InclusiveDays(tc.start, tc.end); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestRoundToCents(t *testing.T) {
	if got := RoundToCents(10.005); !almostEqual(got, 10.01) {
		t.Fatalf("expected 10.01, got %v", got)
	}
	if got := RoundToCents(96.774193548); !almostEqual(got, 96.77) {
		t.Fatalf("expected 96.77, got %v", got)
	}
}
