package schedule_test

import (
	"testing"
	"time"

	"task-suggestion-service/internal/suggestion/schedule"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load location %s: %v", name, err)
	}
	return loc
}

func TestFixedOffset(t *testing.T) {
	loc := mustLoad(t, "America/New_York")

	for _, now := range []time.Time{
		time.Now(),
		time.Date(2024, 3, 10, 6, 52, 37, 123456789, time.UTC), // around a DST switch in New York
		time.Date(2024, 12, 31, 23, 50, 59, 999000000, loc),
	} {
		got := schedule.FixedOffset(now, loc)

		if got.Second() != 0 || got.Nanosecond() != 0 {
			t.Errorf("expected zero seconds, got %v", got)
		}
		if got.Location() != loc {
			t.Errorf("expected location %v, got %v", loc, got.Location())
		}
		lead := got.Sub(now)
		if lead <= 14*time.Minute || lead >= 16*time.Minute {
			t.Errorf("expected lead in (14m, 16m), got %v", lead)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	loc := mustLoad(t, "America/New_York")
	got := schedule.FormatDateTime(time.Date(2024, 5, 1, 9, 15, 0, 0, loc))
	if want := "2024-05-01T09:15:00.000-04:00"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestResolve(t *testing.T) {
	loc := mustLoad(t, "America/New_York")
	now := time.Date(2024, 5, 1, 10, 7, 42, 0, loc) // Wednesday

	tests := []struct {
		name     string
		now      time.Time
		dateExpr string
		timeExpr string
		wantDate string
		wantTime string
	}{
		{name: "Both null", now: now, dateExpr: "null", timeExpr: "null", wantDate: "2024-05-01", wantTime: "10:37:00"},
		{name: "Null is case insensitive", now: now, dateExpr: "NULL", timeExpr: " Null ", wantDate: "2024-05-01", wantTime: "10:37:00"},
		{name: "Daypart later today", now: now, dateExpr: "null", timeExpr: "Evening", wantDate: "2024-05-01", wantTime: "18:00:00"},
		{name: "Daypart passed rolls over", now: now, dateExpr: "null", timeExpr: "morning", wantDate: "2024-05-02", wantTime: "09:00:00"},
		{name: "Night at 23:30 rolls to next day", now: time.Date(2024, 5, 1, 23, 30, 0, 0, loc), dateExpr: "null", timeExpr: "night", wantDate: "2024-05-02", wantTime: "21:00:00"},
		{name: "Free text time", now: now, dateExpr: "tomorrow", timeExpr: "5:30pm", wantDate: "2024-05-02", wantTime: "17:30:00"},
		{name: "Free text date", now: now, dateExpr: "next friday", timeExpr: "afternoon", wantDate: "2024-05-03", wantTime: "14:00:00"},
		{name: "Unparseable time falls back", now: now, dateExpr: "null", timeExpr: "whenever", wantDate: "2024-05-01", wantTime: "10:37:00"},
		{name: "Unparseable date falls back", now: now, dateExpr: "someday", timeExpr: "8pm", wantDate: "2024-05-01", wantTime: "20:00:00"},
		{name: "Date with time expression", now: now, dateExpr: "tomorrow at 7am", timeExpr: "null", wantDate: "2024-05-02", wantTime: "10:37:00"},
		{name: "Time with date expression", now: now, dateExpr: "null", timeExpr: "tomorrow at 7am", wantDate: "2024-05-02", wantTime: "07:00:00"},
		{name: "Default crossing midnight", now: time.Date(2024, 5, 1, 23, 45, 0, 0, loc), dateExpr: "null", timeExpr: "null", wantDate: "2024-05-02", wantTime: "00:15:00"},
		{name: "Exactly now rolls over", now: time.Date(2024, 5, 1, 18, 0, 0, 0, loc), dateExpr: "today", timeExpr: "evening", wantDate: "2024-05-02", wantTime: "18:00:00"},
		{name: "Date two days back lands on next occurrence", now: now, dateExpr: "2024-04-29", timeExpr: "9am", wantDate: "2024-05-02", wantTime: "09:00:00"},
		{name: "Past explicit date rolls once", now: now, dateExpr: "yesterday", timeExpr: "noon", wantDate: "2024-05-01", wantTime: "12:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schedule.Resolve(tt.now, loc, tt.dateExpr, tt.timeExpr)
			if got.Date != tt.wantDate || got.Time != tt.wantTime {
				t.Errorf("Resolve() = %s %s, want %s %s", got.Date, got.Time, tt.wantDate, tt.wantTime)
			}
			if got.At.Location() != loc {
				t.Errorf("expected instant in %v, got %v", loc, got.At.Location())
			}
		})
	}
}

func TestResolveTimezone(t *testing.T) {
	tokyo := mustLoad(t, "Asia/Tokyo")
	// 14:00 UTC is 23:00 in Tokyo, so "night" (21:00) has passed there.
	now := time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC)

	got := schedule.Resolve(now, tokyo, "null", "night")
	if got.Date != "2024-05-02" || got.Time != "21:00:00" {
		t.Errorf("got %s %s, want 2024-05-02 21:00:00", got.Date, got.Time)
	}
}

func TestResolveNeverInPast(t *testing.T) {
	loc := mustLoad(t, "Europe/London")
	exprs := []string{"null", "morning", "afternoon", "evening", "night", "noon", "midnight", "6am", "junk"}
	dates := []string{"null", "today", "yesterday", "junk"}

	for h := 0; h < 24; h++ {
		now := time.Date(2024, 10, 27, h, 59, 59, 0, loc) // DST ends in London
		for _, d := range dates {
			for _, e := range exprs {
				got := schedule.Resolve(now, loc, d, e)
				if !got.At.After(now) {
					t.Fatalf("Resolve(%v, %q, %q) = %v, not after now", now, d, e, got.At)
				}
			}
		}
	}
}

func TestResolveWallClockOnDSTDays(t *testing.T) {
	loc := mustLoad(t, "America/New_York")

	days := []struct {
		name string
		now  time.Time
		date string
		next string
	}{
		{"spring forward", time.Date(2025, 3, 9, 5, 0, 0, 0, loc), "2025-03-09", "2025-03-10"},
		{"fall back", time.Date(2025, 11, 2, 5, 0, 0, 0, loc), "2025-11-02", "2025-11-03"},
	}
	exprs := []struct {
		expr     string
		wantTime string
		nextDay  bool
	}{
		{"morning", "09:00:00", false},
		{"afternoon", "14:00:00", false},
		{"evening", "18:00:00", false},
		{"night", "21:00:00", false},
		{"noon", "12:00:00", false},
		{"midday", "12:00:00", false},
		{"9am", "09:00:00", false},
		{"midnight", "00:00:00", true},
	}

	for _, d := range days {
		for _, e := range exprs {
			t.Run(d.name+"/"+e.expr, func(t *testing.T) {
				got := schedule.Resolve(d.now, loc, "null", e.expr)

				wantDate := d.date
				if e.nextDay {
					wantDate = d.next
				}
				if got.Date != wantDate || got.Time != e.wantTime {
					t.Errorf("got %s %s, want %s %s", got.Date, got.Time, wantDate, e.wantTime)
				}
				if got.At.Location() != loc || got.At.Format(schedule.TimeLayout) != got.Time {
					t.Errorf("instant %v disagrees with formatted time %s", got.At, got.Time)
				}
			})
		}
	}
}
