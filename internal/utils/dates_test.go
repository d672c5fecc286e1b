package utils

import (
	"testing"
	"time"
)

func TestAddDays(t *testing.T) {
	tests := []struct {
		day  string
		n    int
		want string
	}{
		{"2026-03-15", 1, "2026-03-16"},
		{"2026-03-15", -1, "2026-03-14"},
		{"2026-02-28", 1, "2026-03-01"},
		{"2024-02-28", 1, "2024-02-29"}, // leap year
		{"2026-01-01", -1, "2025-12-31"},
		{"2026-03-15", 0, "2026-03-15"},
	}

	for _, tt := range tests {
		if got := AddDays(tt.day, tt.n); got != tt.want {
			t.Errorf("AddDays(%q, %d) = %q, want %q", tt.day, tt.n, got, tt.want)
		}
	}
}

func TestWeekday(t *testing.T) {
	// 2026-03-15 is a Sunday
	if got := Weekday("2026-03-15"); got != time.Sunday {
		t.Errorf("expected Sunday, got %v", got)
	}
	if got := Weekday("2026-03-18"); got != time.Wednesday {
		t.Errorf("expected Wednesday, got %v", got)
	}
}

func TestDaysBetween(t *testing.T) {
	if got := DaysBetween("2026-03-01", "2026-03-15"); got != 14 {
		t.Errorf("expected 14, got %d", got)
	}
	if got := DaysBetween("2026-03-15", "2026-03-01"); got != -14 {
		t.Errorf("expected -14, got %d", got)
	}
	if got := DaysBetween("2026-03-15", "2026-03-15"); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestValidDay(t *testing.T) {
	valid := []string{"2026-03-15", "2000-01-01", "1999-12-31"}
	for _, d := range valid {
		if !ValidDay(d) {
			t.Errorf("expected %q to be valid", d)
		}
	}

	invalid := []string{"", "2026-3-15", "03/15/2026", "2026-13-01", "yesterday"}
	for _, d := range invalid {
		if ValidDay(d) {
			t.Errorf("expected %q to be invalid", d)
		}
	}
}

func TestIsWeekend(t *testing.T) {
	if !IsWeekend("2026-03-14") { // Saturday
		t.Error("expected 2026-03-14 (Saturday) to be a weekend day")
	}
	if !IsWeekend("2026-03-15") { // Sunday
		t.Error("expected 2026-03-15 (Sunday) to be a weekend day")
	}
	if IsWeekend("2026-03-16") { // Monday
		t.Error("expected 2026-03-16 (Monday) to be a weekday")
	}
}
