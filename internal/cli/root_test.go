package cli

import (
	"testing"
	"time"

	"github.com/tallyhq/tally/internal/models"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []time.Weekday
		wantErr bool
	}{
		{"empty means every day", "", nil, false},
		{"short names", "mon,wed,fri", []time.Weekday{time.Monday, time.Wednesday, time.Friday}, false},
		{"full names", "sunday,saturday", []time.Weekday{time.Sunday, time.Saturday}, false},
		{"numbers", "0,6", []time.Weekday{time.Sunday, time.Saturday}, false},
		{"mixed case and spacing", " Mon , TUE ", []time.Weekday{time.Monday, time.Tuesday}, false},
		{"out of range number", "7", nil, true},
		{"garbage", "someday", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseWeekdays(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWeekdays(%q) unexpected error: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseWeekdays(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseWeekdays(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFormatSchedule(t *testing.T) {
	end := "2026-06-30"
	pause := "2026-04-01"

	tests := []struct {
		name  string
		habit models.Habit
		want  string
	}{
		{"daily", models.Habit{}, "daily"},
		{"weekdays", models.Habit{Weekdays: []time.Weekday{time.Monday, time.Friday}}, "Mon,Fri"},
		{"temporary", models.Habit{EndDate: &end}, "daily, until 2026-06-30"},
		{"paused", models.Habit{PausedUntil: &pause}, "daily, paused through 2026-04-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSchedule(tt.habit); got != tt.want {
				t.Errorf("FormatSchedule() = %q, want %q", got, tt.want)
			}
		})
	}
}
