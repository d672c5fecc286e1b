package analytics

import (
	"testing"
	"time"

	"github.com/tallyhq/tally/internal/models"
)

// 2026-03-20 is a Friday.
const friday = "2026-03-20"

func daySet(days ...string) DaySet {
	set := make(DaySet)
	for _, d := range days {
		set[d] = struct{}{}
	}
	return set
}

func TestCurrentStreakCompletedTodayAndYesterday(t *testing.T) {
	h := models.Habit{ID: "h1", Name: "Read"}
	completed := daySet(friday, addDays(friday, -1))

	if got := CurrentStreak(h, completed, friday); got != 2 {
		t.Errorf("expected streak 2, got %d", got)
	}
}

func TestCurrentStreakTodayMissDoesNotEraseYesterday(t *testing.T) {
	h := models.Habit{ID: "h1", Name: "Read"}
	completed := daySet(addDays(friday, -1))

	if got := CurrentStreak(h, completed, friday); got != 1 {
		t.Errorf("expected streak 1, got %d", got)
	}
}

func TestCurrentStreakZeroWhenInactiveToday(t *testing.T) {
	// Saturday-only habit checked on a Friday.
	h := models.Habit{ID: "h1", Name: "Hike", Weekdays: []time.Weekday{time.Saturday}}
	completed := daySet(addDays(friday, -6)) // previous Saturday

	if got := CurrentStreak(h, completed, friday); got != 0 {
		t.Errorf("expected 0 for a habit not scheduled on asOf, got %d", got)
	}
}

func TestCurrentStreakSkipsInactiveDays(t *testing.T) {
	// Mon/Wed/Fri habit completed on three consecutive scheduled days; the
	// Tue/Thu gaps must not break the streak.
	h := models.Habit{
		ID:       "h1",
		Name:     "Read",
		Weekdays: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
	}
	completed := daySet(friday, addDays(friday, -2), addDays(friday, -4)) // Fri, Wed, Mon

	if got := CurrentStreak(h, completed, friday); got != 3 {
		t.Errorf("expected streak 3 across inactive gaps, got %d", got)
	}
}

func TestCurrentStreakBrokenByActiveMiss(t *testing.T) {
	h := models.Habit{ID: "h1", Name: "Read"}
	// Completed today and two days ago, but missed yesterday.
	completed := daySet(friday, addDays(friday, -2))

	if got := CurrentStreak(h, completed, friday); got != 1 {
		t.Errorf("expected streak 1 after an active missed day, got %d", got)
	}
}

func TestCurrentStreakNoCompletions(t *testing.T) {
	h := models.Habit{ID: "h1", Name: "Read"}

	if got := CurrentStreak(h, daySet(), friday); got != 0 {
		t.Errorf("expected 0 for no completions, got %d", got)
	}
}

func TestCurrentStreakNonNegative(t *testing.T) {
	h := models.Habit{ID: "h1", Name: "Read", Weekdays: []time.Weekday{time.Friday}}
	sets := []DaySet{daySet(), daySet(friday), daySet(addDays(friday, -7))}

	for _, s := range sets {
		if got := CurrentStreak(h, s, friday); got < 0 {
			t.Errorf("streak must be non-negative, got %d", got)
		}
	}
}

func TestCurrentStreakCappedAtLookbackBound(t *testing.T) {
	h := models.Habit{ID: "h1", Name: "Read"}
	completed := make(DaySet)
	for i := 0; i < 500; i++ {
		completed[addDays(friday, -i)] = struct{}{}
	}

	if got := CurrentStreak(h, completed, friday); got != 365 {
		t.Errorf("expected streak capped at 365, got %d", got)
	}
}

func TestLongestStreak(t *testing.T) {
	tests := map[string]struct {
		days []string
		want int
	}{
		"empty":          {nil, 0},
		"single day":     {[]string{"2026-03-01"}, 1},
		"two runs":       {[]string{"2026-03-01", "2026-03-02", "2026-03-03", "2026-03-10", "2026-03-11"}, 3},
		"gap resets":     {[]string{"2026-03-01", "2026-03-03", "2026-03-05"}, 1},
		"month boundary": {[]string{"2026-02-27", "2026-02-28", "2026-03-01"}, 3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := LongestStreak(daySet(tt.days...)); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestLongestStreakIgnoresSchedule(t *testing.T) {
	// LongestStreak is purely gap-based: a Mon/Wed/Fri habit completing
	// Mon, Wed, Fri has no calendar-consecutive run longer than 1, even
	// though CurrentStreak would count all three.
	h := models.Habit{
		ID:       "h1",
		Name:     "Read",
		Weekdays: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
	}
	completed := daySet(friday, addDays(friday, -2), addDays(friday, -4))

	if got := LongestStreak(completed); got != 1 {
		t.Errorf("expected longest streak 1 (gap-based), got %d", got)
	}
	if got := CurrentStreak(h, completed, friday); got != 3 {
		t.Errorf("expected current streak 3 (activity-aware), got %d", got)
	}
}

func TestNewDaySet(t *testing.T) {
	completions := []models.Completion{
		{ID: "1", HabitID: "a", Day: "2026-03-01"},
		{ID: "2", HabitID: "a", Day: "2026-03-02"},
		{ID: "3", HabitID: "b", Day: "2026-03-01"},
	}

	set := NewDaySet(completions, "a")
	if len(set) != 2 {
		t.Fatalf("expected 2 days for habit a, got %d", len(set))
	}
	if !set.Contains("2026-03-01") || !set.Contains("2026-03-02") {
		t.Error("missing expected days")
	}
	if set.Contains("2026-03-03") {
		t.Error("unexpected day present")
	}
}
