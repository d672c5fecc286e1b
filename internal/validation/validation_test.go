package validation

import (
	"testing"
	"time"

	"github.com/tallyhq/tally/internal/models"
)

func habit(id, name string) models.Habit {
	return models.Habit{ID: id, Name: name, CreatedAt: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)}
}

func TestValidateHabits_CleanCollection(t *testing.T) {
	validator := New()

	end := "2026-06-30"
	habits := []models.Habit{
		habit("h1", "Read"),
		{ID: "h2", Name: "Run", CreatedAt: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
			Weekdays: []time.Weekday{time.Monday, time.Wednesday}, EndDate: &end},
	}

	result := validator.ValidateHabits(habits)
	if result.HasConflicts() {
		t.Errorf("Expected no conflicts, got: %s", result.FormatReport())
	}
}

func TestValidateHabits_DetectsDuplicateNames(t *testing.T) {
	validator := New()

	habits := []models.Habit{habit("h1", "Read"), habit("h2", "Read")}

	result := validator.ValidateHabits(habits)
	if !result.HasConflicts() {
		t.Fatal("Expected duplicate name conflict")
	}
	if result.Conflicts[0].Type != ConflictDuplicateHabitName {
		t.Errorf("Expected %s, got %s", ConflictDuplicateHabitName, result.Conflicts[0].Type)
	}
}

func TestValidateHabits_IgnoresDeletedDuplicates(t *testing.T) {
	validator := New()

	deleted := habit("h1", "Read")
	now := time.Now()
	deleted.DeletedAt = &now

	result := validator.ValidateHabits([]models.Habit{deleted, habit("h2", "Read")})
	if result.HasConflicts() {
		t.Errorf("Deleted habit should not count toward duplicates: %s", result.FormatReport())
	}
}

func TestValidateHabits_DetectsEndBeforeCreation(t *testing.T) {
	validator := New()

	h := habit("h1", "Read")
	end := "2025-12-01"
	h.EndDate = &end

	result := validator.ValidateHabits([]models.Habit{h})
	if !result.HasConflicts() {
		t.Fatal("Expected end-before-start conflict")
	}
	if result.Conflicts[0].Type != ConflictExpiredBeforeStart {
		t.Errorf("Expected %s, got %s", ConflictExpiredBeforeStart, result.Conflicts[0].Type)
	}
}

func TestValidateHabits_DetectsBadDates(t *testing.T) {
	validator := New()

	h := habit("h1", "Read")
	bad := "tomorrow"
	h.PausedUntil = &bad

	result := validator.ValidateHabits([]models.Habit{h})
	if !result.HasConflicts() {
		t.Fatal("Expected invalid date conflict")
	}
	if result.Conflicts[0].Type != ConflictInvalidDate {
		t.Errorf("Expected %s, got %s", ConflictInvalidDate, result.Conflicts[0].Type)
	}
}

func TestValidateCompletions_DetectsOrphans(t *testing.T) {
	validator := New()

	completions := []models.Completion{
		{ID: "c1", HabitID: "missing", Day: "2026-03-15"},
	}

	result := validator.ValidateCompletions([]models.Habit{habit("h1", "Read")}, completions)
	if !result.HasConflicts() {
		t.Fatal("Expected orphaned completion conflict")
	}
	if result.Conflicts[0].Type != ConflictOrphanedCompletion {
		t.Errorf("Expected %s, got %s", ConflictOrphanedCompletion, result.Conflicts[0].Type)
	}
}

func TestValidateCompletions_DetectsDuplicateDays(t *testing.T) {
	validator := New()

	completions := []models.Completion{
		{ID: "c1", HabitID: "h1", Day: "2026-03-15"},
		{ID: "c2", HabitID: "h1", Day: "2026-03-15"},
	}

	result := validator.ValidateCompletions([]models.Habit{habit("h1", "Read")}, completions)
	if !result.HasConflicts() {
		t.Fatal("Expected duplicate day conflict")
	}
	if result.Conflicts[0].Type != ConflictDuplicateDay {
		t.Errorf("Expected %s, got %s", ConflictDuplicateDay, result.Conflicts[0].Type)
	}
}

func TestValidateHabitParams(t *testing.T) {
	end := "2026-06-30"
	bad := "soon"

	cases := []struct {
		name     string
		habit    string
		weekdays []time.Weekday
		endDate  *string
		duration int
		wantErr  bool
	}{
		{"valid daily", "Read", nil, nil, 0, false},
		{"valid weekly with end", "Run", []time.Weekday{time.Monday}, &end, 0, false},
		{"valid duration", "Stretch", nil, nil, 30, false},
		{"empty name", "", nil, nil, 0, true},
		{"bad weekday", "Read", []time.Weekday{time.Weekday(7)}, nil, 0, true},
		{"bad end date", "Read", nil, &bad, 0, true},
		{"negative duration", "Read", nil, nil, -1, true},
		{"end date and duration", "Read", nil, &end, 10, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateHabitParams(tc.habit, tc.weekdays, tc.endDate, tc.duration)
			if tc.wantErr && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
