package validation

import (
	"fmt"
	"time"

	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateHabitName ConflictType = "duplicate_habit_name"
	ConflictInvalidWeekday     ConflictType = "invalid_weekday"
	ConflictInvalidDate        ConflictType = "invalid_date"
	ConflictExpiredBeforeStart ConflictType = "expired_before_start"
	ConflictOrphanedCompletion ConflictType = "orphaned_completion"
	ConflictDuplicateDay       ConflictType = "duplicate_day"
)

// Conflict represents a detected problem in the stored collections
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // Habit names involved
	HabitIDs    []string // IDs of habits involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks habits and completions for integrity problems
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateHabits checks the habit collection for conflicts. Soft-deleted
// habits are skipped except where noted.
func (v *Validator) ValidateHabits(habits []models.Habit) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	nameIDs := make(map[string][]string)
	for _, h := range habits {
		if h.IsDeleted() || h.Name == "" {
			continue
		}
		nameIDs[h.Name] = append(nameIDs[h.Name], h.ID)
	}
	for name, ids := range nameIDs {
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateHabitName,
				Description: fmt.Sprintf("Duplicate habit name: \"%s\" (IDs: %v)", name, ids),
				Items:       []string{name},
				HabitIDs:    ids,
			})
		}
	}

	for _, h := range habits {
		if h.IsDeleted() {
			continue
		}

		for _, wd := range h.Weekdays {
			if wd < time.Sunday || wd > time.Saturday {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidWeekday,
					Description: fmt.Sprintf("Habit \"%s\" has invalid weekday: %d", h.Name, int(wd)),
					Items:       []string{h.Name},
					HabitIDs:    []string{h.ID},
				})
			}
		}

		if h.EndDate != nil {
			if !utils.ValidDay(*h.EndDate) {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidDate,
					Description: fmt.Sprintf("Habit \"%s\" has invalid end date: %s", h.Name, *h.EndDate),
					Items:       []string{h.Name},
					HabitIDs:    []string{h.ID},
				})
			} else if *h.EndDate < utils.FormatDay(h.CreatedAt) {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictExpiredBeforeStart,
					Description: fmt.Sprintf("Habit \"%s\" ends (%s) before it was created (%s)", h.Name, *h.EndDate, utils.FormatDay(h.CreatedAt)),
					Items:       []string{h.Name},
					HabitIDs:    []string{h.ID},
				})
			}
		}

		if h.PausedUntil != nil && !utils.ValidDay(*h.PausedUntil) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Habit \"%s\" has invalid pause date: %s", h.Name, *h.PausedUntil),
				Items:       []string{h.Name},
				HabitIDs:    []string{h.ID},
			})
		}
	}

	return result
}

// ValidateCompletions cross-checks completion records against the habit
// collection. Records for soft-deleted habits are fine; records for habits
// that do not exist at all are not.
func (v *Validator) ValidateCompletions(habits []models.Habit, completions []models.Completion) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	known := make(map[string]string, len(habits))
	for _, h := range habits {
		known[h.ID] = h.Name
	}

	seen := make(map[string]bool, len(completions))
	for _, c := range completions {
		if _, ok := known[c.HabitID]; !ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictOrphanedCompletion,
				Description: fmt.Sprintf("Completion %s references missing habit ID: %s", c.ID, c.HabitID),
				HabitIDs:    []string{c.HabitID},
			})
			continue
		}

		if !utils.ValidDay(c.Day) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Completion for \"%s\" has invalid day: %s", known[c.HabitID], c.Day),
				Items:       []string{known[c.HabitID]},
				HabitIDs:    []string{c.HabitID},
			})
			continue
		}

		key := c.HabitID + "|" + c.Day
		if seen[key] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateDay,
				Description: fmt.Sprintf("Habit \"%s\" has more than one completion for %s", known[c.HabitID], c.Day),
				Items:       []string{known[c.HabitID]},
				HabitIDs:    []string{c.HabitID},
			})
		}
		seen[key] = true
	}

	return result
}

// ValidateHabitParams checks caller-supplied habit fields before they are
// turned into a record.
func ValidateHabitParams(name string, weekdays []time.Weekday, endDate *string, durationDays int) error {
	if name == "" {
		return fmt.Errorf("habit name must not be empty")
	}
	for _, wd := range weekdays {
		if wd < time.Sunday || wd > time.Saturday {
			return fmt.Errorf("invalid weekday: %d", int(wd))
		}
	}
	if endDate != nil && !utils.ValidDay(*endDate) {
		return fmt.Errorf("invalid end date %q (expected YYYY-MM-DD)", *endDate)
	}
	if durationDays < 0 {
		return fmt.Errorf("duration must be positive, got %d", durationDays)
	}
	if endDate != nil && durationDays > 0 {
		return fmt.Errorf("set either an end date or a duration, not both")
	}
	return nil
}
