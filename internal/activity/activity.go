// Package activity decides whether a habit counts on a given calendar day.
// Every consumer (streaks, statistics, correlations, UI) goes through
// IsActive; the schedule/pause/expiry rules live here and nowhere else.
package activity

import (
	"iter"

	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/utils"
)

// IsActive reports whether the habit counts on the given day (YYYY-MM-DD).
//
// Rules, in order: a deleted habit is never active; a temporary habit is
// inactive strictly after its end date; a paused habit is inactive through
// PausedUntil inclusive (the pause lapses on its own afterwards, no explicit
// resume required); otherwise the weekday schedule decides, with an empty
// schedule meaning every day.
func IsActive(h models.Habit, day string) bool {
	if h.IsDeleted() {
		return false
	}
	if h.EndDate != nil && day > *h.EndDate {
		return false
	}
	if h.PausedUntil != nil && day <= *h.PausedUntil {
		return false
	}
	return h.ScheduledOn(utils.Weekday(day))
}

// DaysBack yields calendar days walking backward from the given day,
// inclusive, stopping after limit days. The sequence is finite and
// restartable; callers that stop early pay nothing for the remainder.
func DaysBack(from string, limit int) iter.Seq[string] {
	return func(yield func(string) bool) {
		day := from
		for i := 0; i < limit; i++ {
			if !yield(day) {
				return
			}
			day = utils.PrevDay(day)
		}
	}
}
