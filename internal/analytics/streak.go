package analytics

import (
	"sort"

	"github.com/tallyhq/tally/internal/activity"
	"github.com/tallyhq/tally/internal/constants"
	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/utils"
)

// DaySet is the set of days (YYYY-MM-DD) a habit was completed on.
type DaySet map[string]struct{}

// NewDaySet collects the completion days belonging to habitID.
func NewDaySet(completions []models.Completion, habitID string) DaySet {
	set := make(DaySet)
	for _, c := range completions {
		if c.HabitID == habitID {
			set[c.Day] = struct{}{}
		}
	}
	return set
}

// Contains reports whether the set holds the given day.
func (s DaySet) Contains(day string) bool {
	_, ok := s[day]
	return ok
}

// CurrentStreak counts consecutive qualifying days backward from asOf.
//
// A habit that is not active on asOf has no current streak. If asOf itself
// has no completion the count starts from the previous day instead, so
// today's pending miss does not erase yesterday's streak. Inactive days
// (off-schedule, paused, expired) are skipped — they neither extend nor
// break the streak. The walk is capped at MaxStreakLookbackDays examined
// days.
func CurrentStreak(h models.Habit, completed DaySet, asOf string) int {
	if !activity.IsActive(h, asOf) {
		return 0
	}

	start := asOf
	if !completed.Contains(asOf) {
		start = utils.PrevDay(asOf)
	}

	streak := 0
	for day := range activity.DaysBack(start, constants.MaxStreakLookbackDays) {
		if !activity.IsActive(h, day) {
			continue
		}
		if !completed.Contains(day) {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak returns the longest run of calendar-consecutive completion
// days over the habit's full history.
//
// Unlike CurrentStreak this is purely gap-based over recorded completions
// and does not consult the activity predicate, so scheduled off-days and
// pauses break it. The two semantics are intentionally kept separate; see
// DESIGN.md.
func LongestStreak(completed DaySet) int {
	if len(completed) == 0 {
		return 0
	}

	days := make([]string, 0, len(completed))
	for d := range completed {
		days = append(days, d)
	}
	sort.Strings(days)

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if utils.DaysBetween(days[i-1], days[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
