package analytics

import (
	"math"
	"time"

	"github.com/tallyhq/tally/internal/activity"
	"github.com/tallyhq/tally/internal/constants"
	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/utils"
)

// LabelValue is a chart-consumable data point.
type LabelValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// completionIndex maps (habitID, day) to completion existence for fast
// membership checks across the statistics functions.
type completionIndex map[string]map[string]struct{}

func indexCompletions(completions []models.Completion) completionIndex {
	idx := make(completionIndex)
	for _, c := range completions {
		days, ok := idx[c.HabitID]
		if !ok {
			days = make(map[string]struct{})
			idx[c.HabitID] = days
		}
		days[c.Day] = struct{}{}
	}
	return idx
}

func (idx completionIndex) completed(habitID, day string) bool {
	_, ok := idx[habitID][day]
	return ok
}

// ActiveCount returns the number of non-deleted habits active on day.
func ActiveCount(habits []models.Habit, day string) int {
	count := 0
	for _, h := range habits {
		if h.IsDeleted() {
			continue
		}
		if activity.IsActive(h, day) {
			count++
		}
	}
	return count
}

// CompletedCount returns the number of habits active on day that also have
// a completion recorded for it.
func CompletedCount(habits []models.Habit, completions []models.Completion, day string) int {
	idx := indexCompletions(completions)
	return completedCount(habits, idx, day)
}

func completedCount(habits []models.Habit, idx completionIndex, day string) int {
	count := 0
	for _, h := range habits {
		if h.IsDeleted() || !activity.IsActive(h, day) {
			continue
		}
		if idx.completed(h.ID, day) {
			count++
		}
	}
	return count
}

// DayRate returns the completion rate for day as a rounded percentage,
// defined as 0 when no habits are active.
func DayRate(habits []models.Habit, completions []models.Completion, day string) int {
	return dayRate(habits, indexCompletions(completions), day)
}

func dayRate(habits []models.Habit, idx completionIndex, day string) int {
	active := ActiveCount(habits, day)
	if active == 0 {
		return 0
	}
	done := completedCount(habits, idx, day)
	return int(math.Round(float64(done) / float64(active) * 100))
}

// PerfectDays counts the days on which every active habit was completed.
// The scan covers every distinct completion day plus today (even when today
// has no completions yet). Days with zero active habits are excluded, never
// counted as perfect.
func PerfectDays(habits []models.Habit, completions []models.Completion, today string) int {
	idx := indexCompletions(completions)

	days := make(map[string]struct{})
	for _, c := range completions {
		days[c.Day] = struct{}{}
	}
	days[today] = struct{}{}

	perfect := 0
	for day := range days {
		active := ActiveCount(habits, day)
		if active == 0 {
			continue
		}
		if completedCount(habits, idx, day) == active {
			perfect++
		}
	}
	return perfect
}

// WeekdayPattern computes the average completion rate per weekday over the
// trailing pattern window ending at today. For each weekday the result is
// the mean of the per-date percentages across matching dates that had at
// least one active habit; a weekday with no qualifying dates yields 0.
//
// The result is indexed 0=Sunday..6=Saturday, never derived from locale
// weekday names.
func WeekdayPattern(habits []models.Habit, completions []models.Completion, today string) [7]float64 {
	idx := indexCompletions(completions)

	var sums [7]float64
	var counts [7]int
	for day := range activity.DaysBack(today, constants.PatternWindowDays) {
		if ActiveCount(habits, day) == 0 {
			continue
		}
		wd := int(utils.Weekday(day))
		sums[wd] += float64(dayRate(habits, idx, day))
		counts[wd]++
	}

	var pattern [7]float64
	for wd := range pattern {
		if counts[wd] > 0 {
			pattern[wd] = sums[wd] / float64(counts[wd])
		}
	}
	return pattern
}

// WeekdayPatternSeries renders WeekdayPattern as label/value pairs for chart
// consumption, ordered Sunday through Saturday.
func WeekdayPatternSeries(habits []models.Habit, completions []models.Completion, today string) []LabelValue {
	pattern := WeekdayPattern(habits, completions, today)
	series := make([]LabelValue, 7)
	for wd := 0; wd < 7; wd++ {
		series[wd] = LabelValue{
			Label: time.Weekday(wd).String(),
			Value: pattern[wd],
		}
	}
	return series
}

// WeekendSplit holds pooled completion ratios for the weekend and weekday
// buckets over the trailing pattern window.
type WeekendSplit struct {
	WeekendRate float64
	WeekdayRate float64
}

// WeekendWeekdaySplit pools raw {completed, active} counts into a weekend
// bucket (Sat+Sun) and a weekday bucket (Mon-Fri) and returns one ratio per
// bucket. This is a pooled total, deliberately distinct from the averaged
// per-day percentages used elsewhere; see DESIGN.md.
func WeekendWeekdaySplit(habits []models.Habit, completions []models.Completion, today string) WeekendSplit {
	idx := indexCompletions(completions)

	var weekendDone, weekendTotal, weekdayDone, weekdayTotal int
	for day := range activity.DaysBack(today, constants.PatternWindowDays) {
		active := ActiveCount(habits, day)
		if active == 0 {
			continue
		}
		done := completedCount(habits, idx, day)
		if utils.IsWeekend(day) {
			weekendDone += done
			weekendTotal += active
		} else {
			weekdayDone += done
			weekdayTotal += active
		}
	}

	var split WeekendSplit
	if weekendTotal > 0 {
		split.WeekendRate = float64(weekendDone) / float64(weekendTotal) * 100
	}
	if weekdayTotal > 0 {
		split.WeekdayRate = float64(weekdayDone) / float64(weekdayTotal) * 100
	}
	return split
}

// WindowRate returns the arithmetic mean of the per-day completion-rate
// percentages across the trailing window of the given length ending at
// today. Days with zero active habits contribute a per-day rate of 0.
func WindowRate(habits []models.Habit, completions []models.Completion, today string, days int) float64 {
	if days <= 0 {
		return 0
	}
	idx := indexCompletions(completions)

	sum := 0
	for day := range activity.DaysBack(today, days) {
		sum += dayRate(habits, idx, day)
	}
	return float64(sum) / float64(days)
}
