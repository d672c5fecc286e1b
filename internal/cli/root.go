package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/state"
	"github.com/tallyhq/tally/internal/storage"
)

type Context struct {
	Store storage.Provider
	State *state.State
}

// LoadState builds the in-memory state from the store. Commands that only
// touch the store directly (init, dsn) never call this.
func (c *Context) LoadState() error {
	if c.State != nil {
		return nil
	}
	s, err := state.New(c.Store)
	if err != nil {
		return err
	}
	c.State = s
	return nil
}

// ResolveHabit finds a habit by display name, preferring live habits and
// falling back to soft-deleted ones when includeDeleted is set.
func (c *Context) ResolveHabit(name string, includeDeleted bool) (models.Habit, error) {
	if h, ok := c.State.HabitByName(name); ok {
		return h, nil
	}
	if includeDeleted {
		for _, h := range c.State.Habits(true) {
			if h.Name == name && h.IsDeleted() {
				return h, nil
			}
		}
	}
	return models.Habit{}, fmt.Errorf("habit %q not found", name)
}

// ParseWeekdays parses a comma-separated list of weekdays
func ParseWeekdays(s string) ([]time.Weekday, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	dayMap := map[string]time.Weekday{
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
	}

	var weekdays []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
			continue
		}
		// Try parsing as number (0=Sunday, 6=Saturday)
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		weekdays = append(weekdays, time.Weekday(num))
	}

	return weekdays, nil
}

// FormatSchedule formats a habit's schedule into a human-readable string
func FormatSchedule(h models.Habit) string {
	var parts []string

	if len(h.Weekdays) == 0 {
		parts = append(parts, "daily")
	} else {
		var days []string
		for _, wd := range h.Weekdays {
			days = append(days, wd.String()[:3])
		}
		parts = append(parts, strings.Join(days, ","))
	}

	if h.EndDate != nil {
		parts = append(parts, fmt.Sprintf("until %s", *h.EndDate))
	}
	if h.PausedUntil != nil {
		parts = append(parts, fmt.Sprintf("paused through %s", *h.PausedUntil))
	}

	return strings.Join(parts, ", ")
}
