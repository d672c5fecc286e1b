package models

import "time"

// Habit represents a recurring practice to track.
//
// Optional behavior is encoded by presence, not by flag pairs: a habit is
// temporary iff EndDate is set, paused iff PausedUntil is set, and deleted
// iff DeletedAt is set. This keeps invalid combinations (e.g. "paused"
// with no pause horizon) unrepresentable.
type Habit struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	// Weekdays restricts the habit to specific days of the week
	// (0=Sunday..6=Saturday). Empty means active every day.
	Weekdays []time.Weekday `json:"weekdays,omitempty"`

	// EndDate (YYYY-MM-DD) marks a temporary habit; it stops being active
	// on days strictly after this date.
	EndDate *string `json:"end_date,omitempty"`

	// PausedUntil (YYYY-MM-DD) excludes the habit from activity through
	// the given day, inclusive. The pause lapses on its own afterwards.
	PausedUntil *string `json:"paused_until,omitempty"`

	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// IsTemporary reports whether the habit expires after a fixed end date.
func (h Habit) IsTemporary() bool {
	return h.EndDate != nil
}

// IsPaused reports whether a pause horizon is currently recorded. Whether
// the pause is still in effect on a given day is the activity predicate's
// call, not this method's.
func (h Habit) IsPaused() bool {
	return h.PausedUntil != nil
}

// IsDeleted reports whether the habit has been soft-deleted.
func (h Habit) IsDeleted() bool {
	return h.DeletedAt != nil
}

// ScheduledOn reports whether the habit's weekday schedule includes d.
// An empty schedule matches every day.
func (h Habit) ScheduledOn(d time.Weekday) bool {
	if len(h.Weekdays) == 0 {
		return true
	}
	for _, wd := range h.Weekdays {
		if wd == d {
			return true
		}
	}
	return false
}
