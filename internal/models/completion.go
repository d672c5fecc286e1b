package models

import "time"

// Completion records that a habit was done on a given day. At most one
// completion exists per (HabitID, Day) pair; marking an already-completed
// day removes the record instead of duplicating it.
type Completion struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	CreatedAt time.Time `json:"created_at"`
}

// Snapshot is the full persisted state: the export/import payload and the
// only on-disk layout the core cares about. It must round-trip losslessly
// through JSON.
type Snapshot struct {
	Habits      []Habit      `json:"habits"`
	Completions []Completion `json:"completions"`
}
