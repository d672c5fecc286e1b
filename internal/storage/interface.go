package storage

import "github.com/tallyhq/tally/internal/models"

// Provider is the persistent record store behind the in-memory state. All
// mutation on a habit's fields (including soft delete, restore, and pause
// changes) travels through UpdateHabit, which upserts.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.Habit) error
	UpdateHabit(models.Habit) error
	PermanentDeleteHabit(id string) error
	GetAllHabits() ([]models.Habit, error)

	// Completions
	// AddCompletion is idempotent per (habitID, day): adding an existing
	// pair returns the already-stored completion's id.
	AddCompletion(models.Completion) (string, error)
	DeleteCompletion(habitID, day string) error
	DeleteCompletionsForHabit(habitID string) error
	GetAllCompletions() ([]models.Completion, error)

	// Bulk data
	ExportData() (models.Snapshot, error)
	// ImportData replaces both collections atomically.
	ImportData(models.Snapshot) error
	DeleteAllData() error

	// Utils
	GetConfigPath() string
}
