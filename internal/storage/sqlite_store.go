package storage

import (
	"database/sql"

	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/storage/sqlite"
)

// SQLiteSchemaVersion is the schema version this build reads and writes.
const SQLiteSchemaVersion = sqlite.SchemaVersion

// SQLiteStore adapts sqlite.Store to the Provider interface.
type SQLiteStore struct {
	store *sqlite.Store
}

// NewSQLiteStore creates the default on-disk store.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{store: sqlite.NewStore(path)}
}

func (s *SQLiteStore) Init() error          { return s.store.Init() }
func (s *SQLiteStore) Load() error          { return s.store.Load() }
func (s *SQLiteStore) Close() error         { return s.store.Close() }
func (s *SQLiteStore) GetConfigPath() string { return s.store.GetConfigPath() }

func (s *SQLiteStore) AddHabit(h models.Habit) error          { return s.store.AddHabit(h) }
func (s *SQLiteStore) UpdateHabit(h models.Habit) error       { return s.store.UpdateHabit(h) }
func (s *SQLiteStore) PermanentDeleteHabit(id string) error   { return s.store.PermanentDeleteHabit(id) }
func (s *SQLiteStore) GetAllHabits() ([]models.Habit, error)  { return s.store.GetAllHabits() }

func (s *SQLiteStore) AddCompletion(c models.Completion) (string, error) {
	return s.store.AddCompletion(c)
}
func (s *SQLiteStore) DeleteCompletion(habitID, day string) error {
	return s.store.DeleteCompletion(habitID, day)
}
func (s *SQLiteStore) DeleteCompletionsForHabit(habitID string) error {
	return s.store.DeleteCompletionsForHabit(habitID)
}
func (s *SQLiteStore) GetAllCompletions() ([]models.Completion, error) {
	return s.store.GetAllCompletions()
}

// GetDB exposes the connection for the doctor command's direct checks.
func (s *SQLiteStore) GetDB() *sql.DB { return s.store.GetDB() }

func (s *SQLiteStore) ExportData() (models.Snapshot, error)   { return s.store.ExportData() }
func (s *SQLiteStore) ImportData(snap models.Snapshot) error  { return s.store.ImportData(snap) }
func (s *SQLiteStore) DeleteAllData() error                   { return s.store.DeleteAllData() }
