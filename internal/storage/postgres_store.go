package storage

import (
	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/storage/postgres"
)

// PostgresStore adapts postgres.Store to the Provider interface.
type PostgresStore struct {
	store *postgres.Store
}

// NewPostgresStore creates a store backed by a PostgreSQL database. The
// connection string must not embed credentials; see HasEmbeddedCredentials.
func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{store: postgres.New(connStr)}
}

// HasEmbeddedCredentials reports whether a URL-style connection string
// carries a password.
func HasEmbeddedCredentials(connStr string) bool {
	return postgres.HasEmbeddedCredentials(connStr)
}

func (s *PostgresStore) Init() error           { return s.store.Init() }
func (s *PostgresStore) Load() error           { return s.store.Load() }
func (s *PostgresStore) Close() error          { return s.store.Close() }
func (s *PostgresStore) GetConfigPath() string { return s.store.GetConfigPath() }

func (s *PostgresStore) AddHabit(h models.Habit) error         { return s.store.AddHabit(h) }
func (s *PostgresStore) UpdateHabit(h models.Habit) error      { return s.store.UpdateHabit(h) }
func (s *PostgresStore) PermanentDeleteHabit(id string) error  { return s.store.PermanentDeleteHabit(id) }
func (s *PostgresStore) GetAllHabits() ([]models.Habit, error) { return s.store.GetAllHabits() }

func (s *PostgresStore) AddCompletion(c models.Completion) (string, error) {
	return s.store.AddCompletion(c)
}
func (s *PostgresStore) DeleteCompletion(habitID, day string) error {
	return s.store.DeleteCompletion(habitID, day)
}
func (s *PostgresStore) DeleteCompletionsForHabit(habitID string) error {
	return s.store.DeleteCompletionsForHabit(habitID)
}
func (s *PostgresStore) GetAllCompletions() ([]models.Completion, error) {
	return s.store.GetAllCompletions()
}

func (s *PostgresStore) ExportData() (models.Snapshot, error)  { return s.store.ExportData() }
func (s *PostgresStore) ImportData(snap models.Snapshot) error { return s.store.ImportData(snap) }
func (s *PostgresStore) DeleteAllData() error                  { return s.store.DeleteAllData() }
