package sqlite

import (
	"fmt"
	"time"

	"github.com/tallyhq/tally/internal/models"
)

func (s *Store) ExportData() (models.Snapshot, error) {
	habits, err := s.GetAllHabits()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to export habits: %w", err)
	}
	completions, err := s.GetAllCompletions()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to export completions: %w", err)
	}
	return models.Snapshot{Habits: habits, Completions: completions}, nil
}

func (s *Store) ImportData(snapshot models.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM completions"); err != nil {
		return fmt.Errorf("failed to clear completions: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM habits"); err != nil {
		return fmt.Errorf("failed to clear habits: %w", err)
	}

	for _, h := range snapshot.Habits {
		var endDate, pausedUntil, deletedAt any
		if h.EndDate != nil {
			endDate = *h.EndDate
		}
		if h.PausedUntil != nil {
			pausedUntil = *h.PausedUntil
		}
		if h.DeletedAt != nil {
			deletedAt = h.DeletedAt.Format(time.RFC3339)
		}
		_, err := tx.Exec(`
			INSERT INTO habits (id, name, description, color, weekdays, end_date, paused_until, deleted_at, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			h.ID, h.Name, h.Description, h.Color, models.EncodeWeekdays(h.Weekdays),
			endDate, pausedUntil, deletedAt, h.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to import habit %s: %w", h.ID, err)
		}
	}

	for _, c := range snapshot.Completions {
		_, err := tx.Exec(`
			INSERT INTO completions (id, habit_id, day, created_at)
			VALUES (?, ?, ?, ?)`,
			c.ID, c.HabitID, c.Day, c.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to import completion %s: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

func (s *Store) DeleteAllData() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM completions"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM habits"); err != nil {
		return err
	}
	return tx.Commit()
}
