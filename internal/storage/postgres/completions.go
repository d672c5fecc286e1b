package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/tallyhq/tally/internal/models"
)

func (s *Store) AddCompletion(c models.Completion) (string, error) {
	var existing string
	err := s.db.QueryRow(
		"SELECT id FROM completions WHERE habit_id = $1 AND day = $2",
		c.HabitID, c.Day).Scan(&existing)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	_, err = s.db.Exec(`
		INSERT INTO completions (id, habit_id, day, created_at)
		VALUES ($1, $2, $3, $4)`,
		c.ID, c.HabitID, c.Day, c.CreatedAt)
	if err != nil {
		return "", err
	}
	return c.ID, nil
}

func (s *Store) DeleteCompletion(habitID, day string) error {
	result, err := s.db.Exec(
		"DELETE FROM completions WHERE habit_id = $1 AND day = $2", habitID, day)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("no completion for habit %s on %s", habitID, day)
	}
	return nil
}

func (s *Store) DeleteCompletionsForHabit(habitID string) error {
	_, err := s.db.Exec("DELETE FROM completions WHERE habit_id = $1", habitID)
	return err
}

func (s *Store) GetAllCompletions() ([]models.Completion, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, day, created_at
		FROM completions ORDER BY day, habit_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []models.Completion
	for rows.Next() {
		var c models.Completion
		if err := rows.Scan(&c.ID, &c.HabitID, &c.Day, &c.CreatedAt); err != nil {
			return nil, err
		}
		completions = append(completions, c)
	}
	return completions, rows.Err()
}

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
		var endDate, pausedUntil sql.NullString
		var deletedAt sql.NullTime
		if h.EndDate != nil {
			endDate = sql.NullString{String: *h.EndDate, Valid: true}
		}
		if h.PausedUntil != nil {
			pausedUntil = sql.NullString{String: *h.PausedUntil, Valid: true}
		}
		if h.DeletedAt != nil {
			deletedAt = sql.NullTime{Time: *h.DeletedAt, Valid: true}
		}
		_, err := tx.Exec(`
			INSERT INTO habits (id, name, description, color, weekdays, end_date, paused_until, deleted_at, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			h.ID, h.Name, h.Description, h.Color, models.EncodeWeekdays(h.Weekdays),
			endDate, pausedUntil, deletedAt, h.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to import habit %s: %w", h.ID, err)
		}
	}

	for _, c := range snapshot.Completions {
		_, err := tx.Exec(`
			INSERT INTO completions (id, habit_id, day, created_at)
			VALUES ($1, $2, $3, $4)`,
			c.ID, c.HabitID, c.Day, c.CreatedAt)
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
