package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tallyhq/tally/internal/models"
)

func (s *Store) AddCompletion(c models.Completion) (string, error) {
	// Idempotent per (habit_id, day): return the existing id if present.
	var existing string
	err := s.db.QueryRow(
		"SELECT id FROM completions WHERE habit_id = ? AND day = ?",
		c.HabitID, c.Day).Scan(&existing)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	_, err = s.db.Exec(`
		INSERT INTO completions (id, habit_id, day, created_at)
		VALUES (?, ?, ?, ?)`,
		c.ID, c.HabitID, c.Day, c.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return c.ID, nil
}

func (s *Store) DeleteCompletion(habitID, day string) error {
	result, err := s.db.Exec(
		"DELETE FROM completions WHERE habit_id = ? AND day = ?", habitID, day)
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
	_, err := s.db.Exec("DELETE FROM completions WHERE habit_id = ?", habitID)
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
		var createdAt string
		if err := rows.Scan(&c.ID, &c.HabitID, &c.Day, &createdAt); err != nil {
			return nil, err
		}
		c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for completion %s: %w", c.ID, err)
		}
		completions = append(completions, c)
	}
	return completions, rows.Err()
}
