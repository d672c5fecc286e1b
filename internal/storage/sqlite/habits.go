package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tallyhq/tally/internal/models"
)

func (s *Store) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	var endDate, pausedUntil, deletedAt sql.NullString
	if habit.EndDate != nil {
		endDate = sql.NullString{String: *habit.EndDate, Valid: true}
	}
	if habit.PausedUntil != nil {
		pausedUntil = sql.NullString{String: *habit.PausedUntil, Valid: true}
	}
	if habit.DeletedAt != nil {
		deletedAt = sql.NullString{String: habit.DeletedAt.Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO habits (id, name, description, color, weekdays, end_date, paused_until, deleted_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			color = excluded.color,
			weekdays = excluded.weekdays,
			end_date = excluded.end_date,
			paused_until = excluded.paused_until,
			deleted_at = excluded.deleted_at`,
		habit.ID, habit.Name, habit.Description, habit.Color,
		models.EncodeWeekdays(habit.Weekdays), endDate, pausedUntil, deletedAt,
		habit.CreatedAt.Format(time.RFC3339))

	return err
}

func (s *Store) PermanentDeleteHabit(id string) error {
	// ON DELETE CASCADE removes the habit's completions with it.
	result, err := s.db.Exec("DELETE FROM habits WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit not found: %s", id)
	}
	return nil
}

func (s *Store) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, color, weekdays, end_date, paused_until, deleted_at, created_at
		FROM habits ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func scanHabit(rows *sql.Rows) (models.Habit, error) {
	var h models.Habit
	var weekdays, createdAt string
	var endDate, pausedUntil, deletedAt sql.NullString

	err := rows.Scan(&h.ID, &h.Name, &h.Description, &h.Color, &weekdays,
		&endDate, &pausedUntil, &deletedAt, &createdAt)
	if err != nil {
		return models.Habit{}, err
	}

	h.Weekdays, err = models.DecodeWeekdays(weekdays)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse weekdays for habit %s: %w", h.ID, err)
	}
	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
	}
	if endDate.Valid {
		h.EndDate = &endDate.String
	}
	if pausedUntil.Valid {
		h.PausedUntil = &pausedUntil.String
	}
	if deletedAt.Valid {
		t, err := time.Parse(time.RFC3339, deletedAt.String)
		if err != nil {
			return models.Habit{}, fmt.Errorf("failed to parse deleted_at for habit %s: %w", h.ID, err)
		}
		h.DeletedAt = &t
	}
	return h, nil
}
