package postgres

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
	var endDate, pausedUntil sql.NullString
	var deletedAt sql.NullTime
	if habit.EndDate != nil {
		endDate = sql.NullString{String: *habit.EndDate, Valid: true}
	}
	if habit.PausedUntil != nil {
		pausedUntil = sql.NullString{String: *habit.PausedUntil, Valid: true}
	}
	if habit.DeletedAt != nil {
		deletedAt = sql.NullTime{Time: *habit.DeletedAt, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO habits (id, name, description, color, weekdays, end_date, paused_until, deleted_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			color = EXCLUDED.color,
			weekdays = EXCLUDED.weekdays,
			end_date = EXCLUDED.end_date,
			paused_until = EXCLUDED.paused_until,
			deleted_at = EXCLUDED.deleted_at`,
		habit.ID, habit.Name, habit.Description, habit.Color,
		models.EncodeWeekdays(habit.Weekdays), endDate, pausedUntil, deletedAt,
		habit.CreatedAt)

	return err
}

func (s *Store) PermanentDeleteHabit(id string) error {
	result, err := s.db.Exec("DELETE FROM habits WHERE id = $1", id)
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
		var h models.Habit
		var weekdays string
		var endDate, pausedUntil sql.NullString
		var deletedAt sql.NullTime
		var createdAt time.Time

		err := rows.Scan(&h.ID, &h.Name, &h.Description, &h.Color, &weekdays,
			&endDate, &pausedUntil, &deletedAt, &createdAt)
		if err != nil {
			return nil, err
		}

		h.Weekdays, err = models.DecodeWeekdays(weekdays)
		if err != nil {
			return nil, fmt.Errorf("failed to parse weekdays for habit %s: %w", h.ID, err)
		}
		h.CreatedAt = createdAt
		if endDate.Valid {
			h.EndDate = &endDate.String
		}
		if pausedUntil.Valid {
			h.PausedUntil = &pausedUntil.String
		}
		if deletedAt.Valid {
			h.DeletedAt = &deletedAt.Time
		}

		habits = append(habits, h)
	}
	return habits, rows.Err()
}
