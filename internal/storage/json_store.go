package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tallyhq/tally/internal/models"
)

// fileStore is the on-disk layout of the JSON backend: the Snapshot payload
// plus a version marker. The Snapshot portion is byte-compatible with the
// export/import format.
type fileStore struct {
	Version int `json:"version"`
	models.Snapshot
}

// JSONStore keeps the whole dataset in a single pretty-printed JSON file,
// rewritten on every mutation. Suitable for small datasets and for tests.
type JSONStore struct {
	path  string
	store *fileStore
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &fileStore{Version: 1}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'tally init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &fileStore{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) AddHabit(h models.Habit) error {
	return s.UpdateHabit(h)
}

func (s *JSONStore) UpdateHabit(h models.Habit) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for i, existing := range s.store.Habits {
		if existing.ID == h.ID {
			s.store.Habits[i] = h
			return s.save()
		}
	}
	s.store.Habits = append(s.store.Habits, h)
	return s.save()
}

func (s *JSONStore) PermanentDeleteHabit(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	found := false
	habits := s.store.Habits[:0]
	for _, h := range s.store.Habits {
		if h.ID == id {
			found = true
			continue
		}
		habits = append(habits, h)
	}
	if !found {
		return fmt.Errorf("habit not found: %s", id)
	}
	s.store.Habits = habits

	// Cascade: drop the habit's completions too.
	completions := s.store.Completions[:0]
	for _, c := range s.store.Completions {
		if c.HabitID != id {
			completions = append(completions, c)
		}
	}
	s.store.Completions = completions

	return s.save()
}

func (s *JSONStore) GetAllHabits() ([]models.Habit, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	habits := make([]models.Habit, len(s.store.Habits))
	copy(habits, s.store.Habits)
	return habits, nil
}

func (s *JSONStore) AddCompletion(c models.Completion) (string, error) {
	if s.store == nil {
		return "", fmt.Errorf("storage not loaded")
	}

	for _, existing := range s.store.Completions {
		if existing.HabitID == c.HabitID && existing.Day == c.Day {
			return existing.ID, nil
		}
	}
	s.store.Completions = append(s.store.Completions, c)
	if err := s.save(); err != nil {
		return "", err
	}
	return c.ID, nil
}

func (s *JSONStore) DeleteCompletion(habitID, day string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for i, c := range s.store.Completions {
		if c.HabitID == habitID && c.Day == day {
			s.store.Completions = append(s.store.Completions[:i], s.store.Completions[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("no completion for habit %s on %s", habitID, day)
}

func (s *JSONStore) DeleteCompletionsForHabit(habitID string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	completions := s.store.Completions[:0]
	for _, c := range s.store.Completions {
		if c.HabitID != habitID {
			completions = append(completions, c)
		}
	}
	s.store.Completions = completions
	return s.save()
}

func (s *JSONStore) GetAllCompletions() ([]models.Completion, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	completions := make([]models.Completion, len(s.store.Completions))
	copy(completions, s.store.Completions)
	return completions, nil
}

func (s *JSONStore) ExportData() (models.Snapshot, error) {
	if s.store == nil {
		return models.Snapshot{}, fmt.Errorf("storage not loaded")
	}
	return models.Snapshot{
		Habits:      append([]models.Habit(nil), s.store.Habits...),
		Completions: append([]models.Completion(nil), s.store.Completions...),
	}, nil
}

func (s *JSONStore) ImportData(snapshot models.Snapshot) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	// Replace both collections in one write; the old state survives any
	// serialization failure because save operates on a copy of the struct.
	prev := s.store.Snapshot
	s.store.Snapshot = snapshot
	if err := s.save(); err != nil {
		s.store.Snapshot = prev
		return err
	}
	return nil
}

func (s *JSONStore) DeleteAllData() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Snapshot = models.Snapshot{}
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
