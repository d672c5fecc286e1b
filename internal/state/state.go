// Package state holds the authoritative in-memory habit and completion
// collections for a running session. Mutating commands persist to the record
// store first and only then touch memory, so a failed write leaves the
// snapshot unchanged. Queries are synchronous pure reads over that snapshot
// and never perform I/O.
//
// A State is not safe for concurrent mutation; the single caller (CLI
// command or TUI event loop) serializes commands, matching how the rest of
// the application runs.
package state

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tallyhq/tally/internal/activity"
	"github.com/tallyhq/tally/internal/analytics"
	"github.com/tallyhq/tally/internal/logger"
	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/storage"
	"github.com/tallyhq/tally/internal/utils"
	"github.com/tallyhq/tally/internal/validation"
)

// State is created once at application start; there is no package-level
// instance. Reset-and-recreate goes through the same constructor.
type State struct {
	store       storage.Provider
	habits      map[string]models.Habit
	completions map[string]models.Completion // keyed (habitID, day)
}

func completionKey(habitID, day string) string {
	return habitID + "|" + day
}

// New loads the record store's collections into memory.
func New(store storage.Provider) (*State, error) {
	habits, err := store.GetAllHabits()
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}
	completions, err := store.GetAllCompletions()
	if err != nil {
		return nil, fmt.Errorf("failed to load completions: %w", err)
	}

	s := &State{
		store:       store,
		habits:      make(map[string]models.Habit, len(habits)),
		completions: make(map[string]models.Completion, len(completions)),
	}
	for _, h := range habits {
		s.habits[h.ID] = h
	}
	for _, c := range completions {
		s.completions[completionKey(c.HabitID, c.Day)] = c
	}
	return s, nil
}

// HabitParams are the caller-supplied fields for creating or updating a
// habit. DurationDays, when positive, derives EndDate from the creation day;
// an explicit EndDate wins over a duration.
type HabitParams struct {
	Name         string
	Description  string
	Color        string
	Weekdays     []time.Weekday
	EndDate      *string
	DurationDays int
}

// AddHabit validates, persists, and registers a new habit, returning it with
// its assigned id.
func (s *State) AddHabit(p HabitParams) (models.Habit, error) {
	if err := validation.ValidateHabitParams(p.Name, p.Weekdays, p.EndDate, p.DurationDays); err != nil {
		return models.Habit{}, err
	}
	for _, h := range s.habits {
		if !h.IsDeleted() && h.Name == p.Name {
			return models.Habit{}, fmt.Errorf("habit with name %q already exists", p.Name)
		}
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        p.Name,
		Description: p.Description,
		Color:       p.Color,
		Weekdays:    p.Weekdays,
		EndDate:     p.EndDate,
		CreatedAt:   time.Now(),
	}
	if habit.EndDate == nil && p.DurationDays > 0 {
		end := utils.AddDays(utils.Today(), p.DurationDays-1)
		habit.EndDate = &end
	}

	if err := s.store.AddHabit(habit); err != nil {
		return models.Habit{}, fmt.Errorf("failed to persist habit: %w", err)
	}
	s.habits[habit.ID] = habit
	logger.Debug("Added habit", "id", habit.ID, "name", habit.Name)
	return habit, nil
}

// UpdateHabit replaces the mutable fields of an existing habit. Identity and
// creation time are kept; pause and deletion state are untouched.
func (s *State) UpdateHabit(id string, p HabitParams) (models.Habit, error) {
	habit, ok := s.habits[id]
	if !ok {
		return models.Habit{}, fmt.Errorf("habit not found: %s", id)
	}
	if err := validation.ValidateHabitParams(p.Name, p.Weekdays, p.EndDate, p.DurationDays); err != nil {
		return models.Habit{}, err
	}

	habit.Name = p.Name
	habit.Description = p.Description
	habit.Color = p.Color
	habit.Weekdays = p.Weekdays
	habit.EndDate = p.EndDate
	if habit.EndDate == nil && p.DurationDays > 0 {
		end := utils.AddDays(utils.Today(), p.DurationDays-1)
		habit.EndDate = &end
	}

	if err := s.store.UpdateHabit(habit); err != nil {
		return models.Habit{}, fmt.Errorf("failed to persist habit: %w", err)
	}
	s.habits[id] = habit
	return habit, nil
}

// SoftDelete marks a habit deleted while retaining its completion history.
func (s *State) SoftDelete(id string) error {
	habit, ok := s.habits[id]
	if !ok {
		return fmt.Errorf("habit not found: %s", id)
	}
	if habit.IsDeleted() {
		return fmt.Errorf("habit already deleted: %s", habit.Name)
	}

	now := time.Now()
	habit.DeletedAt = &now
	if err := s.store.UpdateHabit(habit); err != nil {
		return fmt.Errorf("failed to persist delete: %w", err)
	}
	s.habits[id] = habit
	return nil
}

// Restore clears a habit's soft-delete marker.
func (s *State) Restore(id string) error {
	habit, ok := s.habits[id]
	if !ok {
		return fmt.Errorf("habit not found: %s", id)
	}
	if !habit.IsDeleted() {
		return fmt.Errorf("habit not deleted: %s", habit.Name)
	}

	habit.DeletedAt = nil
	if err := s.store.UpdateHabit(habit); err != nil {
		return fmt.Errorf("failed to persist restore: %w", err)
	}
	s.habits[id] = habit
	return nil
}

// PermanentDelete removes a habit and all of its completions for good.
func (s *State) PermanentDelete(id string) error {
	habit, ok := s.habits[id]
	if !ok {
		return fmt.Errorf("habit not found: %s", id)
	}

	if err := s.store.PermanentDeleteHabit(id); err != nil {
		return fmt.Errorf("failed to permanently delete habit: %w", err)
	}
	delete(s.habits, id)
	for key, c := range s.completions {
		if c.HabitID == id {
			delete(s.completions, key)
		}
	}
	logger.Debug("Permanently deleted habit", "id", id, "name", habit.Name)
	return nil
}

// Pause excludes a habit from activity through the given day, inclusive.
func (s *State) Pause(id, until string) error {
	habit, ok := s.habits[id]
	if !ok {
		return fmt.Errorf("habit not found: %s", id)
	}
	if !utils.ValidDay(until) {
		return fmt.Errorf("invalid pause date %q (expected YYYY-MM-DD)", until)
	}

	habit.PausedUntil = &until
	if err := s.store.UpdateHabit(habit); err != nil {
		return fmt.Errorf("failed to persist pause: %w", err)
	}
	s.habits[id] = habit
	return nil
}

// Unpause clears a pause immediately rather than waiting for it to lapse.
func (s *State) Unpause(id string) error {
	habit, ok := s.habits[id]
	if !ok {
		return fmt.Errorf("habit not found: %s", id)
	}

	habit.PausedUntil = nil
	if err := s.store.UpdateHabit(habit); err != nil {
		return fmt.Errorf("failed to persist unpause: %w", err)
	}
	s.habits[id] = habit
	return nil
}

// ToggleCompletion inserts a completion for (habitID, day) if absent and
// removes it if present, returning whether the day ended up completed.
func (s *State) ToggleCompletion(habitID, day string) (bool, error) {
	if _, ok := s.habits[habitID]; !ok {
		return false, fmt.Errorf("habit not found: %s", habitID)
	}
	if !utils.ValidDay(day) {
		return false, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", day)
	}

	key := completionKey(habitID, day)
	if _, exists := s.completions[key]; exists {
		if err := s.store.DeleteCompletion(habitID, day); err != nil {
			return true, fmt.Errorf("failed to remove completion: %w", err)
		}
		delete(s.completions, key)
		return false, nil
	}

	c := models.Completion{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		Day:       day,
		CreatedAt: time.Now(),
	}
	id, err := s.store.AddCompletion(c)
	if err != nil {
		return false, fmt.Errorf("failed to record completion: %w", err)
	}
	c.ID = id
	s.completions[key] = c
	return true, nil
}

// Queries. All operate on the in-memory snapshot only.

// Habit returns a habit by id.
func (s *State) Habit(id string) (models.Habit, bool) {
	h, ok := s.habits[id]
	return h, ok
}

// HabitByName returns a non-deleted habit by display name.
func (s *State) HabitByName(name string) (models.Habit, bool) {
	for _, h := range s.habits {
		if !h.IsDeleted() && h.Name == name {
			return h, true
		}
	}
	return models.Habit{}, false
}

// Habits returns all habits, optionally including soft-deleted ones,
// ordered by creation time.
func (s *State) Habits(includeDeleted bool) []models.Habit {
	habits := make([]models.Habit, 0, len(s.habits))
	for _, h := range s.habits {
		if !includeDeleted && h.IsDeleted() {
			continue
		}
		habits = append(habits, h)
	}
	sortHabits(habits)
	return habits
}

// Completions returns a copy of all completion records.
func (s *State) Completions() []models.Completion {
	completions := make([]models.Completion, 0, len(s.completions))
	for _, c := range s.completions {
		completions = append(completions, c)
	}
	return completions
}

// IsCompleted reports whether (habitID, day) has a completion.
func (s *State) IsCompleted(habitID, day string) bool {
	_, ok := s.completions[completionKey(habitID, day)]
	return ok
}

// IsActive applies the activity predicate to a habit in the snapshot.
func (s *State) IsActive(habitID, day string) bool {
	h, ok := s.habits[habitID]
	if !ok {
		return false
	}
	return activity.IsActive(h, day)
}

// CurrentStreak computes the activity-aware streak for a habit as of day.
func (s *State) CurrentStreak(habitID, day string) int {
	h, ok := s.habits[habitID]
	if !ok {
		return 0
	}
	return analytics.CurrentStreak(h, s.daySet(habitID), day)
}

// LongestStreak computes the gap-based longest run for a habit.
func (s *State) LongestStreak(habitID string) int {
	return analytics.LongestStreak(s.daySet(habitID))
}

func (s *State) daySet(habitID string) analytics.DaySet {
	set := make(analytics.DaySet)
	for _, c := range s.completions {
		if c.HabitID == habitID {
			set[c.Day] = struct{}{}
		}
	}
	return set
}

// Summary bundles the headline statistics for a reference day.
type Summary struct {
	Day          string
	ActiveCount  int
	DoneCount    int
	DayRate      int
	PerfectDays  int
	Rate7        float64
	Rate30       float64
	Rate365      float64
	WeekendSplit analytics.WeekendSplit
}

// SummaryFor derives the aggregate statistics view for a day.
func (s *State) SummaryFor(day string) Summary {
	habits := s.Habits(false)
	completions := s.Completions()
	return Summary{
		Day:          day,
		ActiveCount:  analytics.ActiveCount(habits, day),
		DoneCount:    analytics.CompletedCount(habits, completions, day),
		DayRate:      analytics.DayRate(habits, completions, day),
		PerfectDays:  analytics.PerfectDays(habits, completions, day),
		Rate7:        analytics.WindowRate(habits, completions, day, 7),
		Rate30:       analytics.WindowRate(habits, completions, day, 30),
		Rate365:      analytics.WindowRate(habits, completions, day, 365),
		WeekendSplit: analytics.WeekendWeekdaySplit(habits, completions, day),
	}
}

// WeekdayPattern returns chart-ready per-weekday completion percentages.
func (s *State) WeekdayPattern(day string) []analytics.LabelValue {
	return analytics.WeekdayPatternSeries(s.Habits(false), s.Completions(), day)
}

// Correlations returns pairwise habit correlation insights as of day.
func (s *State) Correlations(day string) []analytics.CorrelationInsight {
	return analytics.Correlations(s.Habits(false), s.Completions(), day)
}

// ExportData reads the full snapshot from the record store.
func (s *State) ExportData() (models.Snapshot, error) {
	return s.store.ExportData()
}

// ImportData atomically replaces the store's collections, then reloads the
// in-memory snapshot from what was actually persisted.
func (s *State) ImportData(snapshot models.Snapshot) error {
	if err := s.store.ImportData(snapshot); err != nil {
		return fmt.Errorf("failed to import data: %w", err)
	}
	return s.reload()
}

// DeleteAllData clears the store and the snapshot.
func (s *State) DeleteAllData() error {
	if err := s.store.DeleteAllData(); err != nil {
		return fmt.Errorf("failed to delete data: %w", err)
	}
	s.habits = make(map[string]models.Habit)
	s.completions = make(map[string]models.Completion)
	return nil
}

func (s *State) reload() error {
	habits, err := s.store.GetAllHabits()
	if err != nil {
		return fmt.Errorf("failed to reload habits: %w", err)
	}
	completions, err := s.store.GetAllCompletions()
	if err != nil {
		return fmt.Errorf("failed to reload completions: %w", err)
	}

	s.habits = make(map[string]models.Habit, len(habits))
	for _, h := range habits {
		s.habits[h.ID] = h
	}
	s.completions = make(map[string]models.Completion, len(completions))
	for _, c := range completions {
		s.completions[completionKey(c.HabitID, c.Day)] = c
	}
	return nil
}

func sortHabits(habits []models.Habit) {
	sort.Slice(habits, func(i, j int) bool {
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})
}
