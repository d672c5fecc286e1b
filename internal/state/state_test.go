package state

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/storage"
)

func setupState(t *testing.T) *State {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tally.json")
	store := storage.NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Failed to init store: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Failed to load store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	s, err := New(store)
	if err != nil {
		t.Fatalf("Failed to create state: %v", err)
	}
	return s
}

func mustAddHabit(t *testing.T, s *State, name string) models.Habit {
	t.Helper()
	h, err := s.AddHabit(HabitParams{Name: name})
	if err != nil {
		t.Fatalf("Failed to add habit: %v", err)
	}
	return h
}

func TestAddHabitAssignsID(t *testing.T) {
	s := setupState(t)

	h := mustAddHabit(t, s, "Read")
	if h.ID == "" {
		t.Error("Expected assigned id")
	}
	if got, ok := s.Habit(h.ID); !ok || got.Name != "Read" {
		t.Errorf("Habit not registered: ok=%v got=%+v", ok, got)
	}
}

func TestAddHabitRejectsDuplicateName(t *testing.T) {
	s := setupState(t)

	mustAddHabit(t, s, "Read")
	if _, err := s.AddHabit(HabitParams{Name: "Read"}); err == nil {
		t.Error("Expected duplicate name error")
	}
}

func TestAddHabitDurationDerivesEndDate(t *testing.T) {
	s := setupState(t)

	h, err := s.AddHabit(HabitParams{Name: "Sprint", DurationDays: 30})
	if err != nil {
		t.Fatalf("Failed to add habit: %v", err)
	}
	if h.EndDate == nil {
		t.Fatal("Expected derived end date")
	}
	if !h.IsTemporary() {
		t.Error("Habit with end date should be temporary")
	}
}

func TestToggleCompletionIsInvolution(t *testing.T) {
	s := setupState(t)
	h := mustAddHabit(t, s, "Read")
	day := "2026-03-15"

	done, err := s.ToggleCompletion(h.ID, day)
	if err != nil {
		t.Fatalf("First toggle failed: %v", err)
	}
	if !done {
		t.Error("First toggle should complete the day")
	}
	if !s.IsCompleted(h.ID, day) {
		t.Error("Day should be completed after first toggle")
	}

	done, err = s.ToggleCompletion(h.ID, day)
	if err != nil {
		t.Fatalf("Second toggle failed: %v", err)
	}
	if done {
		t.Error("Second toggle should clear the day")
	}
	if s.IsCompleted(h.ID, day) {
		t.Error("Day should be uncompleted after second toggle")
	}
	if len(s.Completions()) != 0 {
		t.Errorf("Expected no completion records, got %d", len(s.Completions()))
	}
}

func TestToggleCompletionAtMostOnePerDay(t *testing.T) {
	s := setupState(t)
	h := mustAddHabit(t, s, "Read")

	s.ToggleCompletion(h.ID, "2026-03-15")
	s.ToggleCompletion(h.ID, "2026-03-16")
	s.ToggleCompletion(h.ID, "2026-03-15") // clears the 15th
	s.ToggleCompletion(h.ID, "2026-03-15") // sets it again

	count := 0
	for _, c := range s.Completions() {
		if c.Day == "2026-03-15" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected exactly one record for the day, got %d", count)
	}
}

func TestToggleCompletionRejectsBadInput(t *testing.T) {
	s := setupState(t)
	h := mustAddHabit(t, s, "Read")

	if _, err := s.ToggleCompletion("no-such-habit", "2026-03-15"); err == nil {
		t.Error("Expected unknown habit error")
	}
	if _, err := s.ToggleCompletion(h.ID, "03/15/2026"); err == nil {
		t.Error("Expected invalid date error")
	}
}

func TestSoftDeleteAndRestore(t *testing.T) {
	s := setupState(t)
	h := mustAddHabit(t, s, "Read")
	s.ToggleCompletion(h.ID, "2026-03-15")

	if err := s.SoftDelete(h.ID); err != nil {
		t.Fatalf("Failed to soft delete: %v", err)
	}
	if got, _ := s.Habit(h.ID); !got.IsDeleted() {
		t.Error("Habit should be marked deleted")
	}
	if len(s.Habits(false)) != 0 {
		t.Error("Deleted habit should be hidden by default")
	}
	if len(s.Habits(true)) != 1 {
		t.Error("Deleted habit should appear with includeDeleted")
	}
	if !s.IsCompleted(h.ID, "2026-03-15") {
		t.Error("Soft delete must retain completion history")
	}

	if err := s.Restore(h.ID); err != nil {
		t.Fatalf("Failed to restore: %v", err)
	}
	if got, _ := s.Habit(h.ID); got.IsDeleted() {
		t.Error("Habit should no longer be deleted")
	}
	if err := s.Restore(h.ID); err == nil {
		t.Error("Restoring a live habit should error")
	}
}

func TestPermanentDeleteCascades(t *testing.T) {
	s := setupState(t)
	h := mustAddHabit(t, s, "Read")
	other := mustAddHabit(t, s, "Run")
	s.ToggleCompletion(h.ID, "2026-03-15")
	s.ToggleCompletion(other.ID, "2026-03-15")

	if err := s.PermanentDelete(h.ID); err != nil {
		t.Fatalf("Failed to permanently delete: %v", err)
	}
	if _, ok := s.Habit(h.ID); ok {
		t.Error("Habit should be gone")
	}
	for _, c := range s.Completions() {
		if c.HabitID == h.ID {
			t.Error("Completions for deleted habit should be gone")
		}
	}
	if !s.IsCompleted(other.ID, "2026-03-15") {
		t.Error("Other habit's completions must survive")
	}
}

func TestPauseAndUnpause(t *testing.T) {
	s := setupState(t)
	h := mustAddHabit(t, s, "Read")

	if err := s.Pause(h.ID, "2026-03-20"); err != nil {
		t.Fatalf("Failed to pause: %v", err)
	}
	if s.IsActive(h.ID, "2026-03-18") {
		t.Error("Habit should be inactive while paused")
	}
	if !s.IsActive(h.ID, "2026-03-21") {
		t.Error("Habit should be active after pause lapses")
	}

	if err := s.Unpause(h.ID); err != nil {
		t.Fatalf("Failed to unpause: %v", err)
	}
	if !s.IsActive(h.ID, "2026-03-18") {
		t.Error("Habit should be active after unpause")
	}

	if err := s.Pause(h.ID, "next week"); err == nil {
		t.Error("Expected invalid pause date error")
	}
}

func TestStreakQueries(t *testing.T) {
	s := setupState(t)
	h := mustAddHabit(t, s, "Read")

	s.ToggleCompletion(h.ID, "2026-03-13")
	s.ToggleCompletion(h.ID, "2026-03-14")
	s.ToggleCompletion(h.ID, "2026-03-15")

	if got := s.CurrentStreak(h.ID, "2026-03-15"); got != 3 {
		t.Errorf("CurrentStreak = %d, want 3", got)
	}
	if got := s.LongestStreak(h.ID); got != 3 {
		t.Errorf("LongestStreak = %d, want 3", got)
	}
}

func TestSummaryFor(t *testing.T) {
	s := setupState(t)
	read := mustAddHabit(t, s, "Read")
	mustAddHabit(t, s, "Run")

	s.ToggleCompletion(read.ID, "2026-03-15")

	summary := s.SummaryFor("2026-03-15")
	if summary.ActiveCount != 2 {
		t.Errorf("ActiveCount = %d, want 2", summary.ActiveCount)
	}
	if summary.DoneCount != 1 {
		t.Errorf("DoneCount = %d, want 1", summary.DoneCount)
	}
	if summary.DayRate != 50 {
		t.Errorf("DayRate = %d, want 50", summary.DayRate)
	}
}

// failingStore wraps a real provider and fails all writes, to prove that
// commands leave memory untouched when persistence fails.
type failingStore struct {
	storage.Provider
}

var errBroken = errors.New("store broken")

func (f *failingStore) AddHabit(models.Habit) error              { return errBroken }
func (f *failingStore) UpdateHabit(models.Habit) error           { return errBroken }
func (f *failingStore) PermanentDeleteHabit(string) error        { return errBroken }
func (f *failingStore) AddCompletion(models.Completion) (string, error) {
	return "", errBroken
}
func (f *failingStore) DeleteCompletion(string, string) error { return errBroken }

func setupFailingState(t *testing.T) (*State, models.Habit) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tally.json")
	store := storage.NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Failed to init store: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Failed to load store: %v", err)
	}

	s, err := New(store)
	if err != nil {
		t.Fatalf("Failed to create state: %v", err)
	}
	h := mustAddHabit(t, s, "Read")

	// Swap in the broken store after seeding.
	s.store = &failingStore{Provider: store}
	return s, h
}

func TestCommandsRollBackOnPersistFailure(t *testing.T) {
	s, h := setupFailingState(t)

	if _, err := s.AddHabit(HabitParams{Name: "Run"}); err == nil {
		t.Fatal("Expected persist error")
	}
	if len(s.Habits(false)) != 1 {
		t.Error("Failed add must not register the habit")
	}

	if err := s.SoftDelete(h.ID); err == nil {
		t.Fatal("Expected persist error")
	}
	if got, _ := s.Habit(h.ID); got.IsDeleted() {
		t.Error("Failed delete must not mark the habit")
	}

	if _, err := s.ToggleCompletion(h.ID, "2026-03-15"); err == nil {
		t.Fatal("Expected persist error")
	}
	if s.IsCompleted(h.ID, "2026-03-15") {
		t.Error("Failed toggle must not record the completion")
	}

	if err := s.PermanentDelete(h.ID); err == nil {
		t.Fatal("Expected persist error")
	}
	if _, ok := s.Habit(h.ID); !ok {
		t.Error("Failed permanent delete must keep the habit")
	}
}
