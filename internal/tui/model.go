package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/tallyhq/tally/internal/state"
	"github.com/tallyhq/tally/internal/tui/components/habitlist"
	"github.com/tallyhq/tally/internal/utils"
)

type sessionState int

const (
	stateList sessionState = iota
	stateAddForm
	stateConfirmPurge
)

type KeyMap struct {
	Help key.Binding
	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Help, k.Quit}}
}

type HabitFormModel struct {
	Name  string
	Days  string
	Until string
}

type Model struct {
	state       *state.State
	session     sessionState
	keys        KeyMap
	help        help.Model
	habitList   habitlist.Model
	form        *huh.Form
	habitForm   *HabitFormModel
	purgeID     string
	purgeName   string
	formError   string
	quitting    bool
	width       int
	height      int
}

func NewModel(st *state.State) Model {
	m := Model{
		state:   st,
		session: stateList,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.habitList = habitlist.New(m.buildItems(), 0, 0)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) buildItems() []habitlist.Item {
	today := utils.Today()
	habits := m.state.Habits(true)

	items := make([]habitlist.Item, len(habits))
	for i, h := range habits {
		items[i] = habitlist.Item{
			Habit:     h,
			IsDeleted: h.IsDeleted(),
			IsActive:  m.state.IsActive(h.ID, today),
			IsDone:    m.state.IsCompleted(h.ID, today),
			Streak:    m.state.CurrentStreak(h.ID, today),
		}
	}
	return items
}

func (m *Model) refreshList() {
	m.habitList.SetItems(m.buildItems())
}
