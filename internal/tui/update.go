package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/state"
	"github.com/tallyhq/tally/internal/tui/components/habitlist"
	"github.com/tallyhq/tally/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := docStyle.GetFrameSize()
		m.habitList.SetSize(msg.Width-h, msg.Height-v-2)
		return m, nil

	case tea.KeyMsg:
		if m.session == stateList {
			switch {
			case key.Matches(msg, m.keys.Quit):
				m.quitting = true
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			}
		}

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{}
		m.form = newAddHabitForm(m.habitForm)
		m.formError = ""
		m.session = stateAddForm
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		if _, err := m.state.ToggleCompletion(msg.ID, utils.Today()); err != nil {
			m.formError = err.Error()
		}
		m.refreshList()
		return m, nil

	case habitlist.DeleteHabitMsg:
		if err := m.state.SoftDelete(msg.ID); err != nil {
			m.formError = err.Error()
		}
		m.refreshList()
		return m, nil

	case habitlist.RestoreHabitMsg:
		if err := m.state.Restore(msg.ID); err != nil {
			m.formError = err.Error()
		}
		m.refreshList()
		return m, nil

	case habitlist.PurgeHabitMsg:
		habit, ok := m.state.Habit(msg.ID)
		if !ok {
			return m, nil
		}
		m.purgeID = habit.ID
		m.purgeName = habit.Name
		m.form = newPurgeConfirmForm(habit.Name)
		m.session = stateConfirmPurge
		return m, m.form.Init()
	}

	switch m.session {
	case stateAddForm:
		return m.updateAddForm(msg)
	case stateConfirmPurge:
		return m.updatePurgeConfirm(msg)
	}

	var cmd tea.Cmd
	m.habitList, cmd = m.habitList.Update(msg)
	return m, cmd
}

func (m Model) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		weekdays, err := cli.ParseWeekdays(m.habitForm.Days)
		if err != nil {
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, nil
		}
		params := state.HabitParams{
			Name:     m.habitForm.Name,
			Weekdays: weekdays,
		}
		if m.habitForm.Until != "" {
			params.EndDate = &m.habitForm.Until
		}
		if _, err := m.state.AddHabit(params); err != nil {
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, nil
		}
		m.formError = ""
		m.session = stateList
		m.refreshList()
		return m, nil
	case huh.StateAborted:
		m.formError = ""
		m.session = stateList
		return m, nil
	}
	return m, cmd
}

func (m Model) updatePurgeConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.form.GetBool("confirm") {
			if err := m.state.PermanentDelete(m.purgeID); err != nil {
				m.formError = err.Error()
			}
		}
		m.purgeID = ""
		m.purgeName = ""
		m.session = stateList
		m.refreshList()
		return m, nil
	case huh.StateAborted:
		m.purgeID = ""
		m.purgeName = ""
		m.session = stateList
		return m, nil
	}
	return m, cmd
}

func newAddHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name),
			huh.NewInput().
				Title("Weekdays").
				Description("Comma-separated (e.g. mon,wed,fri). Empty for every day.").
				Value(&fm.Days),
			huh.NewInput().
				Title("End date").
				Description("YYYY-MM-DD for a temporary habit. Empty for open-ended.").
				Value(&fm.Until),
		),
	).WithTheme(huh.ThemeDracula())
}

func newPurgeConfirmForm(name string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("Permanently delete %q and all of its history?", name)).
				Description("This cannot be undone.").
				Affirmative("Delete").
				Negative("Cancel"),
		),
	).WithTheme(huh.ThemeDracula())
}
