package tui

import (
	"fmt"

	"github.com/tallyhq/tally/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.session {
	case stateAddForm, stateConfirmPurge:
		view := m.form.View()
		if m.formError != "" {
			view += "\n" + dangerStyle.Render(m.formError)
		}
		return docStyle.Render(view)
	}

	today := utils.Today()
	summary := m.state.SummaryFor(today)
	header := headerStyle.Render(fmt.Sprintf("tally · %s", today)) +
		"  " +
		summaryStyle.Render(fmt.Sprintf("%d/%d done (%d%%)",
			summary.DoneCount, summary.ActiveCount, summary.DayRate))

	view := header + "\n\n" + m.habitList.View()
	if m.formError != "" {
		view += "\n" + warningStyle.Render(m.formError)
	}
	view += "\n" + m.help.View(m.keys)
	return docStyle.Render(view)
}
