package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/okardan/tumble/internal/core/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	faceStyle := styles.FacePanelStyle
	if m.controller.Busy() {
		faceStyle = styles.FacePanelBusyStyle
	}

	sections := []string{
		styles.TitleStyle.Render("tumble"),
		"",
		faceStyle.Render(m.faces.Art(m.panel.face)),
		"",
		m.triggerView(),
		m.historyView(),
	}
	if m.panel.status != "" {
		sections = append(sections, styles.StatusWarnStyle.Render(m.panel.status))
	}
	sections = append(sections, "", styles.HelpStyle.Render(m.help.View(m.keys)))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// triggerView renders the roll button, dimmed while a roll is in flight.
func (m Model) triggerView() string {
	if m.panel.triggerEnabled {
		return styles.TriggerStyle.Render("▶ Roll")
	}
	return styles.TriggerDisabledStyle.Render("rolling…")
}

// historyView renders the recent rolls strip, most-recent-last with the
// latest entry highlighted.
func (m Model) historyView() string {
	label := styles.HistoryLabelStyle.Render("Roll history: ")
	if len(m.panel.recent) == 0 {
		return label + styles.HistoryLabelStyle.Render("—")
	}

	parts := make([]string, len(m.panel.recent))
	for i, f := range m.panel.recent {
		s := strconv.Itoa(int(f))
		if i == len(m.panel.recent)-1 {
			parts[i] = styles.HistoryLatestStyle.Render(s)
		} else {
			parts[i] = styles.HistoryEntryStyle.Render(s)
		}
	}
	return label + strings.Join(parts, " ")
}
