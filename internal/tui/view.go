package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/orbitlabs/missionctl/internal/domain"
)

// View renders the mission board.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderStats())
	b.WriteString("\n\n")

	switch m.mode {
	case ModeInputName:
		b.WriteString(m.renderNameInput())
	case ModeConfirm:
		b.WriteString(m.renderConfirm())
	case ModeHelp:
		b.WriteString(m.help.View(m.keys))
	default:
		b.WriteString(m.renderMissions())
	}

	b.WriteString("\n")
	b.WriteString(m.renderNotifications())

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.style.ErrorMsg.Render("Error: " + m.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return m.style.App.Render(b.String())
}

func (m *Model) renderHeader() string {
	title := m.style.Header.Render("MISSION CONTROL")
	view := m.style.HeaderText.Render(fmt.Sprintf("filter: %s  sort: %s", m.filter, m.sortBy))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", view)
}

func (m *Model) renderStats() string {
	s := m.stats
	parts := []string{
		m.statCell("Missions", s.Total),
		m.statCell("Active", s.Active),
		m.statCell("Done", s.Completed),
		m.statCell("Due Today", s.DueToday),
		m.statCell("This Week", s.DueThisWeek),
		m.statCell("High Pri", s.HighPriority),
	}
	parts = append(parts, m.style.StatLabel.Render("Success ")+m.style.StatValue.Render(fmt.Sprintf("%d%%", s.SuccessRate)))
	if s.Overdue > 0 {
		parts = append(parts, m.style.StatAlert.Render(fmt.Sprintf("Overdue %d", s.Overdue)))
	}
	return strings.Join(parts, "   ")
}

func (m *Model) statCell(label string, value int) string {
	return m.style.StatLabel.Render(label+" ") + m.style.StatValue.Render(fmt.Sprintf("%d", value))
}

func (m *Model) renderMissions() string {
	if m.mode == ModeSearch || m.searchInput.Value() != "" {
		header := m.style.InputPrompt.Render("Search: ") + m.searchInput.View()
		return header + "\n\n" + m.renderMissionList()
	}
	return m.renderMissionList()
}

func (m *Model) renderMissionList() string {
	if len(m.tasks) == 0 {
		return m.style.StatLabel.Render("No missions in orbit. Press n to launch one.")
	}

	var b strings.Builder
	for i, t := range m.tasks {
		b.WriteString(m.renderMissionLine(i, t))
		if i < len(m.tasks)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) renderMissionLine(i int, t domain.Task) string {
	cursor := "  "
	if i == m.cursor {
		cursor = m.style.Cursor.Render("> ")
	}

	marker := "◦"
	if t.Completed {
		marker = "●"
	}

	name := m.missionNameStyle(i, t).Render(t.Name)
	badge := m.style.PriorityStyle(t.Priority).Render(string(t.Priority))

	due := ""
	if !t.Due.IsZero() {
		due = t.Due.String()
		if !t.Completed && t.Due.Before(m.today) {
			due = m.style.MissionOverdue.Render(due + " (overdue)")
		} else if !t.Completed && t.Due.Equal(m.today) {
			due = m.style.NotifyWarning.Render(due + " (today)")
		} else {
			due = m.style.StatLabel.Render(due)
		}
	}

	line := fmt.Sprintf("%s%s %s  %s", cursor, marker, name, badge)
	if due != "" {
		line += "  " + due
	}
	if t.Category != "" {
		line += "  " + m.style.StatLabel.Render(t.Category)
	}
	if len(t.Tags) > 0 {
		line += "  " + m.style.StatLabel.Render("#"+strings.Join(t.Tags, " #"))
	}
	return line
}

func (m *Model) missionNameStyle(i int, t domain.Task) lipgloss.Style {
	switch {
	case t.Completed:
		return m.style.MissionCompleted
	case i == m.cursor:
		return m.style.MissionSelected
	default:
		return m.style.MissionNormal
	}
}

func (m *Model) renderNotifications() string {
	if len(m.notifications) == 0 {
		return ""
	}
	var b strings.Builder
	for i, n := range m.notifications {
		b.WriteString(m.style.SeverityStyle(n.Severity).Render("▲ " + n.Message))
		if i < len(m.notifications)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) renderNameInput() string {
	prompt := m.style.InputPrompt.Render("New mission")
	return m.style.Input.Render(prompt + "\n" + m.nameInput.View())
}

func (m *Model) renderConfirm() string {
	name := m.confirmID
	for _, t := range m.tasks {
		if t.ID == m.confirmID {
			name = t.Name
			break
		}
	}
	prompt := m.style.DialogPrompt.Render(fmt.Sprintf("Delete mission %q?", name))
	return m.style.Dialog.Render(prompt + "\n\ny: delete   esc: cancel")
}

func (m *Model) renderFooter() string {
	if m.mode == ModeHelp {
		return m.style.Footer.Render("esc: back")
	}
	return m.style.Footer.Render(m.help.View(m.keys))
}
