package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/orbitlabs/missionctl/internal/domain"
)

// Colors defines the color palette for the mission board.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Info      lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Priority colors
	PriorityHigh   lipgloss.Color
	PriorityMedium lipgloss.Color
	PriorityLow    lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow
	Info:      lipgloss.Color("#74B9FF"), // Light blue

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	PriorityHigh:   lipgloss.Color("#D63031"), // Red
	PriorityMedium: lipgloss.Color("#FDCB6E"), // Yellow
	PriorityLow:    lipgloss.Color("#74B9FF"), // Light blue
}

// Styles contains all the lipgloss styles for the mission board.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Stats panel
	StatLabel lipgloss.Style
	StatValue lipgloss.Style
	StatAlert lipgloss.Style

	// Mission list
	MissionNormal    lipgloss.Style
	MissionSelected  lipgloss.Style
	MissionCompleted lipgloss.Style
	MissionOverdue   lipgloss.Style
	Cursor           lipgloss.Style

	// Priority badges
	PriorityHigh   lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityLow    lipgloss.Style

	// Notification strip
	NotifyInfo    lipgloss.Style
	NotifyWarning lipgloss.Style
	NotifySuccess lipgloss.Style
	NotifyError   lipgloss.Style

	// Input
	Input       lipgloss.Style
	InputPrompt lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogPrompt lipgloss.Style

	// Footer
	Footer lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the mission board.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(0, 1),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			Padding(0, 1),
		HeaderText: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		StatLabel: lipgloss.NewStyle().Foreground(Colors.Muted),
		StatValue: lipgloss.NewStyle().Bold(true).Foreground(Colors.TitleNormal),
		StatAlert: lipgloss.NewStyle().Bold(true).Foreground(Colors.Error),

		MissionNormal:    lipgloss.NewStyle().Foreground(Colors.TitleNormal),
		MissionSelected:  lipgloss.NewStyle().Bold(true).Foreground(Colors.TitleSelected),
		MissionCompleted: lipgloss.NewStyle().Strikethrough(true).Foreground(Colors.Muted),
		MissionOverdue:   lipgloss.NewStyle().Foreground(Colors.Error),
		Cursor:           lipgloss.NewStyle().Foreground(Colors.Primary),

		PriorityHigh:   lipgloss.NewStyle().Foreground(Colors.PriorityHigh),
		PriorityMedium: lipgloss.NewStyle().Foreground(Colors.PriorityMedium),
		PriorityLow:    lipgloss.NewStyle().Foreground(Colors.PriorityLow),

		NotifyInfo:    lipgloss.NewStyle().Foreground(Colors.Info),
		NotifyWarning: lipgloss.NewStyle().Foreground(Colors.Warning),
		NotifySuccess: lipgloss.NewStyle().Foreground(Colors.Success),
		NotifyError:   lipgloss.NewStyle().Foreground(Colors.Error),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(0, 1),
		InputPrompt: lipgloss.NewStyle().Foreground(Colors.Secondary),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Warning).
			Padding(1, 2),
		DialogPrompt: lipgloss.NewStyle().Bold(true).Foreground(Colors.Warning),

		Footer: lipgloss.NewStyle().Foreground(Colors.Muted),

		ErrorMsg: lipgloss.NewStyle().Bold(true).Foreground(Colors.Error),
	}
}

// PriorityStyle returns the badge style for a priority.
func (s Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return s.PriorityHigh
	case domain.PriorityLow:
		return s.PriorityLow
	default:
		return s.PriorityMedium
	}
}

// SeverityStyle returns the notification style for a severity.
func (s Styles) SeverityStyle(sev domain.Severity) lipgloss.Style {
	switch sev {
	case domain.SeverityWarning:
		return s.NotifyWarning
	case domain.SeveritySuccess:
		return s.NotifySuccess
	case domain.SeverityError:
		return s.NotifyError
	default:
		return s.NotifyInfo
	}
}
