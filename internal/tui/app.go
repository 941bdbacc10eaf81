package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/orbitlabs/missionctl/internal/app"
	"github.com/orbitlabs/missionctl/internal/domain"
	"github.com/orbitlabs/missionctl/internal/usecase"
)

// tickInterval drives orbit motion and notification expiry redraws.
const tickInterval = time.Second

// Model is the main bubbletea model for the mission board.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// State (slices and maps)
	tasks         []domain.Task
	notifications []domain.Notification

	// Components
	keys  KeyMap
	style Styles
	help  help.Model

	// Input state (large structs)
	searchInput textinput.Model
	nameInput   textinput.Model

	// Domain snapshots
	stats    domain.Stats
	settings domain.Settings
	today    domain.Date

	// Numeric state (smaller types last)
	mode      Mode
	filter    domain.StatusFilter
	sortBy    domain.SortKey
	confirmID string
	cursor    int
	width     int
	height    int
}

// New creates a new mission board Model with the given container.
func New(c *app.Container) *Model {
	si := textinput.New()
	si.Placeholder = "Search missions..."
	si.CharLimit = 100

	ni := textinput.New()
	ni.Placeholder = "Mission name"
	ni.CharLimit = 200

	return &Model{
		container:   c,
		mode:        ModeNormal,
		filter:      domain.FilterAll,
		keys:        DefaultKeyMap(),
		style:       DefaultStyles(),
		help:        help.New(),
		searchInput: si,
		nameInput:   ni,
		settings:    domain.DefaultSettings(),
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadSettings(),
		m.loadTasks(),
		m.loadStats(),
		m.runScan(),
		m.tick(),
		m.scanTick(),
	)
}

// loadTasks returns a command that loads the filtered mission view.
func (m *Model) loadTasks() tea.Cmd {
	filter := m.filter
	search := m.searchInput.Value()
	sortBy := m.sortBy
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{
			Filter: filter,
			Search: search,
			SortBy: sortBy,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks}
	}
}

// loadStats returns a command that recomputes mission-control statistics.
func (m *Model) loadStats() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.TaskStatsUseCase().Execute(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStatsLoaded{Stats: out.Stats, Today: out.Today}
	}
}

// loadSettings returns a command that loads preferences.
func (m *Model) loadSettings() tea.Cmd {
	return func() tea.Msg {
		settings, err := m.container.Settings.Load()
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgSettingsLoaded{Settings: settings}
	}
}

// createTask returns a command that creates a new mission with defaults.
func (m *Model) createTask(name string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.CreateTaskUseCase().Execute(context.Background(), usecase.CreateTaskInput{
			Name:     name,
			Priority: domain.PriorityMedium,
			Category: "work",
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskMutated{ID: out.Task.ID}
	}
}

// toggleTask returns a command that flips a mission's completion state.
func (m *Model) toggleTask(id string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.container.ToggleTaskUseCase().Execute(context.Background(), usecase.ToggleTaskInput{ID: id}); err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskMutated{ID: id}
	}
}

// deleteTask returns a command that deletes a mission.
func (m *Model) deleteTask(id string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{ID: id}); err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskMutated{ID: id}
	}
}

// runScan returns a command that runs a due-date scan pass.
func (m *Model) runScan() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.DueScanUseCase().Execute(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgScanDone{Alerts: out.Alerts}
	}
}

// saveSort returns a command that persists the chosen sort key.
func (m *Model) saveSort(key domain.SortKey) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.UpdateSettingsUseCase().Execute(context.Background(), usecase.UpdateSettingsInput{SortBy: &key})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgSettingsLoaded{Settings: out.Settings}
	}
}

// tick schedules the next redraw tick.
func (m *Model) tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return MsgTick{}
	})
}

// scanTick schedules the next due-date rescan.
func (m *Model) scanTick() tea.Cmd {
	interval := m.container.Config.ScanInterval
	if interval <= 0 {
		interval = time.Minute
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return MsgScanTick{}
	})
}

// refreshNotifications snapshots the notification queue for rendering.
func (m *Model) refreshNotifications() {
	if m.container.Notifications == nil {
		m.notifications = nil
		return
	}
	m.notifications = m.container.Notifications.List()
}

// SelectedTask returns the mission under the cursor, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return &m.tasks[m.cursor]
}

// clampCursor keeps the cursor inside the visible mission list.
func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
