package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/orbitlabs/missionctl/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MsgTasksLoaded:
		m.tasks = msg.Tasks
		m.clampCursor()
		return m, nil

	case MsgStatsLoaded:
		m.stats = msg.Stats
		m.today = msg.Today
		return m, nil

	case MsgSettingsLoaded:
		m.settings = msg.Settings
		if m.sortBy == "" {
			m.sortBy = msg.Settings.SortBy
		}
		return m, nil

	case MsgTaskMutated:
		m.refreshNotifications()
		return m, tea.Batch(m.loadTasks(), m.loadStats())

	case MsgScanDone:
		m.refreshNotifications()
		return m, nil

	case MsgError:
		m.err = msg.Err
		m.refreshNotifications()
		return m, nil

	case MsgTick:
		m.refreshNotifications()
		return m, m.tick()

	case MsgScanTick:
		return m, tea.Batch(m.runScan(), m.loadStats(), m.scanTick())
	}

	return m, nil
}

// handleKey routes key presses by mode.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeSearch:
		return m.handleSearchKey(msg)
	case ModeInputName:
		return m.handleInputNameKey(msg)
	case ModeConfirm:
		return m.handleConfirmKey(msg)
	case ModeHelp:
		return m.handleHelpKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if task := m.SelectedTask(); task != nil {
			return m, m.toggleTask(task.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.mode = ModeInputName
		m.nameInput.SetValue("")
		m.nameInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if task := m.SelectedTask(); task != nil {
			m.mode = ModeConfirm
			m.confirmID = task.ID
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		m.searchInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filter = nextFilter(m.filter)
		m.cursor = 0
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Sort):
		m.sortBy = nextSortKey(m.sortBy)
		return m, tea.Batch(m.saveSort(m.sortBy), m.loadTasks())

	case key.Matches(msg, m.keys.Dismiss):
		if m.container.Notifications != nil && len(m.notifications) > 0 {
			m.container.Notifications.Dismiss(m.notifications[0].ID)
			m.refreshNotifications()
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, tea.Batch(m.loadTasks(), m.loadStats())

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		m.help.ShowAll = true
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.err != nil {
			m.err = nil
			return m, nil
		}
		if m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			return m, m.loadTasks()
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, m.loadTasks()

	case msg.Type == tea.KeyEnter:
		m.mode = ModeNormal
		m.searchInput.Blur()
		m.cursor = 0
		return m, m.loadTasks()
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	// Live search: refilter on every keystroke.
	return m, tea.Batch(cmd, m.loadTasks())
}

func (m *Model) handleInputNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.nameInput.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		name := strings.TrimSpace(m.nameInput.Value())
		m.mode = ModeNormal
		m.nameInput.Blur()
		if name == "" {
			return m, nil
		}
		return m, m.createTask(name)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		id := m.confirmID
		m.mode = ModeNormal
		m.confirmID = ""
		return m, m.deleteTask(id)

	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		m.confirmID = ""
		return m, nil
	}
	return m, nil
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		m.help.ShowAll = false
	}
	return m, nil
}

// nextFilter cycles all -> active -> completed -> all.
func nextFilter(f domain.StatusFilter) domain.StatusFilter {
	switch f {
	case domain.FilterAll:
		return domain.FilterActive
	case domain.FilterActive:
		return domain.FilterCompleted
	default:
		return domain.FilterAll
	}
}

// nextSortKey cycles dueDate -> priority -> created -> dueDate.
func nextSortKey(k domain.SortKey) domain.SortKey {
	switch k {
	case domain.SortByDueDate:
		return domain.SortByPriority
	case domain.SortByPriority:
		return domain.SortByCreated
	default:
		return domain.SortByDueDate
	}
}
