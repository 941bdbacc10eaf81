package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/orbitlabs/missionctl/internal/app"
	"github.com/orbitlabs/missionctl/internal/domain"
	"github.com/orbitlabs/missionctl/internal/infra/config"
	"github.com/orbitlabs/missionctl/internal/notify"
	"github.com/orbitlabs/missionctl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, tasks ...domain.Task) *Model {
	t.Helper()
	clock := &testutil.MockClock{NowTime: time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)}
	container := app.NewWithDeps(
		config.Config{ScanInterval: time.Minute},
		testutil.NewMockTaskRepository(tasks...),
		testutil.NewMockSettingsRepository(),
		clock,
		&testutil.FixedOrbits{},
		notify.New(clock, nil),
	)
	t.Cleanup(container.Close)
	return New(container)
}

func TestModel_Update_TasksLoaded(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(MsgTasksLoaded{Tasks: []domain.Task{{ID: "a", Name: "Dock"}}})

	model := updated.(*Model)
	require.Len(t, model.tasks, 1)
	assert.Equal(t, "Dock", model.tasks[0].Name)
}

func TestModel_Update_CursorNavigation(t *testing.T) {
	m := newTestModel(t)
	m.tasks = []domain.Task{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	up := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}

	m.Update(down)
	m.Update(down)
	assert.Equal(t, 2, m.cursor)

	// Cursor clamps at the bottom.
	m.Update(down)
	assert.Equal(t, 2, m.cursor)

	m.Update(up)
	assert.Equal(t, 1, m.cursor)
}

func TestModel_Update_FilterCycles(t *testing.T) {
	m := newTestModel(t)

	cycle := tea.KeyMsg{Type: tea.KeyTab}

	m.Update(cycle)
	assert.Equal(t, domain.FilterActive, m.filter)
	m.Update(cycle)
	assert.Equal(t, domain.FilterCompleted, m.filter)
	m.Update(cycle)
	assert.Equal(t, domain.FilterAll, m.filter)
}

func TestModel_Update_SortCycles(t *testing.T) {
	m := newTestModel(t)
	m.sortBy = domain.SortByDueDate

	cycle := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}

	m.Update(cycle)
	assert.Equal(t, domain.SortByPriority, m.sortBy)
	m.Update(cycle)
	assert.Equal(t, domain.SortByCreated, m.sortBy)
	m.Update(cycle)
	assert.Equal(t, domain.SortByDueDate, m.sortBy)
}

func TestModel_Update_SearchMode(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	assert.Equal(t, ModeSearch, m.mode)

	m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	assert.Equal(t, ModeNormal, m.mode)
	assert.Empty(t, m.searchInput.Value())
}

func TestModel_Update_ConfirmDelete(t *testing.T) {
	m := newTestModel(t, domain.Task{ID: "a", Name: "Dock"})
	m.tasks = []domain.Task{{ID: "a", Name: "Dock"}}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	assert.Equal(t, ModeConfirm, m.mode)
	assert.Equal(t, "a", m.confirmID)

	// Escape cancels without deleting.
	m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	assert.Equal(t, ModeNormal, m.mode)
	assert.Empty(t, m.confirmID)
}

func TestModel_Update_SettingsLoadedSeedsSort(t *testing.T) {
	m := newTestModel(t)

	m.Update(MsgSettingsLoaded{Settings: domain.Settings{SortBy: domain.SortByCreated, SoundEnabled: true}})

	assert.Equal(t, domain.SortByCreated, m.sortBy)
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestModel_View_RendersMissions(t *testing.T) {
	m := newTestModel(t)
	m.tasks = []domain.Task{
		{ID: "a", Name: "Launch probe", Priority: domain.PriorityHigh},
	}
	m.refreshNotifications()

	view := m.View()
	assert.Contains(t, view, "Launch probe")
	assert.Contains(t, view, "MISSION CONTROL")
}

func TestModel_View_EmptyBoard(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "No missions in orbit")
}
