// Package cli provides the command-line interface for missionctl.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/orbitlabs/missionctl/internal/app"
	"github.com/orbitlabs/missionctl/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupTask = "task"
	groupData = "data"
	groupView = "view"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to
// be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for missionctl.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "missionctl",
		Short: "Mission tracking CLI",
		Long: `missionctl is a task tracker that treats every task as a mission
orbiting a central star. It keeps missions in a local data directory,
derives mission-control statistics, and raises due-date alerts.

Run without arguments to open the mission board.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Mission Management:"},
		&cobra.Group{ID: groupData, Title: "Data & Preferences:"},
		&cobra.Group{ID: groupView, Title: "Views:"},
	)

	// Mission management commands
	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupTask

	editCmd := newEditCommand(c)
	editCmd.GroupID = groupTask

	doneCmd := newDoneCommand(c)
	doneCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	// Data commands
	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupData

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupData

	settingsCmd := newSettingsCommand(c)
	settingsCmd.GroupID = groupData

	// View commands
	statsCmd := newStatsCommand(c)
	statsCmd.GroupID = groupView

	watchCmd := newWatchCommand(c)
	watchCmd.GroupID = groupView

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupView

	root.AddCommand(
		addCmd,
		listCmd,
		showCmd,
		editCmd,
		doneCmd,
		rmCmd,
		exportCmd,
		importCmd,
		settingsCmd,
		statsCmd,
		watchCmd,
		tuiCmd,
	)

	return root
}

// launchTUI opens the full-screen mission board.
func launchTUI(c *app.Container) error {
	model := tui.New(c)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// newTUICommand creates the tui command.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the mission board",
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}
