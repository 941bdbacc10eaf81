package tui

import "github.com/orbitlabs/missionctl/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the filtered mission view is loaded.
type MsgTasksLoaded struct {
	Tasks []domain.Task
}

func (MsgTasksLoaded) sealed() {}

// MsgStatsLoaded is sent when mission-control statistics are recomputed.
type MsgStatsLoaded struct {
	Today domain.Date
	Stats domain.Stats
}

func (MsgStatsLoaded) sealed() {}

// MsgSettingsLoaded is sent when preferences are loaded.
type MsgSettingsLoaded struct {
	Settings domain.Settings
}

func (MsgSettingsLoaded) sealed() {}

// MsgTaskMutated is sent after a create, toggle, or delete completes.
type MsgTaskMutated struct {
	ID string
}

func (MsgTaskMutated) sealed() {}

// MsgScanDone is sent when a due-date scan pass finishes.
type MsgScanDone struct {
	Alerts int
}

func (MsgScanDone) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgTick is sent every second to advance orbits and refresh the
// notification strip.
type MsgTick struct{}

func (MsgTick) sealed() {}

// MsgScanTick is sent at the configured scan interval to trigger a
// due-date rescan.
type MsgScanTick struct{}

func (MsgScanTick) sealed() {}
