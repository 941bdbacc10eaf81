// Package app provides the dependency injection container for the
// application.
package app

import (
	"io"
	"os"

	"github.com/orbitlabs/missionctl/internal/domain"
	"github.com/orbitlabs/missionctl/internal/infra/config"
	"github.com/orbitlabs/missionctl/internal/infra/jsonstore"
	"github.com/orbitlabs/missionctl/internal/infra/logging"
	"github.com/orbitlabs/missionctl/internal/infra/orbit"
	"github.com/orbitlabs/missionctl/internal/infra/sound"
	"github.com/orbitlabs/missionctl/internal/notify"
	"github.com/orbitlabs/missionctl/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use
// cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks    domain.TaskRepository
	Settings domain.SettingsRepository
	Clock    domain.Clock
	Orbits   domain.OrbitRandomizer
	Sounds   domain.SoundPlayer
	Logger   domain.Logger

	// Notifications holds the concrete engine so surfaces can list and
	// dismiss entries, not just push them.
	Notifications *notify.Engine

	// Configuration
	Config config.Config
}

// New creates a Container from the resolved configuration.
func New(cfg config.Config) *Container {
	settingsStore := jsonstore.NewSettings(domain.SettingsPath(cfg.DataDir))
	player := sound.New(settingsStore, os.Stdout)
	clock := domain.RealClock{}

	return &Container{
		Tasks:         jsonstore.New(domain.TasksPath(cfg.DataDir)),
		Settings:      settingsStore,
		Clock:         clock,
		Orbits:        orbit.New(),
		Sounds:        player,
		Logger:        logging.New(cfg.DataDir, logging.ParseLevel(cfg.LogLevel)),
		Notifications: notify.New(clock, player),
		Config:        cfg,
	}
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(cfg config.Config, tasks domain.TaskRepository, settings domain.SettingsRepository, clock domain.Clock, orbits domain.OrbitRandomizer, notifications *notify.Engine) *Container {
	return &Container{
		Tasks:         tasks,
		Settings:      settings,
		Clock:         clock,
		Orbits:        orbits,
		Notifications: notifications,
		Config:        cfg,
	}
}

// Close releases timers and log handles.
func (c *Container) Close() {
	if c.Notifications != nil {
		c.Notifications.Close()
	}
	if closer, ok := c.Logger.(io.Closer); ok {
		_ = closer.Close()
	}
}

// notifier returns the engine as a port, keeping nil-safety for tests that
// wire no engine.
func (c *Container) notifier() domain.Notifier {
	if c.Notifications == nil {
		return nil
	}
	return c.Notifications
}

// UseCase factory methods

// CreateTaskUseCase returns a new CreateTask use case.
func (c *Container) CreateTaskUseCase() *usecase.CreateTask {
	return usecase.NewCreateTask(c.Tasks, c.Clock, c.Orbits, c.notifier(), c.Sounds, c.Logger)
}

// UpdateTaskUseCase returns a new UpdateTask use case.
func (c *Container) UpdateTaskUseCase() *usecase.UpdateTask {
	return usecase.NewUpdateTask(c.Tasks, c.notifier(), c.Sounds, c.Logger)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Tasks, c.notifier(), c.Sounds, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.notifier(), c.Sounds, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks, c.Settings)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Tasks)
}

// TaskStatsUseCase returns a new TaskStats use case.
func (c *Container) TaskStatsUseCase() *usecase.TaskStats {
	return usecase.NewTaskStats(c.Tasks, c.Clock)
}

// DueScanUseCase returns a new DueScan use case.
func (c *Container) DueScanUseCase() *usecase.DueScan {
	return usecase.NewDueScan(c.Tasks, c.Clock, c.notifier(), c.Logger)
}

// ImportTasksUseCase returns a new ImportTasks use case using the given
// codec.
func (c *Container) ImportTasksUseCase(codec domain.TaskDecoder) *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Tasks, codec, c.notifier(), c.Sounds, c.Logger)
}

// ExportTasksUseCase returns a new ExportTasks use case using the given
// codec.
func (c *Container) ExportTasksUseCase(codec domain.TaskEncoder) *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Tasks, codec, c.notifier(), c.Logger)
}

// UpdateSettingsUseCase returns a new UpdateSettings use case.
func (c *Container) UpdateSettingsUseCase() *usecase.UpdateSettings {
	return usecase.NewUpdateSettings(c.Settings, c.Logger)
}
