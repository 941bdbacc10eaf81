package usecase

import (
	"context"
	"fmt"

	"github.com/orbitlabs/missionctl/internal/domain"
)

// UpdateTaskInput contains the replacement mission state.
type UpdateTaskInput struct {
	Task domain.Task // Full mission state; matched by ID
}

// UpdateTaskOutput contains the result of updating a mission.
type UpdateTaskOutput struct {
	Task domain.Task // The state as persisted
}

// UpdateTask is the use case for editing a mission. An unknown ID is a
// silent no-op on the collection; the notification is still emitted because
// edits are always initiated from an already-loaded mission reference.
type UpdateTask struct {
	tasks    domain.TaskRepository
	notifier domain.Notifier
	sounds   domain.SoundPlayer
	logger   domain.Logger
}

// NewUpdateTask creates a new UpdateTask use case.
func NewUpdateTask(tasks domain.TaskRepository, notifier domain.Notifier, sounds domain.SoundPlayer, logger domain.Logger) *UpdateTask {
	return &UpdateTask{
		tasks:    tasks,
		notifier: notifier,
		sounds:   sounds,
		logger:   logger,
	}
}

// Execute replaces the mission with a matching ID.
func (uc *UpdateTask) Execute(_ context.Context, in UpdateTaskInput) (*UpdateTaskOutput, error) {
	task := in.Task

	// The creation timestamp is immutable; keep whatever is stored.
	existing, err := uc.tasks.Get(task.ID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if existing != nil {
		task.CreatedAt = existing.CreatedAt
	}

	if err := uc.tasks.Update(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	notify(uc.notifier, fmt.Sprintf("Task %q updated!", task.Name), domain.SeveritySuccess)
	play(uc.sounds, domain.CueAdd)
	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("updated: %q", task.Name))
	}

	return &UpdateTaskOutput{Task: task}, nil
}
