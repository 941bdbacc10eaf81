package usecase

import (
	"context"
	"fmt"

	"github.com/orbitlabs/missionctl/internal/domain"
)

// DeleteTaskInput identifies the mission to delete.
type DeleteTaskInput struct {
	ID string // Mission ID
}

// DeleteTaskOutput contains the result of deleting a mission.
type DeleteTaskOutput struct {
	Task    domain.Task // The removed mission (zero when not found)
	Deleted bool        // False when the ID was unknown (silent no-op)
}

// DeleteTask is the use case for removing a mission.
type DeleteTask struct {
	tasks    domain.TaskRepository
	notifier domain.Notifier
	sounds   domain.SoundPlayer
	logger   domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository, notifier domain.Notifier, sounds domain.SoundPlayer, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		tasks:    tasks,
		notifier: notifier,
		sounds:   sounds,
		logger:   logger,
	}
}

// Execute removes the mission with the given ID. Unknown IDs are a silent
// no-op, not an error.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	task, err := uc.tasks.Get(in.ID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return &DeleteTaskOutput{}, nil
	}

	if err := uc.tasks.Delete(in.ID); err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}

	notify(uc.notifier, fmt.Sprintf("Task %q deleted!", task.Name), domain.SeverityInfo)
	play(uc.sounds, domain.CueDelete)
	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("deleted: %q", task.Name))
	}

	return &DeleteTaskOutput{Task: *task, Deleted: true}, nil
}
