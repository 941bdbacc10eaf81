package usecase

import (
	"context"
	"fmt"

	"github.com/orbitlabs/missionctl/internal/domain"
)

// ToggleTaskInput identifies the mission to toggle.
type ToggleTaskInput struct {
	ID string // Mission ID
}

// ToggleTaskOutput contains the result of toggling a mission.
type ToggleTaskOutput struct {
	Task    domain.Task // The mission after toggling (zero when not found)
	Toggled bool        // False when the ID was unknown (silent no-op)
}

// ToggleTask is the use case for flipping a mission's completion flag.
type ToggleTask struct {
	tasks    domain.TaskRepository
	notifier domain.Notifier
	sounds   domain.SoundPlayer
	logger   domain.Logger
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(tasks domain.TaskRepository, notifier domain.Notifier, sounds domain.SoundPlayer, logger domain.Logger) *ToggleTask {
	return &ToggleTask{
		tasks:    tasks,
		notifier: notifier,
		sounds:   sounds,
		logger:   logger,
	}
}

// Execute flips the completion flag of the mission with the given ID.
// Unknown IDs are a silent no-op, not an error.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	task, err := uc.tasks.Get(in.ID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return &ToggleTaskOutput{}, nil
	}

	task.Completed = !task.Completed
	if err := uc.tasks.Update(*task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if task.Completed {
		notify(uc.notifier, fmt.Sprintf("Task %q completed!", task.Name), domain.SeveritySuccess)
		play(uc.sounds, domain.CueComplete)
	} else {
		notify(uc.notifier, fmt.Sprintf("Task %q reopened!", task.Name), domain.SeverityInfo)
		play(uc.sounds, domain.CueAdd)
	}
	if uc.logger != nil {
		state := "reopened"
		if task.Completed {
			state = "completed"
		}
		uc.logger.Info(task.ID, "task", fmt.Sprintf("%s: %q", state, task.Name))
	}

	return &ToggleTaskOutput{Task: *task, Toggled: true}, nil
}
