package usecase

import (
	"context"
	"fmt"

	"github.com/orbitlabs/missionctl/internal/domain"
)

// ShowTaskInput identifies the mission to show.
type ShowTaskInput struct {
	ID string // Mission ID, or a unique ID prefix
}

// ShowTaskOutput contains the resolved mission.
type ShowTaskOutput struct {
	Task domain.Task
}

// ShowTask is the use case for looking up a single mission. Unlike the
// mutation paths, a lookup for display is an error when nothing matches.
type ShowTask struct {
	tasks domain.TaskRepository
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(tasks domain.TaskRepository) *ShowTask {
	return &ShowTask{tasks: tasks}
}

// Execute resolves the mission by exact ID first, then by unique prefix.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	task, err := uc.tasks.Get(in.ID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task != nil {
		return &ShowTaskOutput{Task: *task}, nil
	}

	tasks, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	var match *domain.Task
	for i := range tasks {
		if len(in.ID) > 0 && len(tasks[i].ID) >= len(in.ID) && tasks[i].ID[:len(in.ID)] == in.ID {
			if match != nil {
				return nil, fmt.Errorf("%w: ambiguous ID prefix %q", domain.ErrTaskNotFound, in.ID)
			}
			match = &tasks[i]
		}
	}
	if match == nil {
		return nil, domain.ErrTaskNotFound
	}
	return &ShowTaskOutput{Task: *match}, nil
}
