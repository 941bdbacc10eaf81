// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/orbitlabs/missionctl/internal/domain"
)

// CreateTaskInput contains the parameters for creating a new mission.
// Fields are ordered to minimize memory padding.
type CreateTaskInput struct {
	Name     string          // Mission name (required, must not be blank)
	Due      domain.Date     // Due date (optional)
	Priority domain.Priority // low / medium / high (empty = medium)
	Notes    string          // Free-text notes (optional)
	Category string          // Category label (optional)
	Tags     string          // Raw comma-separated tag string (optional)
}

// CreateTaskOutput contains the result of creating a mission.
type CreateTaskOutput struct {
	Task domain.Task // The created mission
}

// CreateTask is the use case for creating a new mission.
type CreateTask struct {
	tasks    domain.TaskRepository
	clock    domain.Clock
	orbits   domain.OrbitRandomizer
	notifier domain.Notifier
	sounds   domain.SoundPlayer
	logger   domain.Logger
}

// NewCreateTask creates a new CreateTask use case.
func NewCreateTask(tasks domain.TaskRepository, clock domain.Clock, orbits domain.OrbitRandomizer, notifier domain.Notifier, sounds domain.SoundPlayer, logger domain.Logger) *CreateTask {
	return &CreateTask{
		tasks:    tasks,
		clock:    clock,
		orbits:   orbits,
		notifier: notifier,
		sounds:   sounds,
		logger:   logger,
	}
}

// Execute creates a new mission with the given input.
func (uc *CreateTask) Execute(_ context.Context, in CreateTaskInput) (*CreateTaskOutput, error) {
	if strings.TrimSpace(in.Name) == "" {
		notify(uc.notifier, "Task name is required!", domain.SeverityError)
		play(uc.sounds, domain.CueError)
		return nil, domain.ErrEmptyName
	}

	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}

	orbit := uc.orbits.Orbit()
	task := domain.Task{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Due:        in.Due,
		Priority:   priority,
		Notes:      in.Notes,
		Category:   in.Category,
		Tags:       domain.ParseTags(in.Tags),
		Completed:  false,
		CreatedAt:  uc.clock.Now(),
		Angle:      orbit.Angle,
		Radius:     orbit.Radius,
		OrbitSpeed: orbit.Speed,
	}

	if err := uc.tasks.Append(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	notify(uc.notifier, fmt.Sprintf("Task %q created successfully!", task.Name), domain.SeveritySuccess)
	play(uc.sounds, domain.CueAdd)
	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("created: %q", task.Name))
	}

	return &CreateTaskOutput{Task: task}, nil
}
