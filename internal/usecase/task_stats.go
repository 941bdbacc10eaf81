package usecase

import (
	"context"
	"fmt"

	"github.com/orbitlabs/missionctl/internal/domain"
)

// TaskStatsOutput contains the derived statistics.
type TaskStatsOutput struct {
	Stats domain.Stats // Aggregate counts and success rate
	Today domain.Date  // The reference date the stats were computed for
}

// TaskStats is the use case for computing derived mission statistics.
type TaskStats struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewTaskStats creates a new TaskStats use case.
func NewTaskStats(tasks domain.TaskRepository, clock domain.Clock) *TaskStats {
	return &TaskStats{
		tasks: tasks,
		clock: clock,
	}
}

// Execute computes statistics over the current collection against today's
// calendar date.
func (uc *TaskStats) Execute(_ context.Context) (*TaskStatsOutput, error) {
	tasks, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	today := domain.DateOf(uc.clock.Now())
	return &TaskStatsOutput{
		Stats: domain.ComputeStats(tasks, today),
		Today: today,
	}, nil
}
