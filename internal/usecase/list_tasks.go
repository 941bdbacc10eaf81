package usecase

import (
	"context"
	"fmt"

	"github.com/orbitlabs/missionctl/internal/domain"
)

// ListTasksInput describes the requested view.
type ListTasksInput struct {
	Filter domain.StatusFilter // all / active / completed (empty = all)
	Search string              // Case-insensitive substring
	SortBy domain.SortKey      // Empty = user's default sort
}

// ListTasksOutput contains the ordered view.
type ListTasksOutput struct {
	Tasks []domain.Task // Filtered and sorted view sequence
}

// ListTasks is the use case for producing the mission view.
type ListTasks struct {
	tasks    domain.TaskRepository
	settings domain.SettingsRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository, settings domain.SettingsRepository) *ListTasks {
	return &ListTasks{
		tasks:    tasks,
		settings: settings,
	}
}

// Execute filters and sorts the mission collection. When no sort key is
// given, the user's default sort preference applies.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	tasks, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	sortBy := in.SortBy
	if sortBy == "" && uc.settings != nil {
		prefs, err := uc.settings.Load()
		if err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}
		sortBy = prefs.SortBy
	}

	view := domain.ApplyView(tasks, domain.ViewQuery{
		Filter: in.Filter,
		Search: in.Search,
		SortBy: sortBy,
	})
	return &ListTasksOutput{Tasks: view}, nil
}
