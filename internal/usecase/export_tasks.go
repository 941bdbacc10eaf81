package usecase

import (
	"context"
	"fmt"

	"github.com/orbitlabs/missionctl/internal/domain"
)

// ExportTasksOutput contains the serialized portable document.
type ExportTasksOutput struct {
	Data  []byte // Pretty-printed task sequence
	Count int    // Number of exported missions
}

// ExportTasks is the use case for serializing the collection to a portable
// document in the same shape as the durable tasks record.
type ExportTasks struct {
	tasks    domain.TaskRepository
	codec    domain.TaskEncoder
	notifier domain.Notifier
	logger   domain.Logger
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(tasks domain.TaskRepository, codec domain.TaskEncoder, notifier domain.Notifier, logger domain.Logger) *ExportTasks {
	return &ExportTasks{
		tasks:    tasks,
		codec:    codec,
		notifier: notifier,
		logger:   logger,
	}
}

// Execute serializes the current collection.
func (uc *ExportTasks) Execute(_ context.Context) (*ExportTasksOutput, error) {
	tasks, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	data, err := uc.codec.Encode(tasks)
	if err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}

	notify(uc.notifier, "Tasks exported successfully!", domain.SeveritySuccess)
	if uc.logger != nil {
		uc.logger.Info("", "export", fmt.Sprintf("exported %d task(s)", len(tasks)))
	}

	return &ExportTasksOutput{Data: data, Count: len(tasks)}, nil
}
