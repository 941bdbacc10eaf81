package usecase

import (
	"context"
	"fmt"

	"github.com/orbitlabs/missionctl/internal/domain"
)

// ImportTasksInput carries the raw portable document.
type ImportTasksInput struct {
	Data []byte // UTF-8 document containing a task sequence
}

// ImportTasksOutput contains the result of the import.
type ImportTasksOutput struct {
	Count int // Number of imported missions
}

// ImportTasks is the use case for replacing the whole collection from a
// portable document. The swap is all-or-nothing: a malformed payload leaves
// the existing collection untouched.
type ImportTasks struct {
	tasks    domain.TaskRepository
	codec    domain.TaskDecoder
	notifier domain.Notifier
	sounds   domain.SoundPlayer
	logger   domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(tasks domain.TaskRepository, codec domain.TaskDecoder, notifier domain.Notifier, sounds domain.SoundPlayer, logger domain.Logger) *ImportTasks {
	return &ImportTasks{
		tasks:    tasks,
		codec:    codec,
		notifier: notifier,
		sounds:   sounds,
		logger:   logger,
	}
}

// Execute parses the document and atomically replaces the collection.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	imported, err := uc.codec.Decode(in.Data)
	if err != nil {
		notify(uc.notifier, "Error importing tasks!", domain.SeverityError)
		play(uc.sounds, domain.CueError)
		return nil, fmt.Errorf("%w: %s", domain.ErrImport, err)
	}

	if err := uc.tasks.ReplaceAll(imported); err != nil {
		return nil, fmt.Errorf("replace tasks: %w", err)
	}

	notify(uc.notifier, "Tasks imported successfully!", domain.SeveritySuccess)
	play(uc.sounds, domain.CueAdd)
	if uc.logger != nil {
		uc.logger.Info("", "import", fmt.Sprintf("imported %d task(s)", len(imported)))
	}

	return &ImportTasksOutput{Count: len(imported)}, nil
}
