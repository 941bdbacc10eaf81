package usecase

import (
	"context"
	"fmt"

	"github.com/orbitlabs/missionctl/internal/domain"
)

// DueScanOutput reports what the scan emitted.
type DueScanOutput struct {
	Alerts int // Number of notifications emitted this cycle
}

// DueScan is the periodic due-date scan. It examines every active mission
// and emits one notification per mission that is due today, due tomorrow, or
// overdue. The scan is level-triggered: a mission that stays in a due
// condition is re-announced every cycle.
type DueScan struct {
	tasks    domain.TaskRepository
	clock    domain.Clock
	notifier domain.Notifier
	logger   domain.Logger
}

// NewDueScan creates a new DueScan use case.
func NewDueScan(tasks domain.TaskRepository, clock domain.Clock, notifier domain.Notifier, logger domain.Logger) *DueScan {
	return &DueScan{
		tasks:    tasks,
		clock:    clock,
		notifier: notifier,
		logger:   logger,
	}
}

// Execute runs one scan cycle over the collection.
func (uc *DueScan) Execute(_ context.Context) (*DueScanOutput, error) {
	tasks, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	today := domain.DateOf(uc.clock.Now())
	tomorrow := today.AddDays(1)

	out := &DueScanOutput{}
	for i := range tasks {
		t := &tasks[i]
		if t.Completed {
			continue
		}
		switch {
		case t.Due.Equal(today):
			notify(uc.notifier, fmt.Sprintf("Task %q is due today!", t.Name), domain.SeverityWarning)
		case t.Due.Equal(tomorrow):
			notify(uc.notifier, fmt.Sprintf("Task %q is due tomorrow!", t.Name), domain.SeverityInfo)
		case t.Due.Before(today):
			notify(uc.notifier, fmt.Sprintf("Task %q is overdue!", t.Name), domain.SeverityError)
		default:
			continue
		}
		out.Alerts++
	}

	if uc.logger != nil && out.Alerts > 0 {
		uc.logger.Debug("", "scan", fmt.Sprintf("due scan emitted %d alert(s)", out.Alerts))
	}
	return out, nil
}
