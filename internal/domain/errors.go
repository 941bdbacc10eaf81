package domain

import "errors"

// Domain errors.
var (
	ErrEmptyName       = errors.New("task name is required")
	ErrImport          = errors.New("invalid task payload")
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidPriority = errors.New("invalid priority (use low, medium, or high)")
	ErrInvalidSortKey  = errors.New("invalid sort key (use dueDate, priority, or created)")
	ErrInvalidFilter   = errors.New("invalid status filter (use all, active, or completed)")
)
