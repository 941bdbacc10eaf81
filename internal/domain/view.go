package domain

import (
	"slices"
	"strings"
)

// StatusFilter gates the view on the completion flag.
type StatusFilter string

// Status filter values.
const (
	FilterAll       StatusFilter = "all"
	FilterActive    StatusFilter = "active"
	FilterCompleted StatusFilter = "completed"
)

// IsValid reports whether f is a known status filter.
func (f StatusFilter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	default:
		return false
	}
}

// ParseStatusFilter parses a status filter string.
func ParseStatusFilter(s string) (StatusFilter, error) {
	f := StatusFilter(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", ErrInvalidFilter
	}
	return f, nil
}

// ViewQuery describes the view over the mission collection.
type ViewQuery struct {
	Filter StatusFilter // all / active / completed (empty = all)
	Search string       // Case-insensitive substring, empty matches all
	SortBy SortKey      // dueDate / priority / created (empty = dueDate)
}

// ApplyView filters and sorts the mission collection into an ordered view.
// The input slice is never modified; sorting is stable, so equal keys keep
// their relative insertion order.
func ApplyView(tasks []Task, q ViewQuery) []Task {
	filter := q.Filter
	if filter == "" {
		filter = FilterAll
	}
	sortBy := q.SortBy
	if !sortBy.IsValid() {
		sortBy = SortByDueDate
	}
	query := strings.TrimSpace(q.Search)

	view := make([]Task, 0, len(tasks))
	for i := range tasks {
		t := tasks[i]
		switch filter {
		case FilterActive:
			if t.Completed {
				continue
			}
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		}
		if !t.MatchesSearch(query) {
			continue
		}
		view = append(view, t)
	}

	switch sortBy {
	case SortByDueDate:
		slices.SortStableFunc(view, compareByDueDate)
	case SortByPriority:
		slices.SortStableFunc(view, func(a, b Task) int {
			return b.Priority.Rank() - a.Priority.Rank()
		})
	case SortByCreated:
		slices.SortStableFunc(view, func(a, b Task) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
	return view
}

// compareByDueDate orders earliest due date first; missions without a due
// date sort after all dated ones.
func compareByDueDate(a, b Task) int {
	switch {
	case a.Due.IsZero() && b.Due.IsZero():
		return 0
	case a.Due.IsZero():
		return 1
	case b.Due.IsZero():
		return -1
	default:
		return a.Due.Time().Compare(b.Due.Time())
	}
}
