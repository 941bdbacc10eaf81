package domain

import "math"

// Stats aggregates derived counts over the mission collection.
// Fields are ordered to minimize memory padding.
type Stats struct {
	Total        int // All missions
	Completed    int // Completed missions
	Active       int // Total - Completed
	SuccessRate  int // round(100 * Completed / Total), 0 when empty
	DueToday     int // Active missions due today
	DueThisWeek  int // Active missions due in [today, today+7] inclusive
	HighPriority int // Active missions with high priority
	Overdue      int // Active missions due strictly before today
}

// ComputeStats derives aggregate statistics from the mission collection and
// a reference date. All date comparisons are calendar-day only, so a mission
// due today is never simultaneously overdue. Missions without a due date
// never count as due or overdue.
func ComputeStats(tasks []Task, today Date) Stats {
	weekEnd := today.AddDays(7)

	var s Stats
	s.Total = len(tasks)
	for i := range tasks {
		t := &tasks[i]
		if t.Completed {
			s.Completed++
			continue
		}
		s.Active++
		if t.Priority == PriorityHigh {
			s.HighPriority++
		}
		if t.Due.Equal(today) {
			s.DueToday++
		}
		if t.Due.Equal(today) || (t.Due.After(today) && !t.Due.After(weekEnd)) {
			s.DueThisWeek++
		}
		if t.Due.Before(today) {
			s.Overdue++
		}
	}
	if s.Total > 0 {
		s.SuccessRate = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}
