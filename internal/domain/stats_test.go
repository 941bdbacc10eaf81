package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats_Empty(t *testing.T) {
	s := ComputeStats(nil, NewDate(2024, time.January, 3))
	assert.Equal(t, Stats{}, s)
}

func TestComputeStats_MixedCollection(t *testing.T) {
	today := NewDate(2024, time.January, 3)
	tasks := []Task{
		{Name: "A", Due: NewDate(2024, time.January, 1), Priority: PriorityHigh},
		{Name: "B", Due: NewDate(2024, time.January, 5), Priority: PriorityHigh, Completed: true},
	}

	s := ComputeStats(tasks, today)

	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.Completed)
	assert.Equal(t, 1, s.Active)
	assert.Equal(t, 50, s.SuccessRate)
	assert.Equal(t, 0, s.DueToday)
	assert.Equal(t, 0, s.DueThisWeek)
	// Completed mission B is due this week but must not count.
	assert.Equal(t, 1, s.HighPriority)
	assert.Equal(t, 1, s.Overdue)
}

func TestComputeStats_DueTodayIsNotOverdue(t *testing.T) {
	today := NewDate(2024, time.January, 3)
	tasks := []Task{
		{Name: "due now", Due: today, Priority: PriorityLow},
	}

	s := ComputeStats(tasks, today)

	assert.Equal(t, 1, s.DueToday)
	assert.Equal(t, 1, s.DueThisWeek)
	assert.Equal(t, 0, s.Overdue)
}

func TestComputeStats_WeekWindowInclusive(t *testing.T) {
	today := NewDate(2024, time.January, 3)
	tasks := []Task{
		{Name: "edge", Due: today.AddDays(7)},
		{Name: "beyond", Due: today.AddDays(8)},
	}

	s := ComputeStats(tasks, today)

	assert.Equal(t, 1, s.DueThisWeek)
}

func TestComputeStats_NoDueDateNeverDue(t *testing.T) {
	today := NewDate(2024, time.January, 3)
	tasks := []Task{
		{Name: "drifting", Priority: PriorityHigh},
	}

	s := ComputeStats(tasks, today)

	assert.Equal(t, 0, s.DueToday)
	assert.Equal(t, 0, s.DueThisWeek)
	assert.Equal(t, 0, s.Overdue)
	assert.Equal(t, 1, s.HighPriority)
}

func TestComputeStats_SuccessRateRounds(t *testing.T) {
	today := NewDate(2024, time.January, 3)
	tasks := []Task{
		{Completed: true},
		{},
		{},
	}

	s := ComputeStats(tasks, today)

	// 1/3 = 33.33...% rounds down to 33.
	assert.Equal(t, 33, s.SuccessRate)

	tasks = append(tasks, Task{Completed: true})
	s = ComputeStats(tasks, today)
	assert.Equal(t, 50, s.SuccessRate)
}
