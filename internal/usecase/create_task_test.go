package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/orbitlabs/missionctl/internal/domain"
	"github.com/orbitlabs/missionctl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTask_Execute_Success(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	clock := &testutil.MockClock{NowTime: time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)}
	orbits := &testutil.FixedOrbits{Value: domain.Orbit{Angle: 42, Radius: 150, Speed: 0.5}}
	notifier := &testutil.RecordingNotifier{}
	sounds := &testutil.RecordingSoundPlayer{}
	uc := NewCreateTask(repo, clock, orbits, notifier, sounds, testutil.NopLogger{})

	// Execute
	out, err := uc.Execute(context.Background(), CreateTaskInput{
		Name:     "Launch probe",
		Priority: domain.PriorityHigh,
		Notes:    "before the window closes",
		Category: "science",
		Tags:     "orbital, urgent, orbital",
	})

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, out.Task.ID)
	assert.Equal(t, "Launch probe", out.Task.Name)
	assert.Equal(t, domain.PriorityHigh, out.Task.Priority)
	assert.Equal(t, []string{"orbital", "urgent"}, out.Task.Tags)
	assert.Equal(t, clock.NowTime, out.Task.CreatedAt)
	assert.False(t, out.Task.Completed)
	assert.Equal(t, 42.0, out.Task.Angle)
	assert.Equal(t, 150.0, out.Task.Radius)
	assert.Equal(t, 0.5, out.Task.OrbitSpeed)

	// Verify persisted
	require.Len(t, repo.Tasks, 1)
	assert.Equal(t, out.Task, repo.Tasks[0])

	// Verify feedback
	assert.Equal(t, testutil.Notification{
		Message:  `Task "Launch probe" created successfully!`,
		Severity: domain.SeveritySuccess,
	}, notifier.Last())
	assert.Equal(t, []domain.SoundCue{domain.CueAdd}, sounds.Cues)
}

func TestCreateTask_Execute_DefaultPriority(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	clock := &testutil.MockClock{NowTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	uc := NewCreateTask(repo, clock, &testutil.FixedOrbits{}, nil, nil, nil)

	// Execute
	out, err := uc.Execute(context.Background(), CreateTaskInput{Name: "Defaults"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, out.Task.Priority)
}

func TestCreateTask_Execute_BlankName(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	clock := &testutil.MockClock{NowTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	notifier := &testutil.RecordingNotifier{}
	sounds := &testutil.RecordingSoundPlayer{}
	uc := NewCreateTask(repo, clock, &testutil.FixedOrbits{}, notifier, sounds, nil)

	// Execute with a whitespace-only name
	_, err := uc.Execute(context.Background(), CreateTaskInput{Name: "   "})

	// Assert
	assert.ErrorIs(t, err, domain.ErrEmptyName)
	assert.Empty(t, repo.Tasks)
	assert.Equal(t, testutil.Notification{
		Message:  "Task name is required!",
		Severity: domain.SeverityError,
	}, notifier.Last())
	assert.Equal(t, []domain.SoundCue{domain.CueError}, sounds.Cues)
}

func TestCreateTask_Execute_InvalidPriority(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	clock := &testutil.MockClock{NowTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	uc := NewCreateTask(repo, clock, &testutil.FixedOrbits{}, nil, nil, nil)

	// Execute
	_, err := uc.Execute(context.Background(), CreateTaskInput{
		Name:     "Bad priority",
		Priority: domain.Priority("critical"),
	})

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
	assert.Empty(t, repo.Tasks)
}

func TestCreateTask_Execute_UniqueIDs(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	clock := &testutil.MockClock{NowTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	uc := NewCreateTask(repo, clock, &testutil.FixedOrbits{}, nil, nil, nil)

	// Execute twice
	first, err := uc.Execute(context.Background(), CreateTaskInput{Name: "one"})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), CreateTaskInput{Name: "two"})
	require.NoError(t, err)

	// Assert
	assert.NotEqual(t, first.Task.ID, second.Task.ID)
}

func TestCreateTask_Execute_SaveError(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	repo.SaveErr = assert.AnError
	clock := &testutil.MockClock{NowTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	uc := NewCreateTask(repo, clock, &testutil.FixedOrbits{}, nil, nil, nil)

	// Execute
	_, err := uc.Execute(context.Background(), CreateTaskInput{Name: "doomed"})

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "save task")
}
