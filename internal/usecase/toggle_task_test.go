package usecase

import (
	"context"
	"testing"

	"github.com/orbitlabs/missionctl/internal/domain"
	"github.com/orbitlabs/missionctl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleTask_Execute_Complete(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository(domain.Task{ID: "t1", Name: "Dock"})
	notifier := &testutil.RecordingNotifier{}
	sounds := &testutil.RecordingSoundPlayer{}
	uc := NewToggleTask(repo, notifier, sounds, testutil.NopLogger{})

	// Execute
	out, err := uc.Execute(context.Background(), ToggleTaskInput{ID: "t1"})

	// Assert
	require.NoError(t, err)
	assert.True(t, out.Toggled)
	assert.True(t, out.Task.Completed)
	assert.True(t, repo.Tasks[0].Completed)
	assert.Equal(t, testutil.Notification{
		Message:  `Task "Dock" completed!`,
		Severity: domain.SeveritySuccess,
	}, notifier.Last())
	assert.Equal(t, []domain.SoundCue{domain.CueComplete}, sounds.Cues)
}

func TestToggleTask_Execute_Reopen(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository(domain.Task{ID: "t1", Name: "Dock", Completed: true})
	notifier := &testutil.RecordingNotifier{}
	sounds := &testutil.RecordingSoundPlayer{}
	uc := NewToggleTask(repo, notifier, sounds, nil)

	// Execute
	out, err := uc.Execute(context.Background(), ToggleTaskInput{ID: "t1"})

	// Assert
	require.NoError(t, err)
	assert.True(t, out.Toggled)
	assert.False(t, out.Task.Completed)
	assert.Equal(t, testutil.Notification{
		Message:  `Task "Dock" reopened!`,
		Severity: domain.SeverityInfo,
	}, notifier.Last())
	assert.Equal(t, []domain.SoundCue{domain.CueAdd}, sounds.Cues)
}

func TestToggleTask_Execute_TwiceRestoresState(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository(domain.Task{ID: "t1", Name: "Dock"})
	uc := NewToggleTask(repo, nil, nil, nil)

	// Execute twice
	_, err := uc.Execute(context.Background(), ToggleTaskInput{ID: "t1"})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), ToggleTaskInput{ID: "t1"})
	require.NoError(t, err)

	// Assert: back to active
	assert.False(t, repo.Tasks[0].Completed)
}

func TestToggleTask_Execute_UnknownIDIsSilentNoOp(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository(domain.Task{ID: "t1", Name: "Dock"})
	notifier := &testutil.RecordingNotifier{}
	sounds := &testutil.RecordingSoundPlayer{}
	uc := NewToggleTask(repo, notifier, sounds, nil)

	// Execute
	out, err := uc.Execute(context.Background(), ToggleTaskInput{ID: "nope"})

	// Assert: no error, no mutation, no feedback
	require.NoError(t, err)
	assert.False(t, out.Toggled)
	assert.False(t, repo.Tasks[0].Completed)
	assert.Empty(t, notifier.Notifications)
	assert.Empty(t, sounds.Cues)
}
