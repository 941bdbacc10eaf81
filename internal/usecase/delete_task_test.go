package usecase

import (
	"context"
	"testing"

	"github.com/orbitlabs/missionctl/internal/domain"
	"github.com/orbitlabs/missionctl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteTask_Execute_Success(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository(
		domain.Task{ID: "t1", Name: "Dock"},
		domain.Task{ID: "t2", Name: "Refuel"},
	)
	notifier := &testutil.RecordingNotifier{}
	sounds := &testutil.RecordingSoundPlayer{}
	uc := NewDeleteTask(repo, notifier, sounds, testutil.NopLogger{})

	// Execute
	out, err := uc.Execute(context.Background(), DeleteTaskInput{ID: "t1"})

	// Assert
	require.NoError(t, err)
	assert.True(t, out.Deleted)
	assert.Equal(t, "Dock", out.Task.Name)
	require.Len(t, repo.Tasks, 1)
	assert.Equal(t, "t2", repo.Tasks[0].ID)
	assert.Equal(t, testutil.Notification{
		Message:  `Task "Dock" deleted!`,
		Severity: domain.SeverityInfo,
	}, notifier.Last())
	assert.Equal(t, []domain.SoundCue{domain.CueDelete}, sounds.Cues)
}

func TestDeleteTask_Execute_UnknownIDIsSilentNoOp(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository(domain.Task{ID: "t1", Name: "Dock"})
	notifier := &testutil.RecordingNotifier{}
	sounds := &testutil.RecordingSoundPlayer{}
	uc := NewDeleteTask(repo, notifier, sounds, nil)

	// Execute
	out, err := uc.Execute(context.Background(), DeleteTaskInput{ID: "nope"})

	// Assert
	require.NoError(t, err)
	assert.False(t, out.Deleted)
	assert.Len(t, repo.Tasks, 1)
	assert.Empty(t, notifier.Notifications)
	assert.Empty(t, sounds.Cues)
}
