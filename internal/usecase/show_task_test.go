package usecase

import (
	"context"
	"testing"

	"github.com/orbitlabs/missionctl/internal/domain"
	"github.com/orbitlabs/missionctl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowTask_Execute_ExactID(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository(
		domain.Task{ID: "abc12345", Name: "Dock"},
	)
	uc := NewShowTask(repo)

	// Execute
	out, err := uc.Execute(context.Background(), ShowTaskInput{ID: "abc12345"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Dock", out.Task.Name)
}

func TestShowTask_Execute_UniquePrefix(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository(
		domain.Task{ID: "abc12345", Name: "Dock"},
		domain.Task{ID: "def67890", Name: "Refuel"},
	)
	uc := NewShowTask(repo)

	// Execute
	out, err := uc.Execute(context.Background(), ShowTaskInput{ID: "def"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Refuel", out.Task.Name)
}

func TestShowTask_Execute_AmbiguousPrefix(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository(
		domain.Task{ID: "abc12345", Name: "Dock"},
		domain.Task{ID: "abc99999", Name: "Refuel"},
	)
	uc := NewShowTask(repo)

	// Execute
	_, err := uc.Execute(context.Background(), ShowTaskInput{ID: "abc"})

	// Assert
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestShowTask_Execute_NotFound(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	uc := NewShowTask(repo)

	// Execute
	_, err := uc.Execute(context.Background(), ShowTaskInput{ID: "zzz"})

	// Assert
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
