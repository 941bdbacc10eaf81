package jsonstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/orbitlabs/missionctl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "tasks.json"))
}

func TestStore_List_Empty(t *testing.T) {
	store := newTestStore(t)

	tasks, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestStore_Append_List_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	task := domain.Task{
		ID:         "t1",
		Name:       "Launch probe",
		Due:        domain.NewDate(2024, time.March, 5),
		Priority:   domain.PriorityHigh,
		Notes:      "window closes soon",
		Category:   "science",
		Tags:       []string{"orbital", "urgent"},
		CreatedAt:  time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		Angle:      120.5,
		Radius:     160,
		OrbitSpeed: 0.4,
	}

	require.NoError(t, store.Append(task))

	tasks, err := store.List()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task, tasks[0])
}

func TestStore_Append_PreservesInsertionOrder(t *testing.T) {
	store := newTestStore(t)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Append(domain.Task{ID: id, Name: id}))
	}

	tasks, err := store.List()
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "a", tasks[0].ID)
	assert.Equal(t, "b", tasks[1].ID)
	assert.Equal(t, "c", tasks[2].ID)
}

func TestStore_Get(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Append(domain.Task{ID: "t1", Name: "Dock"}))

	found, err := store.Get("t1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Dock", found.Name)

	missing, err := store.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_Update(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Append(domain.Task{ID: "t1", Name: "Dock"}))
	require.NoError(t, store.Append(domain.Task{ID: "t2", Name: "Refuel"}))

	require.NoError(t, store.Update(domain.Task{ID: "t1", Name: "Dock v2", Completed: true}))

	tasks, err := store.List()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Dock v2", tasks[0].Name)
	assert.True(t, tasks[0].Completed)
	assert.Equal(t, "Refuel", tasks[1].Name)
}

func TestStore_Update_UnknownIDIsNoOp(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Append(domain.Task{ID: "t1", Name: "Dock"}))

	require.NoError(t, store.Update(domain.Task{ID: "ghost", Name: "Phantom"}))

	tasks, err := store.List()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Dock", tasks[0].Name)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Append(domain.Task{ID: "t1", Name: "Dock"}))
	require.NoError(t, store.Append(domain.Task{ID: "t2", Name: "Refuel"}))

	require.NoError(t, store.Delete("t1"))

	tasks, err := store.List()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "t2", tasks[0].ID)

	// Deleting again is a no-op.
	require.NoError(t, store.Delete("t1"))
	tasks, err = store.List()
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestStore_ReplaceAll(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Append(domain.Task{ID: "old", Name: "Old"}))

	require.NoError(t, store.ReplaceAll([]domain.Task{
		{ID: "n1", Name: "New one"},
		{ID: "n2", Name: "New two"},
	}))

	tasks, err := store.List()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "n1", tasks[0].ID)
}

func TestStore_MalformedRecordYieldsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	store := New(path)

	tasks, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// The next mutation rewrites the record in the current shape.
	require.NoError(t, store.Append(domain.Task{ID: "t1", Name: "Fresh"}))
	tasks, err = store.List()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Fresh", tasks[0].Name)
}
