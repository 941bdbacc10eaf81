// Package jsonstore provides the JSON file-based durable storage for tasks
// and settings.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/orbitlabs/missionctl/internal/domain"
)

// Store implements domain.TaskRepository using a JSON file holding the task
// sequence in insertion order. Every mutation rewrites the full collection.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it is created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// List retrieves the full collection in insertion order.
func (s *Store) List() ([]domain.Task, error) {
	var tasks []domain.Task
	err := s.withLock(syscall.LOCK_SH, func() error {
		var err error
		tasks, err = s.read()
		return err
	})
	return tasks, err
}

// Get retrieves a task by ID. Returns nil if not found.
func (s *Store) Get(id string) (*domain.Task, error) {
	var task *domain.Task
	err := s.withLock(syscall.LOCK_SH, func() error {
		tasks, err := s.read()
		if err != nil {
			return err
		}
		for i := range tasks {
			if tasks[i].ID == id {
				task = &tasks[i]
				break
			}
		}
		return nil
	})
	return task, err
}

// Append adds a task to the end of the collection and persists.
func (s *Store) Append(task domain.Task) error {
	return s.mutate(func(tasks []domain.Task) []domain.Task {
		return append(tasks, task)
	})
}

// Update replaces the task with a matching ID in place. Unknown IDs leave
// the collection unchanged; the record is persisted either way.
func (s *Store) Update(task domain.Task) error {
	return s.mutate(func(tasks []domain.Task) []domain.Task {
		for i := range tasks {
			if tasks[i].ID == task.ID {
				tasks[i] = task
				break
			}
		}
		return tasks
	})
}

// Delete removes a task by ID. Unknown IDs are a no-op.
func (s *Store) Delete(id string) error {
	return s.mutate(func(tasks []domain.Task) []domain.Task {
		for i := range tasks {
			if tasks[i].ID == id {
				return append(tasks[:i], tasks[i+1:]...)
			}
		}
		return tasks
	})
}

// ReplaceAll swaps the whole collection.
func (s *Store) ReplaceAll(tasks []domain.Task) error {
	return s.mutate(func([]domain.Task) []domain.Task {
		return tasks
	})
}

// mutate executes fn under an exclusive lock and persists the result.
func (s *Store) mutate(fn func([]domain.Task) []domain.Task) error {
	return s.withLock(syscall.LOCK_EX, func() error {
		tasks, err := s.read()
		if err != nil {
			return err
		}
		return s.write(fn(tasks))
	})
}

// withLock executes fn while holding the file lock.
func (s *Store) withLock(lockType int, fn func() error) error {
	lock, err := s.acquireLock(lockType)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)
	return fn()
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// read loads the task sequence. An absent or malformed record yields an
// empty collection rather than a fatal error; the next successful mutation
// rewrites it in the current shape. Fields absent from older persisted
// shapes keep their zero values.
func (s *Store) read() ([]domain.Task, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read tasks record: %w", err)
	}

	var tasks []domain.Task
	if err := json.Unmarshal(content, &tasks); err != nil {
		return nil, nil
	}
	return tasks, nil
}

// write persists the full sequence, pretty-printed, via a temp file rename
// for atomicity.
func (s *Store) write(tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	content, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)
