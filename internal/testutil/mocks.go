// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"slices"
	"time"

	"github.com/orbitlabs/missionctl/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskRepository is a slice-backed test double for domain.TaskRepository.
// It preserves insertion order like the durable store.
type MockTaskRepository struct {
	ListErr error
	SaveErr error
	Tasks   []domain.Task
}

// NewMockTaskRepository creates an empty MockTaskRepository.
func NewMockTaskRepository(tasks ...domain.Task) *MockTaskRepository {
	return &MockTaskRepository{Tasks: tasks}
}

// List returns the collection in insertion order.
func (m *MockTaskRepository) List() ([]domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return slices.Clone(m.Tasks), nil
}

// Get retrieves a task by ID. Returns nil if not found.
func (m *MockTaskRepository) Get(id string) (*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	for i := range m.Tasks {
		if m.Tasks[i].ID == id {
			task := m.Tasks[i]
			return &task, nil
		}
	}
	return nil, nil
}

// Append adds a task to the end of the collection.
func (m *MockTaskRepository) Append(task domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks = append(m.Tasks, task)
	return nil
}

// Update replaces the task with a matching ID in place.
func (m *MockTaskRepository) Update(task domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	for i := range m.Tasks {
		if m.Tasks[i].ID == task.ID {
			m.Tasks[i] = task
			break
		}
	}
	return nil
}

// Delete removes a task by ID.
func (m *MockTaskRepository) Delete(id string) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks = slices.DeleteFunc(m.Tasks, func(t domain.Task) bool {
		return t.ID == id
	})
	return nil
}

// ReplaceAll swaps the whole collection.
func (m *MockTaskRepository) ReplaceAll(tasks []domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks = slices.Clone(tasks)
	return nil
}

// MockSettingsRepository is a test double for domain.SettingsRepository.
type MockSettingsRepository struct {
	LoadErr  error
	SaveErr  error
	Settings domain.Settings
	Saved    bool
}

// NewMockSettingsRepository creates a MockSettingsRepository holding defaults.
func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{Settings: domain.DefaultSettings()}
}

// Load returns the configured settings.
func (m *MockSettingsRepository) Load() (domain.Settings, error) {
	if m.LoadErr != nil {
		return domain.Settings{}, m.LoadErr
	}
	return m.Settings, nil
}

// Save records the settings.
func (m *MockSettingsRepository) Save(settings domain.Settings) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Settings = settings
	m.Saved = true
	return nil
}

// Notification is a recorded alert.
type Notification struct {
	Message  string
	Severity domain.Severity
}

// RecordingNotifier records every alert it receives.
type RecordingNotifier struct {
	Notifications []Notification
}

// Notify records the alert.
func (r *RecordingNotifier) Notify(message string, severity domain.Severity) {
	r.Notifications = append(r.Notifications, Notification{Message: message, Severity: severity})
}

// Last returns the most recent alert, or a zero value if none.
func (r *RecordingNotifier) Last() Notification {
	if len(r.Notifications) == 0 {
		return Notification{}
	}
	return r.Notifications[len(r.Notifications)-1]
}

// RecordingSoundPlayer records every cue it is asked to play.
type RecordingSoundPlayer struct {
	Cues []domain.SoundCue
}

// Play records the cue.
func (r *RecordingSoundPlayer) Play(cue domain.SoundCue) {
	r.Cues = append(r.Cues, cue)
}

// FixedOrbits is a test double for domain.OrbitRandomizer returning a
// constant orbit.
type FixedOrbits struct {
	Value domain.Orbit
}

// Orbit returns the configured orbit.
func (f *FixedOrbits) Orbit() domain.Orbit {
	return f.Value
}

// NopLogger discards all log output.
type NopLogger struct{}

// Debug discards the message.
func (NopLogger) Debug(_, _, _ string) {}

// Info discards the message.
func (NopLogger) Info(_, _, _ string) {}

// Warn discards the message.
func (NopLogger) Warn(_, _, _ string) {}

// Error discards the message.
func (NopLogger) Error(_, _, _ string) {}
