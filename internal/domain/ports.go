package domain

import "time"

// TaskRepository manages the durable mission collection. The collection is a
// sequence; Append preserves insertion order and every mutation persists the
// full collection before returning.
type TaskRepository interface {
	// List retrieves the full collection in insertion order.
	List() ([]Task, error)

	// Get retrieves a task by ID. Returns nil if not found.
	Get(id string) (*Task, error)

	// Append adds a task to the end of the collection.
	Append(task Task) error

	// Update replaces the task with a matching ID in place. Unknown IDs are
	// a no-op; the collection is still persisted.
	Update(task Task) error

	// Delete removes a task by ID. Unknown IDs are a no-op.
	Delete(id string) error

	// ReplaceAll swaps the whole collection atomically.
	ReplaceAll(tasks []Task) error
}

// SettingsRepository manages persisted user preferences.
type SettingsRepository interface {
	// Load returns the stored settings, falling back to defaults when the
	// record is absent or malformed.
	Load() (Settings, error)

	// Save persists the settings.
	Save(settings Settings) error
}

// Notifier receives transient alerts emitted by mutations and scans.
type Notifier interface {
	// Notify queues a notification with the given message and severity.
	Notify(message string, severity Severity)
}

// SoundCue names an audio feedback category. Synthesis is presentation; the
// engine only signals which cue to play.
type SoundCue string

// Sound cues.
const (
	CueAdd          SoundCue = "add"
	CueComplete     SoundCue = "complete"
	CueDelete       SoundCue = "delete"
	CueNotification SoundCue = "notification"
	CueError        SoundCue = "error"
)

// SoundPlayer plays audio feedback cues.
type SoundPlayer interface {
	// Play plays the cue. Implementations honour the sound-enabled setting.
	Play(cue SoundCue)
}

// Orbit holds the randomized presentation attributes attached at creation.
type Orbit struct {
	Angle  float64 // Degrees in [0, 360)
	Radius float64 // Pixels in [120, 200)
	Speed  float64 // Degrees per frame in [0.2, 1.0)
}

// OrbitRandomizer draws presentation attributes for new missions. Isolated
// behind an interface so stats, filter, and sort never depend on the values.
type OrbitRandomizer interface {
	// Orbit draws a fresh set of orbital attributes.
	Orbit() Orbit
}

// TaskEncoder serializes the mission collection to a portable document.
type TaskEncoder interface {
	Encode(tasks []Task) ([]byte, error)
}

// TaskDecoder parses a portable document into a mission collection.
type TaskDecoder interface {
	Decode(data []byte) ([]Task, error)
}

// TaskCodec both encodes and decodes portable task documents.
type TaskCodec interface {
	TaskEncoder
	TaskDecoder
}

// Logger writes categorized application logs.
type Logger interface {
	// Debug logs a debug message. taskID may be empty for app-level events.
	Debug(taskID, category, msg string)

	// Info logs an info message.
	Info(taskID, category, msg string)

	// Warn logs a warning message.
	Warn(taskID, category, msg string)

	// Error logs an error message.
	Error(taskID, category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
