// Package notify implements the transient notification queue.
//
// Notifications are newest-first, capped, and auto-expire after a fixed
// window unless dismissed earlier. The queue re-announcing a mission that
// stays due every scan cycle is expected behavior upstream of this package.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/orbitlabs/missionctl/internal/domain"
)

// Ensure Engine implements domain.Notifier.
var _ domain.Notifier = (*Engine)(nil)

// Engine owns the notification queue. All methods are safe for use from
// timer callbacks and the UI goroutine.
// Fields are ordered to minimize memory padding.
type Engine struct {
	clock    domain.Clock
	sounds   domain.SoundPlayer
	timers   map[string]*time.Timer
	onChange func()
	items    []domain.Notification
	ttl      time.Duration
	max      int
	mu       sync.Mutex
	closed   bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithTTL overrides the auto-expiry window (tests use short windows).
func WithTTL(ttl time.Duration) Option {
	return func(e *Engine) { e.ttl = ttl }
}

// WithCapacity overrides the queue bound.
func WithCapacity(n int) Option {
	return func(e *Engine) { e.max = n }
}

// WithOnChange registers a callback invoked after every queue change
// (push, expiry, dismissal). Called without the engine lock held.
func WithOnChange(fn func()) Option {
	return func(e *Engine) { e.onChange = fn }
}

// New creates a notification engine. sounds may be nil.
func New(clock domain.Clock, sounds domain.SoundPlayer, opts ...Option) *Engine {
	e := &Engine{
		clock:  clock,
		sounds: sounds,
		timers: make(map[string]*time.Timer),
		ttl:    domain.NotificationTTL,
		max:    domain.MaxNotifications,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Notify queues a notification and schedules its expiry.
func (e *Engine) Notify(message string, severity domain.Severity) {
	e.Push(message, severity)
}

// Push queues a notification, truncates the queue to its bound, plays the
// notification cue, and schedules auto-expiry. It returns the queued entry.
func (e *Engine) Push(message string, severity domain.Severity) domain.Notification {
	n := domain.Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		Timestamp: e.clock.Now(),
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return n
	}

	e.items = append([]domain.Notification{n}, e.items...)
	for len(e.items) > e.max {
		dropped := e.items[len(e.items)-1]
		e.items = e.items[:len(e.items)-1]
		e.stopTimerLocked(dropped.ID)
	}
	e.timers[n.ID] = time.AfterFunc(e.ttl, func() { e.expire(n.ID) })
	e.mu.Unlock()

	if e.sounds != nil {
		e.sounds.Play(domain.CueNotification)
	}
	e.changed()
	return n
}

// List returns a snapshot of the queue, newest first.
func (e *Engine) List() []domain.Notification {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.Notification, len(e.items))
	copy(out, e.items)
	return out
}

// Len returns the current queue length.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.items)
}

// Dismiss removes a notification early and cancels its expiry timer.
func (e *Engine) Dismiss(id string) {
	e.mu.Lock()
	removed := e.removeLocked(id)
	e.mu.Unlock()
	if removed {
		e.changed()
	}
}

// Close dismisses everything and releases all pending timers. The engine
// accepts no further notifications afterwards.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	for id, timer := range e.timers {
		timer.Stop()
		delete(e.timers, id)
	}
	e.items = nil
}

// expire is the timer callback removing a notification whose window ended.
func (e *Engine) expire(id string) {
	e.mu.Lock()
	removed := e.removeLocked(id)
	e.mu.Unlock()
	if removed {
		e.changed()
	}
}

func (e *Engine) removeLocked(id string) bool {
	e.stopTimerLocked(id)
	for i, n := range e.items {
		if n.ID == id {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Engine) stopTimerLocked(id string) {
	if timer, ok := e.timers[id]; ok {
		timer.Stop()
		delete(e.timers, id)
	}
}

func (e *Engine) changed() {
	if e.onChange != nil {
		e.onChange()
	}
}
