package domain

import "time"

// Severity classifies a notification for presentation styling.
type Severity string

// Severity values.
const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification queue bounds.
const (
	// NotificationTTL is how long a notification stays visible before it
	// expires on its own.
	NotificationTTL = 5 * time.Second

	// MaxNotifications caps the queue; older entries beyond the cap are
	// silently dropped.
	MaxNotifications = 10
)

// Notification is a transient, auto-expiring alert.
// Fields are ordered to minimize memory padding.
type Notification struct {
	Timestamp time.Time // Creation time
	ID        string    // Unique identifier
	Message   string    // Display text
	Severity  Severity  // info / warning / success / error
}
