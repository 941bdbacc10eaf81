package domain

import "strings"

// SortKey selects the ordering of the mission view.
type SortKey string

// Sort keys, serialized as-is.
const (
	SortByDueDate  SortKey = "dueDate"
	SortByPriority SortKey = "priority"
	SortByCreated  SortKey = "created"
)

// IsValid reports whether k is a known sort key.
func (k SortKey) IsValid() bool {
	switch k {
	case SortByDueDate, SortByPriority, SortByCreated:
		return true
	default:
		return false
	}
}

// ParseSortKey parses a sort key string, accepting a few aliases.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.TrimSpace(s) {
	case "dueDate", "due", "duedate":
		return SortByDueDate, nil
	case "priority":
		return SortByPriority, nil
	case "created":
		return SortByCreated, nil
	default:
		return "", ErrInvalidSortKey
	}
}

// Settings holds persisted user preferences.
type Settings struct {
	SortBy       SortKey `json:"sortBy"`
	SoundEnabled bool    `json:"soundEnabled"`
}

// DefaultSettings returns the built-in preferences applied when the settings
// record is absent or malformed.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled: true,
		SortBy:       SortByDueDate,
	}
}

// Normalized replaces malformed fields with their defaults.
func (s Settings) Normalized() Settings {
	if !s.SortBy.IsValid() {
		s.SortBy = SortByDueDate
	}
	return s
}
