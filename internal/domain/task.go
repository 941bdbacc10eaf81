// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// Priority classifies how urgent a mission is.
type Priority string

// Priority values, serialized as-is.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank returns the numeric severity of the priority (high=3, medium=2, low=1).
// Unknown values rank 0 and sort after low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	return p.Rank() > 0
}

// ParsePriority parses a priority string.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", ErrInvalidPriority
	}
	return p, nil
}

// Task represents a tracked mission.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt  time.Time `json:"createdAt" yaml:"createdAt"`   // Creation time, set once
	Due        Date      `json:"dueDate" yaml:"dueDate"`       // Calendar due date (may be zero)
	ID         string    `json:"id" yaml:"id"`                 // Unique identifier
	Name       string    `json:"name" yaml:"name"`             // Mission name (required)
	Notes      string    `json:"notes" yaml:"notes"`           // Free-text notes
	Category   string    `json:"category" yaml:"category"`     // Category label
	Priority   Priority  `json:"priority" yaml:"priority"`     // low / medium / high
	Tags       []string  `json:"tags" yaml:"tags"`             // Deduplicated, non-empty tags
	Angle      float64   `json:"angle" yaml:"angle"`           // Orbit angle (presentation)
	Radius     float64   `json:"radius" yaml:"radius"`         // Orbit radius (presentation)
	OrbitSpeed float64   `json:"orbitSpeed" yaml:"orbitSpeed"` // Orbit speed (presentation)
	Completed  bool      `json:"completed" yaml:"completed"`   // Completion flag
}

// IsActive reports whether the task is not yet completed.
func (t *Task) IsActive() bool {
	return !t.Completed
}

// MatchesSearch reports whether the task matches the query as a
// case-insensitive substring of its name, notes, category, or any tag.
// An empty query matches everything.
func (t *Task) MatchesSearch(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Name), q) ||
		strings.Contains(strings.ToLower(t.Notes), q) ||
		strings.Contains(strings.ToLower(t.Category), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// ParseTags splits a raw comma-separated tag string into a clean tag list:
// entries are trimmed, empties discarded, and duplicates keep their first
// occurrence.
func ParseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}
