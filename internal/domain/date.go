package domain

import (
	"encoding/json"
	"time"

	"gopkg.in/yaml.v3"
)

// dateLayout is the on-disk form of a calendar date.
const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component. The zero value
// means "no due date" and never compares as due or overdue.
type Date struct {
	t time.Time
}

// NewDate builds a Date from year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses an ISO calendar date string. The empty string yields the
// zero Date without error.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Equal reports calendar-day equality.
func (d Date) Equal(other Date) bool {
	return !d.IsZero() && !other.IsZero() && d.t.Equal(other.t)
}

// Before reports whether d falls strictly before other. Unset dates compare
// false in either position.
func (d Date) Before(other Date) bool {
	return !d.IsZero() && !other.IsZero() && d.t.Before(other.t)
}

// After reports whether d falls strictly after other. Unset dates compare
// false in either position.
func (d Date) After(other Date) bool {
	return !d.IsZero() && !other.IsZero() && d.t.After(other.t)
}

// AddDays returns the date n calendar days later.
func (d Date) AddDays(n int) Date {
	if d.IsZero() {
		return Date{}
	}
	return DateOf(d.t.AddDate(0, 0, n))
}

// Time returns the date as a UTC midnight instant.
func (d Date) Time() time.Time {
	return d.t
}

// String formats the date as an ISO calendar date, or "" when unset.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

// MarshalJSON encodes the date as an ISO calendar date string ("" when unset).
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes an ISO calendar date string. Empty or unparseable
// values decode to the zero Date so older or hand-edited records load.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		*d = Date{}
		return nil
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes the date as an ISO calendar date string.
func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML decodes an ISO calendar date string, tolerating empty and
// unparseable values like the JSON path.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		*d = Date{}
		return nil
	}
	*d = parsed
	return nil
}
