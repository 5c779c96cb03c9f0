package dataset

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// OwnedBy keeps the records whose owner id equals userID exactly. Records
// without an owner never match. The result is never nil.
func OwnedBy[T any](records []T, userID string, owner func(T) *User) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if u := owner(r); u != nil && u.ID == userID {
			out = append(out, r)
		}
	}
	return out
}

// Bounds is an optional, inclusive calendar-day range. A nil end means
// unbounded on that side.
type Bounds struct {
	Start *time.Time
	End   *time.Time
}

// IsZero reports whether neither bound is set.
func (b Bounds) IsZero() bool {
	return b.Start == nil && b.End == nil
}

// ParseBounds builds Bounds from startDate/endDate arguments. Empty strings
// are treated as absent. Anything other than a YYYY-MM-DD date is an error
// naming the argument.
func ParseBounds(startDate, endDate string) (Bounds, error) {
	var b Bounds
	if startDate != "" {
		t, err := parseBound(startDate)
		if err != nil {
			return Bounds{}, fmt.Errorf("invalid startDate %q: expected YYYY-MM-DD", startDate)
		}
		b.Start = &t
	}
	if endDate != "" {
		t, err := parseBound(endDate)
		if err != nil {
			return Bounds{}, fmt.Errorf("invalid endDate %q: expected YYYY-MM-DD", endDate)
		}
		b.End = &t
	}
	return b, nil
}

// Contains reports whether stamp falls inside the bounds, to the day.
// A missing stamp is always inside; so is a stamp that cannot be parsed,
// since a record with a malformed date must not vanish from results.
func (b Bounds) Contains(stamp *string) bool {
	if b.IsZero() || stamp == nil || *stamp == "" {
		return true
	}
	day, err := parseDay(*stamp)
	if err != nil {
		return true
	}
	if b.Start != nil && day.Before(*b.Start) {
		return false
	}
	if b.End != nil && day.After(*b.End) {
		return false
	}
	return true
}

// InRange keeps the records whose date (as returned by field) is inside b.
// With zero bounds the input is returned unchanged.
func InRange[T any](records []T, b Bounds, field func(T) *string) []T {
	if b.IsZero() {
		return records
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if b.Contains(field(r)) {
			out = append(out, r)
		}
	}
	return out
}

// parseBound parses a startDate/endDate argument. Only the date layout is
// accepted.
func parseBound(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

// parseDay parses a record's date or timestamp and truncates it to the
// calendar day written in the stamp, in its own offset. The result is
// expressed as midnight UTC so it compares with parseBound's.
func parseDay(s string) (time.Time, error) {
	t, err := cast.ToTimeE(s)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// Field accessors used by the query tools.

// GoalOwner returns the goal's owner.
func GoalOwner(g Goal) *User { return g.Owner }

// GoalCreated returns the goal's creation timestamp.
func GoalCreated(g Goal) *string { return g.Created }

// ReviewProfessional returns the user the review is about.
func ReviewProfessional(r Review) *User { return r.Professional }

// ReviewDate returns the review date.
func ReviewDate(r Review) *string { return r.Date }

// ReflectionUser returns the reflection's author.
func ReflectionUser(r Reflection) *User { return r.User }

// ReflectionCreated returns the reflection's creation timestamp.
func ReflectionCreated(r Reflection) *string { return r.Created }
