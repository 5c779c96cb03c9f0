// Package dataset holds the in-memory snapshot of a single user's goals,
// reviews and reflections, loaded once from a JSON document at startup.
//
// A Dataset is read-only after Load returns. Query code filters it into
// new slices and never writes back.
package dataset

import (
	"encoding/json"
	"errors"
)

// ─── Entities ────────────────────────────────────────────────────────────────

// User is the person the dataset belongs to (or a colleague referenced by
// a review, a share or an assessment).
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// GoalStatus is the tag of a goal plus the date it last changed.
type GoalStatus struct {
	Tag  string  `json:"tag"`
	Date *string `json:"date,omitempty"`
}

// Goal is a personal development goal.
type Goal struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Body         string          `json:"body"`
	Created      *string         `json:"created,omitempty"`
	Due          *string         `json:"due,omitempty"`
	Status       GoalStatus      `json:"status"`
	Owner        *User           `json:"owner"`
	SharedWith   []User          `json:"sharedWith"`
	ActionPoints json.RawMessage `json:"actionPoints,omitempty"`
	Items        json.RawMessage `json:"items,omitempty"`
}

// Review is a piece of feedback given to the professional.
type Review struct {
	ID           string          `json:"id"`
	Subject      string          `json:"subject"`
	Date         *string         `json:"date,omitempty"`
	Inputs       json.RawMessage `json:"inputs,omitempty"`
	Professional *User           `json:"professional"`
	Reviewer     Reviewer        `json:"-"`
}

// DateRange is the period a reflection looks back on.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Assessor is one colleague asked to assess a reflection.
type Assessor struct {
	Assessed bool  `json:"assessed"`
	Reviewer *User `json:"reviewer,omitempty"`
}

// Reflection is a self-assessment over a period.
type Reflection struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Created   *string         `json:"created,omitempty"`
	Range     DateRange       `json:"range"`
	Inputs    json.RawMessage `json:"inputs,omitempty"`
	User      *User           `json:"user"`
	Assessors []Assessor      `json:"assessors"`
}

// Dataset is the whole document: the canonical user and everything
// recorded for (or shared with) them.
type Dataset struct {
	User        *User        `json:"user" validate:"required"`
	Goals       []Goal       `json:"goals" validate:"required"`
	Reviews     []Review     `json:"reviews" validate:"required"`
	Reflections []Reflection `json:"reflections" validate:"required"`
}

// UserID returns the canonical user's id, or "" for a dataset without one.
func (d *Dataset) UserID() string {
	if d == nil || d.User == nil {
		return ""
	}
	return d.User.ID
}

// ─── Reviewer variant ────────────────────────────────────────────────────────

// ErrInvalidReviewer is returned when a review names both an internal and
// an external reviewer, or neither.
var ErrInvalidReviewer = errors.New("review must have exactly one of reviewer or externalReviewer")

// Reviewer is who gave a review: a colleague known to the system or an
// external party identified only by free text. The zero value is invalid;
// build one with InternalReviewer or ExternalReviewer.
type Reviewer struct {
	user     *User
	external string
}

// InternalReviewer returns a Reviewer for a known user.
func InternalReviewer(u User) Reviewer {
	return Reviewer{user: &u}
}

// ExternalReviewer returns a Reviewer for an outside party.
func ExternalReviewer(name string) Reviewer {
	return Reviewer{external: name}
}

// Internal returns the reviewing user and true for an internal reviewer.
func (r Reviewer) Internal() (User, bool) {
	if r.user == nil {
		return User{}, false
	}
	return *r.user, true
}

// External returns the external identifier and true for an external reviewer.
func (r Reviewer) External() (string, bool) {
	if r.user != nil || r.external == "" {
		return "", false
	}
	return r.external, true
}

// wireReview mirrors Review on disk, where the reviewer variant is spread
// over two optional keys.
type wireReview struct {
	ID               string          `json:"id"`
	Subject          string          `json:"subject"`
	Date             *string         `json:"date,omitempty"`
	Inputs           json.RawMessage `json:"inputs,omitempty"`
	Professional     *User           `json:"professional"`
	Reviewer         *User           `json:"reviewer,omitempty"`
	ExternalReviewer *string         `json:"externalReviewer,omitempty"`
}

// UnmarshalJSON decodes a review and enforces the reviewer variant.
func (r *Review) UnmarshalJSON(data []byte) error {
	var w wireReview
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	hasExternal := w.ExternalReviewer != nil && *w.ExternalReviewer != ""
	switch {
	case w.Reviewer != nil && !hasExternal:
		r.Reviewer = InternalReviewer(*w.Reviewer)
	case w.Reviewer == nil && hasExternal:
		r.Reviewer = ExternalReviewer(*w.ExternalReviewer)
	default:
		return ErrInvalidReviewer
	}

	r.ID = w.ID
	r.Subject = w.Subject
	r.Date = w.Date
	r.Inputs = w.Inputs
	r.Professional = w.Professional
	return nil
}

// MarshalJSON writes the review back in its on-disk shape.
func (r Review) MarshalJSON() ([]byte, error) {
	w := wireReview{
		ID:           r.ID,
		Subject:      r.Subject,
		Date:         r.Date,
		Inputs:       r.Inputs,
		Professional: r.Professional,
	}
	if u, ok := r.Reviewer.Internal(); ok {
		w.Reviewer = &u
	} else if ext, ok := r.Reviewer.External(); ok {
		w.ExternalReviewer = &ext
	}
	return json.Marshal(w)
}
