// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Priority ranks how urgent a note is.
type Priority int

// Known priorities. The zero value is not a valid priority.
const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

var priorityNames = map[Priority]string{
	PriorityLow:    "Low",
	PriorityMedium: "Medium",
	PriorityHigh:   "High",
}

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	_, ok := priorityNames[p]
	return ok
}

// String returns the human-readable name of p, or its number if unknown.
func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return strconv.Itoa(int(p))
}

// ParsePriority converts a name ("low", "Medium") or a number ("3") to a Priority.
func ParsePriority(s string) (Priority, error) {
	s = strings.TrimSpace(s)
	for p, name := range priorityNames {
		if strings.EqualFold(name, s) {
			return p, nil
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil || !Priority(n).IsValid() {
		return 0, fmt.Errorf("unknown priority %q", s)
	}

	return Priority(n), nil
}

// MarshalJSON encodes a known priority by name and an unknown one by number.
func (p Priority) MarshalJSON() ([]byte, error) {
	if p.IsValid() {
		return json.Marshal(p.String())
	}
	return json.Marshal(int(p))
}

// UnmarshalJSON accepts both the name and the numeric form.
// Unknown numbers are kept as-is so that validation can report them.
func (p *Priority) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*p = Priority(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("priority must be a string or a number: %w", err)
	}

	parsed, err := ParsePriority(s)
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}

// Tag is a categorical label attached to a note, e.g. "work" or "home".
type Tag string

// Note is a short tagged and prioritized text record owned by exactly one user.
type Note struct {
	// NoteID is the unique identifier assigned by the storage layer on creation.
	NoteID int64

	// Text is the body of the note, 1 to 100 characters.
	Text string

	Priority Priority
	Tag      Tag

	// UserID references the owning user.
	UserID int64

	// User is the resolved owner. Services set it when they bind a note to a
	// user; storage backends do not populate it on reads.
	User *User
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
