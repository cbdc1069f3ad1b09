package models

import (
	"github.com/google/uuid"
)

// SetEntry is a single row in the daily workout log. Reps and Weight stay
// free-form text until aggregation time so the user can type incrementally.
type SetEntry struct {
	ID        string `json:"id"`
	Exercise  string `json:"exercise"`
	Reps      string `json:"reps"`
	Weight    string `json:"weight"`
	IsEditing bool   `json:"isEditing"`
}

// NewBlankSet creates a fresh editable row with a unique ID
func NewBlankSet() SetEntry {
	return SetEntry{
		ID:        uuid.NewString(),
		IsEditing: true,
	}
}

// IsComplete reports whether the row has an exercise, reps and weight filled in
func (s SetEntry) IsComplete() bool {
	return s.Exercise != "" && s.Reps != "" && s.Weight != ""
}

// HasData reports whether the user has typed anything into the row
func (s SetEntry) HasData() bool {
	return s.Exercise != "" || s.Reps != "" || s.Weight != ""
}
