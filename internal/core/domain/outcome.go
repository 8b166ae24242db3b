package domain

import (
	"time"
	"unicode/utf8"
)

const MaxOutcomeLength = 100

// ProgramOutcome is one recorded result for a client within a program.
// Several outcomes per pair form a history; rows are never replaced.
type ProgramOutcome struct {
	ID         int64
	ClientID   int64
	ProgramID  int64
	Outcome    string
	Notes      string
	RecordedAt time.Time
}

// OutcomeRecord is an outcome resolved to its program name.
type OutcomeRecord struct {
	ID         int64
	ProgramID  int64
	Program    string
	Outcome    string
	Notes      string
	RecordedAt time.Time
}

// NewProgramOutcome validates input and returns an unsaved outcome.
func NewProgramOutcome(clientID, programID int64, outcome, notes string) (*ProgramOutcome, error) {
	var v validator
	v.check(outcome != "", "outcome", "is required")
	v.check(utf8.RuneCountInString(outcome) <= MaxOutcomeLength, "outcome", "must be at most 100 characters")
	v.check(storable(outcome), "outcome", "contains invalid characters")
	v.check(storable(notes), "notes", "contains invalid characters")
	if err := v.err(); err != nil {
		return nil, err
	}

	return &ProgramOutcome{
		ClientID:  clientID,
		ProgramID: programID,
		Outcome:   outcome,
		Notes:     notes,
	}, nil
}
