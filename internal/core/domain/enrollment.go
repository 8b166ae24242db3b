package domain

import "time"

// Enrollment is one (client, program) pair of the many-to-many relation.
// The pair is unique; re-enrolling never creates a second row.
type Enrollment struct {
	ID         int64
	ClientID   int64
	ProgramID  int64
	EnrolledAt time.Time
}

// EnrollmentResult carries resolved names back to the caller for display.
type EnrollmentResult struct {
	ClientID    int64
	ClientName  string
	ProgramID   int64
	ProgramName string
	// AlreadyEnrolled is true when the pair existed before the call.
	AlreadyEnrolled bool
}
