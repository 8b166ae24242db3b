package domain

import (
	"fmt"
	"time"
)

// ActivityLog is an append-only record of a staff action.
type ActivityLog struct {
	ID             int64
	DoctorUsername string
	Action         string
	Timestamp      time.Time
}

// EnrollmentAction describes a new enrollment in the activity trail.
func EnrollmentAction(clientName, programName string) string {
	return fmt.Sprintf("Enrolled %s in %s", clientName, programName)
}

// OutcomeAction describes a recorded outcome in the activity trail.
func OutcomeAction(clientName, programName string) string {
	return fmt.Sprintf("Added outcome for %s in %s", clientName, programName)
}
