package handler

import (
	"fmt"

	"github.com/careledger/clinic-api/internal/core/domain"
)

// --- Domain → Response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt}
}

func toClientResponse(c domain.Client) clientResponse {
	return clientResponse{ID: c.ID, Name: c.Name, Age: c.Age, CreatedAt: c.CreatedAt}
}

func toClientResponses(clients []domain.Client) []clientResponse {
	out := make([]clientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	return out
}

func toClientDetailResponse(v *domain.ClientView) clientDetailResponse {
	outcomes := make([]outcomeRecordResponse, 0, len(v.Outcomes))
	for _, o := range v.Outcomes {
		outcomes = append(outcomes, outcomeRecordResponse{
			ID:         o.ID,
			ProgramID:  o.ProgramID,
			Program:    o.Program,
			Outcome:    o.Outcome,
			Notes:      o.Notes,
			RecordedAt: o.RecordedAt,
		})
	}

	programs := v.Programs
	if programs == nil {
		programs = []string{}
	}

	return clientDetailResponse{
		clientResponse: toClientResponse(v.Client),
		Programs:       programs,
		Outcomes:       outcomes,
	}
}

func toProgramResponse(p domain.Program) programResponse {
	return programResponse{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt}
}

func toProgramResponses(programs []domain.Program) []programResponse {
	out := make([]programResponse, 0, len(programs))
	for _, p := range programs {
		out = append(out, toProgramResponse(p))
	}
	return out
}

func toEnrollResponse(r *domain.EnrollmentResult) enrollResponse {
	msg := fmt.Sprintf("%s enrolled in %s", r.ClientName, r.ProgramName)
	if r.AlreadyEnrolled {
		msg = fmt.Sprintf("%s is already enrolled in %s", r.ClientName, r.ProgramName)
	}
	return enrollResponse{
		Message:         msg,
		ClientID:        r.ClientID,
		Client:          r.ClientName,
		ProgramID:       r.ProgramID,
		Program:         r.ProgramName,
		AlreadyEnrolled: r.AlreadyEnrolled,
	}
}

func toOutcomeResponse(o *domain.ProgramOutcome) outcomeResponse {
	return outcomeResponse{
		ID:         o.ID,
		ClientID:   o.ClientID,
		ProgramID:  o.ProgramID,
		Outcome:    o.Outcome,
		Notes:      o.Notes,
		RecordedAt: o.RecordedAt,
	}
}

func toActivityLogResponses(entries []domain.ActivityLog) []activityLogResponse {
	out := make([]activityLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, activityLogResponse{
			ID:        e.ID,
			Doctor:    e.DoctorUsername,
			Action:    e.Action,
			Timestamp: e.Timestamp,
		})
	}
	return out
}
