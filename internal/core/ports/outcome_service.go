package ports

import (
	"context"

	"github.com/careledger/clinic-api/internal/core/domain"
)

// AddOutcomeInput carries an outcome to record, attributed to Actor.
type AddOutcomeInput struct {
	ClientID  int64
	ProgramID int64
	Outcome   string
	Notes     string
	Actor     string
}

// OutcomeService is the outcome ledger.
type OutcomeService interface {
	AddOutcome(ctx context.Context, input AddOutcomeInput) (*domain.ProgramOutcome, error)
}
