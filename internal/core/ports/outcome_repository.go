package ports

import (
	"context"

	"github.com/careledger/clinic-api/internal/core/domain"
)

// OutcomeRepository defines persistence for program outcomes.
type OutcomeRepository interface {
	// Create returns domain.ErrNotFound (wrapped) when either foreign key does not resolve.
	Create(ctx context.Context, outcome *domain.ProgramOutcome) (*domain.ProgramOutcome, error)
	// ListByClient returns the client's outcomes oldest first, resolved to program names.
	ListByClient(ctx context.Context, clientID int64) ([]domain.OutcomeRecord, error)
}
