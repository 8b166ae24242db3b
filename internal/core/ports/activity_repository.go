package ports

import (
	"context"

	"github.com/careledger/clinic-api/internal/core/domain"
)

// ActivityRepository persists the append-only activity trail. There is no
// update or delete.
type ActivityRepository interface {
	Append(ctx context.Context, entry *domain.ActivityLog) (*domain.ActivityLog, error)
	// List returns entries newest first, ties broken by id descending.
	List(ctx context.Context) ([]domain.ActivityLog, error)
}

// ActivityService exposes the read side of the activity trail.
type ActivityService interface {
	List(ctx context.Context) ([]domain.ActivityLog, error)
}
