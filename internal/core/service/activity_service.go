package service

import (
	"context"
	"fmt"

	"github.com/careledger/clinic-api/internal/core/domain"
	"github.com/careledger/clinic-api/internal/core/ports"
)

// activityRecorder appends audit entries. It is only reachable from the
// mutating services and must be called with a transactional ctx.
type activityRecorder struct {
	repo ports.ActivityRepository
}

func (r activityRecorder) record(ctx context.Context, actor, action string) error {
	if actor == "" {
		return fmt.Errorf("record activity: %w", domain.ErrUnauthorized)
	}
	if _, err := r.repo.Append(ctx, &domain.ActivityLog{
		DoctorUsername: actor,
		Action:         action,
	}); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

// ActivityService exposes the activity trail.
type ActivityService struct {
	repo ports.ActivityRepository
}

func NewActivityService(repo ports.ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

// List returns every entry newest first.
func (s *ActivityService) List(ctx context.Context) ([]domain.ActivityLog, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	if entries == nil {
		entries = []domain.ActivityLog{}
	}
	return entries, nil
}
