package ports

import (
	"context"

	"github.com/careledger/clinic-api/internal/core/domain"
)

// UserRepository defines persistence for staff credentials.
type UserRepository interface {
	// Create inserts the user and returns it with its assigned ID.
	// Returns domain.ErrUsernameTaken when the username is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
