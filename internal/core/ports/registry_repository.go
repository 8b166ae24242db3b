package ports

import (
	"context"

	"github.com/careledger/clinic-api/internal/core/domain"
)

// ClientRepository defines persistence for clients.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	// FindByID returns domain.ErrClientNotFound when no client has the id.
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	// List returns all clients ordered by id ascending.
	List(ctx context.Context) ([]domain.Client, error)
}

// ProgramRepository defines persistence for programs.
type ProgramRepository interface {
	// Create returns domain.ErrProgramExists on a duplicate name.
	Create(ctx context.Context, program *domain.Program) (*domain.Program, error)
	// FindByID returns domain.ErrProgramNotFound when no program has the id.
	FindByID(ctx context.Context, id int64) (*domain.Program, error)
	// List returns all programs ordered by id ascending.
	List(ctx context.Context) ([]domain.Program, error)
}

// EnrollmentRepository owns the client/program relation.
type EnrollmentRepository interface {
	// Enroll inserts the pair unless it already exists. created is false when
	// the store's uniqueness constraint absorbed the insert.
	Enroll(ctx context.Context, clientID, programID int64) (created bool, err error)
	// ProgramNames returns the client's program names in enrollment order.
	ProgramNames(ctx context.Context, clientID int64) ([]string, error)
}
