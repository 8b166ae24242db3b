package ports

import (
	"context"

	"github.com/careledger/clinic-api/internal/core/domain"
)

// RegistryService covers clients, programs and enrollment.
type RegistryService interface {
	CreateClient(ctx context.Context, name string, age int) (*domain.Client, error)
	GetClient(ctx context.Context, id int64) (*domain.ClientView, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	CreateProgram(ctx context.Context, name string) (*domain.Program, error)
	ListPrograms(ctx context.Context) ([]domain.Program, error)
	Enroll(ctx context.Context, input EnrollInput) (*domain.EnrollmentResult, error)
}

// EnrollInput carries an enrollment request attributed to Actor.
type EnrollInput struct {
	ClientID  int64
	ProgramID int64
	Actor     string
}
