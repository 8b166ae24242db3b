package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/careledger/clinic-api/internal/core/domain"
	"github.com/careledger/clinic-api/internal/core/ports"
)

// RegistryService holds clients, programs and the enrollment relation.
type RegistryService struct {
	tx          ports.TxManager
	clients     ports.ClientRepository
	programs    ports.ProgramRepository
	enrollments ports.EnrollmentRepository
	outcomes    ports.OutcomeRepository
	activity    activityRecorder
	log         zerolog.Logger
}

// RegistryDeps groups the store handles the registry is built from.
type RegistryDeps struct {
	Tx          ports.TxManager
	Clients     ports.ClientRepository
	Programs    ports.ProgramRepository
	Enrollments ports.EnrollmentRepository
	Outcomes    ports.OutcomeRepository
	Activity    ports.ActivityRepository
}

func NewRegistryService(deps RegistryDeps, log zerolog.Logger) *RegistryService {
	return &RegistryService{
		tx:          deps.Tx,
		clients:     deps.Clients,
		programs:    deps.Programs,
		enrollments: deps.Enrollments,
		outcomes:    deps.Outcomes,
		activity:    activityRecorder{repo: deps.Activity},
		log:         log,
	}
}

// CreateClient registers a new client. Names need not be unique.
func (s *RegistryService) CreateClient(ctx context.Context, name string, age int) (*domain.Client, error) {
	client, err := domain.NewClient(name, age)
	if err != nil {
		return nil, err
	}

	// Not written to the activity log: only enrollments and outcomes are.
	created, err := s.clients.Create(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	s.log.Info().Int64("client_id", created.ID).Msg("client created")
	return created, nil
}

// GetClient returns the client with its programs and outcomes resolved from
// one read-only snapshot.
func (s *RegistryService) GetClient(ctx context.Context, id int64) (*domain.ClientView, error) {
	var view *domain.ClientView

	err := s.tx.RunReadOnly(ctx, func(ctx context.Context) error {
		client, err := s.clients.FindByID(ctx, id)
		if err != nil {
			return err
		}

		programs, err := s.enrollments.ProgramNames(ctx, id)
		if err != nil {
			return fmt.Errorf("resolve programs: %w", err)
		}

		outcomes, err := s.outcomes.ListByClient(ctx, id)
		if err != nil {
			return fmt.Errorf("resolve outcomes: %w", err)
		}

		if programs == nil {
			programs = []string{}
		}
		if outcomes == nil {
			outcomes = []domain.OutcomeRecord{}
		}

		view = &domain.ClientView{Client: *client, Programs: programs, Outcomes: outcomes}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// ListClients returns all clients ordered by id ascending.
func (s *RegistryService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	if clients == nil {
		clients = []domain.Client{}
	}
	return clients, nil
}

// CreateProgram defines a new program with a unique name.
func (s *RegistryService) CreateProgram(ctx context.Context, name string) (*domain.Program, error) {
	program, err := domain.NewProgram(name)
	if err != nil {
		return nil, err
	}

	created, err := s.programs.Create(ctx, program)
	if err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}

	s.log.Info().Int64("program_id", created.ID).Str("name", created.Name).Msg("program created")
	return created, nil
}

// ListPrograms returns all programs ordered by id ascending.
func (s *RegistryService) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	programs, err := s.programs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	if programs == nil {
		programs = []domain.Program{}
	}
	return programs, nil
}

// Enroll adds the client to the program. Repeating the call is a no-op that
// still succeeds; only a newly created relation is written to the activity log.
func (s *RegistryService) Enroll(ctx context.Context, in ports.EnrollInput) (*domain.EnrollmentResult, error) {
	if in.Actor == "" {
		return nil, domain.ErrUnauthorized
	}

	var result *domain.EnrollmentResult

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		client, err := s.clients.FindByID(ctx, in.ClientID)
		if err != nil {
			return err
		}
		program, err := s.programs.FindByID(ctx, in.ProgramID)
		if err != nil {
			return err
		}

		created, err := s.enrollments.Enroll(ctx, client.ID, program.ID)
		if err != nil {
			return fmt.Errorf("enroll: %w", err)
		}

		if created {
			if err := s.activity.record(ctx, in.Actor, domain.EnrollmentAction(client.Name, program.Name)); err != nil {
				return err
			}
		}

		result = &domain.EnrollmentResult{
			ClientID:        client.ID,
			ClientName:      client.Name,
			ProgramID:       program.ID,
			ProgramName:     program.Name,
			AlreadyEnrolled: !created,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("client_id", result.ClientID).
		Int64("program_id", result.ProgramID).
		Str("actor", in.Actor).
		Bool("already_enrolled", result.AlreadyEnrolled).
		Msg("client enrolled")

	return result, nil
}
