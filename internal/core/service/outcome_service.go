package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/careledger/clinic-api/internal/core/domain"
	"github.com/careledger/clinic-api/internal/core/ports"
)

// OutcomeService records per-client, per-program outcomes.
type OutcomeService struct {
	tx       ports.TxManager
	clients  ports.ClientRepository
	programs ports.ProgramRepository
	outcomes ports.OutcomeRepository
	activity activityRecorder
	log      zerolog.Logger
}

func NewOutcomeService(
	tx ports.TxManager,
	clients ports.ClientRepository,
	programs ports.ProgramRepository,
	outcomes ports.OutcomeRepository,
	activity ports.ActivityRepository,
	log zerolog.Logger,
) *OutcomeService {
	return &OutcomeService{
		tx:       tx,
		clients:  clients,
		programs: programs,
		outcomes: outcomes,
		activity: activityRecorder{repo: activity},
		log:      log,
	}
}

// AddOutcome stores an outcome and its activity entry in one transaction.
// No enrollment is required for the pair.
func (s *OutcomeService) AddOutcome(ctx context.Context, in ports.AddOutcomeInput) (*domain.ProgramOutcome, error) {
	if in.Actor == "" {
		return nil, domain.ErrUnauthorized
	}

	outcome, err := domain.NewProgramOutcome(in.ClientID, in.ProgramID, in.Outcome, in.Notes)
	if err != nil {
		return nil, err
	}

	var saved *domain.ProgramOutcome

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		client, err := s.clients.FindByID(ctx, in.ClientID)
		if err != nil {
			return err
		}
		program, err := s.programs.FindByID(ctx, in.ProgramID)
		if err != nil {
			return err
		}

		saved, err = s.outcomes.Create(ctx, outcome)
		if err != nil {
			return fmt.Errorf("create outcome: %w", err)
		}

		return s.activity.record(ctx, in.Actor, domain.OutcomeAction(client.Name, program.Name))
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("outcome_id", saved.ID).
		Int64("client_id", saved.ClientID).
		Int64("program_id", saved.ProgramID).
		Str("actor", in.Actor).
		Msg("outcome recorded")

	return saved, nil
}
