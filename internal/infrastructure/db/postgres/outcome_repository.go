package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careledger/clinic-api/internal/core/domain"
)

type OutcomeRepository struct {
	pool *pgxpool.Pool
}

func NewOutcomeRepository(pool *pgxpool.Pool) *OutcomeRepository {
	return &OutcomeRepository{pool: pool}
}

func (r *OutcomeRepository) Create(ctx context.Context, outcome *domain.ProgramOutcome) (*domain.ProgramOutcome, error) {
	query, args, err := psql.Insert("program_outcomes").
		Columns("client_id", "program_id", "outcome", "notes").
		Values(outcome.ClientID, outcome.ProgramID, outcome.Outcome, outcome.Notes).
		Suffix("RETURNING id, recorded_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	created := *outcome
	if err := QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&created.ID, &created.RecordedAt); err != nil {
		return nil, mapError(err, "insert outcome")
	}

	return &created, nil
}

func (r *OutcomeRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.OutcomeRecord, error) {
	query, args, err := psql.Select("o.id", "o.program_id", "p.name", "o.outcome", "o.notes", "o.recorded_at").
		From("program_outcomes o").
		Join("programs p ON p.id = o.program_id").
		Where("o.client_id = ?", clientID).
		OrderBy("o.id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "list outcomes")
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.OutcomeRecord, error) {
		var o domain.OutcomeRecord
		err := row.Scan(&o.ID, &o.ProgramID, &o.Program, &o.Outcome, &o.Notes, &o.RecordedAt)
		return o, err
	})
	if err != nil {
		return nil, mapError(err, "scan outcomes")
	}

	return records, nil
}
