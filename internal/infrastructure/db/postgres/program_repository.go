package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careledger/clinic-api/internal/core/domain"
)

var programColumns = []string{"id", "name", "created_at"}

type ProgramRepository struct {
	pool *pgxpool.Pool
}

func NewProgramRepository(pool *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{pool: pool}
}

// Create relies on the unique index on name; a concurrent duplicate still
// surfaces as ErrProgramExists.
func (r *ProgramRepository) Create(ctx context.Context, program *domain.Program) (*domain.Program, error) {
	query, args, err := psql.Insert("programs").
		Columns("name").
		Values(program.Name).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	created := *program
	err = QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrProgramExists
		}
		return nil, mapError(err, "insert program")
	}

	return &created, nil
}

func (r *ProgramRepository) FindByID(ctx context.Context, id int64) (*domain.Program, error) {
	query, args, err := psql.Select(programColumns...).
		From("programs").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	var p domain.Program
	err = QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProgramNotFound
		}
		return nil, mapError(err, "find program")
	}

	return &p, nil
}

func (r *ProgramRepository) List(ctx context.Context) ([]domain.Program, error) {
	query, args, err := psql.Select(programColumns...).
		From("programs").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "list programs")
	}

	programs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Program, error) {
		var p domain.Program
		err := row.Scan(&p.ID, &p.Name, &p.CreatedAt)
		return p, err
	})
	if err != nil {
		return nil, mapError(err, "scan programs")
	}

	return programs, nil
}
