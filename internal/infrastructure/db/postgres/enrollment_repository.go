package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

// Enroll inserts the pair and reports whether a row was written. The unique
// constraint on (client_id, program_id) absorbs duplicates, including
// concurrent ones, so no row is returned for an existing pair.
func (r *EnrollmentRepository) Enroll(ctx context.Context, clientID, programID int64) (bool, error) {
	query, args, err := psql.Insert("client_programs").
		Columns("client_id", "program_id").
		Values(clientID, programID).
		Suffix("ON CONFLICT (client_id, program_id) DO NOTHING RETURNING id").
		ToSql()
	if err != nil {
		return false, err
	}

	var id int64
	err = QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, mapError(err, "insert enrollment")
	}

	return true, nil
}

func (r *EnrollmentRepository) ProgramNames(ctx context.Context, clientID int64) ([]string, error) {
	query, args, err := psql.Select("p.name").
		From("client_programs cp").
		Join("programs p ON p.id = cp.program_id").
		Where("cp.client_id = ?", clientID).
		OrderBy("cp.id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "list enrollments")
	}

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, mapError(err, "scan enrollments")
	}

	return names, nil
}
