package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careledger/clinic-api/internal/core/domain"
)

// ActivityRepository is append-only: it has no update or delete, and the
// table's trigger rejects both.
type ActivityRepository struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

func (r *ActivityRepository) Append(ctx context.Context, entry *domain.ActivityLog) (*domain.ActivityLog, error) {
	query, args, err := psql.Insert("activity_logs").
		Columns("doctor_username", "action").
		Values(entry.DoctorUsername, entry.Action).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	created := *entry
	if err := QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&created.ID, &created.Timestamp); err != nil {
		return nil, mapError(err, "insert activity log")
	}

	return &created, nil
}

func (r *ActivityRepository) List(ctx context.Context) ([]domain.ActivityLog, error) {
	query, args, err := psql.Select("id", "doctor_username", "action", "created_at").
		From("activity_logs").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "list activity logs")
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ActivityLog, error) {
		var e domain.ActivityLog
		err := row.Scan(&e.ID, &e.DoctorUsername, &e.Action, &e.Timestamp)
		return e, err
	})
	if err != nil {
		return nil, mapError(err, "scan activity logs")
	}

	return entries, nil
}
