package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careledger/clinic-api/internal/core/domain"
)

var clientColumns = []string{"id", "name", "age", "created_at"}

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	query, args, err := psql.Insert("clients").
		Columns("name", "age").
		Values(client.Name, client.Age).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	created := *client
	if err := QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, mapError(err, "insert client")
	}

	return &created, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	query, args, err := psql.Select(clientColumns...).
		From("clients").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	var c domain.Client
	err = QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&c.ID, &c.Name, &c.Age, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, mapError(err, "find client")
	}

	return &c, nil
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	query, args, err := psql.Select(clientColumns...).
		From("clients").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "list clients")
	}

	clients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Client, error) {
		var c domain.Client
		err := row.Scan(&c.ID, &c.Name, &c.Age, &c.CreatedAt)
		return c, err
	})
	if err != nil {
		return nil, mapError(err, "scan clients")
	}

	return clients, nil
}
