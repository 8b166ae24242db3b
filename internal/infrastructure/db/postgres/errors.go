package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/careledger/clinic-api/internal/core/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	// classDataException covers out-of-range numbers, bad encodings and
	// over-long strings.
	classDataException = "22"
)

// mapError converts pgx/pgconn errors to domain errors. Context errors pass
// through wrapped but unmapped.
func mapError(err error, entity string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", entity, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", entity, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w", entity, domain.ErrConflict)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w", entity, domain.ErrNotFound)
		case codeCheckViolation:
			return fmt.Errorf("%s: %w", entity, domain.ErrInvalidInput)
		}
		if strings.HasPrefix(pgErr.Code, classDataException) {
			return fmt.Errorf("%s: %w", entity, domain.ErrInvalidInput)
		}
	}

	return fmt.Errorf("%s: %w", entity, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
