// Package pgerr maps Postgres driver errors onto domain sentinels.
package pgerr

import (
	"errors"

	"ethela-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	invalidTextRepr     = "22P02"
	checkViolation      = "23514"
	foreignKeyViolation = "23503"
)

// Translate returns a domain error for known driver errors and err unchanged otherwise.
// Malformed uuids are reported as not found since no row can carry them.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return domain.ErrAlreadyExists
		case invalidTextRepr:
			return domain.ErrNotFound
		case checkViolation:
			return domain.ErrInvalidInput
		case foreignKeyViolation:
			return domain.ErrNotFound
		}
	}
	return err
}
