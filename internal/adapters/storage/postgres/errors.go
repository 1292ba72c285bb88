package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"pet-adoption/internal/apperrors"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// constraintErrors dice a qué error de dominio mapea cada violación;
// depende de la operación (un FK en INSERT es "no existe", en DELETE es "en uso").
type constraintErrors struct {
	unique     error
	foreignKey error
}

func mapError(err error, ce constraintErrors) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch {
	case pgErr.Code == pgUniqueViolation && ce.unique != nil:
		return ce.unique
	case pgErr.Code == pgForeignKeyViolation && ce.foreignKey != nil:
		return ce.foreignKey
	case pgErr.Code == pgCheckViolation:
		return apperrors.ErrInvalidInput
	}
	return err
}
