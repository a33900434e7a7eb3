package persistence

import (
	"errors"
	"strings"

	"github.com/bizops/backend/internal/domain/shared"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes the repositories translate
const (
	pgUniqueViolation      = "23505"
	pgCheckViolation       = "23514"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

var errCheckViolation = shared.ErrValidation.WithMessage("Value violates a check constraint")

// translateError maps driver errors onto domain errors. Unrecognized errors
// pass through unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.ErrAlreadyExists
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return errCheckViolation
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return shared.ErrAlreadyExists
		case pgCheckViolation:
			return errCheckViolation
		case pgSerializationFailure, pgDeadlockDetected:
			return shared.ErrConcurrencyConflict
		}
		return err
	}

	// sqlite reports constraint failures only through the message
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") {
		return shared.ErrAlreadyExists
	}
	if strings.Contains(msg, "CHECK constraint failed") {
		return errCheckViolation
	}
	return err
}
