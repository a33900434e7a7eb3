package persistence

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bizops/backend/internal/domain/shared"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	plain := errors.New("connection reset")
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, shared.ErrNotFound},
		{"wrapped record not found", fmt.Errorf("query: %w", gorm.ErrRecordNotFound), shared.ErrNotFound},
		{"duplicated key", gorm.ErrDuplicatedKey, shared.ErrAlreadyExists},
		{"pg unique violation", &pgconn.PgError{Code: "23505"}, shared.ErrAlreadyExists},
		{"check constraint", gorm.ErrCheckConstraintViolated, shared.ErrValidation},
		{"pg check violation", &pgconn.PgError{Code: "23514", Message: "violates check constraint"}, shared.ErrValidation},
		{"pg serialization failure", &pgconn.PgError{Code: "40001"}, shared.ErrConcurrencyConflict},
		{"pg deadlock", &pgconn.PgError{Code: "40P01"}, shared.ErrConcurrencyConflict},
		{"sqlite unique", errors.New("UNIQUE constraint failed: currencies.code"), shared.ErrAlreadyExists},
		{"sqlite check", errors.New("CHECK constraint failed: buy_rate > 0"), shared.ErrValidation},
		{"other", plain, plain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	other := &pgconn.PgError{Code: "23503"}
	assert.Same(t, other, translateError(other))
}
