package repository

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clientbook/clientbook/internal/domain"
)

func TestTranslateConstraintError(t *testing.T) {
	t.Run("non postgres error is left alone", func(t *testing.T) {
		assert.Nil(t, translateConstraintError(errors.New("boom"), 1))
	})

	t.Run("email constraint", func(t *testing.T) {
		err := translateConstraintError(emailTaken("a@b.ru"), 0)
		assert.Equal(t, &domain.ErrUniquenessViolation{Field: "email", Value: "a@b.ru"}, err)
	})

	t.Run("phone constraint", func(t *testing.T) {
		err := translateConstraintError(phoneTaken("79301506287"), 1)
		assert.Equal(t, &domain.ErrUniquenessViolation{Field: "phone_number", Value: "79301506287"}, err)
	})

	t.Run("unknown constraint falls back to the key detail", func(t *testing.T) {
		err := translateConstraintError(&pq.Error{
			Code:       "23505",
			Constraint: "clients_email_uniq",
			Detail:     "Key (email)=(a@b.ru) already exists.",
		}, 0)
		assert.Equal(t, &domain.ErrUniquenessViolation{Field: "email", Value: "a@b.ru"}, err)
	})

	t.Run("unique violation without detail", func(t *testing.T) {
		err := translateConstraintError(&pq.Error{Code: "23505", Constraint: "clients_email_key"}, 0)
		assert.Equal(t, &domain.ErrUniquenessViolation{Field: "email"}, err)
	})

	t.Run("foreign key violation", func(t *testing.T) {
		err := translateConstraintError(missingClient, 42)
		assert.Equal(t, &domain.ErrClientNotFound{ID: 42}, err)
	})

	t.Run("foreign key violation on another table", func(t *testing.T) {
		assert.Nil(t, translateConstraintError(&pq.Error{Code: "23503", Constraint: "orders_client_id_fkey"}, 42))
	})

	t.Run("wrapped postgres error", func(t *testing.T) {
		err := translateConstraintError(errors.Join(errors.New("context"), phoneTaken("1")), 1)
		require.NotNil(t, err)
		var uniqueErr *domain.ErrUniquenessViolation
		assert.True(t, errors.As(err, &uniqueErr))
	})

	t.Run("other postgres codes", func(t *testing.T) {
		assert.Nil(t, translateConstraintError(&pq.Error{Code: "42P01"}, 1))
	})
}
