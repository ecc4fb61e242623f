package repository

import (
	"errors"
	"regexp"

	"github.com/lib/pq"

	"github.com/clientbook/clientbook/internal/database/schema"
	"github.com/clientbook/clientbook/internal/domain"
)

const (
	uniqueViolation     = pq.ErrorCode("23505")
	foreignKeyViolation = pq.ErrorCode("23503")
)

// PostgreSQL reports the offending key as: Key (email)=(boris@mail.ru) already exists.
var keyDetailPattern = regexp.MustCompile(`^Key \(([^)]+)\)=\((.*)\) already exists`)

var constraintFields = map[string]string{
	schema.ConstraintClientEmail: "email",
	schema.ConstraintPhoneNumber: "phone_number",
}

// translateConstraintError maps constraint violations to domain errors.
// It returns nil when err is not a violation the domain knows about.
func translateConstraintError(err error, clientID int64) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch pqErr.Code {
	case uniqueViolation:
		violation := &domain.ErrUniquenessViolation{Field: constraintFields[pqErr.Constraint]}
		if m := keyDetailPattern.FindStringSubmatch(pqErr.Detail); m != nil {
			if violation.Field == "" {
				violation.Field = m[1]
			}
			violation.Value = m[2]
		}
		if violation.Field == "" {
			violation.Field = pqErr.Constraint
		}
		return violation
	case foreignKeyViolation:
		if pqErr.Constraint == schema.ConstraintPhoneClientForeignKey || pqErr.Constraint == "" {
			return &domain.ErrClientNotFound{ID: clientID}
		}
	}

	return nil
}
