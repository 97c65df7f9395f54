// Package dberrors classifies datastore failures into the application error
// taxonomy at the adapter boundary. Repositories pass every non-nil GORM
// error through Classify so callers above the adapter never see raw driver
// errors for the cases the taxonomy covers.
package dberrors

import (
	"context"
	"errors"
	"net"

	"shiptracker/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error codes relevant to the taxonomy. Class 08 covers connection
// exceptions.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgQueryCanceled       = "57014"
	pgConnectionClass     = "08"
)

// Classify translates a datastore error into the errs taxonomy.
// Duplicate-key violations become ConflictError, foreign-key violations
// become ReferentialIntegrityError, and connectivity/timeout failures become
// TransientError. Anything unclassified is returned as-is for the caller to
// treat as internal.
func Classify(object string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewConflictErrorWithCause(object, err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewReferentialIntegrityErrorWithCause(object, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			return errs.NewConflictErrorWithCause(object, err)
		case pgErr.Code == pgForeignKeyViolation:
			return errs.NewReferentialIntegrityErrorWithCause(object, err)
		case pgErr.Code == pgQueryCanceled, pgErr.SQLState()[:2] == pgConnectionClass:
			return errs.NewTransientError(object, err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewTransientError(object, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return errs.NewTransientError(object, err)
	}

	return err
}
