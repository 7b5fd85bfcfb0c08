package store

import (
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. If err is nil or is not a
// PostgreSQL driver error, [NonRetryable] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	if pgErr := postgresError(err); pgErr != nil {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// Translate implements [ErrorClassificator]:
//   - 23505 unique_violation      -> ErrUsernameTaken / ErrEmailTaken / ErrConflict
//   - 23503 foreign_key_violation -> ErrIntegrity
func (c *PostgresErrorClassifier) Translate(err error) error {
	pgErr := postgresError(err)
	if pgErr == nil {
		return nil
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return uniqueViolation(pgErr.ConstraintName)
	case pgerrcode.ForeignKeyViolation:
		return ErrIntegrity
	default:
		return nil
	}
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// Retryable codes:
//   - Class 08: connection exceptions (08000, 08003, 08006)
//   - Class 40: transaction rollback, serialization failure, deadlock
//   - Class 57: cannot connect now (57P03)
//
// Any other code is classified as [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 08
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Retryable

	// Class 40
	case pgerrcode.TransactionRollback, // 40000
		pgerrcode.SerializationFailure, // 40001
		pgerrcode.DeadlockDetected:     // 40P01
		return Retryable

	// Class 57
	case pgerrcode.CannotConnectNow: // 57P03
		return Retryable
	}

	return NonRetryable
}

// uniqueViolation picks the sentinel for a violated unique constraint or
// column reference ("users_email_key", "users.email").
func uniqueViolation(constraint string) error {
	switch {
	case strings.Contains(constraint, "username"):
		return ErrUsernameTaken
	case strings.Contains(constraint, "email"):
		return ErrEmailTaken
	default:
		return ErrConflict
	}
}
