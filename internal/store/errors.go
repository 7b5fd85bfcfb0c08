package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a write violates a unique constraint.
	ErrConflict = errors.New("already exists")

	// ErrUsernameTaken is the unique violation of users.username.
	ErrUsernameTaken = fmt.Errorf("username %w", ErrConflict)

	// ErrEmailTaken is the unique violation of users.email.
	ErrEmailTaken = fmt.Errorf("email %w", ErrConflict)

	// ErrIntegrity is returned when an insert references a parent row that
	// does not exist.
	ErrIntegrity = errors.New("referenced parent does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for a reason not covered by the sentinels above.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDSN is returned when the connection string does not
	// select a supported dialect.
	ErrUnsupportedDSN = errors.New("unsupported database url")
)
