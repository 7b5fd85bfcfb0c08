package store

import (
	"database/sql"
	"fmt"
)

// requireAffected turns an UPDATE or DELETE that matched no row into
// [ErrNotFound].
func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
