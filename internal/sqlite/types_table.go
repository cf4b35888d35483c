package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// FindOrCreateTypeTx resolves a type name to its row id inside tx, inserting
// the display-formed name when no row matches canonically. When a concurrent
// transaction wins the insert race the unique index rejects ours; the lookup
// is retried once to pick up the winner's row.
func (s *Store) FindOrCreateTypeTx(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	return findOrCreateNamed(ctx, tx, "types", name)
}

// findOrCreateNamed implements find-or-insert by canonical name for the
// single-column name tables (types, abilities).
func findOrCreateNamed(ctx context.Context, tx *sql.Tx, table, name string) (int64, error) {
	query := fmt.Sprintf("SELECT id FROM %s WHERE LOWER(TRIM(name)) = LOWER(TRIM(?))", table)

	var id int64
	err := tx.QueryRowContext(ctx, query, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("looking up %s: %w", table, err)
	}

	res, err := tx.ExecContext(ctx,
		fmt.Sprintf("INSERT INTO %s (name) VALUES (?)", table), name)
	if err != nil {
		if isUniqueViolation(err) {
			// Lost the race to a concurrent insert; use the winner's row.
			if err := tx.QueryRowContext(ctx, query, name).Scan(&id); err != nil {
				return 0, fmt.Errorf("re-looking up %s: %w", table, err)
			}
			return id, nil
		}
		return 0, fmt.Errorf("inserting %s: %w", table, err)
	}

	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s insert id: %w", table, err)
	}
	return id, nil
}
