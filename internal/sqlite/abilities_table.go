package sqlite

import (
	"context"
	"database/sql"
)

// FindOrCreateAbilityTx resolves an ability name to its row id inside tx,
// inserting the display-formed name when no row matches canonically.
func (s *Store) FindOrCreateAbilityTx(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	return findOrCreateNamed(ctx, tx, "abilities", name)
}
