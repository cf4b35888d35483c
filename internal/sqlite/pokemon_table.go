// Pokemon table accessors. Name matching is always on the trimmed,
// lowercased projection so callers never depend on stored casing.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// GetPokemonByName retrieves a Pokemon whose canonical name matches the
// given name. Returns ErrNotFound when no row matches.
func (s *Store) GetPokemonByName(ctx context.Context, name string) (*types.Pokemon, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, type1_id, type2_id FROM pokemon WHERE LOWER(TRIM(name)) = LOWER(TRIM(?))",
		name)
	return scanPokemon(row)
}

func scanPokemon(row *sql.Row) (*types.Pokemon, error) {
	var p types.Pokemon
	var t1, t2 sql.NullInt64
	err := row.Scan(&p.ID, &p.Name, &t1, &t2)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning pokemon: %w", err)
	}
	if t1.Valid {
		p.Type1ID = &t1.Int64
	}
	if t2.Valid {
		p.Type2ID = &t2.Int64
	}
	return &p, nil
}

// InsertPokemonTx inserts a Pokemon row inside tx and returns the assigned
// id. A canonical-name collision with a concurrent insert surfaces as
// ErrAlreadyExists.
func (s *Store) InsertPokemonTx(ctx context.Context, tx *sql.Tx, name string, type1ID, type2ID *int64) (int64, error) {
	var t1, t2 sql.NullInt64
	if type1ID != nil {
		t1 = sql.NullInt64{Int64: *type1ID, Valid: true}
	}
	if type2ID != nil {
		t2 = sql.NullInt64{Int64: *type2ID, Valid: true}
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO pokemon (name, type1_id, type2_id) VALUES (?, ?, ?)",
		name, t1, t2)
	if err != nil {
		return 0, mapInsertErr("inserting pokemon", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("pokemon insert id: %w", err)
	}
	return id, nil
}
