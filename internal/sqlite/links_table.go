package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// InsertLinkTx inserts one trainer/pokemon/ability link row inside tx.
func (s *Store) InsertLinkTx(ctx context.Context, tx *sql.Tx, pokemonID, trainerID, abilityID int64) (int64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO trainer_pokemon_abilities (pokemon_id, trainer_id, ability_id) VALUES (?, ?, ?)",
		pokemonID, trainerID, abilityID)
	if err != nil {
		return 0, fmt.Errorf("inserting link: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("link insert id: %w", err)
	}
	return id, nil
}

// CountLinksByPokemon returns the number of link rows for a pokemon id.
func (s *Store) CountLinksByPokemon(ctx context.Context, pokemonID int64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM trainer_pokemon_abilities WHERE pokemon_id = ?", pokemonID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting links: %w", err)
	}
	return n, nil
}
