// Join queries behind the read endpoints. Each query first resolves the
// named entity canonically so an unknown name is distinguishable from a
// known name with no relations.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// PokemonByAbility returns the sorted, distinct names of Pokemon linked to
// the named ability. Returns ErrNotFound when the ability does not exist;
// an existing ability with no links yields an empty slice.
func (s *Store) PokemonByAbility(ctx context.Context, ability string) ([]string, error) {
	id, err := s.lookupID(ctx, types.AbilitiesTable, ability)
	if err != nil {
		return nil, err
	}
	return s.queryNames(ctx, `
		SELECT p.name
		FROM trainer_pokemon_abilities tpa
		INNER JOIN pokemon p ON tpa.pokemon_id = p.id
		WHERE tpa.ability_id = ?
		GROUP BY p.name
		ORDER BY p.name`, id)
}

// PokemonByType returns the sorted, distinct names of Pokemon whose type1 or
// type2 matches the named type. Returns ErrNotFound when the type does not
// exist.
func (s *Store) PokemonByType(ctx context.Context, typeName string) ([]string, error) {
	id, err := s.lookupID(ctx, types.TypesTable, typeName)
	if err != nil {
		return nil, err
	}
	return s.queryNames(ctx, `
		SELECT name FROM pokemon
		WHERE type1_id = ? OR type2_id = ?
		GROUP BY name
		ORDER BY name`, id, id)
}

// TrainersByPokemon returns the sorted, distinct names of trainers holding
// the named Pokemon. Returns ErrNotFound when the Pokemon does not exist.
func (s *Store) TrainersByPokemon(ctx context.Context, pokemon string) ([]string, error) {
	id, err := s.lookupID(ctx, types.PokemonTable, pokemon)
	if err != nil {
		return nil, err
	}
	return s.queryNames(ctx, `
		SELECT t.name
		FROM trainer_pokemon_abilities tpa
		INNER JOIN trainers t ON tpa.trainer_id = t.id
		WHERE tpa.pokemon_id = ?
		GROUP BY t.name
		ORDER BY t.name`, id)
}

// AbilitiesByPokemon returns the sorted, distinct ability names of the named
// Pokemon. Returns ErrNotFound when the Pokemon does not exist.
func (s *Store) AbilitiesByPokemon(ctx context.Context, pokemon string) ([]string, error) {
	id, err := s.lookupID(ctx, types.PokemonTable, pokemon)
	if err != nil {
		return nil, err
	}
	return s.queryNames(ctx, `
		SELECT a.name
		FROM trainer_pokemon_abilities tpa
		INNER JOIN abilities a ON tpa.ability_id = a.id
		WHERE tpa.pokemon_id = ?
		GROUP BY a.name
		ORDER BY a.name`, id)
}

// lookupID resolves a name to its row id in the given table by canonical
// match. Returns ErrNotFound when no row matches.
func (s *Store) lookupID(ctx context.Context, table, name string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT id FROM %s WHERE LOWER(TRIM(name)) = LOWER(TRIM(?))", table),
		name).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, types.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("looking up %s: %w", table, err)
	}
	return id, nil
}

// queryNames runs a single-column name query and collects the results.
// A query with no rows yields an empty, non-nil slice.
func (s *Store) queryNames(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying names: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scanning name: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
