// Demo dataset seeding. The dataset is deliberately dirty: duplicate rows
// under different casings, misspelled names, and placeholder junk, so a
// subsequent cleaning run has real work to do.
package sqlite

import (
	"context"
	"fmt"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

var (
	seedTypes = []string{
		"Fire", "fire", "Water", "gras", "Grass", "eletric", "Poison", "---",
	}
	seedAbilities = []string{
		"Overgrow", "overgroww", "Torrent", "Blaze", "blaze ", "Static", "???",
	}
	seedTrainers = []string{
		"Ash", "ashh", "Misty", "Brock", "Remove This Ability",
	}
)

// seedPokemon rows reference seeded type names; the names resolve to row ids
// at insert time so duplicates get distinct ids like real dirty data.
var seedPokemon = []struct {
	name  string
	type1 string
	type2 string
}{
	{"Bulbasaur", "Grass", "Poison"},
	{"bulbasuar", "gras", ""},
	{"Charmander", "Fire", ""},
	{"charzard", "fire", ""},
	{"Squirtle", "Water", ""},
	{"Pikachu", "eletric", ""},
	{"???", "", ""},
}

// seedLinks ties pokemon to trainers and abilities by seed list index, so
// some links deliberately reference rows that cleaning will merge away.
var seedLinks = []struct {
	pokemon, trainer, ability int
}{
	{0, 0, 0}, // Bulbasaur / Ash / Overgrow
	{1, 1, 1}, // bulbasuar / ashh / overgroww
	{2, 2, 3}, // Charmander / Misty / Blaze
	{3, 3, 4}, // charzard / Brock / "blaze "
	{4, 0, 2}, // Squirtle / Ash / Torrent
	{5, 2, 5}, // Pikachu / Misty / Static
}

// Seed populates an empty database with the demo dataset. Returns
// ErrAlreadyExists when any pokemon rows are present: seeding is only for
// fresh databases. Canonical-name indexes from a previous cleaning run are
// dropped first since the dataset violates them by design.
func (s *Store) Seed(ctx context.Context) error {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pokemon").Scan(&n); err != nil {
		return fmt.Errorf("checking pokemon table: %w", err)
	}
	if n > 0 {
		return types.ErrAlreadyExists
	}

	for _, idx := range []string{"uidx_pokemon_name", "uidx_types_name", "uidx_abilities_name", "uidx_trainers_name"} {
		if _, err := s.db.ExecContext(ctx, "DROP INDEX IF EXISTS "+idx); err != nil {
			return fmt.Errorf("dropping index %s: %w", idx, err)
		}
	}

	typeIDs := map[string]int64{}
	for _, name := range seedTypes {
		id, err := s.insertNamed(ctx, "types", name)
		if err != nil {
			return err
		}
		typeIDs[name] = id
	}

	abilityIDs := make([]int64, 0, len(seedAbilities))
	for _, name := range seedAbilities {
		id, err := s.insertNamed(ctx, "abilities", name)
		if err != nil {
			return err
		}
		abilityIDs = append(abilityIDs, id)
	}

	trainerIDs := make([]int64, 0, len(seedTrainers))
	for _, name := range seedTrainers {
		id, err := s.insertNamed(ctx, "trainers", name)
		if err != nil {
			return err
		}
		trainerIDs = append(trainerIDs, id)
	}

	pokemonIDs := make([]int64, 0, len(seedPokemon))
	for _, p := range seedPokemon {
		var t1, t2 any
		if p.type1 != "" {
			t1 = typeIDs[p.type1]
		}
		if p.type2 != "" {
			t2 = typeIDs[p.type2]
		}
		res, err := s.db.ExecContext(ctx,
			"INSERT INTO pokemon (name, type1_id, type2_id) VALUES (?, ?, ?)",
			p.name, t1, t2)
		if err != nil {
			return fmt.Errorf("seeding pokemon: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("seed pokemon id: %w", err)
		}
		pokemonIDs = append(pokemonIDs, id)
	}

	for _, l := range seedLinks {
		if _, err := s.db.ExecContext(ctx,
			"INSERT INTO trainer_pokemon_abilities (pokemon_id, trainer_id, ability_id) VALUES (?, ?, ?)",
			pokemonIDs[l.pokemon], trainerIDs[l.trainer], abilityIDs[l.ability]); err != nil {
			return fmt.Errorf("seeding links: %w", err)
		}
	}

	return nil
}

func (s *Store) insertNamed(ctx context.Context, table, name string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf("INSERT INTO %s (name) VALUES (?)", table), name)
	if err != nil {
		return 0, fmt.Errorf("seeding %s: %w", table, err)
	}
	return res.LastInsertId()
}
