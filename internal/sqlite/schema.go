// Package sqlite implements the SQLite store for the pokedex service.
package sqlite

// Schema DDL. Tables are created in dependency order: types, abilities, and
// trainers have no foreign keys; pokemon references types; the link table
// references pokemon, trainers, and abilities.
const (
	createTypes = `CREATE TABLE IF NOT EXISTS types (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);`

	createAbilities = `CREATE TABLE IF NOT EXISTS abilities (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);`

	createTrainers = `CREATE TABLE IF NOT EXISTS trainers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);`

	createPokemon = `CREATE TABLE IF NOT EXISTS pokemon (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    type1_id INTEGER,
    type2_id INTEGER,
    FOREIGN KEY (type1_id) REFERENCES types(id),
    FOREIGN KEY (type2_id) REFERENCES types(id)
);`

	createPokemonAbilities = `CREATE TABLE IF NOT EXISTS trainer_pokemon_abilities (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    pokemon_id INTEGER NOT NULL,
    trainer_id INTEGER NOT NULL,
    ability_id INTEGER NOT NULL,
    FOREIGN KEY (pokemon_id) REFERENCES pokemon(id),
    FOREIGN KEY (trainer_id) REFERENCES trainers(id),
    FOREIGN KEY (ability_id) REFERENCES abilities(id)
);`
)

// Index DDL for the foreign-key columns behind the join queries.
const (
	idxPokemonType1 = `CREATE INDEX IF NOT EXISTS idx_pokemon_type1 ON pokemon(type1_id);`
	idxPokemonType2 = `CREATE INDEX IF NOT EXISTS idx_pokemon_type2 ON pokemon(type2_id);`
	idxLinksPokemon = `CREATE INDEX IF NOT EXISTS idx_tpa_pokemon ON trainer_pokemon_abilities(pokemon_id);`
	idxLinksTrainer = `CREATE INDEX IF NOT EXISTS idx_tpa_trainer ON trainer_pokemon_abilities(trainer_id);`
	idxLinksAbility = `CREATE INDEX IF NOT EXISTS idx_tpa_ability ON trainer_pokemon_abilities(ability_id);`
)

// Canonical-name unique indexes. These enforce per-table name uniqueness on
// the trimmed, lowercased projection and are the serialization point for
// concurrent creates. They are applied after cleaning, not at open: a dirty
// database holds duplicates until the cleaning pass merges them.
const (
	uidxPokemonName   = `CREATE UNIQUE INDEX IF NOT EXISTS uidx_pokemon_name ON pokemon(LOWER(TRIM(name)));`
	uidxTypesName     = `CREATE UNIQUE INDEX IF NOT EXISTS uidx_types_name ON types(LOWER(TRIM(name)));`
	uidxAbilitiesName = `CREATE UNIQUE INDEX IF NOT EXISTS uidx_abilities_name ON abilities(LOWER(TRIM(name)));`
	uidxTrainersName  = `CREATE UNIQUE INDEX IF NOT EXISTS uidx_trainers_name ON trainers(LOWER(TRIM(name)));`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createTypes,
	createAbilities,
	createTrainers,
	createPokemon,
	createPokemonAbilities,
}

// indexDDL lists the non-unique indexes applied at open.
var indexDDL = []string{
	idxPokemonType1,
	idxPokemonType2,
	idxLinksPokemon,
	idxLinksTrainer,
	idxLinksAbility,
}

// canonicalIndexDDL lists the unique name indexes applied after cleaning.
var canonicalIndexDDL = []string{
	uidxPokemonName,
	uidxTypesName,
	uidxAbilitiesName,
	uidxTrainersName,
}
