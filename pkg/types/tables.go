package types

// Standard table names.
const (
	PokemonTable        = "pokemon"
	TypesTable          = "types"
	AbilitiesTable      = "abilities"
	TrainersTable       = "trainers"
	PokemonAbilityTable = "trainer_pokemon_abilities"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	PokemonTable,
	TypesTable,
	AbilitiesTable,
	TrainersTable,
	PokemonAbilityTable,
}
