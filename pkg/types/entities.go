package types

// Pokemon is the primary catalog entity. Type1ID and Type2ID are optional
// foreign keys into the types table; a Pokemon may have zero, one, or two
// elemental types.
type Pokemon struct {
	ID      int64
	Name    string
	Type1ID *int64
	Type2ID *int64
}

// PokemonType is an elemental type row (Fire, Water, ...).
type PokemonType struct {
	ID   int64
	Name string
}

// Ability is a named trait a Pokemon may possess.
type Ability struct {
	ID   int64
	Name string
}

// Trainer is a party holding Pokemon.
type Trainer struct {
	ID   int64
	Name string
}

// PokemonAbility is the link row tying one Pokemon, one trainer, and one
// ability together: "this trainer's this Pokemon has this ability".
type PokemonAbility struct {
	ID        int64
	PokemonID int64
	TrainerID int64
	AbilityID int64
}

// CreationResult is returned by a successful create: the display names of
// the new Pokemon and the trainer it was assigned to.
type CreationResult struct {
	Pokemon string `json:"pokemon"`
	Trainer string `json:"trainer"`
}
