package schema

// PokemonOwnerTable represents the 'core.pokemonowner' junction table
type PokemonOwnerTable struct {
	Table     string
	PokemonID string
	OwnerID   string
}

// PokemonOwner is the schema definition for core.pokemonowner
var PokemonOwner = PokemonOwnerTable{
	Table:     "core.pokemonowner",
	PokemonID: "pokemonid",
	OwnerID:   "ownerid",
}
