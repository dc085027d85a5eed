package schema

// PokemonCategoryTable represents the 'core.pokemoncategory' junction table
type PokemonCategoryTable struct {
	Table      string
	PokemonID  string
	CategoryID string
}

// PokemonCategory is the schema definition for core.pokemoncategory
var PokemonCategory = PokemonCategoryTable{
	Table:      "core.pokemoncategory",
	PokemonID:  "pokemonid",
	CategoryID: "categoryid",
}
