package schema

// PokemonTable represents the 'core.pokemon' table
type PokemonTable struct {
	Table     string
	ID        string
	Name      string
	BirthDate string
	CreatedAt string
	UpdatedAt string
}

// Pokemon is the schema definition for core.pokemon
var Pokemon = PokemonTable{
	Table:     "core.pokemon",
	ID:        "id",
	Name:      "name",
	BirthDate: "birthdate",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t PokemonTable) Columns() []string {
	return []string{t.ID, t.Name, t.BirthDate, t.CreatedAt, t.UpdatedAt}
}
