package schema

// CountryTable represents the 'core.country' table
type CountryTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
	UpdatedAt string
}

// Country is the schema definition for core.country
var Country = CountryTable{
	Table:     "core.country",
	ID:        "id",
	Name:      "name",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t CountryTable) Columns() []string {
	return []string{t.ID, t.Name, t.CreatedAt, t.UpdatedAt}
}
