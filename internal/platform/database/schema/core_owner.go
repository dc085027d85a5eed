package schema

// OwnerTable represents the 'core.owner' table
type OwnerTable struct {
	Table     string
	ID        string
	FirstName string
	LastName  string
	CountryID string
	CreatedAt string
	UpdatedAt string
}

// Owner is the schema definition for core.owner
var Owner = OwnerTable{
	Table:     "core.owner",
	ID:        "id",
	FirstName: "firstname",
	LastName:  "lastname",
	CountryID: "countryid",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t OwnerTable) Columns() []string {
	return []string{t.ID, t.FirstName, t.LastName, t.CountryID, t.CreatedAt, t.UpdatedAt}
}
