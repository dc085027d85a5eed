package schema

// ReviewerTable represents the 'core.reviewer' table
type ReviewerTable struct {
	Table     string
	ID        string
	FirstName string
	LastName  string
	CreatedAt string
	UpdatedAt string
}

// Reviewer is the schema definition for core.reviewer
var Reviewer = ReviewerTable{
	Table:     "core.reviewer",
	ID:        "id",
	FirstName: "firstname",
	LastName:  "lastname",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t ReviewerTable) Columns() []string {
	return []string{t.ID, t.FirstName, t.LastName, t.CreatedAt, t.UpdatedAt}
}
