package schema

// ReviewTable represents the 'core.review' table
type ReviewTable struct {
	Table      string
	ID         string
	Title      string
	Text       string
	Rating     string
	PokemonID  string
	ReviewerID string
	CreatedAt  string
	UpdatedAt  string
}

// Review is the schema definition for core.review
var Review = ReviewTable{
	Table:      "core.review",
	ID:         "id",
	Title:      "title",
	Text:       "text",
	Rating:     "rating",
	PokemonID:  "pokemonid",
	ReviewerID: "reviewerid",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}

func (t ReviewTable) Columns() []string {
	return []string{t.ID, t.Title, t.Text, t.Rating, t.PokemonID, t.ReviewerID, t.CreatedAt, t.UpdatedAt}
}
