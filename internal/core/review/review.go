package review

import "time"

// Review is a rated write-up of a pokemon by a reviewer. The pokemon and
// reviewer references are fixed at creation time and are not re-validated
// on update.
type Review struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	Rating     int       `json:"rating"`
	PokemonID  int       `json:"pokemon_id"`
	ReviewerID int       `json:"reviewer_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Rating bounds (inclusive).
const (
	MinRating = 1
	MaxRating = 5
)

// Field names for validation
const (
	FieldID     = "id"
	FieldTitle  = "title"
	FieldText   = "text"
	FieldRating = "rating"
)
