package owner

import "time"

// Owner is a person who owns pokemon. Each owner belongs to exactly one
// country; the country reference is validated at creation time.
type Owner struct {
	ID        int       `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CountryID int       `json:"country_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Field names for validation
const (
	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldCountryID = "country_id"
)
