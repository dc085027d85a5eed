package pokemon

import "time"

// Pokemon is the central catalog entity. It is linked to owners and
// categories through junction rows created atomically at insert time,
// and reviewed through the review entity.
type Pokemon struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Field names for validation
const (
	FieldID        = "id"
	FieldName      = "name"
	FieldBirthDate = "birth_date"
)
