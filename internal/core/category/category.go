package category

import "time"

// Category is a grouping attribute applied to pokemon (e.g. "Electric").
type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Field names for validation
const (
	FieldID   = "id"
	FieldName = "name"
)
