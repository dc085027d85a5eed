package country

import "time"

// Country is a lookup entity referenced by owners. Unlike the junction-backed
// relationships, the owner side holds a plain foreign key to it.
type Country struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	FieldID   = "id"
	FieldName = "name"
)
