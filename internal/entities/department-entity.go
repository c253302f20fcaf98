package entities

import (
	"time"

	"github.com/google/uuid"
)

// Department is an organizational location that owns equipment.
// Name, Location and ResponsibleName are stored normalized (trimmed,
// lowercased, diacritics stripped); Name is unique in that form.
type Department struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Location         string    `json:"location"`
	ResponsibleName  string    `json:"responsible_name"`
	ResponsibleEmail string    `json:"responsible_email"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
