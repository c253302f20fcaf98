package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

// Component is a sub-part of one equipment. The equipment link is
// immutable after creation. Components are soft-deleted via
// DiscardedAt.
type Component struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	EquipmentID uuid.UUID `json:"equipment_id"`
	DiscardedAt null.Time `json:"discarded_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Equipment *Equipment `json:"equipment,omitempty" db:"-"`
}
