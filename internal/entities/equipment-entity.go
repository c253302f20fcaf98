package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

// Equipment is a trackable asset. It is always located at exactly one
// department; relocation goes through the equipment-move workflow so
// the move ledger and DepartmentID never diverge. Equipment is never
// hard-deleted, only disabled.
type Equipment struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	EAN          string    `json:"ean"`
	Status       string    `json:"status"`
	Disabled     bool      `json:"disabled"`
	DisabledAt   null.Time `json:"disabled_at"`
	DepartmentID uuid.UUID `json:"department_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Joined data, not table columns.
	Department *Department `json:"department,omitempty" db:"-"`
}
