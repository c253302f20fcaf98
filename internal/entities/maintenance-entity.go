package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

// Maintenance is a service ticket against an equipment and optionally
// some of its components. Status walks OPEN -> IN_PROGRESS -> DONE;
// DONE is terminal and sets FinishedAt.
type Maintenance struct {
	ID          uuid.UUID   `json:"id"`
	Technician  string      `json:"technician"`
	Contact     null.String `json:"contact"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	EquipmentID uuid.UUID   `json:"equipment_id"`
	FinishedAt  null.Time   `json:"finished_at"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	Components []Component `json:"components,omitempty" db:"-"`
}
