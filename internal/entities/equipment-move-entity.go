package entities

import (
	"time"

	"github.com/google/uuid"
)

// EquipmentMove is an append-only record of an equipment changing
// department. Rows are never updated; admins may hard-delete them.
type EquipmentMove struct {
	ID                   uuid.UUID `json:"id"`
	EquipmentID          uuid.UUID `json:"equipment_id"`
	PreviousDepartmentID uuid.UUID `json:"previous_department_id"`
	NewDepartmentID      uuid.UUID `json:"new_department_id"`
	CreatedAt            time.Time `json:"created_at"`
}
