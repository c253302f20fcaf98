package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateEquipmentMoveDTO struct {
	EquipmentID          uuid.UUID `json:"equipment_id" validate:"required"`
	PreviousDepartmentID uuid.UUID `json:"previous_department_id" validate:"required"`
	NewDepartmentID      uuid.UUID `json:"new_department_id" validate:"required"`
}

// EquipmentMoveDTO is the list/detail shape: ids plus compact
// summaries of the equipment and both departments.
type EquipmentMoveDTO struct {
	ID                 uuid.UUID          `json:"id"`
	Equipment          ShortEquipmentDTO  `json:"equipment"`
	PreviousDepartment ShortDepartmentDTO `json:"previous_department"`
	NewDepartment      ShortDepartmentDTO `json:"new_department"`
	CreatedAt          time.Time          `json:"created_at"`
}

type EquipmentMoveFilter struct {
	EquipmentID          *uuid.UUID `json:"equipment_id,omitempty"`
	PreviousDepartmentID *uuid.UUID `json:"previous_department_id,omitempty"`
	NewDepartmentID      *uuid.UUID `json:"new_department_id,omitempty"`
}
