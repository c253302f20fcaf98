package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"

	"asset-system/pkg/types"
)

type CreateMaintenanceDTO struct {
	Technician   string      `json:"technician" validate:"required,max=100"`
	Contact      null.String `json:"contact,omitempty" validate:"omitempty,max=100"`
	Description  string      `json:"description" validate:"required,max=1000"`
	EquipmentID  uuid.UUID   `json:"equipment_id" validate:"required"`
	ComponentIDs []uuid.UUID `json:"component_ids,omitempty"`
}

// UpdateMaintenanceDTO merges technician/contact/description/status.
// finished_at is not accepted: it is set server-side when the status
// reaches DONE. Contact sent as an explicit null clears the stored
// value; an absent field leaves it untouched.
type UpdateMaintenanceDTO struct {
	Technician  *string              `json:"technician,omitempty" validate:"omitempty,max=100"`
	Contact     types.OptionalString `json:"contact,omitempty" validate:"omitempty,max=100"`
	Description *string              `json:"description,omitempty" validate:"omitempty,max=1000"`
	Status      *string              `json:"status,omitempty" validate:"omitempty,oneof=OPEN IN_PROGRESS DONE"`
}

type MaintenanceFilter struct {
	EquipmentID *uuid.UUID `json:"equipment_id,omitempty"`
	Status      string     `json:"status,omitempty"`
	OnlyOpen    bool       `json:"only_open,omitempty"`
}
