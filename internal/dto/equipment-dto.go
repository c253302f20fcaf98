package dto

import "github.com/google/uuid"

type CreateEquipmentDTO struct {
	Name         string    `json:"name" validate:"required,min=2,max=100"`
	EAN          string    `json:"ean" validate:"required,max=100"`
	DepartmentID uuid.UUID `json:"department_id" validate:"required"`
	Status       string    `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE IN_MAINTENANCE DISABLED"`
}

// UpdateEquipmentDTO deliberately has no disabled/disabled_at/created_at
// fields: those are mutated only through the dedicated operations.
type UpdateEquipmentDTO struct {
	Name         *string    `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	EAN          *string    `json:"ean,omitempty" validate:"omitempty,max=100"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
}

type ChangeEquipmentStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE IN_MAINTENANCE DISABLED"`
}

// EquipmentFilter is the explicit filter set of the equipment list
// endpoint. Name and EAN are substring matches.
type EquipmentFilter struct {
	Name         string     `json:"name,omitempty"`
	EAN          string     `json:"ean,omitempty"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	ActiveOnly   bool       `json:"active_only,omitempty"`
}
