package dto

import "github.com/google/uuid"

type CreateComponentDTO struct {
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	Status      string    `json:"status" validate:"required,oneof=OK IN_MAINTENANCE"`
	EquipmentID uuid.UUID `json:"equipment_id" validate:"required"`
}

// UpdateComponentDTO merges fields directly; the equipment link is
// immutable and therefore absent.
type UpdateComponentDTO struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=OK IN_MAINTENANCE"`
}
