package dto

import "github.com/google/uuid"

type ShortDepartmentDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ShortEquipmentDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	EAN  string    `json:"ean"`
}

type ShortComponentDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
