package dto

import "github.com/google/uuid"

type AlertFilter struct {
	Severity    string     `json:"severity,omitempty"`
	Trimestre   int        `json:"trimestre,omitempty"`
	EquipmentID *uuid.UUID `json:"equipment_id,omitempty"`
}
