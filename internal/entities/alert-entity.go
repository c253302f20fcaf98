package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

// Alert is a derived notification about recurring equipment or
// component issues. This service only queries alerts; rows are
// produced by peripheral flows.
type Alert struct {
	ID               uuid.UUID  `json:"id"`
	Severity         string     `json:"severity"`
	Description      string     `json:"description"`
	EquipmentID      *uuid.UUID `json:"equipment_id,omitempty"`
	ComponentID      *uuid.UUID `json:"component_id,omitempty"`
	MaintenanceID    *uuid.UUID `json:"maintenance_id,omitempty"`
	Trimestre        int        `json:"trimestre"`
	OccurrenceCount  int        `json:"occurrence_count"`
	LastRecurrenceAt null.Time  `json:"last_recurrence_at"`
	CreatedAt        time.Time  `json:"created_at"`
}
