package constants

// Equipment statuses.
const (
	EquipmentStatusActive        = "ACTIVE"
	EquipmentStatusInMaintenance = "IN_MAINTENANCE"
	EquipmentStatusDisabled      = "DISABLED"
)

// Component statuses.
const (
	ComponentStatusOK            = "OK"
	ComponentStatusInMaintenance = "IN_MAINTENANCE"
)

// Maintenance statuses. DONE is terminal.
const (
	MaintenanceStatusOpen       = "OPEN"
	MaintenanceStatusInProgress = "IN_PROGRESS"
	MaintenanceStatusDone       = "DONE"
)

// Alert severities.
const (
	AlertSeverityLow    = "LOW"
	AlertSeverityMedium = "MEDIUM"
	AlertSeverityHigh   = "HIGH"
)
