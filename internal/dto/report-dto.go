package dto

import "github.com/google/uuid"

// DepartmentEquipmentCountDTO is one row of the per-department
// equipment breakdown in the summary report.
type DepartmentEquipmentCountDTO struct {
	DepartmentID   uuid.UUID `json:"department_id"`
	DepartmentName string    `json:"department_name"`
	EquipmentCount uint64    `json:"equipment_count"`
}

// SummaryReportDTO carries the aggregate numbers consumed by the
// document renderer.
type SummaryReportDTO struct {
	DepartmentCount       uint64                        `json:"department_count"`
	EquipmentTotal        uint64                        `json:"equipment_total"`
	EquipmentByStatus     map[string]uint64             `json:"equipment_by_status"`
	EquipmentByDepartment []DepartmentEquipmentCountDTO `json:"equipment_by_department"`
	MaintenanceTotal      uint64                        `json:"maintenance_total"`
	MaintenanceByStatus   map[string]uint64             `json:"maintenance_by_status"`
}
