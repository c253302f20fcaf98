package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"asset-system/internal/dto"
)

type ReportRepositoryInterface interface {
	GetSummary(ctx context.Context) (*dto.SummaryReportDTO, error)
}

type ReportRepository struct {
	storage *pgxpool.Pool
}

func NewReportRepository(storage *pgxpool.Pool) ReportRepositoryInterface {
	return &ReportRepository{storage: storage}
}

// GetSummary computes the aggregate counts feeding the summary report.
func (r *ReportRepository) GetSummary(ctx context.Context) (*dto.SummaryReportDTO, error) {
	summary := &dto.SummaryReportDTO{
		EquipmentByStatus:   make(map[string]uint64),
		MaintenanceByStatus: make(map[string]uint64),
	}

	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&summary.DepartmentCount); err != nil {
		return nil, fmt.Errorf("counting departments: %w", err)
	}
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM equipment`).Scan(&summary.EquipmentTotal); err != nil {
		return nil, fmt.Errorf("counting equipment: %w", err)
	}
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM maintenances`).Scan(&summary.MaintenanceTotal); err != nil {
		return nil, fmt.Errorf("counting maintenances: %w", err)
	}

	rows, err := r.storage.Query(ctx, `SELECT status, COUNT(*) FROM equipment GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("grouping equipment by status: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count uint64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		summary.EquipmentByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	statusRows, err := r.storage.Query(ctx, `SELECT status, COUNT(*) FROM maintenances GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("grouping maintenances by status: %w", err)
	}
	defer statusRows.Close()
	for statusRows.Next() {
		var status string
		var count uint64
		if err := statusRows.Scan(&status, &count); err != nil {
			return nil, err
		}
		summary.MaintenanceByStatus[status] = count
	}
	if err := statusRows.Err(); err != nil {
		return nil, err
	}

	deptRows, err := r.storage.Query(ctx, `
		SELECT d.id, d.name, COUNT(e.id)
		FROM departments d
		LEFT JOIN equipment e ON e.department_id = d.id
		GROUP BY d.id, d.name
		ORDER BY d.name ASC`)
	if err != nil {
		return nil, fmt.Errorf("grouping equipment by department: %w", err)
	}
	defer deptRows.Close()
	summary.EquipmentByDepartment = make([]dto.DepartmentEquipmentCountDTO, 0)
	for deptRows.Next() {
		var row dto.DepartmentEquipmentCountDTO
		if err := deptRows.Scan(&row.DepartmentID, &row.DepartmentName, &row.EquipmentCount); err != nil {
			return nil, err
		}
		summary.EquipmentByDepartment = append(summary.EquipmentByDepartment, row)
	}
	return summary, deptRows.Err()
}
