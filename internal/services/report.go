package services

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/repositories"
)

type ReportService struct {
	reportRepository repositories.ReportRepositoryInterface
	logger           *zap.Logger
}

func NewReportService(reportRepository repositories.ReportRepositoryInterface, logger *zap.Logger) *ReportService {
	return &ReportService{reportRepository: reportRepository, logger: logger}
}

func (s *ReportService) GetSummary(ctx context.Context) (*dto.SummaryReportDTO, error) {
	summary, err := s.reportRepository.GetSummary(ctx)
	if err != nil {
		s.logger.Error("building summary report failed", zap.Error(err))
		return nil, err
	}
	return summary, nil
}

// ExportSummaryXLSX renders the summary as a spreadsheet and returns
// the file bytes plus a timestamped filename.
func (s *ReportService) ExportSummaryXLSX(ctx context.Context) ([]byte, string, error) {
	summary, err := s.GetSummary(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Summary"
	f.SetSheetName("Sheet1", sheet)

	rows := [][]interface{}{
		{"Asset summary", time.Now().Format("2006-01-02 15:04")},
		{},
		{"Departments", summary.DepartmentCount},
		{"Equipment total", summary.EquipmentTotal},
	}
	for _, status := range sortedKeys(summary.EquipmentByStatus) {
		rows = append(rows, []interface{}{"Equipment " + status, summary.EquipmentByStatus[status]})
	}
	rows = append(rows, []interface{}{}, []interface{}{"Maintenance total", summary.MaintenanceTotal})
	for _, status := range sortedKeys(summary.MaintenanceByStatus) {
		rows = append(rows, []interface{}{"Maintenance " + status, summary.MaintenanceByStatus[status]})
	}
	rows = append(rows, []interface{}{}, []interface{}{"Department", "Equipment count"})
	for _, row := range summary.EquipmentByDepartment {
		rows = append(rows, []interface{}{row.DepartmentName, row.EquipmentCount})
	}

	for i, row := range rows {
		cell, cellErr := excelize.CoordinatesToCellName(1, i+1)
		if cellErr != nil {
			return nil, "", cellErr
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, "", err
		}
	}
	if err := f.SetColWidth(sheet, "A", "A", 32); err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		s.logger.Error("writing xlsx report failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("asset-summary-%s.xlsx", time.Now().Format("20060102-150405"))
	return buf.Bytes(), filename, nil
}

func sortedKeys(m map[string]uint64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
