package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/types"
)

const alertTable = "alerts"

const alertFields = "a.id, a.severity, a.description, a.equipment_id, a.component_id, a.maintenance_id, a.trimestre, a.occurrence_count, a.last_recurrence_at, a.created_at"

var alertAllowedSortFields = map[string]string{
	"severity":         "a.severity",
	"trimestre":        "a.trimestre",
	"occurrence_count": "a.occurrence_count",
	"created_at":       "a.created_at",
}

type AlertRepositoryInterface interface {
	GetAlerts(ctx context.Context, filter dto.AlertFilter, params types.ListParams) ([]entities.Alert, uint64, error)
	FindAlert(ctx context.Context, id uuid.UUID) (*entities.Alert, error)
}

type AlertRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewAlertRepository(storage *pgxpool.Pool, logger *zap.Logger) AlertRepositoryInterface {
	return &AlertRepository{storage: storage, logger: logger}
}

func scanAlert(row pgx.Row) (*entities.Alert, error) {
	var a entities.Alert
	err := row.Scan(&a.ID, &a.Severity, &a.Description, &a.EquipmentID, &a.ComponentID, &a.MaintenanceID,
		&a.Trimestre, &a.OccurrenceCount, &a.LastRecurrenceAt, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning alert: %w", err)
	}
	return &a, nil
}

func (r *AlertRepository) baseSelect(filter dto.AlertFilter, params types.ListParams) sq.SelectBuilder {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select().
		From(alertTable + " a")

	if params.Search != "" {
		builder = builder.Where(sq.ILike{"a.description": "%" + params.Search + "%"})
	}
	if filter.Severity != "" {
		builder = builder.Where(sq.Eq{"a.severity": filter.Severity})
	}
	if filter.Trimestre != 0 {
		builder = builder.Where(sq.Eq{"a.trimestre": filter.Trimestre})
	}
	if filter.EquipmentID != nil {
		builder = builder.Where(sq.Eq{"a.equipment_id": *filter.EquipmentID})
	}
	return builder
}

func (r *AlertRepository) GetAlerts(ctx context.Context, filter dto.AlertFilter, params types.ListParams) ([]entities.Alert, uint64, error) {
	countQuery, countArgs, err := r.baseSelect(filter, params).Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Alert{}, 0, nil
	}

	orderBy := orderClause(alertAllowedSortFields, params, "a.created_at ASC")
	query, args, err := r.baseSelect(filter, params).
		Columns(alertFields).
		OrderBy(orderBy).
		Limit(uint64(params.Limit)).
		Offset(uint64(params.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	alerts := make([]entities.Alert, 0)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, 0, err
		}
		alerts = append(alerts, *a)
	}
	return alerts, total, rows.Err()
}

func (r *AlertRepository) FindAlert(ctx context.Context, id uuid.UUID) (*entities.Alert, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s a WHERE a.id = $1`, alertFields, alertTable)
	return scanAlert(r.storage.QueryRow(ctx, query, id))
}
