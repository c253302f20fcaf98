package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/pkg/constants"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/types"
)

const (
	maintenanceTable          = "maintenances"
	maintenanceComponentTable = "maintenance_components"
)

const maintenanceFields = "m.id, m.technician, m.contact, m.description, m.status, m.equipment_id, m.finished_at, m.created_at, m.updated_at"

var maintenanceAllowedSortFields = map[string]string{
	"technician": "m.technician",
	"status":     "m.status",
	"created_at": "m.created_at",
}

type MaintenanceRepositoryInterface interface {
	CreateMaintenanceInTx(ctx context.Context, tx pgx.Tx, maintenance entities.Maintenance) (*entities.Maintenance, error)
	AddComponentsInTx(ctx context.Context, tx pgx.Tx, maintenanceID uuid.UUID, componentIDs []uuid.UUID) error
	GetMaintenances(ctx context.Context, filter dto.MaintenanceFilter, params types.ListParams) ([]entities.Maintenance, uint64, error)
	FindMaintenance(ctx context.Context, id uuid.UUID) (*entities.Maintenance, error)
	UpdateMaintenance(ctx context.Context, id uuid.UUID, payload dto.UpdateMaintenanceDTO, finishedAt null.Time) (*entities.Maintenance, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string, finishedAt null.Time) (*entities.Maintenance, error)
	DeleteComponentsInTx(ctx context.Context, tx pgx.Tx, maintenanceID uuid.UUID) error
	DeleteMaintenanceInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

type MaintenanceRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMaintenanceRepository(storage *pgxpool.Pool, logger *zap.Logger) MaintenanceRepositoryInterface {
	return &MaintenanceRepository{storage: storage, logger: logger}
}

func scanMaintenance(row pgx.Row) (*entities.Maintenance, error) {
	var m entities.Maintenance
	err := row.Scan(&m.ID, &m.Technician, &m.Contact, &m.Description, &m.Status, &m.EquipmentID, &m.FinishedAt, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning maintenance: %w", err)
	}
	return &m, nil
}

func (r *MaintenanceRepository) CreateMaintenanceInTx(ctx context.Context, tx pgx.Tx, maintenance entities.Maintenance) (*entities.Maintenance, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, technician, contact, description, status, equipment_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, technician, contact, description, status, equipment_id, finished_at, created_at, updated_at`, maintenanceTable)
	m, err := scanMaintenance(tx.QueryRow(ctx, query,
		uuid.New(), maintenance.Technician, maintenance.Contact, maintenance.Description, maintenance.Status, maintenance.EquipmentID))
	if err != nil {
		return nil, translatePgError(err)
	}
	return m, nil
}

// AddComponentsInTx bulk-inserts the join rows linking the ticket to
// the selected components.
func (r *MaintenanceRepository) AddComponentsInTx(ctx context.Context, tx pgx.Tx, maintenanceID uuid.UUID, componentIDs []uuid.UUID) error {
	if len(componentIDs) == 0 {
		return nil
	}
	builder := sq.Insert(maintenanceComponentTable).
		PlaceholderFormat(sq.Dollar).
		Columns("maintenance_id", "component_id")
	for _, componentID := range componentIDs {
		builder = builder.Values(maintenanceID, componentID)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return translatePgError(err)
	}
	return nil
}

func (r *MaintenanceRepository) baseSelect(filter dto.MaintenanceFilter) sq.SelectBuilder {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select().
		From(maintenanceTable + " m")

	if filter.EquipmentID != nil {
		builder = builder.Where(sq.Eq{"m.equipment_id": *filter.EquipmentID})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"m.status": filter.Status})
	}
	if filter.OnlyOpen {
		// "only open" means not yet completed.
		builder = builder.Where(sq.NotEq{"m.status": constants.MaintenanceStatusDone})
	}
	return builder
}

func (r *MaintenanceRepository) GetMaintenances(ctx context.Context, filter dto.MaintenanceFilter, params types.ListParams) ([]entities.Maintenance, uint64, error) {
	countQuery, countArgs, err := r.baseSelect(filter).Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Maintenance{}, 0, nil
	}

	orderBy := orderClause(maintenanceAllowedSortFields, params, "m.created_at ASC")
	query, args, err := r.baseSelect(filter).
		Columns(maintenanceFields).
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

	maintenances := make([]entities.Maintenance, 0)
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, 0, err
		}
		maintenances = append(maintenances, *m)
	}
	return maintenances, total, rows.Err()
}

// FindMaintenance loads the ticket and its component associations.
func (r *MaintenanceRepository) FindMaintenance(ctx context.Context, id uuid.UUID) (*entities.Maintenance, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s m WHERE m.id = $1`, maintenanceFields, maintenanceTable)
	m, err := scanMaintenance(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	componentsQuery := fmt.Sprintf(`
		SELECT c.id, c.name, c.status, c.equipment_id, c.discarded_at, c.created_at, c.updated_at
		FROM %s mc
		JOIN components c ON c.id = mc.component_id
		WHERE mc.maintenance_id = $1
		ORDER BY c.created_at ASC`, maintenanceComponentTable)
	rows, err := r.storage.Query(ctx, componentsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m.Components = make([]entities.Component, 0)
	for rows.Next() {
		c, err := scanComponentRow(rows)
		if err != nil {
			return nil, err
		}
		m.Components = append(m.Components, *c)
	}
	return m, rows.Err()
}

func (r *MaintenanceRepository) UpdateMaintenance(ctx context.Context, id uuid.UUID, payload dto.UpdateMaintenanceDTO, finishedAt null.Time) (*entities.Maintenance, error) {
	builder := sq.Update(maintenanceTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))

	hasChanges := false
	if payload.Technician != nil {
		builder = builder.Set("technician", *payload.Technician)
		hasChanges = true
	}
	if payload.Contact.Set {
		builder = builder.Set("contact", payload.Contact.Value)
		hasChanges = true
	}
	if payload.Description != nil {
		builder = builder.Set("description", *payload.Description)
		hasChanges = true
	}
	if payload.Status != nil {
		builder = builder.Set("status", *payload.Status)
		hasChanges = true
	}
	if finishedAt.Valid {
		builder = builder.Set("finished_at", finishedAt)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindMaintenance(ctx, id)
	}

	query, args, err := builder.
		Suffix("RETURNING id, technician, contact, description, status, equipment_id, finished_at, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanMaintenance(r.storage.QueryRow(ctx, query, args...))
}

func (r *MaintenanceRepository) SetStatus(ctx context.Context, id uuid.UUID, status string, finishedAt null.Time) (*entities.Maintenance, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET status = $2, finished_at = COALESCE($3, finished_at), updated_at = NOW()
		WHERE id = $1
		RETURNING id, technician, contact, description, status, equipment_id, finished_at, created_at, updated_at`, maintenanceTable)
	return scanMaintenance(r.storage.QueryRow(ctx, query, id, status, finishedAt))
}

func (r *MaintenanceRepository) DeleteComponentsInTx(ctx context.Context, tx pgx.Tx, maintenanceID uuid.UUID) error {
	_, err := tx.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE maintenance_id = $1`, maintenanceComponentTable), maintenanceID)
	return err
}

func (r *MaintenanceRepository) DeleteMaintenanceInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	result, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, maintenanceTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
