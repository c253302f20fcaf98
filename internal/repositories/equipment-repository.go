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

const equipmentTable = "equipment"

const equipmentFields = "e.id, e.name, e.ean, e.status, e.disabled, e.disabled_at, e.department_id, e.created_at, e.updated_at"

var equipmentAllowedSortFields = map[string]string{
	"name":       "e.name",
	"ean":        "e.ean",
	"status":     "e.status",
	"created_at": "e.created_at",
}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter dto.EquipmentFilter, params types.ListParams) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error)
	FindEquipmentByEAN(ctx context.Context, ean string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) (*entities.Equipment, error)
	Disable(ctx context.Context, id uuid.UUID) (*entities.Equipment, error)
	SetDepartmentInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, departmentID uuid.UUID) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

// scanEquipment reads the equipment columns plus the joined department
// summary.
func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	var d entities.Department
	err := row.Scan(
		&e.ID, &e.Name, &e.EAN, &e.Status, &e.Disabled, &e.DisabledAt, &e.DepartmentID, &e.CreatedAt, &e.UpdatedAt,
		&d.ID, &d.Name,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning equipment: %w", err)
	}
	e.Department = &d
	return &e, nil
}

func scanEquipmentRow(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(&e.ID, &e.Name, &e.EAN, &e.Status, &e.Disabled, &e.DisabledAt, &e.DepartmentID, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning equipment: %w", err)
	}
	return &e, nil
}

func (r *EquipmentRepository) baseSelect(filter dto.EquipmentFilter, params types.ListParams) sq.SelectBuilder {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select().
		From(equipmentTable + " e").
		Join("departments d ON d.id = e.department_id")

	if params.Search != "" {
		builder = builder.Where(sq.Or{
			sq.ILike{"e.name": "%" + params.Search + "%"},
			sq.ILike{"e.ean": "%" + params.Search + "%"},
		})
	}
	if filter.Name != "" {
		builder = builder.Where(sq.ILike{"e.name": "%" + filter.Name + "%"})
	}
	if filter.EAN != "" {
		builder = builder.Where(sq.ILike{"e.ean": "%" + filter.EAN + "%"})
	}
	if filter.DepartmentID != nil {
		builder = builder.Where(sq.Eq{"e.department_id": *filter.DepartmentID})
	}
	if filter.ActiveOnly {
		builder = builder.Where(sq.Eq{"e.disabled": false})
	}
	return builder
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter dto.EquipmentFilter, params types.ListParams) ([]entities.Equipment, uint64, error) {
	countQuery, countArgs, err := r.baseSelect(filter, params).Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Equipment{}, 0, nil
	}

	orderBy := orderClause(equipmentAllowedSortFields, params, "e.created_at DESC")
	query, args, err := r.baseSelect(filter, params).
		Columns(equipmentFields, "d.id", "d.name").
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

	equipments := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		equipments = append(equipments, *e)
	}
	return equipments, total, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
	query := fmt.Sprintf(`
		SELECT %s, d.id, d.name
		FROM %s e
		JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1`, equipmentFields, equipmentTable)
	return scanEquipment(r.storage.QueryRow(ctx, query, id))
}

// FindEquipmentByEAN expects the EAN already normalized.
func (r *EquipmentRepository) FindEquipmentByEAN(ctx context.Context, ean string) (*entities.Equipment, error) {
	query := fmt.Sprintf(`
		SELECT e.id, e.name, e.ean, e.status, e.disabled, e.disabled_at, e.department_id, e.created_at, e.updated_at
		FROM %s e WHERE e.ean = $1`, equipmentTable)
	return scanEquipmentRow(r.storage.QueryRow(ctx, query, ean))
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, ean, status, department_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, ean, status, disabled, disabled_at, department_id, created_at, updated_at`, equipmentTable)
	e, err := scanEquipmentRow(r.storage.QueryRow(ctx, query,
		uuid.New(), equipment.Name, equipment.EAN, equipment.Status, equipment.DepartmentID))
	if err != nil {
		return nil, translatePgError(err)
	}
	return e, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	builder := sq.Update(equipmentTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))

	hasChanges := false
	if payload.Name != nil {
		builder = builder.Set("name", *payload.Name)
		hasChanges = true
	}
	if payload.EAN != nil {
		builder = builder.Set("ean", *payload.EAN)
		hasChanges = true
	}
	if payload.DepartmentID != nil {
		builder = builder.Set("department_id", *payload.DepartmentID)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindEquipment(ctx, id)
	}

	query, args, err := builder.
		Suffix("RETURNING id, name, ean, status, disabled, disabled_at, department_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	e, err := scanEquipmentRow(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translatePgError(err)
	}
	return e, nil
}

func (r *EquipmentRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) (*entities.Equipment, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, ean, status, disabled, disabled_at, department_id, created_at, updated_at`, equipmentTable)
	return scanEquipmentRow(r.storage.QueryRow(ctx, query, id, status))
}

// Disable soft-removes the equipment. The WHERE clause guards against
// disabling twice so the original disabled_at is preserved.
func (r *EquipmentRepository) Disable(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET disabled = TRUE, disabled_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND disabled = FALSE
		RETURNING id, name, ean, status, disabled, disabled_at, department_id, created_at, updated_at`, equipmentTable)
	return scanEquipmentRow(r.storage.QueryRow(ctx, query, id))
}

func (r *EquipmentRepository) SetDepartmentInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, departmentID uuid.UUID) error {
	result, err := tx.Exec(ctx,
		fmt.Sprintf(`UPDATE %s SET department_id = $2, updated_at = NOW() WHERE id = $1`, equipmentTable),
		id, departmentID)
	if err != nil {
		return translatePgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
