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

const departmentTable = "departments"

const departmentFields = "id, name, location, responsible_name, responsible_email, created_at, updated_at"

var departmentAllowedSortFields = map[string]string{
	"name":       "name",
	"location":   "location",
	"created_at": "created_at",
}

type DepartmentRepositoryInterface interface {
	GetDepartments(ctx context.Context, params types.ListParams) ([]entities.Department, uint64, error)
	FindDepartment(ctx context.Context, id uuid.UUID) (*entities.Department, error)
	FindDepartmentByName(ctx context.Context, normalizedName string) (*entities.Department, error)
	CreateDepartment(ctx context.Context, department entities.Department) (*entities.Department, error)
	UpdateDepartment(ctx context.Context, id uuid.UUID, payload dto.UpdateDepartmentDTO) (*entities.Department, error)
	DeleteDepartment(ctx context.Context, id uuid.UUID) error
}

type DepartmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDepartmentRepository(storage *pgxpool.Pool, logger *zap.Logger) DepartmentRepositoryInterface {
	return &DepartmentRepository{storage: storage, logger: logger}
}

func scanDepartment(row pgx.Row) (*entities.Department, error) {
	var d entities.Department
	err := row.Scan(&d.ID, &d.Name, &d.Location, &d.ResponsibleName, &d.ResponsibleEmail, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning department: %w", err)
	}
	return &d, nil
}

func (r *DepartmentRepository) baseSelect(params types.ListParams) sq.SelectBuilder {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select().
		From(departmentTable)
	if params.Search != "" {
		builder = builder.Where(sq.ILike{"name": "%" + params.Search + "%"})
	}
	return builder
}

func (r *DepartmentRepository) GetDepartments(ctx context.Context, params types.ListParams) ([]entities.Department, uint64, error) {
	countQuery, countArgs, err := r.baseSelect(params).Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Department{}, 0, nil
	}

	orderBy := orderClause(departmentAllowedSortFields, params, "name ASC")
	query, args, err := r.baseSelect(params).
		Columns(departmentFields).
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

	departments := make([]entities.Department, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, 0, err
		}
		departments = append(departments, *d)
	}
	return departments, total, rows.Err()
}

func (r *DepartmentRepository) FindDepartment(ctx context.Context, id uuid.UUID) (*entities.Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, departmentFields, departmentTable)
	return scanDepartment(r.storage.QueryRow(ctx, query, id))
}

// FindDepartmentByName expects the name already normalized; names are
// stored normalized, so this is an exact match.
func (r *DepartmentRepository) FindDepartmentByName(ctx context.Context, normalizedName string) (*entities.Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE name = $1`, departmentFields, departmentTable)
	return scanDepartment(r.storage.QueryRow(ctx, query, normalizedName))
}

func (r *DepartmentRepository) CreateDepartment(ctx context.Context, department entities.Department) (*entities.Department, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, location, responsible_name, responsible_email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`, departmentTable, departmentFields)
	d, err := scanDepartment(r.storage.QueryRow(ctx, query,
		uuid.New(), department.Name, department.Location, department.ResponsibleName, department.ResponsibleEmail))
	if err != nil {
		return nil, translatePgError(err)
	}
	return d, nil
}

func (r *DepartmentRepository) UpdateDepartment(ctx context.Context, id uuid.UUID, payload dto.UpdateDepartmentDTO) (*entities.Department, error) {
	builder := sq.Update(departmentTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))

	hasChanges := false
	if payload.Name != nil {
		builder = builder.Set("name", *payload.Name)
		hasChanges = true
	}
	if payload.Location != nil {
		builder = builder.Set("location", *payload.Location)
		hasChanges = true
	}
	if payload.ResponsibleName != nil {
		builder = builder.Set("responsible_name", *payload.ResponsibleName)
		hasChanges = true
	}
	if payload.ResponsibleEmail != nil {
		builder = builder.Set("responsible_email", *payload.ResponsibleEmail)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindDepartment(ctx, id)
	}

	query, args, err := builder.Suffix("RETURNING " + departmentFields).ToSql()
	if err != nil {
		return nil, err
	}
	d, err := scanDepartment(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translatePgError(err)
	}
	return d, nil
}

func (r *DepartmentRepository) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, departmentTable), id)
	if err != nil {
		return translatePgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
