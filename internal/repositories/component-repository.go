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

const componentTable = "components"

const componentFields = "c.id, c.name, c.status, c.equipment_id, c.discarded_at, c.created_at, c.updated_at"

var componentAllowedSortFields = map[string]string{
	"name":       "c.name",
	"status":     "c.status",
	"created_at": "c.created_at",
}

type ComponentRepositoryInterface interface {
	GetComponents(ctx context.Context, params types.ListParams) ([]entities.Component, uint64, error)
	GetComponentsByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]entities.Component, error)
	FindComponent(ctx context.Context, id uuid.UUID) (*entities.Component, error)
	CreateComponent(ctx context.Context, component entities.Component) (*entities.Component, error)
	UpdateComponent(ctx context.Context, id uuid.UUID, payload dto.UpdateComponentDTO) (*entities.Component, error)
	DiscardComponent(ctx context.Context, id uuid.UUID) error
}

type ComponentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewComponentRepository(storage *pgxpool.Pool, logger *zap.Logger) ComponentRepositoryInterface {
	return &ComponentRepository{storage: storage, logger: logger}
}

func scanComponent(row pgx.Row) (*entities.Component, error) {
	var c entities.Component
	var e entities.Equipment
	err := row.Scan(
		&c.ID, &c.Name, &c.Status, &c.EquipmentID, &c.DiscardedAt, &c.CreatedAt, &c.UpdatedAt,
		&e.ID, &e.Name, &e.EAN,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning component: %w", err)
	}
	c.Equipment = &e
	return &c, nil
}

func scanComponentRow(row pgx.Row) (*entities.Component, error) {
	var c entities.Component
	err := row.Scan(&c.ID, &c.Name, &c.Status, &c.EquipmentID, &c.DiscardedAt, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning component: %w", err)
	}
	return &c, nil
}

// GetComponents lists non-discarded components with their parent
// equipment summary.
func (r *ComponentRepository) GetComponents(ctx context.Context, params types.ListParams) ([]entities.Component, uint64, error) {
	base := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select().
		From(componentTable + " c").
		Join("equipment e ON e.id = c.equipment_id").
		Where(sq.Eq{"c.discarded_at": nil})
	if params.Search != "" {
		base = base.Where(sq.ILike{"c.name": "%" + params.Search + "%"})
	}

	countQuery, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Component{}, 0, nil
	}

	orderBy := orderClause(componentAllowedSortFields, params, "c.created_at ASC")
	query, args, err := base.
		Columns(componentFields, "e.id", "e.name", "e.ean").
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

	components := make([]entities.Component, 0)
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, 0, err
		}
		components = append(components, *c)
	}
	return components, total, rows.Err()
}

func (r *ComponentRepository) GetComponentsByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]entities.Component, error) {
	query := fmt.Sprintf(`
		SELECT c.id, c.name, c.status, c.equipment_id, c.discarded_at, c.created_at, c.updated_at
		FROM %s c
		WHERE c.equipment_id = $1 AND c.discarded_at IS NULL
		ORDER BY c.created_at ASC`, componentTable)
	rows, err := r.storage.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	components := make([]entities.Component, 0)
	for rows.Next() {
		c, err := scanComponentRow(rows)
		if err != nil {
			return nil, err
		}
		components = append(components, *c)
	}
	return components, rows.Err()
}

// FindComponent also returns discarded components: soft delete hides a
// record from lists, not from direct lookup.
func (r *ComponentRepository) FindComponent(ctx context.Context, id uuid.UUID) (*entities.Component, error) {
	query := fmt.Sprintf(`
		SELECT %s, e.id, e.name, e.ean
		FROM %s c
		JOIN equipment e ON e.id = c.equipment_id
		WHERE c.id = $1`, componentFields, componentTable)
	return scanComponent(r.storage.QueryRow(ctx, query, id))
}

func (r *ComponentRepository) CreateComponent(ctx context.Context, component entities.Component) (*entities.Component, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, status, equipment_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, status, equipment_id, discarded_at, created_at, updated_at`, componentTable)
	c, err := scanComponentRow(r.storage.QueryRow(ctx, query,
		uuid.New(), component.Name, component.Status, component.EquipmentID))
	if err != nil {
		return nil, translatePgError(err)
	}
	return c, nil
}

func (r *ComponentRepository) UpdateComponent(ctx context.Context, id uuid.UUID, payload dto.UpdateComponentDTO) (*entities.Component, error) {
	builder := sq.Update(componentTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))

	hasChanges := false
	if payload.Name != nil {
		builder = builder.Set("name", *payload.Name)
		hasChanges = true
	}
	if payload.Status != nil {
		builder = builder.Set("status", *payload.Status)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindComponent(ctx, id)
	}

	query, args, err := builder.
		Suffix("RETURNING id, name, status, equipment_id, discarded_at, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanComponentRow(r.storage.QueryRow(ctx, query, args...))
}

func (r *ComponentRepository) DiscardComponent(ctx context.Context, id uuid.UUID) error {
	query := fmt.Sprintf(`
		UPDATE %s SET discarded_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND discarded_at IS NULL`, componentTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		// Either the component does not exist or it is already
		// discarded; distinguish for the caller.
		if _, findErr := r.FindComponent(ctx, id); findErr != nil {
			return findErr
		}
		return apperrors.ErrBadRequest
	}
	return nil
}
