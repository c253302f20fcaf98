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

const equipmentMoveTable = "equipment_moves"

var equipmentMoveAllowedSortFields = map[string]string{
	"created_at": "m.created_at",
}

type EquipmentMoveRepositoryInterface interface {
	CreateMoveInTx(ctx context.Context, tx pgx.Tx, move entities.EquipmentMove) (*entities.EquipmentMove, error)
	GetMoves(ctx context.Context, filter dto.EquipmentMoveFilter, params types.ListParams) ([]dto.EquipmentMoveDTO, uint64, error)
	FindMove(ctx context.Context, id uuid.UUID) (*dto.EquipmentMoveDTO, error)
	DeleteMove(ctx context.Context, id uuid.UUID) error
}

type EquipmentMoveRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentMoveRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentMoveRepositoryInterface {
	return &EquipmentMoveRepository{storage: storage, logger: logger}
}

// CreateMoveInTx inserts the ledger row. The caller owns the
// transaction so the insert and the equipment pointer update either
// both persist or neither does.
func (r *EquipmentMoveRepository) CreateMoveInTx(ctx context.Context, tx pgx.Tx, move entities.EquipmentMove) (*entities.EquipmentMove, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, equipment_id, previous_department_id, new_department_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, equipment_id, previous_department_id, new_department_id, created_at`, equipmentMoveTable)

	var m entities.EquipmentMove
	err := tx.QueryRow(ctx, query,
		uuid.New(), move.EquipmentID, move.PreviousDepartmentID, move.NewDepartmentID,
	).Scan(&m.ID, &m.EquipmentID, &m.PreviousDepartmentID, &m.NewDepartmentID, &m.CreatedAt)
	if err != nil {
		return nil, translatePgError(err)
	}
	return &m, nil
}

func scanMove(row pgx.Row) (*dto.EquipmentMoveDTO, error) {
	var m dto.EquipmentMoveDTO
	err := row.Scan(
		&m.ID, &m.CreatedAt,
		&m.Equipment.ID, &m.Equipment.Name, &m.Equipment.EAN,
		&m.PreviousDepartment.ID, &m.PreviousDepartment.Name,
		&m.NewDepartment.ID, &m.NewDepartment.Name,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning equipment move: %w", err)
	}
	return &m, nil
}

func (r *EquipmentMoveRepository) baseSelect(filter dto.EquipmentMoveFilter) sq.SelectBuilder {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select().
		From(equipmentMoveTable + " m").
		Join("equipment e ON e.id = m.equipment_id").
		Join("departments pd ON pd.id = m.previous_department_id").
		Join("departments nd ON nd.id = m.new_department_id")

	if filter.EquipmentID != nil {
		builder = builder.Where(sq.Eq{"m.equipment_id": *filter.EquipmentID})
	}
	if filter.PreviousDepartmentID != nil {
		builder = builder.Where(sq.Eq{"m.previous_department_id": *filter.PreviousDepartmentID})
	}
	if filter.NewDepartmentID != nil {
		builder = builder.Where(sq.Eq{"m.new_department_id": *filter.NewDepartmentID})
	}
	return builder
}

const moveJoinedColumns = "m.id, m.created_at, e.id, e.name, e.ean, pd.id, pd.name, nd.id, nd.name"

func (r *EquipmentMoveRepository) GetMoves(ctx context.Context, filter dto.EquipmentMoveFilter, params types.ListParams) ([]dto.EquipmentMoveDTO, uint64, error) {
	countQuery, countArgs, err := r.baseSelect(filter).Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.EquipmentMoveDTO{}, 0, nil
	}

	orderBy := orderClause(equipmentMoveAllowedSortFields, params, "m.created_at DESC")
	query, args, err := r.baseSelect(filter).
		Columns(moveJoinedColumns).
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

	moves := make([]dto.EquipmentMoveDTO, 0)
	for rows.Next() {
		m, err := scanMove(rows)
		if err != nil {
			return nil, 0, err
		}
		moves = append(moves, *m)
	}
	return moves, total, rows.Err()
}

func (r *EquipmentMoveRepository) FindMove(ctx context.Context, id uuid.UUID) (*dto.EquipmentMoveDTO, error) {
	query, args, err := r.baseSelect(dto.EquipmentMoveFilter{}).
		Columns(moveJoinedColumns).
		Where(sq.Eq{"m.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanMove(r.storage.QueryRow(ctx, query, args...))
}

func (r *EquipmentMoveRepository) DeleteMove(ctx context.Context, id uuid.UUID) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, equipmentMoveTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
