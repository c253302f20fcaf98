package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/repositories"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/types"
)

type EquipmentMoveService struct {
	moveRepository       repositories.EquipmentMoveRepositoryInterface
	equipmentRepository  repositories.EquipmentRepositoryInterface
	departmentRepository repositories.DepartmentRepositoryInterface
	txManager            repositories.TxManagerInterface
	logger               *zap.Logger
}

func NewEquipmentMoveService(
	moveRepository repositories.EquipmentMoveRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	departmentRepository repositories.DepartmentRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) *EquipmentMoveService {
	return &EquipmentMoveService{
		moveRepository:       moveRepository,
		equipmentRepository:  equipmentRepository,
		departmentRepository: departmentRepository,
		txManager:            txManager,
		logger:               logger,
	}
}

func (s *EquipmentMoveService) GetMoves(ctx context.Context, filter dto.EquipmentMoveFilter, params types.ListParams) ([]dto.EquipmentMoveDTO, types.ListMeta, error) {
	moves, total, err := s.moveRepository.GetMoves(ctx, filter, params)
	if err != nil {
		s.logger.Error("listing equipment moves failed", zap.Error(err))
		return nil, types.ListMeta{}, err
	}
	return moves, types.NewListMeta(total, params, filter), nil
}

func (s *EquipmentMoveService) FindMove(ctx context.Context, id uuid.UUID) (*dto.EquipmentMoveDTO, error) {
	move, err := s.moveRepository.FindMove(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("equipment move %s not found", id)
		}
		return nil, err
	}
	return move, nil
}

// CreateMove records a relocation. The move row and the equipment's
// department_id must change together: both writes run in one
// transaction, so a failure of either leaves no partial state.
func (s *EquipmentMoveService) CreateMove(ctx context.Context, payload dto.CreateEquipmentMoveDTO) (*dto.EquipmentMoveDTO, error) {
	equipment, err := s.equipmentRepository.FindEquipment(ctx, payload.EquipmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("equipment %s not found", payload.EquipmentID)
		}
		return nil, err
	}
	if _, err := s.departmentRepository.FindDepartment(ctx, payload.NewDepartmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.BadRequest("department %s does not exist", payload.NewDepartmentID)
		}
		return nil, err
	}

	// The declared origin may lag behind reality (moves recorded out of
	// order, or filed from stale paperwork). The ledger keeps whatever
	// the caller declared; we only log the discrepancy.
	if payload.PreviousDepartmentID != equipment.DepartmentID {
		s.logger.Warn("declared previous department differs from current assignment",
			zap.String("equipment_id", payload.EquipmentID.String()),
			zap.String("declared", payload.PreviousDepartmentID.String()),
			zap.String("current", equipment.DepartmentID.String()))
	}

	var created *entities.EquipmentMove
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var txErr error
		created, txErr = s.moveRepository.CreateMoveInTx(ctx, tx, entities.EquipmentMove{
			EquipmentID:          payload.EquipmentID,
			PreviousDepartmentID: payload.PreviousDepartmentID,
			NewDepartmentID:      payload.NewDepartmentID,
		})
		if txErr != nil {
			return txErr
		}
		return s.equipmentRepository.SetDepartmentInTx(ctx, tx, payload.EquipmentID, payload.NewDepartmentID)
	})
	if err != nil {
		s.logger.Error("creating equipment move failed",
			zap.String("equipment_id", payload.EquipmentID.String()),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("equipment moved",
		zap.String("move_id", created.ID.String()),
		zap.String("equipment_id", payload.EquipmentID.String()),
		zap.String("new_department_id", payload.NewDepartmentID.String()))

	return s.moveRepository.FindMove(ctx, created.ID)
}

// DeleteMove removes a ledger entry without touching the equipment's
// current assignment; corrections are expected to be followed by a
// compensating move.
func (s *EquipmentMoveService) DeleteMove(ctx context.Context, id uuid.UUID) error {
	err := s.moveRepository.DeleteMove(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound("equipment move %s not found", id)
		}
		s.logger.Error("deleting equipment move failed", zap.String("id", id.String()), zap.Error(err))
	}
	return err
}
