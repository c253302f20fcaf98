package services

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/repositories"
	"asset-system/pkg/constants"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/types"
	"asset-system/pkg/utils"
)

type MaintenanceService struct {
	maintenanceRepository repositories.MaintenanceRepositoryInterface
	equipmentRepository   repositories.EquipmentRepositoryInterface
	componentRepository   repositories.ComponentRepositoryInterface
	txManager             repositories.TxManagerInterface
	logger                *zap.Logger
}

func NewMaintenanceService(
	maintenanceRepository repositories.MaintenanceRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	componentRepository repositories.ComponentRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepository: maintenanceRepository,
		equipmentRepository:   equipmentRepository,
		componentRepository:   componentRepository,
		txManager:             txManager,
		logger:                logger,
	}
}

func (s *MaintenanceService) GetMaintenances(ctx context.Context, filter dto.MaintenanceFilter, params types.ListParams) ([]entities.Maintenance, types.ListMeta, error) {
	maintenances, total, err := s.maintenanceRepository.GetMaintenances(ctx, filter, params)
	if err != nil {
		s.logger.Error("listing maintenances failed", zap.Error(err))
		return nil, types.ListMeta{}, err
	}
	return maintenances, types.NewListMeta(total, params, filter), nil
}

func (s *MaintenanceService) FindMaintenance(ctx context.Context, id uuid.UUID) (*entities.Maintenance, error) {
	maintenance, err := s.maintenanceRepository.FindMaintenance(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("maintenance %s not found", id)
		}
		return nil, err
	}
	return maintenance, nil
}

// CreateMaintenance opens a ticket against one piece of equipment.
// Every referenced component must belong to that equipment and must
// not be discarded. The ticket row and its component links are written
// in one transaction.
func (s *MaintenanceService) CreateMaintenance(ctx context.Context, payload dto.CreateMaintenanceDTO) (*entities.Maintenance, error) {
	if _, err := s.equipmentRepository.FindEquipment(ctx, payload.EquipmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("equipment %s not found", payload.EquipmentID)
		}
		return nil, err
	}

	if err := s.validateComponentOwnership(ctx, payload.EquipmentID, payload.ComponentIDs); err != nil {
		return nil, err
	}

	maintenance := entities.Maintenance{
		Technician:  utils.NormalizeText(payload.Technician),
		Contact:     payload.Contact,
		Description: payload.Description,
		Status:      constants.MaintenanceStatusOpen,
		EquipmentID: payload.EquipmentID,
	}

	var created *entities.Maintenance
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var txErr error
		created, txErr = s.maintenanceRepository.CreateMaintenanceInTx(ctx, tx, maintenance)
		if txErr != nil {
			return txErr
		}
		if len(payload.ComponentIDs) == 0 {
			return nil
		}
		return s.maintenanceRepository.AddComponentsInTx(ctx, tx, created.ID, payload.ComponentIDs)
	})
	if err != nil {
		s.logger.Error("creating maintenance failed",
			zap.String("equipment_id", payload.EquipmentID.String()),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("maintenance created",
		zap.String("id", created.ID.String()),
		zap.String("equipment_id", payload.EquipmentID.String()),
		zap.Int("components", len(payload.ComponentIDs)))

	return s.FindMaintenance(ctx, created.ID)
}

func (s *MaintenanceService) validateComponentOwnership(ctx context.Context, equipmentID uuid.UUID, componentIDs []uuid.UUID) error {
	if len(componentIDs) == 0 {
		return nil
	}

	components, err := s.componentRepository.GetComponentsByEquipment(ctx, equipmentID)
	if err != nil {
		return err
	}
	owned := make(map[uuid.UUID]struct{}, len(components))
	for _, c := range components {
		owned[c.ID] = struct{}{}
	}

	seen := make(map[uuid.UUID]struct{}, len(componentIDs))
	for _, id := range componentIDs {
		if _, dup := seen[id]; dup {
			return apperrors.BadRequest("component %s is listed twice", id)
		}
		seen[id] = struct{}{}
		if _, ok := owned[id]; !ok {
			return apperrors.BadRequest("component %s does not belong to equipment %s", id, equipmentID)
		}
	}
	return nil
}

// UpdateMaintenance merges technician/contact/description and, when a
// status is present, runs it through the same transition rules as the
// dedicated status endpoints.
func (s *MaintenanceService) UpdateMaintenance(ctx context.Context, id uuid.UUID, payload dto.UpdateMaintenanceDTO) (*entities.Maintenance, error) {
	existing, err := s.FindMaintenance(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Technician != nil {
		payload.Technician = utils.StringPtr(utils.NormalizeText(*payload.Technician))
	}

	var finishedAt null.Time
	if payload.Status != nil {
		if err := validateStatusTransition(existing.Status, *payload.Status); err != nil {
			return nil, err
		}
		if *payload.Status == constants.MaintenanceStatusDone {
			finishedAt = null.TimeFrom(time.Now().UTC())
		}
	}

	updated, err := s.maintenanceRepository.UpdateMaintenance(ctx, id, payload, finishedAt)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("maintenance %s not found", id)
		}
		s.logger.Error("updating maintenance failed", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	updated.Components = existing.Components
	return updated, nil
}

// ChangeStatus drives the ticket state machine. Reaching DONE stamps
// finished_at server-side regardless of anything the client sent.
func (s *MaintenanceService) ChangeStatus(ctx context.Context, id uuid.UUID, status string) (*entities.Maintenance, error) {
	existing, err := s.FindMaintenance(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateStatusTransition(existing.Status, status); err != nil {
		return nil, err
	}

	var finishedAt null.Time
	if status == constants.MaintenanceStatusDone {
		finishedAt = null.TimeFrom(time.Now().UTC())
	}

	updated, err := s.maintenanceRepository.SetStatus(ctx, id, status, finishedAt)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("maintenance %s not found", id)
		}
		s.logger.Error("changing maintenance status failed", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	updated.Components = existing.Components

	s.logger.Info("maintenance status changed",
		zap.String("id", id.String()),
		zap.String("from", existing.Status),
		zap.String("to", status))
	return updated, nil
}

// MarkAsWorking moves an OPEN ticket to IN_PROGRESS.
func (s *MaintenanceService) MarkAsWorking(ctx context.Context, id uuid.UUID) (*entities.Maintenance, error) {
	return s.ChangeStatus(ctx, id, constants.MaintenanceStatusInProgress)
}

// MarkAsCompleted closes the ticket.
func (s *MaintenanceService) MarkAsCompleted(ctx context.Context, id uuid.UUID) (*entities.Maintenance, error) {
	return s.ChangeStatus(ctx, id, constants.MaintenanceStatusDone)
}

// DONE is terminal; everything else may move freely between OPEN and
// IN_PROGRESS or close out.
func validateStatusTransition(from, to string) error {
	if from == constants.MaintenanceStatusDone && to != constants.MaintenanceStatusDone {
		return apperrors.BadRequest("maintenance is already done and cannot be reopened")
	}
	return nil
}

// DeleteMaintenance removes the ticket and its component links in one
// transaction, links first so the FK never dangles.
func (s *MaintenanceService) DeleteMaintenance(ctx context.Context, id uuid.UUID) error {
	if _, err := s.FindMaintenance(ctx, id); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if txErr := s.maintenanceRepository.DeleteComponentsInTx(ctx, tx, id); txErr != nil {
			return txErr
		}
		return s.maintenanceRepository.DeleteMaintenanceInTx(ctx, tx, id)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound("maintenance %s not found", id)
		}
		s.logger.Error("deleting maintenance failed", zap.String("id", id.String()), zap.Error(err))
		return err
	}

	s.logger.Info("maintenance deleted", zap.String("id", id.String()))
	return nil
}
