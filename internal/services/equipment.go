package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/repositories"
	"asset-system/pkg/constants"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/types"
	"asset-system/pkg/utils"
)

type EquipmentService struct {
	equipmentRepository  repositories.EquipmentRepositoryInterface
	departmentRepository repositories.DepartmentRepositoryInterface
	logger               *zap.Logger
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	departmentRepository repositories.DepartmentRepositoryInterface,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepository:  equipmentRepository,
		departmentRepository: departmentRepository,
		logger:               logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter dto.EquipmentFilter, params types.ListParams) ([]entities.Equipment, types.ListMeta, error) {
	equipments, total, err := s.equipmentRepository.GetEquipments(ctx, filter, params)
	if err != nil {
		s.logger.Error("listing equipment failed", zap.Error(err))
		return nil, types.ListMeta{}, err
	}
	return equipments, types.NewListMeta(total, params, filter), nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
	equipment, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("equipment %s not found", id)
		}
		return nil, err
	}
	return equipment, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	ean := utils.NormalizeEAN(payload.EAN)

	if _, err := s.equipmentRepository.FindEquipmentByEAN(ctx, ean); err == nil {
		return nil, apperrors.Conflict("equipment with ean %q already exists", payload.EAN)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	// The department must exist up front so the caller gets a 400
	// instead of a raw FK violation.
	if _, err := s.departmentRepository.FindDepartment(ctx, payload.DepartmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.BadRequest("department %s does not exist", payload.DepartmentID)
		}
		return nil, err
	}

	status := payload.Status
	if status == "" {
		status = constants.EquipmentStatusActive
	}

	equipment := entities.Equipment{
		Name:         utils.NormalizeText(payload.Name),
		EAN:          ean,
		Status:       status,
		DepartmentID: payload.DepartmentID,
	}

	created, err := s.equipmentRepository.CreateEquipment(ctx, equipment)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Conflict("equipment with ean %q already exists", payload.EAN)
		}
		s.logger.Error("creating equipment failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("equipment created",
		zap.String("id", created.ID.String()),
		zap.String("ean", created.EAN))
	return created, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	if payload.Name != nil {
		payload.Name = utils.StringPtr(utils.NormalizeText(*payload.Name))
	}
	if payload.EAN != nil {
		ean := utils.NormalizeEAN(*payload.EAN)
		if existing, err := s.equipmentRepository.FindEquipmentByEAN(ctx, ean); err == nil && existing.ID != id {
			return nil, apperrors.Conflict("equipment with ean %q already exists", *payload.EAN)
		} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		payload.EAN = utils.StringPtr(ean)
	}
	if payload.DepartmentID != nil {
		if _, err := s.departmentRepository.FindDepartment(ctx, *payload.DepartmentID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.BadRequest("department %s does not exist", *payload.DepartmentID)
			}
			return nil, err
		}
	}

	updated, err := s.equipmentRepository.UpdateEquipment(ctx, id, payload)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("equipment %s not found", id)
		}
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Conflict("equipment ean is already taken")
		}
		s.logger.Error("updating equipment failed", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *EquipmentService) ChangeStatus(ctx context.Context, id uuid.UUID, payload dto.ChangeEquipmentStatusDTO) (*entities.Equipment, error) {
	updated, err := s.equipmentRepository.SetStatus(ctx, id, payload.Status)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("equipment %s not found", id)
		}
		s.logger.Error("changing equipment status failed", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// DisableEquipment is the soft-delete: the row stays, disabled is set
// and disabled_at records when. Disabling twice is a client error.
func (s *EquipmentService) DisableEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
	disabled, err := s.equipmentRepository.Disable(ctx, id)
	if err == nil {
		s.logger.Info("equipment disabled", zap.String("id", id.String()))
		return disabled, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.logger.Error("disabling equipment failed", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	// No row matched: either the equipment does not exist at all, or
	// it is already disabled.
	if _, findErr := s.equipmentRepository.FindEquipment(ctx, id); findErr != nil {
		if errors.Is(findErr, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("equipment %s not found", id)
		}
		return nil, findErr
	}
	return nil, apperrors.BadRequest("equipment %s is already disabled", id)
}
