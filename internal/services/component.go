package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/repositories"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/types"
	"asset-system/pkg/utils"
)

type ComponentService struct {
	componentRepository repositories.ComponentRepositoryInterface
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewComponentService(
	componentRepository repositories.ComponentRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) *ComponentService {
	return &ComponentService{
		componentRepository: componentRepository,
		equipmentRepository: equipmentRepository,
		logger:              logger,
	}
}

func (s *ComponentService) GetComponents(ctx context.Context, params types.ListParams) ([]entities.Component, types.ListMeta, error) {
	components, total, err := s.componentRepository.GetComponents(ctx, params)
	if err != nil {
		s.logger.Error("listing components failed", zap.Error(err))
		return nil, types.ListMeta{}, err
	}
	return components, types.NewListMeta(total, params, struct{}{}), nil
}

func (s *ComponentService) GetComponentsByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]entities.Component, error) {
	if _, err := s.equipmentRepository.FindEquipment(ctx, equipmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("equipment %s not found", equipmentID)
		}
		return nil, err
	}
	return s.componentRepository.GetComponentsByEquipment(ctx, equipmentID)
}

func (s *ComponentService) FindComponent(ctx context.Context, id uuid.UUID) (*entities.Component, error) {
	component, err := s.componentRepository.FindComponent(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("component %s not found", id)
		}
		return nil, err
	}
	return component, nil
}

func (s *ComponentService) CreateComponent(ctx context.Context, payload dto.CreateComponentDTO) (*entities.Component, error) {
	if _, err := s.equipmentRepository.FindEquipment(ctx, payload.EquipmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("equipment %s not found", payload.EquipmentID)
		}
		return nil, err
	}

	component := entities.Component{
		Name:        utils.NormalizeText(payload.Name),
		Status:      payload.Status,
		EquipmentID: payload.EquipmentID,
	}

	created, err := s.componentRepository.CreateComponent(ctx, component)
	if err != nil {
		s.logger.Error("creating component failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("component created",
		zap.String("id", created.ID.String()),
		zap.String("equipment_id", created.EquipmentID.String()))
	return created, nil
}

// UpdateComponent merges name/status; the equipment link is immutable,
// so it is not part of the update payload at all.
func (s *ComponentService) UpdateComponent(ctx context.Context, id uuid.UUID, payload dto.UpdateComponentDTO) (*entities.Component, error) {
	if payload.Name != nil {
		payload.Name = utils.StringPtr(utils.NormalizeText(*payload.Name))
	}

	updated, err := s.componentRepository.UpdateComponent(ctx, id, payload)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("component %s not found", id)
		}
		s.logger.Error("updating component failed", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// DiscardComponent soft-deletes: discarded_at is stamped and the
// component disappears from default listings. Discarding twice is a
// client error.
func (s *ComponentService) DiscardComponent(ctx context.Context, id uuid.UUID) error {
	err := s.componentRepository.DiscardComponent(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound("component %s not found", id)
		}
		if errors.Is(err, apperrors.ErrBadRequest) {
			return apperrors.BadRequest("component %s is already discarded", id)
		}
		s.logger.Error("discarding component failed", zap.String("id", id.String()), zap.Error(err))
		return err
	}
	s.logger.Info("component discarded", zap.String("id", id.String()))
	return nil
}
