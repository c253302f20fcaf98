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
)

// AlertService is read-only: alerts are produced by background
// detection jobs writing straight to the table, the API only surfaces
// them.
type AlertService struct {
	alertRepository repositories.AlertRepositoryInterface
	logger          *zap.Logger
}

func NewAlertService(alertRepository repositories.AlertRepositoryInterface, logger *zap.Logger) *AlertService {
	return &AlertService{alertRepository: alertRepository, logger: logger}
}

func (s *AlertService) GetAlerts(ctx context.Context, filter dto.AlertFilter, params types.ListParams) ([]entities.Alert, types.ListMeta, error) {
	alerts, total, err := s.alertRepository.GetAlerts(ctx, filter, params)
	if err != nil {
		s.logger.Error("listing alerts failed", zap.Error(err))
		return nil, types.ListMeta{}, err
	}
	return alerts, types.NewListMeta(total, params, filter), nil
}

func (s *AlertService) FindAlert(ctx context.Context, id uuid.UUID) (*entities.Alert, error) {
	alert, err := s.alertRepository.FindAlert(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("alert %s not found", id)
		}
		return nil, err
	}
	return alert, nil
}
