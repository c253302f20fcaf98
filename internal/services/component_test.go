package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/pkg/constants"
	apperrors "asset-system/pkg/errors"
)

func TestCreateComponentUnknownEquipment(t *testing.T) {
	equipmentRepo := &fakeEquipmentRepo{
		FindEquipmentFn: func(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
			return nil, apperrors.ErrNotFound
		},
	}

	svc := NewComponentService(&fakeComponentRepo{}, equipmentRepo, zap.NewNop())
	_, err := svc.CreateComponent(context.Background(), dto.CreateComponentDTO{
		Name:        "Coolant pump",
		Status:      constants.ComponentStatusOK,
		EquipmentID: uuid.New(),
	})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateComponentNormalizesName(t *testing.T) {
	equipmentID := uuid.New()

	equipmentRepo := &fakeEquipmentRepo{
		FindEquipmentFn: func(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
			return &entities.Equipment{ID: id}, nil
		},
	}
	componentRepo := &fakeComponentRepo{
		CreateComponentFn: func(ctx context.Context, component entities.Component) (*entities.Component, error) {
			return &component, nil
		},
	}

	svc := NewComponentService(componentRepo, equipmentRepo, zap.NewNop())
	created, err := svc.CreateComponent(context.Background(), dto.CreateComponentDTO{
		Name:        "  Botão de Emergência ",
		Status:      constants.ComponentStatusOK,
		EquipmentID: equipmentID,
	})

	require.NoError(t, err)
	assert.Equal(t, "botao de emergencia", created.Name)
	assert.Equal(t, equipmentID, created.EquipmentID)
}
