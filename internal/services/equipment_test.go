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

func TestCreateEquipmentRejectsDuplicateEAN(t *testing.T) {
	existing := &entities.Equipment{ID: uuid.New(), EAN: "7891000100103"}
	equipmentRepo := &fakeEquipmentRepo{
		FindEquipmentByEANFn: func(ctx context.Context, ean string) (*entities.Equipment, error) {
			assert.Equal(t, "7891000100103", ean)
			return existing, nil
		},
	}

	svc := NewEquipmentService(equipmentRepo, &fakeDepartmentRepo{}, zap.NewNop())
	_, err := svc.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Name:         "MRI Scanner",
		EAN:          " 7891 0001 00103 ",
		DepartmentID: uuid.New(),
	})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestCreateEquipmentRejectsUnknownDepartment(t *testing.T) {
	equipmentRepo := &fakeEquipmentRepo{
		FindEquipmentByEANFn: func(ctx context.Context, ean string) (*entities.Equipment, error) {
			return nil, apperrors.ErrNotFound
		},
	}
	departmentRepo := &fakeDepartmentRepo{
		FindDepartmentFn: func(ctx context.Context, id uuid.UUID) (*entities.Department, error) {
			return nil, apperrors.ErrNotFound
		},
	}

	svc := NewEquipmentService(equipmentRepo, departmentRepo, zap.NewNop())
	_, err := svc.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Name:         "MRI Scanner",
		EAN:          "7891000100103",
		DepartmentID: uuid.New(),
	})

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestCreateEquipmentDefaultsToActiveAndNormalizes(t *testing.T) {
	departmentID := uuid.New()
	equipmentRepo := &fakeEquipmentRepo{
		FindEquipmentByEANFn: func(ctx context.Context, ean string) (*entities.Equipment, error) {
			return nil, apperrors.ErrNotFound
		},
		CreateEquipmentFn: func(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error) {
			assert.Equal(t, constants.EquipmentStatusActive, equipment.Status)
			assert.Equal(t, "mri scanner", equipment.Name)
			assert.Equal(t, "7891000100103", equipment.EAN)
			equipment.ID = uuid.New()
			return &equipment, nil
		},
	}
	departmentRepo := &fakeDepartmentRepo{
		FindDepartmentFn: func(ctx context.Context, id uuid.UUID) (*entities.Department, error) {
			return &entities.Department{ID: id}, nil
		},
	}

	svc := NewEquipmentService(equipmentRepo, departmentRepo, zap.NewNop())
	created, err := svc.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Name:         "  MRI Scanner ",
		EAN:          "7891 0001 00103",
		DepartmentID: departmentID,
	})

	require.NoError(t, err)
	assert.Equal(t, constants.EquipmentStatusActive, created.Status)
}

func TestDisableEquipmentAlreadyDisabled(t *testing.T) {
	id := uuid.New()
	equipmentRepo := &fakeEquipmentRepo{
		DisableFn: func(ctx context.Context, _ uuid.UUID) (*entities.Equipment, error) {
			return nil, apperrors.ErrNotFound
		},
		FindEquipmentFn: func(ctx context.Context, _ uuid.UUID) (*entities.Equipment, error) {
			return &entities.Equipment{ID: id, Disabled: true}, nil
		},
	}

	svc := NewEquipmentService(equipmentRepo, &fakeDepartmentRepo{}, zap.NewNop())
	_, err := svc.DisableEquipment(context.Background(), id)

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestDisableEquipmentNotFound(t *testing.T) {
	equipmentRepo := &fakeEquipmentRepo{
		DisableFn: func(ctx context.Context, _ uuid.UUID) (*entities.Equipment, error) {
			return nil, apperrors.ErrNotFound
		},
		FindEquipmentFn: func(ctx context.Context, _ uuid.UUID) (*entities.Equipment, error) {
			return nil, apperrors.ErrNotFound
		},
	}

	svc := NewEquipmentService(equipmentRepo, &fakeDepartmentRepo{}, zap.NewNop())
	_, err := svc.DisableEquipment(context.Background(), uuid.New())

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
