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
	apperrors "asset-system/pkg/errors"
)

func TestCreateDepartmentNormalizesName(t *testing.T) {
	departmentRepo := &fakeDepartmentRepo{
		FindDepartmentByNameFn: func(ctx context.Context, name string) (*entities.Department, error) {
			assert.Equal(t, "radiologia geral", name)
			return nil, apperrors.ErrNotFound
		},
		CreateDepartmentFn: func(ctx context.Context, department entities.Department) (*entities.Department, error) {
			assert.Equal(t, "radiologia geral", department.Name)
			department.ID = uuid.New()
			return &department, nil
		},
	}

	svc := NewDepartmentService(departmentRepo, zap.NewNop())
	created, err := svc.CreateDepartment(context.Background(), dto.CreateDepartmentDTO{
		Name:             "  Radiología GERAL ",
		Location:         "Building A",
		ResponsibleName:  "Ana",
		ResponsibleEmail: "ana@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "radiologia geral", created.Name)
}

func TestCreateDepartmentDuplicateName(t *testing.T) {
	departmentRepo := &fakeDepartmentRepo{
		FindDepartmentByNameFn: func(ctx context.Context, name string) (*entities.Department, error) {
			return &entities.Department{ID: uuid.New(), Name: name}, nil
		},
	}

	svc := NewDepartmentService(departmentRepo, zap.NewNop())
	_, err := svc.CreateDepartment(context.Background(), dto.CreateDepartmentDTO{
		Name:             "Radiologia",
		ResponsibleEmail: "ana@example.com",
	})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestDeleteDepartmentWithEquipment(t *testing.T) {
	departmentRepo := &fakeDepartmentRepo{
		DeleteDepartmentFn: func(ctx context.Context, id uuid.UUID) error {
			return apperrors.ErrBadRequest
		},
	}

	svc := NewDepartmentService(departmentRepo, zap.NewNop())
	err := svc.DeleteDepartment(context.Background(), uuid.New())

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}
