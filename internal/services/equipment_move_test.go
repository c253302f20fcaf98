package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	apperrors "asset-system/pkg/errors"
)

func TestCreateMoveUpdatesEquipmentInSameTransaction(t *testing.T) {
	equipmentID := uuid.New()
	fromDept := uuid.New()
	toDept := uuid.New()
	moveID := uuid.New()

	var assignedDept uuid.UUID
	moveRepo := &fakeMoveRepo{
		CreateMoveInTxFn: func(ctx context.Context, tx pgx.Tx, move entities.EquipmentMove) (*entities.EquipmentMove, error) {
			assert.Equal(t, fromDept, move.PreviousDepartmentID)
			assert.Equal(t, toDept, move.NewDepartmentID)
			move.ID = moveID
			return &move, nil
		},
		FindMoveFn: func(ctx context.Context, id uuid.UUID) (*dto.EquipmentMoveDTO, error) {
			return &dto.EquipmentMoveDTO{ID: id}, nil
		},
	}
	equipmentRepo := &fakeEquipmentRepo{
		FindEquipmentFn: func(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
			return &entities.Equipment{ID: id, DepartmentID: fromDept}, nil
		},
		SetDepartmentInTxFn: func(ctx context.Context, tx pgx.Tx, id uuid.UUID, departmentID uuid.UUID) error {
			assignedDept = departmentID
			return nil
		},
	}
	departmentRepo := &fakeDepartmentRepo{
		FindDepartmentFn: func(ctx context.Context, id uuid.UUID) (*entities.Department, error) {
			return &entities.Department{ID: id}, nil
		},
	}
	txManager := &fakeTxManager{}

	svc := NewEquipmentMoveService(moveRepo, equipmentRepo, departmentRepo, txManager, zap.NewNop())
	created, err := svc.CreateMove(context.Background(), dto.CreateEquipmentMoveDTO{
		EquipmentID:          equipmentID,
		PreviousDepartmentID: fromDept,
		NewDepartmentID:      toDept,
	})

	require.NoError(t, err)
	assert.Equal(t, moveID, created.ID)
	assert.Equal(t, toDept, assignedDept)
	assert.Equal(t, 1, txManager.calls)
}

func TestCreateMoveFailedAssignmentAbortsEverything(t *testing.T) {
	boom := errors.New("connection reset")
	moveRepo := &fakeMoveRepo{
		CreateMoveInTxFn: func(ctx context.Context, tx pgx.Tx, move entities.EquipmentMove) (*entities.EquipmentMove, error) {
			move.ID = uuid.New()
			return &move, nil
		},
	}
	equipmentRepo := &fakeEquipmentRepo{
		FindEquipmentFn: func(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
			return &entities.Equipment{ID: id, DepartmentID: uuid.New()}, nil
		},
		SetDepartmentInTxFn: func(ctx context.Context, tx pgx.Tx, id uuid.UUID, departmentID uuid.UUID) error {
			return boom
		},
	}
	departmentRepo := &fakeDepartmentRepo{
		FindDepartmentFn: func(ctx context.Context, id uuid.UUID) (*entities.Department, error) {
			return &entities.Department{ID: id}, nil
		},
	}

	svc := NewEquipmentMoveService(moveRepo, equipmentRepo, departmentRepo, &fakeTxManager{}, zap.NewNop())
	_, err := svc.CreateMove(context.Background(), dto.CreateEquipmentMoveDTO{
		EquipmentID:          uuid.New(),
		PreviousDepartmentID: uuid.New(),
		NewDepartmentID:      uuid.New(),
	})

	assert.ErrorIs(t, err, boom)
}

func TestCreateMoveUnknownEquipment(t *testing.T) {
	equipmentRepo := &fakeEquipmentRepo{
		FindEquipmentFn: func(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
			return nil, apperrors.ErrNotFound
		},
	}

	svc := NewEquipmentMoveService(&fakeMoveRepo{}, equipmentRepo, &fakeDepartmentRepo{}, &fakeTxManager{}, zap.NewNop())
	_, err := svc.CreateMove(context.Background(), dto.CreateEquipmentMoveDTO{
		EquipmentID:          uuid.New(),
		PreviousDepartmentID: uuid.New(),
		NewDepartmentID:      uuid.New(),
	})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
