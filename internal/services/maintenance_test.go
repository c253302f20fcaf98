package services

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/pkg/constants"
	apperrors "asset-system/pkg/errors"
)

func TestCreateMaintenanceRejectsForeignComponent(t *testing.T) {
	equipmentID := uuid.New()
	ownedComponent := entities.Component{ID: uuid.New(), EquipmentID: equipmentID}
	foreignID := uuid.New()

	equipmentRepo := &fakeEquipmentRepo{
		FindEquipmentFn: func(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
			return &entities.Equipment{ID: id}, nil
		},
	}
	componentRepo := &fakeComponentRepo{
		GetComponentsByEquipmentFn: func(ctx context.Context, id uuid.UUID) ([]entities.Component, error) {
			return []entities.Component{ownedComponent}, nil
		},
	}

	svc := NewMaintenanceService(&fakeMaintenanceRepo{}, equipmentRepo, componentRepo, &fakeTxManager{}, zap.NewNop())
	_, err := svc.CreateMaintenance(context.Background(), dto.CreateMaintenanceDTO{
		Technician:   "Maria",
		Description:  "quarterly inspection",
		EquipmentID:  equipmentID,
		ComponentIDs: []uuid.UUID{ownedComponent.ID, foreignID},
	})

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestCreateMaintenanceUnknownEquipment(t *testing.T) {
	equipmentRepo := &fakeEquipmentRepo{
		FindEquipmentFn: func(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
			return nil, apperrors.ErrNotFound
		},
	}

	svc := NewMaintenanceService(&fakeMaintenanceRepo{}, equipmentRepo, &fakeComponentRepo{}, &fakeTxManager{}, zap.NewNop())
	_, err := svc.CreateMaintenance(context.Background(), dto.CreateMaintenanceDTO{
		Technician:  "Maria",
		Description: "quarterly inspection",
		EquipmentID: uuid.New(),
	})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateMaintenanceWritesTicketAndComponentsTogether(t *testing.T) {
	equipmentID := uuid.New()
	componentID := uuid.New()
	ticketID := uuid.New()

	var addedComponents []uuid.UUID
	maintenanceRepo := &fakeMaintenanceRepo{
		CreateMaintenanceInTxFn: func(ctx context.Context, tx pgx.Tx, m entities.Maintenance) (*entities.Maintenance, error) {
			assert.Equal(t, constants.MaintenanceStatusOpen, m.Status)
			m.ID = ticketID
			return &m, nil
		},
		AddComponentsInTxFn: func(ctx context.Context, tx pgx.Tx, maintenanceID uuid.UUID, componentIDs []uuid.UUID) error {
			assert.Equal(t, ticketID, maintenanceID)
			addedComponents = componentIDs
			return nil
		},
		FindMaintenanceFn: func(ctx context.Context, id uuid.UUID) (*entities.Maintenance, error) {
			return &entities.Maintenance{ID: id, Status: constants.MaintenanceStatusOpen}, nil
		},
	}
	equipmentRepo := &fakeEquipmentRepo{
		FindEquipmentFn: func(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
			return &entities.Equipment{ID: id}, nil
		},
	}
	componentRepo := &fakeComponentRepo{
		GetComponentsByEquipmentFn: func(ctx context.Context, id uuid.UUID) ([]entities.Component, error) {
			return []entities.Component{{ID: componentID, EquipmentID: equipmentID}}, nil
		},
	}
	txManager := &fakeTxManager{}

	svc := NewMaintenanceService(maintenanceRepo, equipmentRepo, componentRepo, txManager, zap.NewNop())
	created, err := svc.CreateMaintenance(context.Background(), dto.CreateMaintenanceDTO{
		Technician:   "Maria",
		Description:  "quarterly inspection",
		EquipmentID:  equipmentID,
		ComponentIDs: []uuid.UUID{componentID},
	})

	require.NoError(t, err)
	assert.Equal(t, ticketID, created.ID)
	assert.Equal(t, []uuid.UUID{componentID}, addedComponents)
	assert.Equal(t, 1, txManager.calls)
}

func TestChangeStatusToDoneStampsFinishedAt(t *testing.T) {
	id := uuid.New()
	maintenanceRepo := &fakeMaintenanceRepo{
		FindMaintenanceFn: func(ctx context.Context, _ uuid.UUID) (*entities.Maintenance, error) {
			return &entities.Maintenance{ID: id, Status: constants.MaintenanceStatusInProgress}, nil
		},
		SetStatusFn: func(ctx context.Context, _ uuid.UUID, status string, finishedAt null.Time) (*entities.Maintenance, error) {
			assert.Equal(t, constants.MaintenanceStatusDone, status)
			require.True(t, finishedAt.Valid, "DONE must carry a server-side finished_at")
			return &entities.Maintenance{ID: id, Status: status, FinishedAt: finishedAt}, nil
		},
	}

	svc := NewMaintenanceService(maintenanceRepo, &fakeEquipmentRepo{}, &fakeComponentRepo{}, &fakeTxManager{}, zap.NewNop())
	done, err := svc.MarkAsCompleted(context.Background(), id)

	require.NoError(t, err)
	assert.True(t, done.FinishedAt.Valid)
}

func TestChangeStatusRejectsLeavingDone(t *testing.T) {
	maintenanceRepo := &fakeMaintenanceRepo{
		FindMaintenanceFn: func(ctx context.Context, id uuid.UUID) (*entities.Maintenance, error) {
			return &entities.Maintenance{ID: id, Status: constants.MaintenanceStatusDone}, nil
		},
	}

	svc := NewMaintenanceService(maintenanceRepo, &fakeEquipmentRepo{}, &fakeComponentRepo{}, &fakeTxManager{}, zap.NewNop())
	_, err := svc.ChangeStatus(context.Background(), uuid.New(), constants.MaintenanceStatusOpen)

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestDeleteMaintenanceRemovesLinksFirst(t *testing.T) {
	id := uuid.New()
	var order []string
	maintenanceRepo := &fakeMaintenanceRepo{
		FindMaintenanceFn: func(ctx context.Context, _ uuid.UUID) (*entities.Maintenance, error) {
			return &entities.Maintenance{ID: id, Status: constants.MaintenanceStatusOpen}, nil
		},
		DeleteComponentsInTxFn: func(ctx context.Context, tx pgx.Tx, _ uuid.UUID) error {
			order = append(order, "components")
			return nil
		},
		DeleteMaintenanceInTxFn: func(ctx context.Context, tx pgx.Tx, _ uuid.UUID) error {
			order = append(order, "maintenance")
			return nil
		},
	}
	txManager := &fakeTxManager{}

	svc := NewMaintenanceService(maintenanceRepo, &fakeEquipmentRepo{}, &fakeComponentRepo{}, txManager, zap.NewNop())
	err := svc.DeleteMaintenance(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, []string{"components", "maintenance"}, order)
	assert.Equal(t, 1, txManager.calls)
}
