package repositories

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
	"asset-system/pkg/types"
)

func TestCreateMoveAndReassignEquipment(t *testing.T) {
	cleanupTables(t)
	ctx := context.Background()

	moveRepo := NewEquipmentMoveRepository(testPool, zap.NewNop())
	equipmentRepo := NewEquipmentRepository(testPool, zap.NewNop())
	txManager := NewTxManager(testPool)

	from := createTestDepartment(t, "radiology")
	to := createTestDepartment(t, "cardiology")
	equipment := createTestEquipment(t, "mri scanner", "7891000100103", from.ID)

	var created *entities.EquipmentMove
	err := txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var txErr error
		created, txErr = moveRepo.CreateMoveInTx(ctx, tx, entities.EquipmentMove{
			EquipmentID:          equipment.ID,
			PreviousDepartmentID: from.ID,
			NewDepartmentID:      to.ID,
		})
		if txErr != nil {
			return txErr
		}
		return equipmentRepo.SetDepartmentInTx(ctx, tx, equipment.ID, to.ID)
	})
	require.NoError(t, err)

	moved, err := equipmentRepo.FindEquipment(ctx, equipment.ID)
	require.NoError(t, err)
	assert.Equal(t, to.ID, moved.DepartmentID)

	found, err := moveRepo.FindMove(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, equipment.ID, found.Equipment.ID)
	assert.Equal(t, "radiology", found.PreviousDepartment.Name)
	assert.Equal(t, "cardiology", found.NewDepartment.Name)
}

func TestMoveTransactionRollsBackTogether(t *testing.T) {
	cleanupTables(t)
	ctx := context.Background()

	moveRepo := NewEquipmentMoveRepository(testPool, zap.NewNop())
	equipmentRepo := NewEquipmentRepository(testPool, zap.NewNop())
	txManager := NewTxManager(testPool)

	from := createTestDepartment(t, "radiology")
	to := createTestDepartment(t, "cardiology")
	equipment := createTestEquipment(t, "x-ray machine", "7891000100110", from.ID)

	boom := errors.New("forced failure")
	err := txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		_, txErr := moveRepo.CreateMoveInTx(ctx, tx, entities.EquipmentMove{
			EquipmentID:          equipment.ID,
			PreviousDepartmentID: from.ID,
			NewDepartmentID:      to.ID,
		})
		if txErr != nil {
			return txErr
		}
		if txErr := equipmentRepo.SetDepartmentInTx(ctx, tx, equipment.ID, to.ID); txErr != nil {
			return txErr
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Neither write survived.
	unmoved, err := equipmentRepo.FindEquipment(ctx, equipment.ID)
	require.NoError(t, err)
	assert.Equal(t, from.ID, unmoved.DepartmentID)

	_, total, err := moveRepo.GetMoves(ctx, dto.EquipmentMoveFilter{}, types.ListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestGetMovesFilterByEquipment(t *testing.T) {
	cleanupTables(t)
	ctx := context.Background()

	moveRepo := NewEquipmentMoveRepository(testPool, zap.NewNop())
	txManager := NewTxManager(testPool)

	from := createTestDepartment(t, "radiology")
	to := createTestDepartment(t, "cardiology")
	first := createTestEquipment(t, "mri scanner", "7891000100103", from.ID)
	second := createTestEquipment(t, "ecg monitor", "7891000100110", from.ID)

	for _, e := range []*entities.Equipment{first, second} {
		err := txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
			_, txErr := moveRepo.CreateMoveInTx(ctx, tx, entities.EquipmentMove{
				EquipmentID:          e.ID,
				PreviousDepartmentID: from.ID,
				NewDepartmentID:      to.ID,
			})
			return txErr
		})
		require.NoError(t, err)
	}

	moves, total, err := moveRepo.GetMoves(ctx, dto.EquipmentMoveFilter{EquipmentID: &first.ID}, types.ListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	require.Len(t, moves, 1)
	assert.Equal(t, first.ID, moves[0].Equipment.ID)
}

func TestDeleteMoveNotFound(t *testing.T) {
	cleanupTables(t)
	moveRepo := NewEquipmentMoveRepository(testPool, zap.NewNop())
	err := moveRepo.DeleteMove(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
