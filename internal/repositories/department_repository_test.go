package repositories

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
	"asset-system/pkg/types"
	"asset-system/pkg/utils"
)

func newTestDepartmentRepo() DepartmentRepositoryInterface {
	return NewDepartmentRepository(testPool, zap.NewNop())
}

func TestDepartmentCRUD(t *testing.T) {
	cleanupTables(t)
	ctx := context.Background()
	repo := newTestDepartmentRepo()

	created, err := repo.CreateDepartment(ctx, entities.Department{
		Name:             "radiology",
		Location:         "building a",
		ResponsibleName:  "ana costa",
		ResponsibleEmail: "ana@example.com",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "radiology", created.Name)

	found, err := repo.FindDepartment(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	byName, err := repo.FindDepartmentByName(ctx, "radiology")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	newLocation := "building b"
	updated, err := repo.UpdateDepartment(ctx, created.ID, dto.UpdateDepartmentDTO{Location: &newLocation})
	require.NoError(t, err)
	assert.Equal(t, "building b", updated.Location)
	assert.Equal(t, "radiology", updated.Name)

	require.NoError(t, repo.DeleteDepartment(ctx, created.ID))

	_, err = repo.FindDepartment(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateDepartmentDuplicateNormalizedName(t *testing.T) {
	cleanupTables(t)
	ctx := context.Background()
	repo := newTestDepartmentRepo()

	name := utils.NormalizeText("Pediatría")
	_, err := repo.CreateDepartment(ctx, entities.Department{Name: name})
	require.NoError(t, err)

	// "PEDIATRIA" normalizes to the same stored value.
	_, err = repo.CreateDepartment(ctx, entities.Department{Name: utils.NormalizeText("PEDIATRIA")})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestDeleteDepartmentNotFound(t *testing.T) {
	cleanupTables(t)
	err := newTestDepartmentRepo().DeleteDepartment(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetDepartmentsPagination(t *testing.T) {
	cleanupTables(t)
	ctx := context.Background()
	repo := newTestDepartmentRepo()

	for _, name := range []string{"alpha", "bravo", "charlie"} {
		_, err := repo.CreateDepartment(ctx, entities.Department{Name: name})
		require.NoError(t, err)
	}

	page1, total, err := repo.GetDepartments(ctx, types.ListParams{Page: 1, Limit: 2, OrderBy: "name", Sort: "asc"})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)
	require.Len(t, page1, 2)
	assert.Equal(t, "alpha", page1[0].Name)

	page2, _, err := repo.GetDepartments(ctx, types.ListParams{Page: 2, Limit: 2, OrderBy: "name", Sort: "asc"})
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "charlie", page2[0].Name)

	// Past the last page the data set is empty but the total still
	// reflects every stored row.
	beyond, total, err := repo.GetDepartments(ctx, types.ListParams{Page: 5, Limit: 2, OrderBy: "name", Sort: "asc"})
	require.NoError(t, err)
	assert.Empty(t, beyond)
	assert.Equal(t, uint64(3), total)
}

func TestGetDepartmentsSearch(t *testing.T) {
	cleanupTables(t)
	ctx := context.Background()
	repo := newTestDepartmentRepo()

	for _, name := range []string{"radiology", "cardiology", "laboratory"} {
		_, err := repo.CreateDepartment(ctx, entities.Department{Name: name})
		require.NoError(t, err)
	}

	results, total, err := repo.GetDepartments(ctx, types.ListParams{Page: 1, Limit: 10, Search: "ology"})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	assert.Len(t, results, 2)
}
