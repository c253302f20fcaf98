package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/pkg/types"
)

// Function-field fakes: each test fills in only the methods it expects
// to be called; anything else panics with a nil function call.

type fakeDepartmentRepo struct {
	GetDepartmentsFn       func(ctx context.Context, params types.ListParams) ([]entities.Department, uint64, error)
	FindDepartmentFn       func(ctx context.Context, id uuid.UUID) (*entities.Department, error)
	FindDepartmentByNameFn func(ctx context.Context, normalizedName string) (*entities.Department, error)
	CreateDepartmentFn     func(ctx context.Context, department entities.Department) (*entities.Department, error)
	UpdateDepartmentFn     func(ctx context.Context, id uuid.UUID, payload dto.UpdateDepartmentDTO) (*entities.Department, error)
	DeleteDepartmentFn     func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeDepartmentRepo) GetDepartments(ctx context.Context, params types.ListParams) ([]entities.Department, uint64, error) {
	return f.GetDepartmentsFn(ctx, params)
}
func (f *fakeDepartmentRepo) FindDepartment(ctx context.Context, id uuid.UUID) (*entities.Department, error) {
	return f.FindDepartmentFn(ctx, id)
}
func (f *fakeDepartmentRepo) FindDepartmentByName(ctx context.Context, name string) (*entities.Department, error) {
	return f.FindDepartmentByNameFn(ctx, name)
}
func (f *fakeDepartmentRepo) CreateDepartment(ctx context.Context, department entities.Department) (*entities.Department, error) {
	return f.CreateDepartmentFn(ctx, department)
}
func (f *fakeDepartmentRepo) UpdateDepartment(ctx context.Context, id uuid.UUID, payload dto.UpdateDepartmentDTO) (*entities.Department, error) {
	return f.UpdateDepartmentFn(ctx, id, payload)
}
func (f *fakeDepartmentRepo) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	return f.DeleteDepartmentFn(ctx, id)
}

type fakeEquipmentRepo struct {
	GetEquipmentsFn      func(ctx context.Context, filter dto.EquipmentFilter, params types.ListParams) ([]entities.Equipment, uint64, error)
	FindEquipmentFn      func(ctx context.Context, id uuid.UUID) (*entities.Equipment, error)
	FindEquipmentByEANFn func(ctx context.Context, ean string) (*entities.Equipment, error)
	CreateEquipmentFn    func(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error)
	UpdateEquipmentFn    func(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	SetStatusFn          func(ctx context.Context, id uuid.UUID, status string) (*entities.Equipment, error)
	DisableFn            func(ctx context.Context, id uuid.UUID) (*entities.Equipment, error)
	SetDepartmentInTxFn  func(ctx context.Context, tx pgx.Tx, id uuid.UUID, departmentID uuid.UUID) error
}

func (f *fakeEquipmentRepo) GetEquipments(ctx context.Context, filter dto.EquipmentFilter, params types.ListParams) ([]entities.Equipment, uint64, error) {
	return f.GetEquipmentsFn(ctx, filter, params)
}
func (f *fakeEquipmentRepo) FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
	return f.FindEquipmentFn(ctx, id)
}
func (f *fakeEquipmentRepo) FindEquipmentByEAN(ctx context.Context, ean string) (*entities.Equipment, error) {
	return f.FindEquipmentByEANFn(ctx, ean)
}
func (f *fakeEquipmentRepo) CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error) {
	return f.CreateEquipmentFn(ctx, equipment)
}
func (f *fakeEquipmentRepo) UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	return f.UpdateEquipmentFn(ctx, id, payload)
}
func (f *fakeEquipmentRepo) SetStatus(ctx context.Context, id uuid.UUID, status string) (*entities.Equipment, error) {
	return f.SetStatusFn(ctx, id, status)
}
func (f *fakeEquipmentRepo) Disable(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
	return f.DisableFn(ctx, id)
}
func (f *fakeEquipmentRepo) SetDepartmentInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, departmentID uuid.UUID) error {
	return f.SetDepartmentInTxFn(ctx, tx, id, departmentID)
}

type fakeComponentRepo struct {
	GetComponentsFn            func(ctx context.Context, params types.ListParams) ([]entities.Component, uint64, error)
	GetComponentsByEquipmentFn func(ctx context.Context, equipmentID uuid.UUID) ([]entities.Component, error)
	FindComponentFn            func(ctx context.Context, id uuid.UUID) (*entities.Component, error)
	CreateComponentFn          func(ctx context.Context, component entities.Component) (*entities.Component, error)
	UpdateComponentFn          func(ctx context.Context, id uuid.UUID, payload dto.UpdateComponentDTO) (*entities.Component, error)
	DiscardComponentFn         func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeComponentRepo) GetComponents(ctx context.Context, params types.ListParams) ([]entities.Component, uint64, error) {
	return f.GetComponentsFn(ctx, params)
}
func (f *fakeComponentRepo) GetComponentsByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]entities.Component, error) {
	return f.GetComponentsByEquipmentFn(ctx, equipmentID)
}
func (f *fakeComponentRepo) FindComponent(ctx context.Context, id uuid.UUID) (*entities.Component, error) {
	return f.FindComponentFn(ctx, id)
}
func (f *fakeComponentRepo) CreateComponent(ctx context.Context, component entities.Component) (*entities.Component, error) {
	return f.CreateComponentFn(ctx, component)
}
func (f *fakeComponentRepo) UpdateComponent(ctx context.Context, id uuid.UUID, payload dto.UpdateComponentDTO) (*entities.Component, error) {
	return f.UpdateComponentFn(ctx, id, payload)
}
func (f *fakeComponentRepo) DiscardComponent(ctx context.Context, id uuid.UUID) error {
	return f.DiscardComponentFn(ctx, id)
}

type fakeMoveRepo struct {
	CreateMoveInTxFn func(ctx context.Context, tx pgx.Tx, move entities.EquipmentMove) (*entities.EquipmentMove, error)
	GetMovesFn       func(ctx context.Context, filter dto.EquipmentMoveFilter, params types.ListParams) ([]dto.EquipmentMoveDTO, uint64, error)
	FindMoveFn       func(ctx context.Context, id uuid.UUID) (*dto.EquipmentMoveDTO, error)
	DeleteMoveFn     func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeMoveRepo) CreateMoveInTx(ctx context.Context, tx pgx.Tx, move entities.EquipmentMove) (*entities.EquipmentMove, error) {
	return f.CreateMoveInTxFn(ctx, tx, move)
}
func (f *fakeMoveRepo) GetMoves(ctx context.Context, filter dto.EquipmentMoveFilter, params types.ListParams) ([]dto.EquipmentMoveDTO, uint64, error) {
	return f.GetMovesFn(ctx, filter, params)
}
func (f *fakeMoveRepo) FindMove(ctx context.Context, id uuid.UUID) (*dto.EquipmentMoveDTO, error) {
	return f.FindMoveFn(ctx, id)
}
func (f *fakeMoveRepo) DeleteMove(ctx context.Context, id uuid.UUID) error {
	return f.DeleteMoveFn(ctx, id)
}

type fakeMaintenanceRepo struct {
	CreateMaintenanceInTxFn func(ctx context.Context, tx pgx.Tx, maintenance entities.Maintenance) (*entities.Maintenance, error)
	AddComponentsInTxFn     func(ctx context.Context, tx pgx.Tx, maintenanceID uuid.UUID, componentIDs []uuid.UUID) error
	GetMaintenancesFn       func(ctx context.Context, filter dto.MaintenanceFilter, params types.ListParams) ([]entities.Maintenance, uint64, error)
	FindMaintenanceFn       func(ctx context.Context, id uuid.UUID) (*entities.Maintenance, error)
	UpdateMaintenanceFn     func(ctx context.Context, id uuid.UUID, payload dto.UpdateMaintenanceDTO, finishedAt null.Time) (*entities.Maintenance, error)
	SetStatusFn             func(ctx context.Context, id uuid.UUID, status string, finishedAt null.Time) (*entities.Maintenance, error)
	DeleteComponentsInTxFn  func(ctx context.Context, tx pgx.Tx, maintenanceID uuid.UUID) error
	DeleteMaintenanceInTxFn func(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

func (f *fakeMaintenanceRepo) CreateMaintenanceInTx(ctx context.Context, tx pgx.Tx, maintenance entities.Maintenance) (*entities.Maintenance, error) {
	return f.CreateMaintenanceInTxFn(ctx, tx, maintenance)
}
func (f *fakeMaintenanceRepo) AddComponentsInTx(ctx context.Context, tx pgx.Tx, maintenanceID uuid.UUID, componentIDs []uuid.UUID) error {
	return f.AddComponentsInTxFn(ctx, tx, maintenanceID, componentIDs)
}
func (f *fakeMaintenanceRepo) GetMaintenances(ctx context.Context, filter dto.MaintenanceFilter, params types.ListParams) ([]entities.Maintenance, uint64, error) {
	return f.GetMaintenancesFn(ctx, filter, params)
}
func (f *fakeMaintenanceRepo) FindMaintenance(ctx context.Context, id uuid.UUID) (*entities.Maintenance, error) {
	return f.FindMaintenanceFn(ctx, id)
}
func (f *fakeMaintenanceRepo) UpdateMaintenance(ctx context.Context, id uuid.UUID, payload dto.UpdateMaintenanceDTO, finishedAt null.Time) (*entities.Maintenance, error) {
	return f.UpdateMaintenanceFn(ctx, id, payload, finishedAt)
}
func (f *fakeMaintenanceRepo) SetStatus(ctx context.Context, id uuid.UUID, status string, finishedAt null.Time) (*entities.Maintenance, error) {
	return f.SetStatusFn(ctx, id, status, finishedAt)
}
func (f *fakeMaintenanceRepo) DeleteComponentsInTx(ctx context.Context, tx pgx.Tx, maintenanceID uuid.UUID) error {
	return f.DeleteComponentsInTxFn(ctx, tx, maintenanceID)
}
func (f *fakeMaintenanceRepo) DeleteMaintenanceInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	return f.DeleteMaintenanceInTxFn(ctx, tx, id)
}

// fakeTxManager runs the callback with a nil tx: repository fakes
// never touch it.
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	f.calls++
	return fn(nil)
}
