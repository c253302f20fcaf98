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

type DepartmentService struct {
	departmentRepository repositories.DepartmentRepositoryInterface
	logger               *zap.Logger
}

func NewDepartmentService(departmentRepository repositories.DepartmentRepositoryInterface, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{
		departmentRepository: departmentRepository,
		logger:               logger,
	}
}

func (s *DepartmentService) GetDepartments(ctx context.Context, params types.ListParams) ([]entities.Department, types.ListMeta, error) {
	departments, total, err := s.departmentRepository.GetDepartments(ctx, params)
	if err != nil {
		s.logger.Error("listing departments failed", zap.Error(err))
		return nil, types.ListMeta{}, err
	}
	return departments, types.NewListMeta(total, params, struct{}{}), nil
}

func (s *DepartmentService) FindDepartment(ctx context.Context, id uuid.UUID) (*entities.Department, error) {
	department, err := s.departmentRepository.FindDepartment(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("department %s not found", id)
		}
		return nil, err
	}
	return department, nil
}

// FindDepartmentByName matches case- and diacritic-insensitively:
// names are stored normalized, so the lookup normalizes its argument.
func (s *DepartmentService) FindDepartmentByName(ctx context.Context, name string) (*entities.Department, error) {
	department, err := s.departmentRepository.FindDepartmentByName(ctx, utils.NormalizeText(name))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("department %q not found", name)
		}
		return nil, err
	}
	return department, nil
}

func (s *DepartmentService) FindDepartmentIDByName(ctx context.Context, name string) (uuid.UUID, error) {
	department, err := s.FindDepartmentByName(ctx, name)
	if err != nil {
		return uuid.Nil, err
	}
	return department.ID, nil
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*entities.Department, error) {
	department := entities.Department{
		Name:             utils.NormalizeText(payload.Name),
		Location:         utils.NormalizeText(payload.Location),
		ResponsibleName:  utils.NormalizeText(payload.ResponsibleName),
		ResponsibleEmail: payload.ResponsibleEmail,
	}

	// Pre-check for a friendlier message; the unique index is the
	// actual guarantee against concurrent creates.
	if _, err := s.departmentRepository.FindDepartmentByName(ctx, department.Name); err == nil {
		return nil, apperrors.Conflict("department %q already exists", payload.Name)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	created, err := s.departmentRepository.CreateDepartment(ctx, department)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Conflict("department %q already exists", payload.Name)
		}
		s.logger.Error("creating department failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("department created", zap.String("id", created.ID.String()), zap.String("name", created.Name))
	return created, nil
}

func (s *DepartmentService) UpdateDepartment(ctx context.Context, id uuid.UUID, payload dto.UpdateDepartmentDTO) (*entities.Department, error) {
	// Normalize only the fields present.
	if payload.Name != nil {
		payload.Name = utils.StringPtr(utils.NormalizeText(*payload.Name))
	}
	if payload.Location != nil {
		payload.Location = utils.StringPtr(utils.NormalizeText(*payload.Location))
	}
	if payload.ResponsibleName != nil {
		payload.ResponsibleName = utils.StringPtr(utils.NormalizeText(*payload.ResponsibleName))
	}

	updated, err := s.departmentRepository.UpdateDepartment(ctx, id, payload)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("department %s not found", id)
		}
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Conflict("department name is already taken")
		}
		s.logger.Error("updating department failed", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// DeleteDepartment hard-deletes; departments have no soft-delete. The
// equipment FK is RESTRICT, so a department that still owns equipment
// cannot be removed.
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	err := s.departmentRepository.DeleteDepartment(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound("department %s not found", id)
		}
		if errors.Is(err, apperrors.ErrBadRequest) {
			return apperrors.BadRequest("department %s still has equipment assigned", id)
		}
		s.logger.Error("deleting department failed", zap.String("id", id.String()), zap.Error(err))
	}
	return err
}
