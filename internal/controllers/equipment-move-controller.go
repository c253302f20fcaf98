package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/services"
	"asset-system/pkg/utils"
)

type EquipmentMoveController struct {
	moveService *services.EquipmentMoveService
	logger      *zap.Logger
}

func NewEquipmentMoveController(moveService *services.EquipmentMoveService, logger *zap.Logger) *EquipmentMoveController {
	return &EquipmentMoveController{moveService: moveService, logger: logger}
}

func (c *EquipmentMoveController) GetMoves(ctx echo.Context) error {
	values := ctx.QueryParams()
	params := utils.ParseListParams(values, "desc")
	filter := dto.EquipmentMoveFilter{
		EquipmentID:          queryUUID(values, "equipment_id"),
		PreviousDepartmentID: queryUUID(values, "previous_department_id"),
		NewDepartmentID:      queryUUID(values, "new_department_id"),
	}

	moves, meta, err := c.moveService.GetMoves(ctx.Request().Context(), filter, params)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.ListResponse(ctx, moves, meta, "equipment moves retrieved")
}

func (c *EquipmentMoveController) FindMove(ctx echo.Context) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	move, err := c.moveService.FindMove(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, move, "equipment move retrieved", http.StatusOK)
}

func (c *EquipmentMoveController) CreateMove(ctx echo.Context) error {
	var payload dto.CreateEquipmentMoveDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	move, err := c.moveService.CreateMove(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, move, "equipment move created", http.StatusCreated)
}

func (c *EquipmentMoveController) DeleteMove(ctx echo.Context) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.moveService.DeleteMove(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "equipment move deleted", http.StatusOK)
}
