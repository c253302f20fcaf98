package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/services"
	"asset-system/pkg/utils"
)

type ComponentController struct {
	componentService *services.ComponentService
	logger           *zap.Logger
}

func NewComponentController(componentService *services.ComponentService, logger *zap.Logger) *ComponentController {
	return &ComponentController{componentService: componentService, logger: logger}
}

func (c *ComponentController) GetComponents(ctx echo.Context) error {
	params := utils.ParseListParams(ctx.QueryParams(), "asc")

	components, meta, err := c.componentService.GetComponents(ctx.Request().Context(), params)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.ListResponse(ctx, components, meta, "components retrieved")
}

// GetComponentsByEquipment lists the non-discarded components of one
// piece of equipment, without pagination.
func (c *ComponentController) GetComponentsByEquipment(ctx echo.Context) error {
	equipmentID, err := parseUUIDParam(ctx, "equipmentId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	components, err := c.componentService.GetComponentsByEquipment(ctx.Request().Context(), equipmentID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, components, "components retrieved", http.StatusOK)
}

func (c *ComponentController) FindComponent(ctx echo.Context) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	component, err := c.componentService.FindComponent(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, component, "component retrieved", http.StatusOK)
}

func (c *ComponentController) CreateComponent(ctx echo.Context) error {
	var payload dto.CreateComponentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	component, err := c.componentService.CreateComponent(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, component, "component created", http.StatusCreated)
}

func (c *ComponentController) UpdateComponent(ctx echo.Context) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateComponentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	component, err := c.componentService.UpdateComponent(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, component, "component updated", http.StatusOK)
}

func (c *ComponentController) DiscardComponent(ctx echo.Context) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.componentService.DiscardComponent(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "component discarded", http.StatusOK)
}
