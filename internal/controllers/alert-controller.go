package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/services"
	"asset-system/pkg/utils"
)

type AlertController struct {
	alertService *services.AlertService
	logger       *zap.Logger
}

func NewAlertController(alertService *services.AlertService, logger *zap.Logger) *AlertController {
	return &AlertController{alertService: alertService, logger: logger}
}

func (c *AlertController) GetAlerts(ctx echo.Context) error {
	values := ctx.QueryParams()
	params := utils.ParseListParams(values, "desc")
	filter := dto.AlertFilter{
		Severity:    values.Get("severity"),
		EquipmentID: queryUUID(values, "equipment_id"),
	}
	if trimestre, err := strconv.Atoi(values.Get("trimestre")); err == nil {
		filter.Trimestre = trimestre
	}

	alerts, meta, err := c.alertService.GetAlerts(ctx.Request().Context(), filter, params)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.ListResponse(ctx, alerts, meta, "alerts retrieved")
}

func (c *AlertController) FindAlert(ctx echo.Context) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	alert, err := c.alertService.FindAlert(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, alert, "alert retrieved", http.StatusOK)
}
