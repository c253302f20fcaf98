package routes

import (
	"github.com/labstack/echo/v4"

	"asset-system/internal/controllers"
)

func runReportRouter(g *echo.Group, ctrl *controllers.ReportController) {
	g.GET("/reports/summary", ctrl.GetSummary)
	g.GET("/reports/summary/export", ctrl.ExportSummary)
}
