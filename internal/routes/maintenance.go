package routes

import (
	"github.com/labstack/echo/v4"

	"asset-system/internal/controllers"
)

func runMaintenanceRouter(g *echo.Group, ctrl *controllers.MaintenanceController) {
	g.GET("/maintenances", ctrl.GetMaintenances)
	g.GET("/maintenances/:id", ctrl.FindMaintenance)
	g.POST("/maintenances", ctrl.CreateMaintenance)
	g.PUT("/maintenances/:id", ctrl.UpdateMaintenance)
	g.PATCH("/maintenances/:id/working", ctrl.MarkAsWorking)
	g.PATCH("/maintenances/:id/completed", ctrl.MarkAsCompleted)
	g.DELETE("/maintenances/:id", ctrl.DeleteMaintenance)
}
