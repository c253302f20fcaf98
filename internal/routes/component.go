package routes

import (
	"github.com/labstack/echo/v4"

	"asset-system/internal/controllers"
)

func runComponentRouter(g *echo.Group, ctrl *controllers.ComponentController) {
	g.GET("/components", ctrl.GetComponents)
	g.GET("/components/:id", ctrl.FindComponent)
	g.GET("/equipments/:equipmentId/components", ctrl.GetComponentsByEquipment)
	g.POST("/components", ctrl.CreateComponent)
	g.PUT("/components/:id", ctrl.UpdateComponent)
	// Soft delete: stamps discarded_at.
	g.DELETE("/components/:id", ctrl.DiscardComponent)
}
