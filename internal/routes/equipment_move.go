package routes

import (
	"github.com/labstack/echo/v4"

	"asset-system/internal/controllers"
)

func runEquipmentMoveRouter(g *echo.Group, ctrl *controllers.EquipmentMoveController) {
	g.GET("/equipment-moves", ctrl.GetMoves)
	g.GET("/equipment-moves/:id", ctrl.FindMove)
	g.POST("/equipment-moves", ctrl.CreateMove)
	g.DELETE("/equipment-moves/:id", ctrl.DeleteMove)
}
