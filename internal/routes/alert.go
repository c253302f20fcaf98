package routes

import (
	"github.com/labstack/echo/v4"

	"asset-system/internal/controllers"
)

func runAlertRouter(g *echo.Group, ctrl *controllers.AlertController) {
	g.GET("/alerts", ctrl.GetAlerts)
	g.GET("/alerts/:id", ctrl.FindAlert)
}
