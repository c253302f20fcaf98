package routes

import (
	"github.com/labstack/echo/v4"

	"asset-system/internal/controllers"
)

// login and refresh stay public; /auth/me requires a valid token.
func runAuthRouter(public *echo.Group, secure *echo.Group, ctrl *controllers.AuthController) {
	public.POST("/auth/login", ctrl.Login)
	public.POST("/auth/refresh", ctrl.Refresh)
	secure.GET("/auth/me", ctrl.Me)
}
