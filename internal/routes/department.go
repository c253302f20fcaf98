package routes

import (
	"github.com/labstack/echo/v4"

	"asset-system/internal/controllers"
)

func runDepartmentRouter(g *echo.Group, ctrl *controllers.DepartmentController) {
	g.GET("/departments", ctrl.GetDepartments)
	g.GET("/departments/:id", ctrl.FindDepartment)
	g.GET("/departments/by-name/:name", ctrl.FindDepartmentByName)
	g.POST("/departments", ctrl.CreateDepartment)
	g.PUT("/departments/:id", ctrl.UpdateDepartment)
	g.DELETE("/departments/:id", ctrl.DeleteDepartment)
}
