package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/controllers"
	"asset-system/internal/repositories"
	"asset-system/internal/services"
	"asset-system/pkg/config"
	"asset-system/pkg/middleware"
	"asset-system/pkg/service"
)

// InitRouter wires repositories, services and controllers and mounts
// every route under /api. Everything except login/refresh sits behind
// the auth middleware.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, cfg *config.Config, logger *zap.Logger) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)
	txManager := repositories.NewTxManager(dbConn)

	departmentRepo := repositories.NewDepartmentRepository(dbConn, logger)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	componentRepo := repositories.NewComponentRepository(dbConn, logger)
	moveRepo := repositories.NewEquipmentMoveRepository(dbConn, logger)
	maintenanceRepo := repositories.NewMaintenanceRepository(dbConn, logger)
	alertRepo := repositories.NewAlertRepository(dbConn, logger)
	reportRepo := repositories.NewReportRepository(dbConn)
	userRepo := repositories.NewUserRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	departmentService := services.NewDepartmentService(departmentRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, departmentRepo, logger)
	componentService := services.NewComponentService(componentRepo, equipmentRepo, logger)
	moveService := services.NewEquipmentMoveService(moveRepo, equipmentRepo, departmentRepo, txManager, logger)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, equipmentRepo, componentRepo, txManager, logger)
	alertService := services.NewAlertService(alertRepo, logger)
	reportService := services.NewReportService(reportRepo, logger)
	authService := services.NewAuthService(userRepo, cacheRepo, jwtSvc, cfg.Auth, logger)

	departmentCtrl := controllers.NewDepartmentController(departmentService, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	componentCtrl := controllers.NewComponentController(componentService, logger)
	moveCtrl := controllers.NewEquipmentMoveController(moveService, logger)
	maintenanceCtrl := controllers.NewMaintenanceController(maintenanceService, logger)
	alertCtrl := controllers.NewAlertController(alertService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)
	authCtrl := controllers.NewAuthController(authService, logger)

	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, authCtrl)
	runDepartmentRouter(secureGroup, departmentCtrl)
	runEquipmentRouter(secureGroup, equipmentCtrl)
	runComponentRouter(secureGroup, componentCtrl)
	runEquipmentMoveRouter(secureGroup, moveCtrl)
	runMaintenanceRouter(secureGroup, maintenanceCtrl)
	runAlertRouter(secureGroup, alertCtrl)
	runReportRouter(secureGroup, reportCtrl)
}
