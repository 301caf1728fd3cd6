package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/fishstock-api/internal/application/analytics"
	"github.com/jhoicas/fishstock-api/internal/application/auth"
	"github.com/jhoicas/fishstock-api/internal/application/usecase"
	"github.com/jhoicas/fishstock-api/internal/domain/entity"
	"github.com/jhoicas/fishstock-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName string
	Health      HealthChecker
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	PurchaseUC  *usecase.PurchaseUseCase
	StockLeftUC *usecase.StockLeftUseCase
	AdminUC     *usecase.AdminUseCase
	DashboardUC *appanalytics.DashboardUseCase
	ReportUC    *appanalytics.ReportUseCase
	JWTSecret   string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log.Component("http")

	app.Get("/health", healthHandler(deps.ServiceName, deps.Health))

	api := app.Group("/api")
	authHandler := NewAuthHandler(deps.AuthUC, log)

	// Login (público)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Post("/auth/register", adminOnly, authHandler.Register)

	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC, log)
	protected.Get("/catalog/fish", purchaseHandler.Catalog)
	purchases := protected.Group("/purchases")
	purchases.Get("/", purchaseHandler.List)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Put("/:id", adminOnly, purchaseHandler.Update)
	purchases.Delete("/:id", adminOnly, purchaseHandler.Delete)

	stockLeftHandler := NewStockLeftHandler(deps.StockLeftUC, log)
	stockLeft := protected.Group("/stock-left")
	stockLeft.Get("/", stockLeftHandler.List)
	stockLeft.Get("/sheet", stockLeftHandler.Sheet)
	stockLeft.Post("/", stockLeftHandler.Submit)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	protected.Get("/dashboard", dashboardHandler.Get)

	reportHandler := NewReportHandler(deps.ReportUC, log)
	reports := protected.Group("/reports")
	reports.Get("/movement", reportHandler.Movement)
	reports.Get("/movement/export", reportHandler.ExportMovement)
	reports.Get("/aging", reportHandler.Aging)
	reports.Get("/aging/export", reportHandler.ExportAging)
	reports.Get("/sales", reportHandler.Sales)

	adminHandler := NewAdminHandler(deps.AdminUC, deps.UserUC, log)
	admin := protected.Group("/admin", adminOnly)
	admin.Post("/reset", adminHandler.Reset)
	admin.Get("/users", adminHandler.ListUsers)
}
