package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Activos-api/internal/application/analytics"
	"github.com/jhoicas/Activos-api/internal/application/inventory"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AssetUC         *inventory.AssetUseCase
	MovementUC      *inventory.MovementUseCase
	RepairUC        *inventory.RepairUseCase
	ReplenishmentUC *inventory.ReplenishmentUseCase
	BranchUC        *usecase.BranchUseCase
	EmployeeUC      *usecase.EmployeeUseCase
	VendorUC        *usecase.VendorUseCase
	CategoryUC      *usecase.CategoryUseCase
	StatusUC        *usecase.StatusUseCase
	AuditUC         *usecase.AuditUseCase
	DashboardUC     *appanalytics.DashboardUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	read, write := RequireRole(ReadRoles...), RequireRole(WriteRoles...)

	// Activos y movimientos
	assets := protected.Group("/assets")
	assetHandler := NewAssetHandler(deps.AssetUC, deps.MovementUC)
	assets.Get("/", read, assetHandler.List)
	assets.Post("/", write, assetHandler.Create)
	assets.Post("/bulk-transfer", write, assetHandler.BulkTransfer)
	assets.Get("/:id", read, assetHandler.GetByID)
	assets.Put("/:id", write, assetHandler.Update)
	assets.Delete("/:id", write, assetHandler.Delete)
	assets.Post("/:id/transfer", write, assetHandler.Transfer)
	assets.Post("/:id/return", write, assetHandler.Return)
	assets.Patch("/:id/status", write, assetHandler.ChangeStatus)
	assets.Get("/:id/movements", read, assetHandler.Movements)

	// Reparaciones
	repairs := protected.Group("/repairs")
	repairHandler := NewRepairHandler(deps.RepairUC)
	repairs.Get("/", read, repairHandler.List)
	repairs.Post("/", write, repairHandler.Create)
	repairs.Get("/:id", read, repairHandler.GetByID)
	repairs.Put("/:id", write, repairHandler.Update)
	repairs.Delete("/:id", write, repairHandler.Delete)
	repairs.Patch("/:id/status", write, repairHandler.ChangeStatus)

	// Catálogos
	NewCatalogHandler(deps.BranchUC, deps.EmployeeUC, deps.VendorUC, deps.CategoryUC, deps.StatusUC).Mount(protected)

	// Auditoría, dashboard y reportes (solo lectura)
	protected.Get("/audit-logs", read, NewAuditHandler(deps.AuditUC).List)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReplenishmentUC)
	protected.Get("/dashboard/summary", read, dashboardHandler.GetSummary)
	protected.Get("/reports/replenishment", read, dashboardHandler.GetReplenishmentList)
}
