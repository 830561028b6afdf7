package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Activos-api/internal/application/analytics"
	"github.com/jhoicas/Activos-api/internal/application/inventory"
)

// DashboardHandler maneja el resumen del dashboard y el reporte de reposición.
type DashboardHandler struct {
	uc            *appanalytics.DashboardUseCase
	replenishment *inventory.ReplenishmentUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, replenishment *inventory.ReplenishmentUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, replenishment: replenishment}
}

// GetSummary devuelve los agregados del inventario.
// GET /api/dashboard/summary
//
// Se sirve desde caché hasta que una escritura sobre activos o reparaciones la invalida.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, summary)
}

// GetReplenishmentList godoc
// @Summary      Reporte de reposición por fin de vida útil
// @Description  Activos cuya vida útil terminó o termina dentro de la ventana configurada,
//
//	ordenados por meses restantes y costo de adquisición.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        branch_id  query  int  false  "Filtrar por sucursal"
// @Success      200  {object}  dto.ReplenishmentReportDTO
// @Router       /api/reports/replenishment [get]
func (h *DashboardHandler) GetReplenishmentList(c *fiber.Ctx) error {
	branchID, err := queryID(c, "branch_id")
	if err != nil {
		return writeError(c, err)
	}
	report, err := h.replenishment.GenerateReplenishmentList(c.Context(), branchID)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, report)
}
