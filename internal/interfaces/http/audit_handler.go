package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
)

// AuditHandler consulta de la bitácora de auditoría.
type AuditHandler struct {
	uc *usecase.AuditUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *usecase.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Consultar bitácora de auditoría
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        entity_type  query  string  false  "asset | repair | branch | section | employee | vendor | category | status"
// @Param        entity_id    query  int     false  "ID de la entidad"
// @Param        actor_id     query  string  false  "Usuario"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/audit-logs [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	var in dto.AuditLogFilterRequest
	if okay, err := bindQuery(c, &in); !okay {
		return err
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, out)
}
