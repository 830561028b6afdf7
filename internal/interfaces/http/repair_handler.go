package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/inventory"
)

// RepairHandler maneja las reparaciones de activos.
type RepairHandler struct {
	uc *inventory.RepairUseCase
}

// NewRepairHandler construye el handler.
func NewRepairHandler(uc *inventory.RepairUseCase) *RepairHandler {
	return &RepairHandler{uc: uc}
}

// List godoc
// @Summary      Listar reparaciones
// @Tags         repairs
// @Security     Bearer
// @Produce      json
// @Param        asset_id   query  int     false  "Activo"
// @Param        vendor_id  query  int     false  "Proveedor"
// @Param        status     query  string  false  "Pending | In Repair | Completed | Returned"
// @Success      200  {object}  dto.RepairListResponse
// @Router       /api/repairs [get]
func (h *RepairHandler) List(c *fiber.Ctx) error {
	var in dto.RepairFilterRequest
	if okay, err := bindQuery(c, &in); !okay {
		return err
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, out)
}

func (h *RepairHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRepairRequest
	if okay, err := bindBody(c, &in); !okay {
		return err
	}
	out, err := h.uc.Create(c.Context(), actor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, out)
}

func (h *RepairHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, out)
}

func (h *RepairHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateRepairRequest
	if okay, err := bindBody(c, &in); !okay {
		return err
	}
	out, err := h.uc.Update(c.Context(), actor(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, out)
}

// ChangeStatus godoc
// @Summary      Avanzar el estado de una reparación
// @Description  En modo estricto solo se acepta el siguiente estado del flujo.
// @Tags         repairs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                            true  "ID de la reparación"
// @Param        body  body  dto.ChangeRepairStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.RepairResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/repairs/{id}/status [patch]
func (h *RepairHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.ChangeRepairStatusRequest
	if okay, err := bindBody(c, &in); !okay {
		return err
	}
	out, err := h.uc.ChangeStatus(c.Context(), actor(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, out)
}

func (h *RepairHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Context(), actor(c), id); err != nil {
		return writeError(c, err)
	}
	return deleted(c, "reparación")
}
