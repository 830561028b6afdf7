package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/inventory"
)

// AssetHandler maneja las peticiones HTTP de activos y sus movimientos (protegido).
type AssetHandler struct {
	assets    *inventory.AssetUseCase
	movements *inventory.MovementUseCase
}

// NewAssetHandler construye el handler.
func NewAssetHandler(assets *inventory.AssetUseCase, movements *inventory.MovementUseCase) *AssetHandler {
	return &AssetHandler{assets: assets, movements: movements}
}

// List godoc
// @Summary      Listar activos
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        branch_id    query  int     false  "Sucursal"
// @Param        employee_id  query  int     false  "Custodio"
// @Param        status_id    query  int     false  "Estado"
// @Param        category_id  query  int     false  "Categoría"
// @Param        search       query  string  false  "Etiqueta, nombre o serie"
// @Param        limit        query  int     false  "Límite"  default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.AssetListResponse
// @Router       /api/assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	var in dto.AssetFilterRequest
	if okay, err := bindQuery(c, &in); !okay {
		return err
	}
	out, err := h.assets.List(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, out)
}

// Create godoc
// @Summary      Registrar activo
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssetRequest  true  "Datos del activo"
// @Success      201   {object}  dto.AssetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssetRequest
	if okay, err := bindBody(c, &in); !okay {
		return err
	}
	out, err := h.assets.Create(c.Context(), actor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, out)
}

// GetByID godoc
// @Summary      Obtener activo por ID
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del activo"
// @Success      200  {object}  dto.AssetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [get]
func (h *AssetHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.assets.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, out)
}

// Update godoc
// @Summary      Actualizar datos del activo
// @Description  No cambia custodio, sucursal ni estado (use transfer, return o status).
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID del activo"
// @Param        body  body  dto.UpdateAssetRequest  true  "Campos a modificar y expected_version opcional"
// @Success      200   {object}  dto.AssetResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [put]
func (h *AssetHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateAssetRequest
	if okay, err := bindBody(c, &in); !okay {
		return err
	}
	out, err := h.assets.Update(c.Context(), actor(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, out)
}

// Delete godoc
// @Summary      Eliminar activo sin historial
// @Tags         assets
// @Security     Bearer
// @Param        id   path  int  true  "ID del activo"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [delete]
func (h *AssetHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.assets.Delete(c.Context(), actor(c), id); err != nil {
		return writeError(c, err)
	}
	return deleted(c, "activo")
}

// Transfer godoc
// @Summary      Trasladar activo a otro custodio y/o sucursal
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID del activo"
// @Param        body  body  dto.TransferRequest  true  "Destino y motivo (mínimo 10 caracteres)"
// @Success      201   {object}  dto.MovementResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/transfer [post]
func (h *AssetHandler) Transfer(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.TransferRequest
	if okay, err := bindBody(c, &in); !okay {
		return err
	}
	out, err := h.movements.Transfer(c.Context(), actor(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, out)
}

// BulkTransfer godoc
// @Summary      Traslado masivo (todo o nada)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkTransferRequest  true  "IDs de activos, custodio destino y motivo"
// @Success      201   {object}  dto.MovementResultResponse
// @Router       /api/assets/bulk-transfer [post]
func (h *AssetHandler) BulkTransfer(c *fiber.Ctx) error {
	var in dto.BulkTransferRequest
	if okay, err := bindBody(c, &in); !okay {
		return err
	}
	out, err := h.movements.BulkTransfer(c.Context(), actor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, out)
}

// Return godoc
// @Summary      Devolver activo a inventario
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "ID del activo"
// @Param        body  body  dto.ReturnRequest  false "Motivo, condición y estado opcionales"
// @Success      201   {object}  dto.MovementResultResponse
// @Router       /api/assets/{id}/return [post]
func (h *AssetHandler) Return(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.ReturnRequest
	if len(c.Body()) > 0 {
		if okay, err := bindBody(c, &in); !okay {
			return err
		}
	}
	out, err := h.movements.Return(c.Context(), actor(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, out)
}

// ChangeStatus godoc
// @Summary      Cambiar estado del activo
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "ID del activo"
// @Param        body  body  dto.ChangeStatusRequest  true  "Estado destino y motivo"
// @Success      200   {object}  dto.MovementResultResponse
// @Router       /api/assets/{id}/status [patch]
func (h *AssetHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.ChangeStatusRequest
	if okay, err := bindBody(c, &in); !okay {
		return err
	}
	out, err := h.movements.ChangeStatus(c.Context(), actor(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, out)
}

// Movements godoc
// @Summary      Historial de movimientos del activo
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id      path   int  true   "ID del activo"
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/assets/{id}/movements [get]
func (h *AssetHandler) Movements(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	p, okay, err := page(c)
	if !okay {
		return err
	}
	out, err := h.movements.History(c.Context(), id, p)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, out)
}
