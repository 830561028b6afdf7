package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/mutation"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
)

// crudUseCase operaciones auditadas comunes a los catálogos.
type crudUseCase[C, U, R any] interface {
	Create(ctx context.Context, actor mutation.Actor, in C) (*R, error)
	GetByID(ctx context.Context, id int64) (*R, error)
	Update(ctx context.Context, actor mutation.Actor, id int64, in U) (*R, error)
	Delete(ctx context.Context, actor mutation.Actor, id int64) error
}

// crudHandler handlers genéricos de alta, consulta, edición y baja para un catálogo.
type crudHandler[C, U, R any] struct {
	uc   crudUseCase[C, U, R]
	noun string // para el mensaje de eliminación
}

func (h crudHandler[C, U, R]) Create(c *fiber.Ctx) error {
	var in C
	if okay, err := bindBody(c, &in); !okay {
		return err
	}
	out, err := h.uc.Create(c.Context(), actor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, out)
}

func (h crudHandler[C, U, R]) GetByID(c *fiber.Ctx) error {
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

func (h crudHandler[C, U, R]) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in U
	if okay, err := bindBody(c, &in); !okay {
		return err
	}
	out, err := h.uc.Update(c.Context(), actor(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, out)
}

func (h crudHandler[C, U, R]) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Context(), actor(c), id); err != nil {
		return writeError(c, err)
	}
	return deleted(c, h.noun)
}

// mount registra GET /:id, POST /, PUT /:id y DELETE /:id con los roles de lectura y escritura.
func (h crudHandler[C, U, R]) mount(g fiber.Router, list fiber.Handler) {
	read, write := RequireRole(ReadRoles...), RequireRole(WriteRoles...)
	g.Get("/", read, list)
	g.Post("/", write, h.Create)
	g.Get("/:id", read, h.GetByID)
	g.Put("/:id", write, h.Update)
	g.Delete("/:id", write, h.Delete)
}

// sectionOps adapta las operaciones de secciones de BranchUseCase a crudUseCase.
type sectionOps struct{ uc *usecase.BranchUseCase }

func (s sectionOps) Create(ctx context.Context, a mutation.Actor, in dto.CreateSectionRequest) (*dto.SectionResponse, error) {
	return s.uc.CreateSection(ctx, a, in)
}

func (s sectionOps) GetByID(ctx context.Context, id int64) (*dto.SectionResponse, error) {
	return s.uc.GetSection(ctx, id)
}

func (s sectionOps) Update(ctx context.Context, a mutation.Actor, id int64, in dto.UpdateSectionRequest) (*dto.SectionResponse, error) {
	return s.uc.UpdateSection(ctx, a, id, in)
}

func (s sectionOps) Delete(ctx context.Context, a mutation.Actor, id int64) error {
	return s.uc.DeleteSection(ctx, a, id)
}

// CatalogHandler agrupa sucursales, secciones, empleados, proveedores, categorías y estados.
type CatalogHandler struct {
	branches   *usecase.BranchUseCase
	employees  *usecase.EmployeeUseCase
	vendors    *usecase.VendorUseCase
	categories *usecase.CategoryUseCase
	statuses   *usecase.StatusUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(
	branches *usecase.BranchUseCase,
	employees *usecase.EmployeeUseCase,
	vendors *usecase.VendorUseCase,
	categories *usecase.CategoryUseCase,
	statuses *usecase.StatusUseCase,
) *CatalogHandler {
	return &CatalogHandler{branches: branches, employees: employees, vendors: vendors, categories: categories, statuses: statuses}
}

// Mount registra las rutas de catálogos bajo r.
func (h *CatalogHandler) Mount(r fiber.Router) {
	crudHandler[dto.CreateBranchRequest, dto.UpdateBranchRequest, dto.BranchResponse]{uc: h.branches, noun: "sucursal"}.
		mount(r.Group("/branches"), h.ListBranches)
	crudHandler[dto.CreateSectionRequest, dto.UpdateSectionRequest, dto.SectionResponse]{uc: sectionOps{h.branches}, noun: "sección"}.
		mount(r.Group("/sections"), h.ListSections)
	crudHandler[dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest, dto.EmployeeResponse]{uc: h.employees, noun: "empleado"}.
		mount(r.Group("/employees"), h.ListEmployees)
	crudHandler[dto.CreateVendorRequest, dto.UpdateVendorRequest, dto.VendorResponse]{uc: h.vendors, noun: "proveedor"}.
		mount(r.Group("/vendors"), h.ListVendors)
	crudHandler[dto.CreateCategoryRequest, dto.UpdateCategoryRequest, dto.CategoryResponse]{uc: h.categories, noun: "categoría"}.
		mount(r.Group("/categories"), h.ListCategories)
	crudHandler[dto.CreateStatusRequest, dto.UpdateStatusRequest, dto.StatusResponse]{uc: h.statuses, noun: "estado"}.
		mount(r.Group("/statuses"), h.ListStatuses)
}

// ListBranches GET /api/branches
func (h *CatalogHandler) ListBranches(c *fiber.Ctx) error {
	p, okay, err := page(c)
	if !okay {
		return err
	}
	out, err := h.branches.List(c.Context(), p)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, out)
}

// ListSections GET /api/sections?branch_id=
func (h *CatalogHandler) ListSections(c *fiber.Ctx) error {
	branchID, err := queryID(c, "branch_id")
	if err != nil {
		return writeError(c, err)
	}
	p, okay, err := page(c)
	if !okay {
		return err
	}
	out, err := h.branches.ListSections(c.Context(), branchID, p)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, out)
}

// ListEmployees GET /api/employees?branch_id=
func (h *CatalogHandler) ListEmployees(c *fiber.Ctx) error {
	branchID, err := queryID(c, "branch_id")
	if err != nil {
		return writeError(c, err)
	}
	p, okay, err := page(c)
	if !okay {
		return err
	}
	out, err := h.employees.List(c.Context(), branchID, p)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, out)
}

// ListVendors GET /api/vendors
func (h *CatalogHandler) ListVendors(c *fiber.Ctx) error {
	p, okay, err := page(c)
	if !okay {
		return err
	}
	out, err := h.vendors.List(c.Context(), p)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, out)
}

// ListCategories GET /api/categories?parent_id= (sin parent_id: todas)
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	parentID, err := queryID(c, "parent_id")
	if err != nil {
		return writeError(c, err)
	}
	p, okay, err := page(c)
	if !okay {
		return err
	}
	out, err := h.categories.List(c.Context(), parentID, p)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, out)
}

// ListStatuses GET /api/statuses
func (h *CatalogHandler) ListStatuses(c *fiber.Ctx) error {
	out, err := h.statuses.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, out)
}
