package dto

import "time"

// ── Sucursales ───────────────────────────────────────────────────────────────

// CreateBranchRequest entrada para crear una sucursal.
type CreateBranchRequest struct {
	Code    string `json:"branch_code" validate:"required,min=1,max=20"`
	Name    string `json:"branch_name" validate:"required,min=1,max=200"`
	Address string `json:"address" validate:"max=300"`
}

// UpdateBranchRequest entrada para actualizar una sucursal.
type UpdateBranchRequest struct {
	Code    *string `json:"branch_code" validate:"omitempty,min=1,max=20"`
	Name    *string `json:"branch_name" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address" validate:"omitempty,max=300"`
}

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	ID        int64     `json:"id"`
	Code      string    `json:"branch_code"`
	Name      string    `json:"branch_name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateSectionRequest entrada para crear una sección.
type CreateSectionRequest struct {
	BranchID int64  `json:"branch_id" validate:"required,gt=0"`
	Name     string `json:"section_name" validate:"required,min=1,max=200"`
}

// UpdateSectionRequest entrada para actualizar una sección.
type UpdateSectionRequest struct {
	BranchID *int64  `json:"branch_id" validate:"omitempty,gt=0"`
	Name     *string `json:"section_name" validate:"omitempty,min=1,max=200"`
}

// SectionResponse salida de una sección.
type SectionResponse struct {
	ID        int64     `json:"id"`
	BranchID  int64     `json:"branch_id"`
	Name      string    `json:"section_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ── Empleados ────────────────────────────────────────────────────────────────

// CreateEmployeeRequest entrada para crear un empleado.
type CreateEmployeeRequest struct {
	EmployeeNo string `json:"employee_no" validate:"required,min=1,max=30"`
	FirstName  string `json:"first_name" validate:"required,min=1,max=100"`
	LastName   string `json:"last_name" validate:"max=100"`
	Email      string `json:"email" validate:"omitempty,email,max=200"`
	Position   string `json:"position" validate:"max=100"`
	BranchID   *int64 `json:"branch_id" validate:"omitempty,gt=0"`
	SectionID  *int64 `json:"section_id" validate:"omitempty,gt=0"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado.
type UpdateEmployeeRequest struct {
	EmployeeNo *string `json:"employee_no" validate:"omitempty,min=1,max=30"`
	FirstName  *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName   *string `json:"last_name" validate:"omitempty,max=100"`
	Email      *string `json:"email" validate:"omitempty,email,max=200"`
	Position   *string `json:"position" validate:"omitempty,max=100"`
	BranchID   *int64  `json:"branch_id" validate:"omitempty,gt=0"`
	SectionID  *int64  `json:"section_id" validate:"omitempty,gt=0"`
	Active     *bool   `json:"active"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID         int64     `json:"id"`
	EmployeeNo string    `json:"employee_no"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Position   string    `json:"position"`
	BranchID   *int64    `json:"branch_id"`
	SectionID  *int64    `json:"section_id"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ── Proveedores ──────────────────────────────────────────────────────────────

// CreateVendorRequest entrada para crear un proveedor.
type CreateVendorRequest struct {
	Name          string `json:"vendor_name" validate:"required,min=1,max=200"`
	ContactPerson string `json:"contact_person" validate:"max=200"`
	Phone         string `json:"phone" validate:"max=50"`
	Email         string `json:"email" validate:"omitempty,email,max=200"`
	Address       string `json:"address" validate:"max=300"`
}

// UpdateVendorRequest entrada para actualizar un proveedor.
type UpdateVendorRequest struct {
	Name          *string `json:"vendor_name" validate:"omitempty,min=1,max=200"`
	ContactPerson *string `json:"contact_person" validate:"omitempty,max=200"`
	Phone         *string `json:"phone" validate:"omitempty,max=50"`
	Email         *string `json:"email" validate:"omitempty,email,max=200"`
	Address       *string `json:"address" validate:"omitempty,max=300"`
}

// VendorResponse salida de un proveedor.
type VendorResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"vendor_name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ── Categorías ───────────────────────────────────────────────────────────────

// CreateCategoryRequest entrada para crear una categoría o subcategoría (ParentID).
type CreateCategoryRequest struct {
	ParentID    *int64 `json:"parent_id" validate:"omitempty,gt=0"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Code        string `json:"code" validate:"required,min=1,max=30"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
type UpdateCategoryRequest struct {
	ParentID    *int64  `json:"parent_id" validate:"omitempty,gt=0"`
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Code        *string `json:"code" validate:"omitempty,min=1,max=30"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64     `json:"id"`
	ParentID    *int64    `json:"parent_id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ── Estados ──────────────────────────────────────────────────────────────────

// CreateStatusRequest entrada para crear un estado de activo.
type CreateStatusRequest struct {
	Name        string `json:"status_name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateStatusRequest entrada para actualizar un estado.
type UpdateStatusRequest struct {
	Name        *string `json:"status_name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// StatusResponse salida de un estado.
type StatusResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"status_name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListResponse lista paginada genérica para catálogos.
type ListResponse[T any] struct {
	Items []T          `json:"items"`
	Page  PageResponse `json:"page"`
}

// ── Auditoría ────────────────────────────────────────────────────────────────

// AuditLogFilterRequest filtros de GET /api/audit-logs.
type AuditLogFilterRequest struct {
	PageRequest
	EntityType string `query:"entity_type" validate:"omitempty,oneof=asset category vendor branch section employee status repair"`
	EntityID   *int64 `query:"entity_id"`
	ActorID    string `query:"actor_id"`
}

// FieldChangeResponse valor anterior y nuevo de un atributo.
type FieldChangeResponse struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// AuditLogResponse salida de una fila de auditoría.
type AuditLogResponse struct {
	ID         int64                          `json:"id"`
	EntityType string                         `json:"entity_type"`
	EntityID   int64                          `json:"entity_id"`
	Action     string                         `json:"action"`
	Changes    map[string]FieldChangeResponse `json:"changes"`
	ActorID    string                         `json:"actor_id"`
	IPAddress  string                         `json:"ip_address"`
	CreatedAt  time.Time                      `json:"created_at"`
}
