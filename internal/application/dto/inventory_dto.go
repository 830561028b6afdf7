package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAssetRequest entrada para registrar un activo.
// El custodio y la sucursal iniciales son opcionales; los cambios posteriores se hacen con traslados.
type CreateAssetRequest struct {
	AssetTag           string          `json:"asset_tag" validate:"required,min=1,max=50"`
	Name               string          `json:"asset_name" validate:"required,min=1,max=200"`
	CategoryID         int64           `json:"asset_category_id" validate:"required,gt=0"`
	SubcategoryID      *int64          `json:"sub_category_id" validate:"omitempty,gt=0"`
	SerialNumber       string          `json:"serial_number" validate:"max=100"`
	PurchaseDate       *string         `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	AcqCost            decimal.Decimal `json:"acq_cost"`
	EstimateLifeMonths int             `json:"estimate_life" validate:"min=0,max=600"`
	VendorID           *int64          `json:"vendor_id" validate:"omitempty,gt=0"`
	StatusID           int64           `json:"status_id" validate:"required,gt=0"`
	CustodianID        *int64          `json:"assigned_to_employee_id" validate:"omitempty,gt=0"`
	BranchID           *int64          `json:"branch_id" validate:"omitempty,gt=0"`
	EquipmentID        string          `json:"equipment_id" validate:"max=100"`
	Location           string          `json:"location" validate:"max=200"`
	Remarks            string          `json:"remarks" validate:"max=1000"`
	WarrantyExpiration *string         `json:"warranty_expiration" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateAssetRequest actualización parcial de datos descriptivos.
// Custodio, sucursal y estado no se modifican aquí (traslado, devolución y cambio de estado).
type UpdateAssetRequest struct {
	ExpectedVersion    *int64           `json:"expected_version" validate:"omitempty,gt=0"`
	AssetTag           *string          `json:"asset_tag" validate:"omitempty,min=1,max=50"`
	Name               *string          `json:"asset_name" validate:"omitempty,min=1,max=200"`
	CategoryID         *int64           `json:"asset_category_id" validate:"omitempty,gt=0"`
	SubcategoryID      *int64           `json:"sub_category_id" validate:"omitempty,gt=0"`
	SerialNumber       *string          `json:"serial_number" validate:"omitempty,max=100"`
	PurchaseDate       *string          `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	AcqCost            *decimal.Decimal `json:"acq_cost"`
	EstimateLifeMonths *int             `json:"estimate_life" validate:"omitempty,min=0,max=600"`
	VendorID           *int64           `json:"vendor_id" validate:"omitempty,gt=0"`
	EquipmentID        *string          `json:"equipment_id" validate:"omitempty,max=100"`
	Location           *string          `json:"location" validate:"omitempty,max=200"`
	Remarks            *string          `json:"remarks" validate:"omitempty,max=1000"`
	WarrantyExpiration *string          `json:"warranty_expiration" validate:"omitempty,datetime=2006-01-02"`
}

// AssetFilterRequest filtros de GET /api/assets.
type AssetFilterRequest struct {
	PageRequest
	BranchID    *int64 `query:"branch_id"`
	CustodianID *int64 `query:"employee_id"`
	StatusID    *int64 `query:"status_id"`
	CategoryID  *int64 `query:"category_id"`
	Search      string `query:"search" validate:"max=100"`
}

// AssetResponse salida de un activo con su valor en libros calculado.
type AssetResponse struct {
	ID                 int64           `json:"id"`
	AssetTag           string          `json:"asset_tag"`
	Name               string          `json:"asset_name"`
	CategoryID         int64           `json:"asset_category_id"`
	SubcategoryID      *int64          `json:"sub_category_id"`
	SerialNumber       string          `json:"serial_number"`
	PurchaseDate       *string         `json:"purchase_date"`
	AcqCost            decimal.Decimal `json:"acq_cost"`
	EstimateLifeMonths int             `json:"estimate_life"`
	VendorID           *int64          `json:"vendor_id"`
	StatusID           int64           `json:"status_id"`
	CustodianID        *int64          `json:"assigned_to_employee_id"`
	BranchID           *int64          `json:"branch_id"`
	EquipmentID        string          `json:"equipment_id"`
	Location           string          `json:"location"`
	Remarks            string          `json:"remarks"`
	WarrantyExpiration *string         `json:"warranty_expiration"`
	BookValue          decimal.Decimal `json:"book_value"`
	Version            int64           `json:"version"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// AssetListResponse lista paginada de activos.
type AssetListResponse struct {
	Items []AssetResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// TransferRequest traslado de un activo a otro custodio y/o sucursal.
type TransferRequest struct {
	ToCustodianID   *int64 `json:"to_employee_id" validate:"omitempty,gt=0"`
	ToBranchID      *int64 `json:"to_branch_id" validate:"omitempty,gt=0"`
	Reason          string `json:"reason" validate:"required,min=10,max=500"`
	Remarks         string `json:"remarks" validate:"max=1000"`
	ExpectedVersion *int64 `json:"expected_version" validate:"omitempty,gt=0"`
}

// BulkTransferRequest traslado masivo de activos a un custodio.
type BulkTransferRequest struct {
	AssetIDs      []int64 `json:"asset_ids" validate:"required,min=1,dive,gt=0"`
	ToCustodianID int64   `json:"to_employee_id" validate:"required,gt=0"`
	ToBranchID    *int64  `json:"to_branch_id" validate:"omitempty,gt=0"`
	Reason        string  `json:"reason" validate:"required,min=10,max=500"`
	Remarks       string  `json:"remarks" validate:"max=1000"`
}

// ReturnRequest devolución de un activo a inventario.
// Reason es opcional; si se envía debe cumplir la longitud mínima.
type ReturnRequest struct {
	Reason          string `json:"reason" validate:"omitempty,min=10,max=500"`
	Condition       string `json:"condition" validate:"max=1000"` // nota de estado físico
	StatusID        *int64 `json:"status_id" validate:"omitempty,gt=0"`
	ExpectedVersion *int64 `json:"expected_version" validate:"omitempty,gt=0"`
}

// ChangeStatusRequest cambio de estado de un activo.
type ChangeStatusRequest struct {
	StatusID        int64  `json:"status_id" validate:"required,gt=0"`
	Reason          string `json:"reason" validate:"required,min=10,max=500"`
	Remarks         string `json:"remarks" validate:"max=1000"`
	ExpectedVersion *int64 `json:"expected_version" validate:"omitempty,gt=0"`
}

// MovementResponse salida de un movimiento del historial.
type MovementResponse struct {
	ID              int64     `json:"id"`
	BatchID         string    `json:"batch_id"`
	AssetID         int64     `json:"asset_id"`
	Type            string    `json:"type"`
	FromCustodianID *int64    `json:"from_employee_id"`
	ToCustodianID   *int64    `json:"to_employee_id"`
	FromBranchID    *int64    `json:"from_branch_id"`
	ToBranchID      *int64    `json:"to_branch_id"`
	FromStatusID    *int64    `json:"from_status_id"`
	ToStatusID      *int64    `json:"to_status_id"`
	Reason          string    `json:"reason"`
	Remarks         string    `json:"remarks"`
	ActorID         string    `json:"actor_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// MovementResultResponse resultado de un traslado/devolución/cambio de estado.
type MovementResultResponse struct {
	BatchID   string             `json:"batch_id"`
	Assets    []AssetResponse    `json:"assets"`
	Movements []MovementResponse `json:"movements"`
}

// MovementListResponse historial paginado de un activo.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
