package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRepairRequest entrada para enviar un activo a reparación.
type CreateRepairRequest struct {
	AssetID            int64           `json:"asset_id" validate:"required,gt=0"`
	VendorID           int64           `json:"vendor_id" validate:"required,gt=0"`
	Description        string          `json:"description" validate:"required,min=1,max=1000"`
	RepairDate         string          `json:"repair_date" validate:"required,datetime=2006-01-02"`
	ExpectedReturnDate *string         `json:"expected_return_date" validate:"omitempty,datetime=2006-01-02"`
	Cost               decimal.Decimal `json:"repair_cost"`
	Status             string          `json:"status" validate:"omitempty,oneof='Pending' 'In Repair' 'Completed' 'Returned'"`
	Remarks            string          `json:"remarks" validate:"max=1000"`
}

// UpdateRepairRequest actualización parcial; el estado se cambia con ChangeRepairStatusRequest.
type UpdateRepairRequest struct {
	VendorID           *int64           `json:"vendor_id" validate:"omitempty,gt=0"`
	Description        *string          `json:"description" validate:"omitempty,min=1,max=1000"`
	RepairDate         *string          `json:"repair_date" validate:"omitempty,datetime=2006-01-02"`
	ExpectedReturnDate *string          `json:"expected_return_date" validate:"omitempty,datetime=2006-01-02"`
	ActualReturnDate   *string          `json:"actual_return_date" validate:"omitempty,datetime=2006-01-02"`
	Cost               *decimal.Decimal `json:"repair_cost"`
	Remarks            *string          `json:"remarks" validate:"omitempty,max=1000"`
}

// ChangeRepairStatusRequest cambio de estado de una reparación.
type ChangeRepairStatusRequest struct {
	Status  string `json:"status" validate:"required,oneof='Pending' 'In Repair' 'Completed' 'Returned'"`
	Remarks string `json:"remarks" validate:"max=1000"`
}

// RepairFilterRequest filtros de GET /api/repairs.
type RepairFilterRequest struct {
	PageRequest
	AssetID  *int64 `query:"asset_id"`
	VendorID *int64 `query:"vendor_id"`
	Status   string `query:"status"`
}

// RepairResponse salida de una reparación.
type RepairResponse struct {
	ID                 int64           `json:"id"`
	AssetID            int64           `json:"asset_id"`
	VendorID           int64           `json:"vendor_id"`
	Description        string          `json:"description"`
	RepairDate         string          `json:"repair_date"`
	ExpectedReturnDate *string         `json:"expected_return_date"`
	ActualReturnDate   *string         `json:"actual_return_date"`
	Cost               decimal.Decimal `json:"repair_cost"`
	Status             string          `json:"status"`
	Remarks            string          `json:"remarks"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// RepairListResponse lista paginada de reparaciones.
type RepairListResponse struct {
	Items []RepairResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
