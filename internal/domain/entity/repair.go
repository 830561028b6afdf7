package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una reparación, en orden de avance.
const (
	RepairStatusPending   = "Pending"
	RepairStatusInRepair  = "In Repair"
	RepairStatusCompleted = "Completed"
	RepairStatusReturned  = "Returned"
)

// RepairStatuses conjunto ordenado de estados válidos.
var RepairStatuses = []string{
	RepairStatusPending,
	RepairStatusInRepair,
	RepairStatusCompleted,
	RepairStatusReturned,
}

// Repair representa el envío de un activo a reparación con un proveedor.
type Repair struct {
	ID                 int64
	AssetID            int64
	VendorID           int64
	Description        string
	RepairDate         time.Time
	ExpectedReturnDate *time.Time
	ActualReturnDate   *time.Time
	Cost               decimal.Decimal
	Status             string
	Remarks            string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Attributes devuelve la instantánea auditable de la reparación.
func (r *Repair) Attributes() map[string]any {
	return map[string]any{
		"asset_id":             r.AssetID,
		"vendor_id":            r.VendorID,
		"description":          r.Description,
		"repair_date":          r.RepairDate.Format("2006-01-02"),
		"expected_return_date": dateValue(r.ExpectedReturnDate),
		"actual_return_date":   dateValue(r.ActualReturnDate),
		"repair_cost":          r.Cost.StringFixed(2),
		"status":               r.Status,
		"remarks":              r.Remarks,
	}
}

// IsOpen informa si la reparación aún no fue devuelta.
func (r *Repair) IsOpen() bool {
	return r.Status != RepairStatusReturned
}
