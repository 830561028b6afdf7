package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset representa un activo de TI inventariado (equipo de cómputo, periférico, mobiliario técnico).
// CustodianID y BranchID son nil cuando el activo está en inventario (sin asignar).
type Asset struct {
	ID                 int64
	AssetTag           string // código de inventario visible en la etiqueta
	Name               string
	CategoryID         int64
	SubcategoryID      *int64
	SerialNumber       string
	PurchaseDate       *time.Time
	AcqCost            decimal.Decimal // costo de adquisición
	EstimateLifeMonths int             // vida útil estimada
	VendorID           *int64
	StatusID           int64
	CustodianID        *int64 // empleado responsable
	BranchID           *int64
	EquipmentID        string
	Location           string
	Remarks            string
	WarrantyExpiration *time.Time
	Version            int64 // control de concurrencia optimista
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsAssigned informa si el activo tiene custodio.
func (a *Asset) IsAssigned() bool {
	return a.CustodianID != nil
}

// Attributes devuelve la instantánea auditable del activo.
func (a *Asset) Attributes() map[string]any {
	return map[string]any{
		"asset_tag":               a.AssetTag,
		"asset_name":              a.Name,
		"asset_category_id":       a.CategoryID,
		"sub_category_id":         idValue(a.SubcategoryID),
		"serial_number":           a.SerialNumber,
		"purchase_date":           dateValue(a.PurchaseDate),
		"acq_cost":                a.AcqCost.StringFixed(2),
		"estimate_life":           a.EstimateLifeMonths,
		"vendor_id":               idValue(a.VendorID),
		"status_id":               a.StatusID,
		"assigned_to_employee_id": idValue(a.CustodianID),
		"branch_id":               idValue(a.BranchID),
		"equipment_id":            a.EquipmentID,
		"location":                a.Location,
		"remarks":                 a.Remarks,
		"warranty_expiration":     dateValue(a.WarrantyExpiration),
	}
}

// idValue normaliza referencias opcionales para la auditoría (nil o int64).
func idValue(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

// dateValue normaliza fechas opcionales a YYYY-MM-DD.
func dateValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}

// SameID compara dos referencias opcionales.
func SameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
