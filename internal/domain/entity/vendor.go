package entity

import "time"

// Vendor proveedor de activos y servicios de reparación.
type Vendor struct {
	ID            int64
	Name          string // único
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Attributes devuelve la instantánea auditable.
func (v *Vendor) Attributes() map[string]any {
	return map[string]any{
		"vendor_name":    v.Name,
		"contact_person": v.ContactPerson,
		"phone":          v.Phone,
		"email":          v.Email,
		"address":        v.Address,
	}
}
