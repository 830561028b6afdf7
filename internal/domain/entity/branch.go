package entity

import "time"

// Branch representa una sucursal u oficina donde se ubican activos.
type Branch struct {
	ID        int64
	Code      string // único
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Attributes devuelve la instantánea auditable.
func (b *Branch) Attributes() map[string]any {
	return map[string]any{
		"branch_code": b.Code,
		"branch_name": b.Name,
		"address":     b.Address,
	}
}

// Section área o departamento dentro de una sucursal.
type Section struct {
	ID        int64
	BranchID  int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Attributes devuelve la instantánea auditable.
func (s *Section) Attributes() map[string]any {
	return map[string]any{
		"branch_id":    s.BranchID,
		"section_name": s.Name,
	}
}
