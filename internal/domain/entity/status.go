package entity

import "time"

// Status estado configurable de un activo (Disponible, Asignado, De baja, ...).
type Status struct {
	ID          int64
	Name        string // único
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Attributes devuelve la instantánea auditable.
func (s *Status) Attributes() map[string]any {
	return map[string]any{
		"status_name": s.Name,
		"description": s.Description,
	}
}
