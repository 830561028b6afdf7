package entity

import "time"

// Category representa una categoría de activos. Las subcategorías apuntan a su padre con ParentID.
type Category struct {
	ID          int64
	ParentID    *int64 // nil si es raíz
	Name        string
	Code        string // código único
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Attributes devuelve la instantánea auditable.
func (c *Category) Attributes() map[string]any {
	return map[string]any{
		"parent_id":   idValue(c.ParentID),
		"name":        c.Name,
		"code":        c.Code,
		"description": c.Description,
	}
}
