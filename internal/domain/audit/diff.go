// Package audit calcula el diff a nivel de atributo que se persiste en audit_logs.
package audit

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// Diff compara dos instantáneas de atributos y devuelve solo los que cambiaron.
// before nil = creación (todos los atributos no nulos de after);
// after nil = eliminación (todos los atributos no nulos de before).
// Los valores deben estar normalizados a tipos comparables (string, int, int64, bool, nil).
func Diff(before, after map[string]any) map[string]entity.FieldChange {
	changes := make(map[string]entity.FieldChange)
	for key, newVal := range after {
		oldVal, existed := before[key]
		if !existed {
			if newVal != nil {
				changes[key] = entity.FieldChange{Old: nil, New: newVal}
			}
			continue
		}
		if !equal(oldVal, newVal) {
			changes[key] = entity.FieldChange{Old: oldVal, New: newVal}
		}
	}
	for key, oldVal := range before {
		if _, ok := after[key]; ok || oldVal == nil {
			continue
		}
		changes[key] = entity.FieldChange{Old: oldVal, New: nil}
	}
	return changes
}

func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	defer func() { _ = recover() }() // tipos no comparables cuentan como distintos
	return a == b
}
