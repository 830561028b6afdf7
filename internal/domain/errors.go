package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrReasonTooShort    = errors.New("el motivo debe tener al menos 10 caracteres")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrVersionConflict   = errors.New("el registro fue modificado por otra petición")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrAuditWrite        = errors.New("no se pudo registrar la auditoría")
)
