package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// AuditLogFilter criterios de consulta de la bitácora.
type AuditLogFilter struct {
	EntityType string
	EntityID   *int64
	ActorID    string
	Limit      int
	Offset     int
}

// AuditLogRepository puerto append-only de la bitácora de auditoría.
type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	List(ctx context.Context, filter AuditLogFilter) ([]*entity.AuditLog, int, error)
}
