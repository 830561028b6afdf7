package mutation

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/application/ports"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/audit"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// AuditWriter escribe una fila en audit_logs por cada mutación, en la misma transacción.
// Las actualizaciones sin atributos modificados no generan fila.
type AuditWriter struct{}

// NewAuditWriter construye el hook de auditoría.
func NewAuditWriter() *AuditWriter { return &AuditWriter{} }

// Name identifica el hook en logs y errores.
func (w *AuditWriter) Name() string { return "audit" }

// OnMutation calcula el diff y lo persiste con el repositorio atado a la tx.
func (w *AuditWriter) OnMutation(ctx context.Context, r ports.Repos, m Mutation) error {
	changes := audit.Diff(m.Before, m.After)
	if m.Action == entity.AuditActionUpdated && len(changes) == 0 {
		return nil
	}
	row := &entity.AuditLog{
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		Action:     m.Action,
		Changes:    changes,
		ActorID:    m.Actor.UserID,
		IPAddress:  m.Actor.IP,
		CreatedAt:  m.At,
	}
	if err := r.AuditLogs.Create(ctx, row); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAuditWrite, err)
	}
	return nil
}
