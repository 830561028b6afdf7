package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo bitácora de auditoría; changes se guarda como JSONB.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador de auditoría.
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create inserta una fila de auditoría dentro de la transacción de la mutación.
func (r *AuditLogRepo) Create(ctx context.Context, l *entity.AuditLog) error {
	changes, err := json.Marshal(l.Changes)
	if err != nil {
		return fmt.Errorf("marshal audit changes: %w", err)
	}
	query := `
		INSERT INTO audit_logs (entity_type, entity_id, action, changes, actor_id, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err = r.q.QueryRow(ctx, query,
		l.EntityType, l.EntityID, l.Action, changes, l.ActorID, l.IPAddress, l.CreatedAt,
	).Scan(&l.ID)
	if err != nil {
		return wrap("insert audit log", err)
	}
	return nil
}

// List consulta la bitácora, más reciente primero, con total sin paginar.
func (r *AuditLogRepo) List(ctx context.Context, f repository.AuditLogFilter) ([]*entity.AuditLog, int, error) {
	var w where
	if f.EntityType != "" {
		w.add("entity_type = $%d", f.EntityType)
	}
	if f.EntityID != nil {
		w.add("entity_id = $%d", *f.EntityID)
	}
	if f.ActorID != "" {
		w.add("actor_id = $%d", f.ActorID)
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM audit_logs`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count audit logs: %w", err)
	}

	limit, offset := pageArgs(f.Limit, f.Offset)
	n := w.next()
	query := fmt.Sprintf(`
		SELECT id, entity_type, entity_id, action, changes, actor_id, ip_address, created_at
		FROM audit_logs%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, w.sql(), n, n+1)
	rows, err := r.q.Query(ctx, query, append(w.args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		var raw []byte
		if err := rows.Scan(&l.ID, &l.EntityType, &l.EntityID, &l.Action, &raw, &l.ActorID, &l.IPAddress, &l.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan audit log: %w", err)
		}
		if err := json.Unmarshal(raw, &l.Changes); err != nil {
			return nil, 0, fmt.Errorf("decode audit changes %d: %w", l.ID, err)
		}
		list = append(list, &l)
	}
	return list, total, rows.Err()
}
