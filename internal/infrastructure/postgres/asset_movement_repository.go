package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.AssetMovementRepository = (*AssetMovementRepo)(nil)

// AssetMovementRepo historial append-only de movimientos (pool o tx).
type AssetMovementRepo struct {
	q Querier
}

// NewAssetMovementRepository construye el adaptador de movimientos.
func NewAssetMovementRepository(q Querier) *AssetMovementRepo {
	return &AssetMovementRepo{q: q}
}

// Create inserta un movimiento. No existen Update ni Delete.
func (r *AssetMovementRepo) Create(ctx context.Context, m *entity.AssetMovement) error {
	query := `
		INSERT INTO asset_movements (batch_id, asset_id, movement_type,
			from_employee_id, to_employee_id, from_branch_id, to_branch_id,
			from_status_id, to_status_id, reason, remarks, actor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		m.BatchID, m.AssetID, m.Type,
		m.FromCustodianID, m.ToCustodianID, m.FromBranchID, m.ToBranchID,
		m.FromStatusID, m.ToStatusID, m.Reason, m.Remarks, m.ActorID, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return wrap("insert asset movement", err)
	}
	return nil
}

// ListByAsset historial de un activo, más reciente primero.
func (r *AssetMovementRepo) ListByAsset(ctx context.Context, assetID int64, limit, offset int) ([]*entity.AssetMovement, error) {
	lim, off := pageArgs(limit, offset)
	query := `
		SELECT id, batch_id, asset_id, movement_type,
			from_employee_id, to_employee_id, from_branch_id, to_branch_id,
			from_status_id, to_status_id, reason, remarks, actor_id, created_at
		FROM asset_movements WHERE asset_id = $1
		ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, assetID, lim, off)
	if err != nil {
		return nil, fmt.Errorf("list asset movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.AssetMovement
	for rows.Next() {
		var m entity.AssetMovement
		if err := rows.Scan(
			&m.ID, &m.BatchID, &m.AssetID, &m.Type,
			&m.FromCustodianID, &m.ToCustodianID, &m.FromBranchID, &m.ToBranchID,
			&m.FromStatusID, &m.ToStatusID, &m.Reason, &m.Remarks, &m.ActorID, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan asset movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
