package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard y el reporte de reposición.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetAssetTotals totales globales; COALESCE devuelve cero sin activos.
func (r *AnalyticsRepo) GetAssetTotals(ctx context.Context, asOf time.Time) (repository.AssetTotals, error) {
	const query = `
	SELECT
	    COUNT(*)                                                   AS total,
	    COUNT(*) FILTER (WHERE assigned_to_employee_id IS NOT NULL) AS assigned,
	    COALESCE(SUM(acq_cost), 0)                                 AS total_acq_cost,
	    COUNT(*) FILTER (WHERE warranty_expiration >= $1::DATE)    AS under_warranty
	FROM assets`

	var t repository.AssetTotals
	err := r.pool.QueryRow(ctx, query, asOf).Scan(&t.Total, &t.Assigned, &t.TotalAcqCost, &t.UnderWarranty)
	if err != nil {
		return repository.AssetTotals{}, fmt.Errorf("analytics.GetAssetTotals: %w", err)
	}
	return t, nil
}

// CountAssetsByStatus incluye estados sin activos gracias al LEFT JOIN.
func (r *AnalyticsRepo) CountAssetsByStatus(ctx context.Context) ([]repository.StatusCount, error) {
	const query = `
	SELECT s.id, s.status_name, COUNT(a.id)
	FROM statuses s
	LEFT JOIN assets a ON a.status_id = s.id
	GROUP BY s.id, s.status_name
	ORDER BY s.id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.CountAssetsByStatus: %w", err)
	}
	defer rows.Close()
	var out []repository.StatusCount
	for rows.Next() {
		var c repository.StatusCount
		if err := rows.Scan(&c.StatusID, &c.StatusName, &c.Count); err != nil {
			return nil, fmt.Errorf("analytics.CountAssetsByStatus scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// CountRepairsByStatus agrupa reparaciones en el orden del flujo Pending → Returned.
func (r *AnalyticsRepo) CountRepairsByStatus(ctx context.Context) ([]repository.RepairStatusCount, error) {
	const query = `
	SELECT status, COUNT(*), COALESCE(SUM(repair_cost), 0)
	FROM repairs
	GROUP BY status
	ORDER BY array_position($1::TEXT[], status)`

	rows, err := r.pool.Query(ctx, query, entity.RepairStatuses)
	if err != nil {
		return nil, fmt.Errorf("analytics.CountRepairsByStatus: %w", err)
	}
	defer rows.Close()
	var out []repository.RepairStatusCount
	for rows.Next() {
		var c repository.RepairStatusCount
		if err := rows.Scan(&c.Status, &c.Count, &c.Cost); err != nil {
			return nil, fmt.Errorf("analytics.CountRepairsByStatus scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// CountMovementsSince movimientos registrados desde since (inclusive).
func (r *AnalyticsRepo) CountMovementsSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM asset_movements WHERE created_at >= $1`, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountMovementsSince: %w", err)
	}
	return n, nil
}

// ListAssetsForReplacement activos con fin de vida (compra + vida útil) anterior o igual a before.
func (r *AnalyticsRepo) ListAssetsForReplacement(ctx context.Context, before time.Time, branchID *int64) ([]*entity.Asset, error) {
	query := `
	SELECT ` + assetColumns + `
	FROM assets
	WHERE purchase_date IS NOT NULL
	  AND estimate_life > 0
	  AND purchase_date + make_interval(months => estimate_life) <= $1
	  AND ($2::BIGINT IS NULL OR branch_id = $2)
	ORDER BY id`

	rows, err := r.pool.Query(ctx, query, before, branchID)
	if err != nil {
		return nil, fmt.Errorf("analytics.ListAssetsForReplacement: %w", err)
	}
	defer rows.Close()
	var out []*entity.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("analytics.ListAssetsForReplacement scan: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
