package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// AssetTotals agregados globales de activos.
type AssetTotals struct {
	Total         int
	Assigned      int // con custodio
	TotalAcqCost  decimal.Decimal
	UnderWarranty int
}

// StatusCount activos por estado configurado.
type StatusCount struct {
	StatusID   int64
	StatusName string
	Count      int
}

// RepairStatusCount reparaciones por estado y costo acumulado.
type RepairStatusCount struct {
	Status string
	Count  int
	Cost   decimal.Decimal
}

// AnalyticsRepository consultas de lectura para el dashboard y los reportes.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetAssetTotals cuenta activos, asignados y suma el costo de adquisición.
	// asOf se usa para contar garantías vigentes.
	GetAssetTotals(ctx context.Context, asOf time.Time) (AssetTotals, error)

	// CountAssetsByStatus agrupa por estado, incluyendo estados sin activos (conteo 0).
	CountAssetsByStatus(ctx context.Context) ([]StatusCount, error)

	// CountRepairsByStatus agrupa reparaciones por estado con su costo.
	CountRepairsByStatus(ctx context.Context) ([]RepairStatusCount, error)

	// CountMovementsSince número de movimientos registrados desde la fecha dada.
	CountMovementsSince(ctx context.Context, since time.Time) (int, error)

	// ListAssetsForReplacement activos con fecha de compra y vida útil cuyo fin de vida
	// es anterior o igual a before.
	ListAssetsForReplacement(ctx context.Context, before time.Time, branchID *int64) ([]*entity.Asset, error)
}
