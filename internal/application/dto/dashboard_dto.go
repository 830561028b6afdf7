package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Se calcula una vez y se guarda en caché hasta que cambie un activo o una reparación.
type DashboardSummaryDTO struct {
	TotalAssets      int             `json:"total_assets"`
	AssignedAssets   int             `json:"assigned_assets"`
	UnassignedAssets int             `json:"unassigned_assets"`
	UnderWarranty    int             `json:"under_warranty"`
	TotalAcqCost     decimal.Decimal `json:"total_acq_cost"`

	AssetsByStatus  []StatusCountDTO       `json:"assets_by_status"`
	RepairsByStatus []RepairStatusCountDTO `json:"repairs_by_status"`
	// Reparaciones aún no devueltas y su costo acumulado.
	OpenRepairs    int             `json:"open_repairs"`
	OpenRepairCost decimal.Decimal `json:"open_repair_cost"`

	MovementsLast30Days int       `json:"movements_last_30_days"`
	GeneratedAt         time.Time `json:"generated_at"`
}

// StatusCountDTO activos por estado.
type StatusCountDTO struct {
	StatusID   int64  `json:"status_id"`
	StatusName string `json:"status_name"`
	Count      int    `json:"count"`
}

// RepairStatusCountDTO reparaciones por estado.
type RepairStatusCountDTO struct {
	Status string          `json:"status"`
	Count  int             `json:"count"`
	Cost   decimal.Decimal `json:"cost"`
}
