// Package analytics contiene los casos de uso de lectura agregada: el resumen
// del dashboard de activos.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/ports"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// SummaryCacheKey clave única del resumen en caché.
const SummaryCacheKey = "dashboard_summary"

const movementWindowDays = 30

// DashboardUseCase genera el resumen del inventario de activos.
//
// Cache-aside: lee de caché y, si no hay entrada, recalcula desde las tablas y la guarda.
// La entrada se borra completa cuando cambia un activo o una reparación (ver mutation.CacheInvalidator).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	cache         ports.Cache
	ttl           time.Duration
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso. ttl <= 0 guarda sin expiración.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, cache ports.Cache, ttl time.Duration) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, cache: cache, ttl: ttl, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary devuelve el resumen desde caché o lo recalcula.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	if v, ok := uc.cache.Get(ctx, SummaryCacheKey); ok {
		if summary, ok := v.(*dto.DashboardSummaryDTO); ok {
			return summary, nil
		}
	}
	summary, err := uc.compute(ctx)
	if err != nil {
		return nil, err
	}
	// Una escritura que invalide durante compute puede quedar tapada por este Set; el TTL acota esa ventana.
	uc.cache.Set(ctx, SummaryCacheKey, summary, uc.ttl)
	return summary, nil
}

// compute lanza las cuatro consultas en paralelo:
//  1. GetAssetTotals        → totales, asignados, costo, garantías
//  2. CountAssetsByStatus   → activos por estado
//  3. CountRepairsByStatus  → reparaciones por estado y costo
//  4. CountMovementsSince   → movimientos de los últimos 30 días
func (uc *DashboardUseCase) compute(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()

	type totalsResult struct {
		totals repository.AssetTotals
		err    error
	}
	type statusResult struct {
		counts []repository.StatusCount
		err    error
	}
	type repairResult struct {
		counts []repository.RepairStatusCount
		err    error
	}
	type movementsResult struct {
		count int
		err   error
	}

	totalsCh := make(chan totalsResult, 1)
	statusCh := make(chan statusResult, 1)
	repairCh := make(chan repairResult, 1)
	movCh := make(chan movementsResult, 1)

	go func() {
		t, err := uc.analyticsRepo.GetAssetTotals(ctx, now)
		totalsCh <- totalsResult{t, err}
	}()
	go func() {
		c, err := uc.analyticsRepo.CountAssetsByStatus(ctx)
		statusCh <- statusResult{c, err}
	}()
	go func() {
		c, err := uc.analyticsRepo.CountRepairsByStatus(ctx)
		repairCh <- repairResult{c, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountMovementsSince(ctx, now.AddDate(0, 0, -movementWindowDays))
		movCh <- movementsResult{n, err}
	}()

	totals := <-totalsCh
	statuses := <-statusCh
	repairs := <-repairCh
	movements := <-movCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales de activos: %w", totals.err)
	}
	if statuses.err != nil {
		return nil, fmt.Errorf("dashboard: activos por estado: %w", statuses.err)
	}
	if repairs.err != nil {
		return nil, fmt.Errorf("dashboard: reparaciones por estado: %w", repairs.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos: %w", movements.err)
	}

	summary := &dto.DashboardSummaryDTO{
		TotalAssets:         totals.totals.Total,
		AssignedAssets:      totals.totals.Assigned,
		UnassignedAssets:    totals.totals.Total - totals.totals.Assigned,
		UnderWarranty:       totals.totals.UnderWarranty,
		TotalAcqCost:        totals.totals.TotalAcqCost.Round(2),
		AssetsByStatus:      make([]dto.StatusCountDTO, 0, len(statuses.counts)),
		RepairsByStatus:     make([]dto.RepairStatusCountDTO, 0, len(repairs.counts)),
		OpenRepairCost:      decimal.Zero,
		MovementsLast30Days: movements.count,
		GeneratedAt:         now,
	}
	for _, s := range statuses.counts {
		summary.AssetsByStatus = append(summary.AssetsByStatus, dto.StatusCountDTO{
			StatusID: s.StatusID, StatusName: s.StatusName, Count: s.Count,
		})
	}
	for _, r := range repairs.counts {
		summary.RepairsByStatus = append(summary.RepairsByStatus, dto.RepairStatusCountDTO{
			Status: r.Status, Count: r.Count, Cost: r.Cost.Round(2),
		})
		if r.Status != entity.RepairStatusReturned {
			summary.OpenRepairs += r.Count
			summary.OpenRepairCost = summary.OpenRepairCost.Add(r.Cost)
		}
	}
	summary.OpenRepairCost = summary.OpenRepairCost.Round(2)
	return summary, nil
}
