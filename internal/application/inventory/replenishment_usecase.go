package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain/inventory"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ReplenishmentUseCase genera la lista de activos a reponer por fin de vida útil.
// Incluye los ya vencidos y los que vencen dentro de la ventana de aviso.
type ReplenishmentUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	warnMonths    int
	now           func() time.Time
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(analyticsRepo repository.AnalyticsRepository, warnMonths int) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{analyticsRepo: analyticsRepo, warnMonths: warnMonths, now: time.Now}
}

// GenerateReplenishmentList devuelve los candidatos ordenados por urgencia.
// branchID nil considera todas las sucursales.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context, branchID *int64) (*dto.ReplenishmentReportDTO, error) {
	now := uc.now()
	horizon := now.AddDate(0, uc.warnMonths, 0)

	// 1. Activos cuyo fin de vida cae antes del horizonte
	assets, err := uc.analyticsRepo.ListAssetsForReplacement(ctx, horizon, branchID)
	if err != nil {
		return nil, err
	}

	// 2. Construir los DTOs con valor en libros y meses restantes
	items := make([]dto.ReplacementSuggestionDTO, 0, len(assets))
	total := decimal.Zero
	for _, a := range assets {
		remaining, ok := inventory.MonthsRemaining(a.PurchaseDate, a.EstimateLifeMonths, now)
		if !ok {
			continue
		}
		items = append(items, dto.ReplacementSuggestionDTO{
			AssetID:         a.ID,
			AssetTag:        a.AssetTag,
			Name:            a.Name,
			CategoryID:      a.CategoryID,
			BranchID:        a.BranchID,
			CustodianID:     a.CustodianID,
			PurchaseDate:    a.PurchaseDate.Format(dto.DateLayout),
			EndOfLifeDate:   a.PurchaseDate.AddDate(0, a.EstimateLifeMonths, 0).Format(dto.DateLayout),
			MonthsRemaining: remaining,
			AcqCost:         a.AcqCost,
			BookValue:       inventory.BookValue(a.AcqCost, a.PurchaseDate, a.EstimateLifeMonths, now),
		})
		total = total.Add(a.AcqCost)
	}

	// 3. Ordenar: menos meses restantes primero; empate por mayor costo de adquisición
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.MonthsRemaining != b.MonthsRemaining {
			return a.MonthsRemaining < b.MonthsRemaining
		}
		return a.AcqCost.GreaterThan(b.AcqCost)
	})

	// 4. Asignar prioridad (1 = más urgente)
	for i := range items {
		items[i].Priority = i + 1
	}

	return &dto.ReplenishmentReportDTO{
		WarningMonths:    uc.warnMonths,
		Items:            items,
		TotalReplacement: total.Round(2),
	}, nil
}

// WithClock reemplaza el reloj (tests).
func (uc *ReplenishmentUseCase) WithClock(now func() time.Time) *ReplenishmentUseCase {
	uc.now = now
	return uc
}
