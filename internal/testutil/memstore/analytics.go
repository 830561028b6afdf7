package memstore

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// AnalyticsRepo implementa repository.AnalyticsRepository sobre el estado confirmado.
type AnalyticsRepo struct {
	store *Store
	// Err, si no es nil, lo devuelven todas las consultas.
	Err error
	// Calls número de consultas de totales (permite verificar aciertos de caché).
	Calls int
}

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// Analytics devuelve el repositorio de lectura del store.
func (s *Store) Analytics() *AnalyticsRepo {
	return &AnalyticsRepo{store: s}
}

func (r *AnalyticsRepo) GetAssetTotals(_ context.Context, asOf time.Time) (repository.AssetTotals, error) {
	if r.Err != nil {
		return repository.AssetTotals{}, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.Calls++
	t := repository.AssetTotals{TotalAcqCost: decimal.Zero}
	for _, a := range r.store.state.assets.rows {
		t.Total++
		if a.IsAssigned() {
			t.Assigned++
		}
		t.TotalAcqCost = t.TotalAcqCost.Add(a.AcqCost)
		if a.WarrantyExpiration != nil && !a.WarrantyExpiration.Before(asOf) {
			t.UnderWarranty++
		}
	}
	return t, nil
}

func (r *AnalyticsRepo) CountAssetsByStatus(_ context.Context) ([]repository.StatusCount, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	st := r.store.state
	var out []repository.StatusCount
	for _, id := range st.statuses.sortedIDs() {
		c := repository.StatusCount{StatusID: id, StatusName: st.statuses.rows[id].Name}
		for _, a := range st.assets.rows {
			if a.StatusID == id {
				c.Count++
			}
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *AnalyticsRepo) CountRepairsByStatus(_ context.Context) ([]repository.RepairStatusCount, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []repository.RepairStatusCount
	for _, status := range entity.RepairStatuses {
		c := repository.RepairStatusCount{Status: status, Cost: decimal.Zero}
		for _, rep := range r.store.state.repairs.rows {
			if rep.Status == status {
				c.Count++
				c.Cost = c.Cost.Add(rep.Cost)
			}
		}
		if c.Count > 0 {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *AnalyticsRepo) CountMovementsSince(_ context.Context, since time.Time) (int, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	n := 0
	for _, m := range r.store.state.movements.rows {
		if !m.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *AnalyticsRepo) ListAssetsForReplacement(_ context.Context, before time.Time, branchID *int64) ([]*entity.Asset, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	st := r.store.state
	var out []*entity.Asset
	for _, id := range st.assets.sortedIDs() {
		a := st.assets.rows[id]
		if a.PurchaseDate == nil || a.EstimateLifeMonths <= 0 {
			continue
		}
		if branchID != nil && !entity.SameID(a.BranchID, branchID) {
			continue
		}
		endOfLife := a.PurchaseDate.AddDate(0, a.EstimateLifeMonths, 0)
		if endOfLife.After(before) {
			continue
		}
		out = append(out, &a)
	}
	return out, nil
}
