package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/analytics"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/inventory"
	"github.com/jhoicas/Activos-api/internal/application/mutation"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/infrastructure/cache"
	"github.com/jhoicas/Activos-api/internal/testutil/memstore"
)

var now = time.Date(2026, 6, 15, 8, 0, 0, 0, time.UTC)

type fixture struct {
	store     *memstore.Store
	fx        *memstore.Fixture
	analytics *memstore.AnalyticsRepo
	cache     *cache.Memory
	dashboard *analytics.DashboardUseCase
	movements *inventory.MovementUseCase
	repairs   *inventory.RepairUseCase
}

func setup(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	fx := store.Seed(t)
	c := cache.NewMemory()
	pipeline := mutation.NewPipeline(nil).
		InTx(mutation.NewAuditWriter()).
		AfterCommit(mutation.NewCacheInvalidator(c, []string{analytics.SummaryCacheKey}, entity.EntityAsset, entity.EntityRepair))
	svc := mutation.NewService(store, pipeline).WithClock(func() time.Time { return now })
	repo := store.Analytics()
	return &fixture{
		store:     store,
		fx:        fx,
		analytics: repo,
		cache:     c,
		dashboard: analytics.NewDashboardUseCase(repo, c, 0).WithClock(func() time.Time { return now }),
		movements: inventory.NewMovementUseCase(svc, store.Repos(), 100),
		repairs:   inventory.NewRepairUseCase(svc, store.Repos(), true),
	}
}

func TestGetSummary_CalculaAgregados(t *testing.T) {
	f := setup(t)
	warranty := now.AddDate(1, 0, 0)
	f.store.AddAsset(t, f.fx, "A-1", func(a *entity.Asset) {
		a.CustodianID = &f.fx.Alice.ID
		a.StatusID = f.fx.Assigned.ID
		a.AcqCost = decimal.RequireFromString("2500.50")
		a.WarrantyExpiration = &warranty
	})
	f.store.AddAsset(t, f.fx, "A-2")

	s, err := f.dashboard.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, s.TotalAssets)
	assert.Equal(t, 1, s.AssignedAssets)
	assert.Equal(t, 1, s.UnassignedAssets)
	assert.Equal(t, 1, s.UnderWarranty)
	assert.Equal(t, "3500.5", s.TotalAcqCost.String())
	require.Len(t, s.AssetsByStatus, 3, "incluye estados sin activos")
	assert.Equal(t, now, s.GeneratedAt)
}

func TestGetSummary_SegundaLecturaDesdeCache(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	first, err := f.dashboard.GetSummary(ctx)
	require.NoError(t, err)
	second, err := f.dashboard.GetSummary(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, f.analytics.Calls)
}

func TestGetSummary_EscrituraDeActivoInvalidaYRecalcula(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := f.store.AddAsset(t, f.fx, "A-1")

	before, err := f.dashboard.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, before.AssignedAssets)

	_, err = f.movements.Transfer(ctx, mutation.Actor{UserID: "u"}, a.ID, dto.TransferRequest{
		ToCustodianID: &f.fx.Bob.ID,
		Reason:        "Asignación para soporte remoto",
	})
	require.NoError(t, err)

	_, cached := f.cache.Get(ctx, analytics.SummaryCacheKey)
	assert.False(t, cached, "la entrada se borra tras el commit")

	after, err := f.dashboard.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, after.AssignedAssets)
	assert.Equal(t, 1, after.MovementsLast30Days)
	assert.Equal(t, 2, f.analytics.Calls)
}

func TestGetSummary_ReparacionesAbiertas(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := f.store.AddAsset(t, f.fx, "A-1")
	actor := mutation.Actor{UserID: "u"}

	for _, cost := range []string{"100", "250.25"} {
		_, err := f.repairs.Create(ctx, actor, dto.CreateRepairRequest{
			AssetID: a.ID, VendorID: f.fx.Vendor.ID, Description: "Diagnóstico",
			RepairDate: "2026-06-01", Cost: decimal.RequireFromString(cost),
		})
		require.NoError(t, err)
	}

	s, err := f.dashboard.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, s.OpenRepairs)
	assert.Equal(t, "350.25", s.OpenRepairCost.String())
	require.Len(t, s.RepairsByStatus, 1)
	assert.Equal(t, entity.RepairStatusPending, s.RepairsByStatus[0].Status)
}

func TestGetSummary_ErrorDeRepositorioNoSeCachea(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.analytics.Err = errors.New("conexión perdida")

	_, err := f.dashboard.GetSummary(ctx)
	require.Error(t, err)
	_, cached := f.cache.Get(ctx, analytics.SummaryCacheKey)
	assert.False(t, cached)

	f.analytics.Err = nil
	_, err = f.dashboard.GetSummary(ctx)
	assert.NoError(t, err)
}
