package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	appinv "github.com/jhoicas/Activos-api/internal/application/inventory"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

func createRepair(t *testing.T, e *env, assetID int64) *dto.RepairResponse {
	t.Helper()
	rep, err := e.repairs.Create(context.Background(), testActor, dto.CreateRepairRequest{
		AssetID:     assetID,
		VendorID:    e.fx.Vendor.ID,
		Description: "Cambio de teclado",
		RepairDate:  "2026-05-01",
		Cost:        decimal.RequireFromString("150.50"),
	})
	require.NoError(t, err)
	return rep
}

func TestRepairCreate_IniciaPendienteYAudita(t *testing.T) {
	e := newEnv(t)
	a := e.store.AddAsset(t, e.fx, "REP-1")

	rep := createRepair(t, e, a.ID)
	assert.Equal(t, entity.RepairStatusPending, rep.Status)
	assert.Nil(t, rep.ActualReturnDate)

	logs := e.store.AuditLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, entity.EntityRepair, logs[0].EntityType)
	assert.Equal(t, "150.50", logs[0].Changes["repair_cost"].New)
	assert.Equal(t, 1, e.cache.invalidations)
}

func TestRepairCreate_Validaciones(t *testing.T) {
	e := newEnv(t)
	a := e.store.AddAsset(t, e.fx, "REP-2")
	ctx := context.Background()

	_, err := e.repairs.Create(ctx, testActor, dto.CreateRepairRequest{
		AssetID: 999, VendorID: e.fx.Vendor.ID, Description: "x", RepairDate: "2026-05-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.repairs.Create(ctx, testActor, dto.CreateRepairRequest{
		AssetID: a.ID, VendorID: e.fx.Vendor.ID, Description: "x", RepairDate: "2026-05-01", Status: "Lost",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.repairs.Create(ctx, testActor, dto.CreateRepairRequest{
		AssetID: a.ID, VendorID: e.fx.Vendor.ID, Description: "x", RepairDate: "2026-05-01",
		ExpectedReturnDate: ptr("2026-04-01"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, e.store.AuditLogs())
}

func TestRepairCreate_EstrictoSoloIniciaEnPending(t *testing.T) {
	e := newEnv(t)
	a := e.store.AddAsset(t, e.fx, "REP-3")
	ctx := context.Background()
	in := dto.CreateRepairRequest{
		AssetID: a.ID, VendorID: e.fx.Vendor.ID, Description: "Cambio de disco", RepairDate: "2026-05-01",
		Status: entity.RepairStatusReturned,
	}

	_, err := e.repairs.Create(ctx, testActor, in)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Empty(t, e.store.AuditLogs())

	permissive := appinv.NewRepairUseCase(e.mutations, e.store.Repos(), false)
	res, err := permissive.Create(ctx, testActor, in)
	require.NoError(t, err)
	assert.Equal(t, entity.RepairStatusReturned, res.Status)
}

func TestRepairChangeStatus_Estricto(t *testing.T) {
	e := newEnv(t)
	a := e.store.AddAsset(t, e.fx, "REP-3")
	rep := createRepair(t, e, a.ID)
	ctx := context.Background()

	_, err := e.repairs.ChangeStatus(ctx, testActor, rep.ID, dto.ChangeRepairStatusRequest{Status: entity.RepairStatusReturned})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	for _, next := range []string{entity.RepairStatusInRepair, entity.RepairStatusCompleted, entity.RepairStatusReturned} {
		_, err = e.repairs.ChangeStatus(ctx, testActor, rep.ID, dto.ChangeRepairStatusRequest{Status: next})
		require.NoError(t, err, next)
	}

	got := e.store.Repair(rep.ID)
	assert.Equal(t, entity.RepairStatusReturned, got.Status)
	require.NotNil(t, got.ActualReturnDate)
	assert.Equal(t, "2026-05-04", got.ActualReturnDate.Format(dto.DateLayout))

	_, err = e.repairs.ChangeStatus(ctx, testActor, rep.ID, dto.ChangeRepairStatusRequest{Status: entity.RepairStatusPending})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "Returned es final")
	// creación + 3 cambios
	assert.Len(t, e.store.AuditLogs(), 4)
}

func TestRepairChangeStatus_Permisivo(t *testing.T) {
	e := newEnv(t)
	permissive := appinv.NewRepairUseCase(e.mutations, e.store.Repos(), false)
	a := e.store.AddAsset(t, e.fx, "REP-4")
	rep := createRepair(t, e, a.ID)

	res, err := permissive.ChangeStatus(context.Background(), testActor, rep.ID, dto.ChangeRepairStatusRequest{Status: entity.RepairStatusReturned})
	require.NoError(t, err)
	assert.Equal(t, entity.RepairStatusReturned, res.Status)
	assert.NotNil(t, res.ActualReturnDate)
}

func TestRepairChangeStatus_NoExiste(t *testing.T) {
	e := newEnv(t)
	_, err := e.repairs.ChangeStatus(context.Background(), testActor, 42, dto.ChangeRepairStatusRequest{Status: entity.RepairStatusInRepair})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepairUpdateDeleteList(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	a := e.store.AddAsset(t, e.fx, "REP-5")
	rep := createRepair(t, e, a.ID)

	upd, err := e.repairs.Update(ctx, testActor, rep.ID, dto.UpdateRepairRequest{
		Cost:               ptr(decimal.RequireFromString("180")),
		ExpectedReturnDate: ptr("2026-05-20"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-05-20", *upd.ExpectedReturnDate)

	list, err := e.repairs.List(ctx, dto.RepairFilterRequest{AssetID: &a.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Page.Total)

	_, err = e.repairs.List(ctx, dto.RepairFilterRequest{Status: "pending"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, e.repairs.Delete(ctx, testActor, rep.ID))
	_, err = e.repairs.GetByID(ctx, rep.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	logs := e.store.AuditLogs()
	require.Len(t, logs, 3)
	assert.Equal(t, entity.AuditActionDeleted, logs[2].Action)
	assert.Equal(t, 3, e.cache.invalidations)
}

func TestReplenishment_OrdenaPorUrgencia(t *testing.T) {
	e := newEnv(t)
	date := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}
	// vencido hace 4 meses
	old := e.store.AddAsset(t, e.fx, "OLD", func(a *entity.Asset) {
		a.PurchaseDate = date(2023, 1, 4)
		a.EstimateLifeMonths = 36
	})
	// vence en 3 meses, dos activos empatados: gana el de mayor costo
	soonCheap := e.store.AddAsset(t, e.fx, "SOON-1", func(a *entity.Asset) {
		a.PurchaseDate = date(2023, 8, 4)
		a.EstimateLifeMonths = 36
		a.AcqCost = decimal.NewFromInt(500)
	})
	soonExpensive := e.store.AddAsset(t, e.fx, "SOON-2", func(a *entity.Asset) {
		a.PurchaseDate = date(2023, 8, 4)
		a.EstimateLifeMonths = 36
		a.AcqCost = decimal.NewFromInt(3000)
	})
	// fuera de la ventana de aviso
	e.store.AddAsset(t, e.fx, "NEW", func(a *entity.Asset) {
		a.PurchaseDate = date(2026, 1, 1)
		a.EstimateLifeMonths = 36
	})
	// sin datos de vida útil
	e.store.AddAsset(t, e.fx, "NODATA")

	uc := appinv.NewReplenishmentUseCase(e.store.Analytics(), 6).WithClock(func() time.Time { return testNow })
	report, err := uc.GenerateReplenishmentList(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, report.Items, 3)

	assert.Equal(t, old.ID, report.Items[0].AssetID)
	assert.Equal(t, -4, report.Items[0].MonthsRemaining)
	assert.True(t, report.Items[0].BookValue.IsZero())
	assert.Equal(t, soonExpensive.ID, report.Items[1].AssetID)
	assert.Equal(t, soonCheap.ID, report.Items[2].AssetID)
	assert.Equal(t, 3, report.Items[2].MonthsRemaining)
	assert.Equal(t, []int{1, 2, 3}, []int{report.Items[0].Priority, report.Items[1].Priority, report.Items[2].Priority})
	assert.Equal(t, "2026-08-04", report.Items[1].EndOfLifeDate)
	assert.True(t, report.TotalReplacement.Equal(decimal.NewFromInt(4500)))
}
