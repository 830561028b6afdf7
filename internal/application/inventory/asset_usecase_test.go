package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

func TestAssetCreate_AuditaTodosLosAtributosNoNulos(t *testing.T) {
	e := newEnv(t)

	res, err := e.assets.Create(context.Background(), testActor, dto.CreateAssetRequest{
		AssetTag:           "LAP-100",
		Name:               "ThinkPad T14",
		CategoryID:         e.fx.Category.ID,
		SubcategoryID:      &e.fx.Subcategory.ID,
		SerialNumber:       "PF-3XK2",
		PurchaseDate:       ptr("2024-05-04"),
		AcqCost:            decimal.RequireFromString("4800.00"),
		EstimateLifeMonths: 48,
		StatusID:           e.fx.Available.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Version)
	assert.Equal(t, "2024-05-04", *res.PurchaseDate)

	logs := e.store.AuditLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, entity.AuditActionCreated, logs[0].Action)
	assert.Equal(t, "4800.00", logs[0].Changes["acq_cost"].New)
	assert.Equal(t, e.fx.Subcategory.ID, logs[0].Changes["sub_category_id"].New)
	_, hasVendor := logs[0].Changes["vendor_id"]
	assert.False(t, hasVendor)
	assert.Equal(t, 1, e.cache.invalidations)
}

func TestAssetCreate_Validaciones(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	base := func() dto.CreateAssetRequest {
		return dto.CreateAssetRequest{AssetTag: "X-1", Name: "Monitor", CategoryID: e.fx.Category.ID, StatusID: e.fx.Available.ID}
	}

	req := base()
	req.AcqCost = decimal.NewFromInt(-1)
	_, err := e.assets.Create(ctx, testActor, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = base()
	req.CategoryID = 999
	_, err = e.assets.Create(ctx, testActor, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = base()
	req.SubcategoryID = &e.fx.Category.ID // raíz, no subcategoría
	_, err = e.assets.Create(ctx, testActor, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = base()
	req.PurchaseDate = ptr("04/05/2024")
	_, err = e.assets.Create(ctx, testActor, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.assets.Create(ctx, testActor, base())
	require.NoError(t, err)
	_, err = e.assets.Create(ctx, testActor, base())
	assert.ErrorIs(t, err, domain.ErrDuplicate, "asset_tag es único")

	assert.Len(t, e.store.AuditLogs(), 1)
}

func TestAssetUpdate_DiffSoloDeCamposModificados(t *testing.T) {
	e := newEnv(t)
	a := e.store.AddAsset(t, e.fx, "U-1")

	res, err := e.assets.Update(context.Background(), testActor, a.ID, dto.UpdateAssetRequest{
		Location: ptr("Bodega central"),
		Name:     ptr(a.Name), // sin cambio
	})
	require.NoError(t, err)
	assert.Equal(t, "Bodega central", res.Location)

	logs := e.store.AuditLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, map[string]entity.FieldChange{
		"location": {Old: "", New: "Bodega central"},
	}, logs[0].Changes)
	assert.Empty(t, e.store.Movements(), "editar datos no genera movimientos")
}

func TestAssetUpdate_VersionDesactualizada(t *testing.T) {
	e := newEnv(t)
	a := e.store.AddAsset(t, e.fx, "U-2")
	_, err := e.assets.Update(context.Background(), testActor, a.ID, dto.UpdateAssetRequest{
		ExpectedVersion: ptr(int64(5)),
		Remarks:         ptr("nota"),
	})
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
	assert.Empty(t, e.store.AuditLogs())
}

func TestAssetDelete(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	a := e.store.AddAsset(t, e.fx, "DEL-1")

	require.NoError(t, e.assets.Delete(ctx, testActor, a.ID))
	assert.Nil(t, e.store.Asset(a.ID))
	logs := e.store.AuditLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, entity.AuditActionDeleted, logs[0].Action)
	assert.Equal(t, "DEL-1", logs[0].Changes["asset_tag"].Old)
	assert.Nil(t, logs[0].Changes["asset_tag"].New)

	assert.ErrorIs(t, e.assets.Delete(ctx, testActor, a.ID), domain.ErrNotFound)
}

func TestAssetDelete_ConHistorialEsConflicto(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	a := e.store.AddAsset(t, e.fx, "DEL-2")
	_, err := e.movements.Transfer(ctx, testActor, a.ID, dto.TransferRequest{ToCustodianID: &e.fx.Bob.ID, Reason: "Asignación previa"})
	require.NoError(t, err)

	err = e.assets.Delete(ctx, testActor, a.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NotNil(t, e.store.Asset(a.ID))
}

func TestAssetGetAndList(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.store.AddAsset(t, e.fx, "L-1", func(a *entity.Asset) { a.BranchID = &e.fx.BranchA.ID })
	e.store.AddAsset(t, e.fx, "L-2", func(a *entity.Asset) { a.BranchID = &e.fx.BranchB.ID })
	e.store.AddAsset(t, e.fx, "L-3", func(a *entity.Asset) { a.BranchID = &e.fx.BranchA.ID })

	list, err := e.assets.List(ctx, dto.AssetFilterRequest{BranchID: &e.fx.BranchA.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Page.Total)
	assert.Equal(t, 20, list.Page.Limit)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "L-1", list.Items[0].AssetTag)

	got, err := e.assets.GetByID(ctx, list.Items[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "L-3", got.AssetTag)
	assert.True(t, got.BookValue.Equal(decimal.NewFromInt(1000)), "sin fecha de compra vale el costo")

	_, err = e.assets.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssetCreate_CustodioInactivoSeRechaza(t *testing.T) {
	e := newEnv(t)

	_, err := e.assets.Create(context.Background(), testActor, dto.CreateAssetRequest{
		AssetTag:    "LAP-300",
		Name:        "Latitude 5440",
		CategoryID:  e.fx.Category.ID,
		StatusID:    e.fx.Assigned.ID,
		CustodianID: &e.fx.Inactive.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, e.store.AuditLogs())
}
