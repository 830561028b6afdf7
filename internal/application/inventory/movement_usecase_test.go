package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	appinv "github.com/jhoicas/Activos-api/internal/application/inventory"
	"github.com/jhoicas/Activos-api/internal/application/mutation"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/testutil/memstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var (
	testNow   = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	testActor = mutation.Actor{UserID: "tech-7", IP: "192.168.1.20"}
)

type countingCache struct{ invalidations int }

func (c *countingCache) Get(context.Context, string) (any, bool)         { return nil, false }
func (c *countingCache) Set(context.Context, string, any, time.Duration) {}
func (c *countingCache) Invalidate(context.Context, string) error {
	c.invalidations++
	return nil
}

type env struct {
	store     *memstore.Store
	fx        *memstore.Fixture
	cache     *countingCache
	mutations *mutation.Service
	movements *appinv.MovementUseCase
	assets    *appinv.AssetUseCase
	repairs   *appinv.RepairUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memstore.New()
	fx := store.Seed(t)
	cache := &countingCache{}
	pipeline := mutation.NewPipeline(nil).
		InTx(mutation.NewAuditWriter()).
		AfterCommit(mutation.NewCacheInvalidator(cache, []string{"dashboard_summary"}, entity.EntityAsset, entity.EntityRepair))
	svc := mutation.NewService(store, pipeline).WithClock(func() time.Time { return testNow })
	return &env{
		store:     store,
		fx:        fx,
		cache:     cache,
		mutations: svc,
		movements: appinv.NewMovementUseCase(svc, store.Repos(), 3),
		assets:    appinv.NewAssetUseCase(svc, store.Repos()),
		repairs:   appinv.NewRepairUseCase(svc, store.Repos(), true),
	}
}

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Transfer
// ──────────────────────────────────────────────────────────────────────────────

func TestTransfer_ActualizaActivoYRegistraUnMovimiento(t *testing.T) {
	e := newEnv(t)
	a := e.store.AddAsset(t, e.fx, "LAP-001")

	res, err := e.movements.Transfer(context.Background(), testActor, a.ID, dto.TransferRequest{
		ToCustodianID: &e.fx.Alice.ID,
		ToBranchID:    &e.fx.BranchA.ID,
		Reason:        "Asignación a nuevo ingreso",
	})
	require.NoError(t, err)
	require.Len(t, res.Movements, 1)
	assert.NotEmpty(t, res.BatchID)

	got := e.store.Asset(a.ID)
	assert.Equal(t, e.fx.Alice.ID, *got.CustodianID)
	assert.Equal(t, e.fx.BranchA.ID, *got.BranchID)
	assert.Equal(t, int64(2), got.Version)

	movs := e.store.Movements()
	require.Len(t, movs, 1)
	m := movs[0]
	assert.Equal(t, entity.MovementTypeTransfer, m.Type)
	assert.Nil(t, m.FromCustodianID)
	assert.Equal(t, e.fx.Alice.ID, *m.ToCustodianID)
	assert.Nil(t, m.FromBranchID)
	assert.Equal(t, e.fx.BranchA.ID, *m.ToBranchID)
	assert.Nil(t, m.FromStatusID, "un traslado no toca el estado")
	assert.Equal(t, "tech-7", m.ActorID)
	assert.Equal(t, testNow, m.CreatedAt)

	logs := e.store.AuditLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, entity.AuditActionUpdated, logs[0].Action)
	assert.Len(t, logs[0].Changes, 2)
	assert.Equal(t, e.fx.Alice.ID, logs[0].Changes["assigned_to_employee_id"].New)
	assert.Equal(t, 1, e.cache.invalidations)
}

func TestTransfer_SoloSucursalConservaCustodio(t *testing.T) {
	e := newEnv(t)
	a := e.store.AddAsset(t, e.fx, "LAP-002", func(a *entity.Asset) {
		a.CustodianID = &e.fx.Alice.ID
		a.BranchID = &e.fx.BranchA.ID
	})

	_, err := e.movements.Transfer(context.Background(), testActor, a.ID, dto.TransferRequest{
		ToBranchID: &e.fx.BranchB.ID,
		Reason:     "Traslado de sede por remodelación",
	})
	require.NoError(t, err)

	got := e.store.Asset(a.ID)
	assert.Equal(t, e.fx.Alice.ID, *got.CustodianID)
	assert.Equal(t, e.fx.BranchB.ID, *got.BranchID)
	m := e.store.Movements()[0]
	assert.Equal(t, e.fx.BranchA.ID, *m.FromBranchID)
	assert.Equal(t, e.fx.Alice.ID, *m.FromCustodianID)
	assert.Equal(t, e.fx.Alice.ID, *m.ToCustodianID)
}

func TestTransfer_RepetidoGeneraDosMovimientos(t *testing.T) {
	e := newEnv(t)
	a := e.store.AddAsset(t, e.fx, "LAP-003")
	req := dto.TransferRequest{ToCustodianID: &e.fx.Bob.ID, Reason: "Reasignación por rotación"}

	_, err := e.movements.Transfer(context.Background(), testActor, a.ID, req)
	require.NoError(t, err)
	_, err = e.movements.Transfer(context.Background(), testActor, a.ID, req)
	require.NoError(t, err)

	assert.Len(t, e.store.Movements(), 2)
	assert.Len(t, e.store.AuditLogs(), 1, "el segundo traslado no cambia atributos")
}

func TestTransfer_Validaciones(t *testing.T) {
	e := newEnv(t)
	a := e.store.AddAsset(t, e.fx, "LAP-004")
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.TransferRequest
		id   int64
		want error
	}{
		{"motivo vacío", dto.TransferRequest{ToCustodianID: &e.fx.Bob.ID}, a.ID, domain.ErrReasonTooShort},
		{"motivo de 9 caracteres", dto.TransferRequest{ToCustodianID: &e.fx.Bob.ID, Reason: "123456789"}, a.ID, domain.ErrReasonTooShort},
		{"motivo con espacios de borde", dto.TransferRequest{ToCustodianID: &e.fx.Bob.ID, Reason: "   corto   "}, a.ID, domain.ErrReasonTooShort},
		{"sin destino", dto.TransferRequest{Reason: "Motivo suficiente"}, a.ID, domain.ErrInvalidInput},
		{"empleado inexistente", dto.TransferRequest{ToCustodianID: ptr(int64(999)), Reason: "Motivo suficiente"}, a.ID, domain.ErrInvalidInput},
		{"empleado inactivo", dto.TransferRequest{ToCustodianID: &e.fx.Inactive.ID, Reason: "Motivo suficiente"}, a.ID, domain.ErrInvalidInput},
		{"sucursal inexistente", dto.TransferRequest{ToBranchID: ptr(int64(999)), Reason: "Motivo suficiente"}, a.ID, domain.ErrInvalidInput},
		{"activo inexistente", dto.TransferRequest{ToCustodianID: &e.fx.Bob.ID, Reason: "Motivo suficiente"}, 999, domain.ErrNotFound},
		{"versión desactualizada", dto.TransferRequest{ToCustodianID: &e.fx.Bob.ID, Reason: "Motivo suficiente", ExpectedVersion: ptr(int64(7))}, a.ID, domain.ErrVersionConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.movements.Transfer(ctx, testActor, tc.id, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Empty(t, e.store.Movements())
	assert.Empty(t, e.store.AuditLogs())
	assert.Zero(t, e.cache.invalidations)
}

func TestTransfer_MotivoDeDiezCaracteresEsValido(t *testing.T) {
	e := newEnv(t)
	a := e.store.AddAsset(t, e.fx, "LAP-005")
	_, err := e.movements.Transfer(context.Background(), testActor, a.ID, dto.TransferRequest{
		ToCustodianID: &e.fx.Bob.ID,
		Reason:        "áéíóúñ1234",
	})
	assert.NoError(t, err, "se cuentan caracteres, no bytes")
}

// ──────────────────────────────────────────────────────────────────────────────
// BulkTransfer
// ──────────────────────────────────────────────────────────────────────────────

func TestBulkTransfer_TodosLosActivosConUnMismoLote(t *testing.T) {
	e := newEnv(t)
	a1 := e.store.AddAsset(t, e.fx, "B-1")
	a2 := e.store.AddAsset(t, e.fx, "B-2")
	a3 := e.store.AddAsset(t, e.fx, "B-3")

	res, err := e.movements.BulkTransfer(context.Background(), testActor, dto.BulkTransferRequest{
		AssetIDs:      []int64{a3.ID, a1.ID, a2.ID, a1.ID},
		ToCustodianID: e.fx.Bob.ID,
		Reason:        "Reassigned for Q3 rollout",
	})
	require.NoError(t, err)
	require.Len(t, res.Assets, 3)
	assert.Equal(t, []int64{a1.ID, a2.ID, a3.ID}, []int64{res.Assets[0].ID, res.Assets[1].ID, res.Assets[2].ID})

	movs := e.store.Movements()
	require.Len(t, movs, 3)
	for _, m := range movs {
		assert.Equal(t, entity.MovementTypeBulkTransfer, m.Type)
		assert.Equal(t, res.BatchID, m.BatchID)
		assert.Equal(t, e.fx.Bob.ID, *m.ToCustodianID)
	}
	for _, id := range []int64{a1.ID, a2.ID, a3.ID} {
		assert.Equal(t, e.fx.Bob.ID, *e.store.Asset(id).CustodianID)
	}
	assert.Len(t, e.store.AuditLogs(), 3)
	assert.Equal(t, 1, e.cache.invalidations, "una invalidación por operación")
}

func TestBulkTransfer_ActivoInexistenteRechazaTodoElLote(t *testing.T) {
	e := newEnv(t)
	a1 := e.store.AddAsset(t, e.fx, "C-1")
	a2 := e.store.AddAsset(t, e.fx, "C-2")

	_, err := e.movements.BulkTransfer(context.Background(), testActor, dto.BulkTransferRequest{
		AssetIDs:      []int64{a1.ID, a2.ID, 99},
		ToCustodianID: e.fx.Bob.ID,
		Reason:        "Reassigned for Q3 rollout",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	assert.Nil(t, e.store.Asset(a1.ID).CustodianID)
	assert.Nil(t, e.store.Asset(a2.ID).CustodianID)
	assert.Empty(t, e.store.Movements())
	assert.Empty(t, e.store.AuditLogs())
	assert.Zero(t, e.cache.invalidations)
}

func TestBulkTransfer_FalloIntermedioRevierteLosAnteriores(t *testing.T) {
	e := newEnv(t)
	a1 := e.store.AddAsset(t, e.fx, "D-1")
	a2 := e.store.AddAsset(t, e.fx, "D-2")
	e.store.FailAssetUpdateID = a2.ID

	_, err := e.movements.BulkTransfer(context.Background(), testActor, dto.BulkTransferRequest{
		AssetIDs:      []int64{a1.ID, a2.ID},
		ToCustodianID: e.fx.Alice.ID,
		Reason:        "Reassigned for Q3 rollout",
	})
	require.ErrorIs(t, err, memstore.ErrInjected)
	assert.Nil(t, e.store.Asset(a1.ID).CustodianID)
	assert.Empty(t, e.store.Movements())
}

func TestBulkTransfer_ExcedeElMaximo(t *testing.T) {
	e := newEnv(t)
	_, err := e.movements.BulkTransfer(context.Background(), testActor, dto.BulkTransferRequest{
		AssetIDs:      []int64{1, 2, 3, 4},
		ToCustodianID: e.fx.Alice.ID,
		Reason:        "Reassigned for Q3 rollout",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Return
// ──────────────────────────────────────────────────────────────────────────────

func TestReturn_LimpiaCustodioYSucursal(t *testing.T) {
	e := newEnv(t)
	a := e.store.AddAsset(t, e.fx, "R-1", func(a *entity.Asset) {
		a.CustodianID = &e.fx.Alice.ID
		a.BranchID = &e.fx.BranchA.ID
		a.StatusID = e.fx.Assigned.ID
	})

	_, err := e.movements.Return(context.Background(), testActor, a.ID, dto.ReturnRequest{
		Condition: "Pantalla con rayones",
		StatusID:  &e.fx.Available.ID,
	})
	require.NoError(t, err)

	got := e.store.Asset(a.ID)
	assert.Nil(t, got.CustodianID)
	assert.Nil(t, got.BranchID)
	assert.Equal(t, e.fx.Available.ID, got.StatusID)

	m := e.store.Movements()[0]
	assert.Equal(t, entity.MovementTypeReturn, m.Type)
	assert.Equal(t, appinv.DefaultReturnReason, m.Reason)
	assert.Equal(t, "Pantalla con rayones", m.Remarks)
	assert.Equal(t, e.fx.Alice.ID, *m.FromCustodianID)
	assert.Nil(t, m.ToCustodianID)
	assert.Equal(t, e.fx.Assigned.ID, *m.FromStatusID)
	assert.Equal(t, e.fx.Available.ID, *m.ToStatusID)
}

func TestReturn_ActivoYaEnInventario(t *testing.T) {
	e := newEnv(t)
	a := e.store.AddAsset(t, e.fx, "R-2")
	_, err := e.movements.Return(context.Background(), testActor, a.ID, dto.ReturnRequest{})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestReturn_MotivoExplicitoCorto(t *testing.T) {
	e := newEnv(t)
	a := e.store.AddAsset(t, e.fx, "R-3", func(a *entity.Asset) { a.CustodianID = &e.fx.Bob.ID })
	_, err := e.movements.Return(context.Background(), testActor, a.ID, dto.ReturnRequest{Reason: "corto"})
	assert.ErrorIs(t, err, domain.ErrReasonTooShort)
}

// ──────────────────────────────────────────────────────────────────────────────
// ChangeStatus e historial
// ──────────────────────────────────────────────────────────────────────────────

func TestChangeStatus_RegistraEstadoAnteriorYNuevo(t *testing.T) {
	e := newEnv(t)
	a := e.store.AddAsset(t, e.fx, "S-1")

	_, err := e.movements.ChangeStatus(context.Background(), testActor, a.ID, dto.ChangeStatusRequest{
		StatusID: e.fx.Retired.ID,
		Reason:   "Equipo obsoleto, sin soporte",
	})
	require.NoError(t, err)

	assert.Equal(t, e.fx.Retired.ID, e.store.Asset(a.ID).StatusID)
	logs := e.store.AuditLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, entity.FieldChange{Old: e.fx.Available.ID, New: e.fx.Retired.ID}, logs[0].Changes["status_id"])
	m := e.store.Movements()[0]
	assert.Equal(t, entity.MovementTypeStatusChange, m.Type)
	assert.Equal(t, e.fx.Available.ID, *m.FromStatusID)
}

func TestChangeStatus_LongitudDelMotivo(t *testing.T) {
	e := newEnv(t)
	a := e.store.AddAsset(t, e.fx, "S-2")
	ctx := context.Background()

	for reason, want := range map[string]error{
		"":           domain.ErrReasonTooShort,
		"123456789":  domain.ErrReasonTooShort,
		"1234567890": nil,
	} {
		_, err := e.movements.ChangeStatus(ctx, testActor, a.ID, dto.ChangeStatusRequest{StatusID: e.fx.Assigned.ID, Reason: reason})
		if want == nil {
			assert.NoError(t, err, "motivo %q", reason)
		} else {
			assert.ErrorIs(t, err, want, "motivo %q", reason)
		}
	}
}

func TestChangeStatus_EstadoInexistente(t *testing.T) {
	e := newEnv(t)
	a := e.store.AddAsset(t, e.fx, "S-3")
	_, err := e.movements.ChangeStatus(context.Background(), testActor, a.ID, dto.ChangeStatusRequest{StatusID: 999, Reason: "Motivo suficiente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistory_OrdenDescendente(t *testing.T) {
	e := newEnv(t)
	a := e.store.AddAsset(t, e.fx, "H-1")
	ctx := context.Background()
	_, err := e.movements.Transfer(ctx, testActor, a.ID, dto.TransferRequest{ToCustodianID: &e.fx.Alice.ID, Reason: "Primera asignación"})
	require.NoError(t, err)
	_, err = e.movements.Return(ctx, testActor, a.ID, dto.ReturnRequest{})
	require.NoError(t, err)

	hist, err := e.movements.History(ctx, a.ID, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, hist.Items, 2)
	assert.Equal(t, entity.MovementTypeReturn, hist.Items[0].Type)
	assert.Equal(t, entity.MovementTypeTransfer, hist.Items[1].Type)

	_, err = e.movements.History(ctx, 999, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia optimista
// ──────────────────────────────────────────────────────────────────────────────

func TestTransfer_VersionEsperadaVigente(t *testing.T) {
	e := newEnv(t)
	a := e.store.AddAsset(t, e.fx, "V-1")
	ctx := context.Background()

	res, err := e.movements.Transfer(ctx, testActor, a.ID, dto.TransferRequest{
		ToCustodianID: &e.fx.Alice.ID, Reason: "Asignación inicial", ExpectedVersion: ptr(int64(1)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Assets[0].Version)

	// un segundo cliente con la versión vieja pierde la carrera
	_, err = e.movements.Transfer(ctx, testActor, a.ID, dto.TransferRequest{
		ToCustodianID: &e.fx.Bob.ID, Reason: "Asignación competidora", ExpectedVersion: ptr(int64(1)),
	})
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
	assert.Equal(t, e.fx.Alice.ID, *e.store.Asset(a.ID).CustodianID)
}
