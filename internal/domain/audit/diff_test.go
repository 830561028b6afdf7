package audit_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Activos-api/internal/domain/audit"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

func ptr(v int64) *int64 { return &v }

func TestDiff_SoloCamposModificados(t *testing.T) {
	before := &entity.Asset{Name: "Laptop", StatusID: 1, CustodianID: ptr(3), AcqCost: decimal.NewFromInt(1200)}
	after := *before
	after.StatusID = 2
	after.CustodianID = ptr(5)

	changes := audit.Diff(before.Attributes(), after.Attributes())

	assert.Len(t, changes, 2)
	assert.Equal(t, entity.FieldChange{Old: int64(1), New: int64(2)}, changes["status_id"])
	assert.Equal(t, entity.FieldChange{Old: int64(3), New: int64(5)}, changes["assigned_to_employee_id"])
	assert.NotContains(t, changes, "asset_name")
	assert.NotContains(t, changes, "acq_cost")
}

func TestDiff_Creacion(t *testing.T) {
	v := &entity.Vendor{Name: "Acme", Phone: "555"}

	changes := audit.Diff(nil, v.Attributes())

	assert.Equal(t, entity.FieldChange{Old: nil, New: "Acme"}, changes["vendor_name"])
	assert.Equal(t, entity.FieldChange{Old: nil, New: "555"}, changes["phone"])
	assert.Equal(t, entity.FieldChange{Old: nil, New: ""}, changes["email"], "cadena vacía no es nil")
}

func TestDiff_CreacionOmiteNulos(t *testing.T) {
	a := &entity.Asset{Name: "Monitor", StatusID: 1}

	changes := audit.Diff(nil, a.Attributes())

	assert.NotContains(t, changes, "assigned_to_employee_id")
	assert.NotContains(t, changes, "purchase_date")
	assert.Contains(t, changes, "asset_name")
}

func TestDiff_Eliminacion(t *testing.T) {
	s := &entity.Status{Name: "De baja"}

	changes := audit.Diff(s.Attributes(), nil)

	assert.Equal(t, entity.FieldChange{Old: "De baja", New: nil}, changes["status_name"])
}

func TestDiff_SinCambios(t *testing.T) {
	d := time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)
	a := &entity.Asset{Name: "Switch", PurchaseDate: &d, BranchID: ptr(1)}
	b := *a
	other := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC) // mismo día
	b.PurchaseDate = &other
	b.BranchID = ptr(1)

	assert.Empty(t, audit.Diff(a.Attributes(), b.Attributes()))
}

func TestDiff_LiberarCustodio(t *testing.T) {
	a := &entity.Asset{CustodianID: ptr(7)}
	b := *a
	b.CustodianID = nil

	changes := audit.Diff(a.Attributes(), b.Attributes())

	assert.Equal(t, entity.FieldChange{Old: int64(7), New: nil}, changes["assigned_to_employee_id"])
}
