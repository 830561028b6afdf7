package memstore

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// Fixture catálogo mínimo sembrado para pruebas de casos de uso.
type Fixture struct {
	Category    *entity.Category
	Subcategory *entity.Category
	Available   *entity.Status // "Disponible"
	Assigned    *entity.Status // "Asignado"
	Retired     *entity.Status // "De baja"
	BranchA     *entity.Branch
	BranchB     *entity.Branch
	Alice       *entity.Employee
	Bob         *entity.Employee
	Inactive    *entity.Employee
	Vendor      *entity.Vendor
}

// Seed crea el catálogo base fuera de transacción (sin auditoría).
func (s *Store) Seed(t *testing.T) *Fixture {
	t.Helper()
	ctx := context.Background()
	r := s.Repos()
	f := &Fixture{
		Category:  &entity.Category{Name: "Computadores", Code: "COMP"},
		Available: &entity.Status{Name: "Disponible"},
		Assigned:  &entity.Status{Name: "Asignado"},
		Retired:   &entity.Status{Name: "De baja"},
		BranchA:   &entity.Branch{Code: "BOG", Name: "Bogotá"},
		BranchB:   &entity.Branch{Code: "MDE", Name: "Medellín"},
		Vendor:    &entity.Vendor{Name: "Soporte Andino"},
	}
	require.NoError(t, r.Categories.Create(ctx, f.Category))
	f.Subcategory = &entity.Category{ParentID: &f.Category.ID, Name: "Portátiles", Code: "COMP-LAP"}
	require.NoError(t, r.Categories.Create(ctx, f.Subcategory))
	for _, st := range []*entity.Status{f.Available, f.Assigned, f.Retired} {
		require.NoError(t, r.Statuses.Create(ctx, st))
	}
	require.NoError(t, r.Branches.Create(ctx, f.BranchA))
	require.NoError(t, r.Branches.Create(ctx, f.BranchB))
	require.NoError(t, r.Vendors.Create(ctx, f.Vendor))

	f.Alice = &entity.Employee{EmployeeNo: "E-001", FirstName: "Alice", LastName: "Rojas", BranchID: &f.BranchA.ID, Active: true}
	f.Bob = &entity.Employee{EmployeeNo: "E-002", FirstName: "Bob", LastName: "Gómez", BranchID: &f.BranchB.ID, Active: true}
	f.Inactive = &entity.Employee{EmployeeNo: "E-003", FirstName: "Carla", Active: false}
	for _, e := range []*entity.Employee{f.Alice, f.Bob, f.Inactive} {
		require.NoError(t, r.Employees.Create(ctx, e))
	}
	return f
}

// AddAsset inserta un activo directamente (sin auditoría) y lo devuelve.
func (s *Store) AddAsset(t *testing.T, f *Fixture, tag string, mutate ...func(*entity.Asset)) *entity.Asset {
	t.Helper()
	a := &entity.Asset{
		AssetTag:   tag,
		Name:       "Equipo " + tag,
		CategoryID: f.Category.ID,
		StatusID:   f.Available.ID,
		AcqCost:    decimal.NewFromInt(1000),
	}
	for _, m := range mutate {
		m(a)
	}
	require.NoError(t, s.Repos().Assets.Create(context.Background(), a))
	return a
}
