package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// checkRef verifica que la referencia opcional exista; nil no se valida.
func checkRef[T any](ctx context.Context, get func(context.Context, int64) (*T, error), what string, id *int64) error {
	if id == nil {
		return nil
	}
	v, err := get(ctx, *id)
	if err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("%w: %s %d no existe", domain.ErrInvalidInput, what, *id)
	}
	return nil
}

// checkSubcategory exige que la subcategoría exista y cuelgue de la categoría dada.
func checkSubcategory(ctx context.Context, categories repository.CategoryRepository, categoryID int64, subID *int64) error {
	if subID == nil {
		return nil
	}
	sub, err := categories.GetByID(ctx, *subID)
	if err != nil {
		return err
	}
	if sub == nil {
		return fmt.Errorf("%w: subcategoría %d no existe", domain.ErrInvalidInput, *subID)
	}
	if sub.ParentID == nil || *sub.ParentID != categoryID {
		return fmt.Errorf("%w: la subcategoría %d no pertenece a la categoría %d", domain.ErrInvalidInput, *subID, categoryID)
	}
	return nil
}

// activeEmployee devuelve el empleado destino de un traslado; debe existir y estar activo.
func activeEmployee(ctx context.Context, employees repository.EmployeeRepository, id int64) (*entity.Employee, error) {
	e, err := employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%w: empleado %d no existe", domain.ErrInvalidInput, id)
	}
	if !e.Active {
		return nil, fmt.Errorf("%w: empleado %d inactivo", domain.ErrInvalidInput, id)
	}
	return e, nil
}

// lockAsset bloquea el activo y valida la versión esperada por el cliente.
func lockAsset(ctx context.Context, assets repository.AssetRepository, id int64, expectedVersion *int64) (*entity.Asset, error) {
	a, err := assets.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("%w: activo %d", domain.ErrNotFound, id)
	}
	if expectedVersion != nil && *expectedVersion != a.Version {
		return nil, domain.ErrVersionConflict
	}
	return a, nil
}
