package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/domain"
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

// found convierte el (nil, nil) de los repositorios en ErrNotFound.
func found[T any](v *T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return v, nil
}
