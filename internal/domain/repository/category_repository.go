package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	List(ctx context.Context, limit, offset int) ([]*entity.Category, error)
	ListByParent(ctx context.Context, parentID int64) ([]*entity.Category, error)
	Delete(ctx context.Context, id int64) error
}
