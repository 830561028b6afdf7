package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// RepairFilter criterios de listado de reparaciones.
type RepairFilter struct {
	AssetID  *int64
	VendorID *int64
	Status   string
	Limit    int
	Offset   int
}

// RepairRepository define el puerto de persistencia para Repair.
type RepairRepository interface {
	Create(ctx context.Context, repair *entity.Repair) error
	GetByID(ctx context.Context, id int64) (*entity.Repair, error)
	GetForUpdate(ctx context.Context, id int64) (*entity.Repair, error)
	Update(ctx context.Context, repair *entity.Repair) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter RepairFilter) ([]*entity.Repair, int, error)
}
