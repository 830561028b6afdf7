package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// AssetFilter criterios de listado de activos. Los campos nil no filtran.
type AssetFilter struct {
	BranchID    *int64
	CustodianID *int64
	StatusID    *int64
	CategoryID  *int64
	Search      string // asset_tag, nombre o serie (ILIKE)
	Limit       int
	Offset      int
}

// AssetRepository define el puerto de persistencia para Asset (DIP).
type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) error
	GetByID(ctx context.Context, id int64) (*entity.Asset, error)
	// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE) dentro de la transacción en curso.
	GetForUpdate(ctx context.Context, id int64) (*entity.Asset, error)
	// Update persiste con compare-and-swap sobre Version; devuelve domain.ErrVersionConflict
	// si otra transacción modificó la fila. En éxito incrementa asset.Version.
	Update(ctx context.Context, asset *entity.Asset) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter AssetFilter) ([]*entity.Asset, int, error)
}

// AssetMovementRepository puerto append-only del historial de movimientos.
type AssetMovementRepository interface {
	Create(ctx context.Context, movement *entity.AssetMovement) error
	ListByAsset(ctx context.Context, assetID int64, limit, offset int) ([]*entity.AssetMovement, error)
}
