package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/mutation"
	"github.com/jhoicas/Activos-api/internal/application/ports"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// AssetUseCase alta, edición, baja y consulta de activos.
// Las escrituras pasan por mutation.Service (auditoría + invalidación de caché).
type AssetUseCase struct {
	mutations *mutation.Service
	repos     ports.Repos
	now       func() time.Time
}

// NewAssetUseCase construye el caso de uso. repos son los repositorios fuera de transacción (lecturas).
func NewAssetUseCase(mutations *mutation.Service, repos ports.Repos) *AssetUseCase {
	return &AssetUseCase{mutations: mutations, repos: repos, now: time.Now}
}

// Create registra un activo nuevo.
func (uc *AssetUseCase) Create(ctx context.Context, actor mutation.Actor, in dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if in.AcqCost.IsNegative() {
		return nil, fmt.Errorf("%w: acq_cost no puede ser negativo", domain.ErrInvalidInput)
	}
	purchase, err := dto.ParseDate(in.PurchaseDate)
	if err != nil {
		return nil, err
	}
	warranty, err := dto.ParseDate(in.WarrantyExpiration)
	if err != nil {
		return nil, err
	}

	var created *entity.Asset
	err = uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		if err := checkRef(ctx, r.Categories.GetByID, "categoría", &in.CategoryID); err != nil {
			return err
		}
		if err := checkSubcategory(ctx, r.Categories, in.CategoryID, in.SubcategoryID); err != nil {
			return err
		}
		if err := checkRef(ctx, r.Statuses.GetByID, "estado", &in.StatusID); err != nil {
			return err
		}
		if err := checkRef(ctx, r.Vendors.GetByID, "proveedor", in.VendorID); err != nil {
			return err
		}
		if in.CustodianID != nil {
			if _, err := activeEmployee(ctx, r.Employees, *in.CustodianID); err != nil {
				return err
			}
		}
		if err := checkRef(ctx, r.Branches.GetByID, "sucursal", in.BranchID); err != nil {
			return err
		}

		a := &entity.Asset{
			AssetTag:           in.AssetTag,
			Name:               in.Name,
			CategoryID:         in.CategoryID,
			SubcategoryID:      in.SubcategoryID,
			SerialNumber:       in.SerialNumber,
			PurchaseDate:       purchase,
			AcqCost:            in.AcqCost,
			EstimateLifeMonths: in.EstimateLifeMonths,
			VendorID:           in.VendorID,
			StatusID:           in.StatusID,
			CustodianID:        in.CustodianID,
			BranchID:           in.BranchID,
			EquipmentID:        in.EquipmentID,
			Location:           in.Location,
			Remarks:            in.Remarks,
			WarrantyExpiration: warranty,
			CreatedAt:          rec.Now(),
			UpdatedAt:          rec.Now(),
		}
		if err := r.Assets.Create(ctx, a); err != nil {
			return err
		}
		rec.Created(entity.EntityAsset, a.ID, a.Attributes())
		created = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toAssetResponse(created, uc.now()), nil
}

// Update modifica datos descriptivos con control de versión.
func (uc *AssetUseCase) Update(ctx context.Context, actor mutation.Actor, id int64, in dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	if in.AcqCost != nil && in.AcqCost.IsNegative() {
		return nil, fmt.Errorf("%w: acq_cost no puede ser negativo", domain.ErrInvalidInput)
	}
	purchase, err := dto.ParseDate(in.PurchaseDate)
	if err != nil {
		return nil, err
	}
	warranty, err := dto.ParseDate(in.WarrantyExpiration)
	if err != nil {
		return nil, err
	}

	var updated *entity.Asset
	err = uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		a, err := lockAsset(ctx, r.Assets, id, in.ExpectedVersion)
		if err != nil {
			return err
		}
		before := a.Attributes()

		if in.AssetTag != nil {
			a.AssetTag = *in.AssetTag
		}
		if in.Name != nil {
			a.Name = *in.Name
		}
		if in.CategoryID != nil {
			if err := checkRef(ctx, r.Categories.GetByID, "categoría", in.CategoryID); err != nil {
				return err
			}
			a.CategoryID = *in.CategoryID
		}
		if in.SubcategoryID != nil {
			a.SubcategoryID = in.SubcategoryID
		}
		if in.CategoryID != nil || in.SubcategoryID != nil {
			if err := checkSubcategory(ctx, r.Categories, a.CategoryID, a.SubcategoryID); err != nil {
				return err
			}
		}
		if in.SerialNumber != nil {
			a.SerialNumber = *in.SerialNumber
		}
		if purchase != nil {
			a.PurchaseDate = purchase
		}
		if in.AcqCost != nil {
			a.AcqCost = *in.AcqCost
		}
		if in.EstimateLifeMonths != nil {
			a.EstimateLifeMonths = *in.EstimateLifeMonths
		}
		if in.VendorID != nil {
			if err := checkRef(ctx, r.Vendors.GetByID, "proveedor", in.VendorID); err != nil {
				return err
			}
			a.VendorID = in.VendorID
		}
		if in.EquipmentID != nil {
			a.EquipmentID = *in.EquipmentID
		}
		if in.Location != nil {
			a.Location = *in.Location
		}
		if in.Remarks != nil {
			a.Remarks = *in.Remarks
		}
		if warranty != nil {
			a.WarrantyExpiration = warranty
		}
		a.UpdatedAt = rec.Now()

		if err := r.Assets.Update(ctx, a); err != nil {
			return err
		}
		rec.Updated(entity.EntityAsset, a.ID, before, a.Attributes())
		updated = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toAssetResponse(updated, uc.now()), nil
}

// Delete elimina un activo. Falla con ErrConflict si tiene historial o reparaciones.
func (uc *AssetUseCase) Delete(ctx context.Context, actor mutation.Actor, id int64) error {
	return uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		a, err := lockAsset(ctx, r.Assets, id, nil)
		if err != nil {
			return err
		}
		if err := r.Assets.Delete(ctx, id); err != nil {
			return err
		}
		rec.Deleted(entity.EntityAsset, id, a.Attributes())
		return nil
	})
}

// GetByID obtiene un activo; ErrNotFound si no existe.
func (uc *AssetUseCase) GetByID(ctx context.Context, id int64) (*dto.AssetResponse, error) {
	a, err := uc.repos.Assets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return toAssetResponse(a, uc.now()), nil
}

// List lista activos con filtros y paginación.
func (uc *AssetUseCase) List(ctx context.Context, in dto.AssetFilterRequest) (*dto.AssetListResponse, error) {
	in.DefaultPage()
	list, total, err := uc.repos.Assets.List(ctx, repository.AssetFilter{
		BranchID:    in.BranchID,
		CustodianID: in.CustodianID,
		StatusID:    in.StatusID,
		CategoryID:  in.CategoryID,
		Search:      in.Search,
		Limit:       in.Limit,
		Offset:      in.Offset,
	})
	if err != nil {
		return nil, err
	}
	now := uc.now()
	items := make([]dto.AssetResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAssetResponse(a, now))
	}
	return &dto.AssetListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}
