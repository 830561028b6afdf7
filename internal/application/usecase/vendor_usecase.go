package usecase

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/mutation"
	"github.com/jhoicas/Activos-api/internal/application/ports"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// VendorUseCase casos de uso CRUD para proveedores.
type VendorUseCase struct {
	mutations *mutation.Service
	repos     ports.Repos
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(mutations *mutation.Service, repos ports.Repos) *VendorUseCase {
	return &VendorUseCase{mutations: mutations, repos: repos}
}

// Create crea un proveedor. El nombre es único (ErrDuplicate).
func (uc *VendorUseCase) Create(ctx context.Context, actor mutation.Actor, in dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	var vendor *entity.Vendor
	err := uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		vendor = &entity.Vendor{
			Name:          in.Name,
			ContactPerson: in.ContactPerson,
			Phone:         in.Phone,
			Email:         in.Email,
			Address:       in.Address,
			CreatedAt:     rec.Now(),
			UpdatedAt:     rec.Now(),
		}
		if err := r.Vendors.Create(ctx, vendor); err != nil {
			return err
		}
		rec.Created(entity.EntityVendor, vendor.ID, vendor.Attributes())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *VendorUseCase) GetByID(ctx context.Context, id int64) (*dto.VendorResponse, error) {
	vendor, err := found(uc.repos.Vendors.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// Update actualiza un proveedor.
func (uc *VendorUseCase) Update(ctx context.Context, actor mutation.Actor, id int64, in dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	var vendor *entity.Vendor
	err := uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		var err error
		if vendor, err = found(r.Vendors.GetByID(ctx, id)); err != nil {
			return err
		}
		before := vendor.Attributes()
		if in.Name != nil {
			vendor.Name = *in.Name
		}
		if in.ContactPerson != nil {
			vendor.ContactPerson = *in.ContactPerson
		}
		if in.Phone != nil {
			vendor.Phone = *in.Phone
		}
		if in.Email != nil {
			vendor.Email = *in.Email
		}
		if in.Address != nil {
			vendor.Address = *in.Address
		}
		vendor.UpdatedAt = rec.Now()
		if err := r.Vendors.Update(ctx, vendor); err != nil {
			return err
		}
		rec.Updated(entity.EntityVendor, vendor.ID, before, vendor.Attributes())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// List lista proveedores con paginación.
func (uc *VendorUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ListResponse[dto.VendorResponse], error) {
	page.DefaultPage()
	list, err := uc.repos.Vendors.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendorResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVendorResponse(v))
	}
	return &dto.ListResponse[dto.VendorResponse]{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un proveedor sin activos ni reparaciones asociadas.
func (uc *VendorUseCase) Delete(ctx context.Context, actor mutation.Actor, id int64) error {
	return uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		vendor, err := found(r.Vendors.GetByID(ctx, id))
		if err != nil {
			return err
		}
		if err := r.Vendors.Delete(ctx, id); err != nil {
			return err
		}
		rec.Deleted(entity.EntityVendor, id, vendor.Attributes())
		return nil
	})
}

func toVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	if v == nil {
		return nil
	}
	return &dto.VendorResponse{
		ID:            v.ID,
		Name:          v.Name,
		ContactPerson: v.ContactPerson,
		Phone:         v.Phone,
		Email:         v.Email,
		Address:       v.Address,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
