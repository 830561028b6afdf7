package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/mutation"
	"github.com/jhoicas/Activos-api/internal/application/ports"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// CategoryUseCase casos de uso CRUD para categorías de activos.
// Las categorías tienen dos niveles: raíz y subcategoría (ParentID apunta a una raíz).
type CategoryUseCase struct {
	mutations *mutation.Service
	repos     ports.Repos
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(mutations *mutation.Service, repos ports.Repos) *CategoryUseCase {
	return &CategoryUseCase{mutations: mutations, repos: repos}
}

// Create crea una categoría o subcategoría.
func (uc *CategoryUseCase) Create(ctx context.Context, actor mutation.Actor, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	var cat *entity.Category
	err := uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		if err := checkParent(ctx, r, 0, in.ParentID); err != nil {
			return err
		}
		cat = &entity.Category{
			ParentID:    in.ParentID,
			Name:        in.Name,
			Code:        in.Code,
			Description: in.Description,
			CreatedAt:   rec.Now(),
			UpdatedAt:   rec.Now(),
		}
		if err := r.Categories.Create(ctx, cat); err != nil {
			return err
		}
		rec.Created(entity.EntityCategory, cat.ID, cat.Attributes())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	cat, err := found(uc.repos.Categories.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// Update actualiza una categoría.
func (uc *CategoryUseCase) Update(ctx context.Context, actor mutation.Actor, id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	var cat *entity.Category
	err := uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		var err error
		if cat, err = found(r.Categories.GetByID(ctx, id)); err != nil {
			return err
		}
		before := cat.Attributes()
		if in.ParentID != nil {
			if err := checkParent(ctx, r, id, in.ParentID); err != nil {
				return err
			}
			children, err := r.Categories.ListByParent(ctx, id)
			if err != nil {
				return err
			}
			if len(children) > 0 {
				return fmt.Errorf("%w: la categoría %d tiene subcategorías", domain.ErrInvalidInput, id)
			}
			cat.ParentID = in.ParentID
		}
		if in.Name != nil {
			cat.Name = *in.Name
		}
		if in.Code != nil {
			cat.Code = *in.Code
		}
		if in.Description != nil {
			cat.Description = *in.Description
		}
		cat.UpdatedAt = rec.Now()
		if err := r.Categories.Update(ctx, cat); err != nil {
			return err
		}
		rec.Updated(entity.EntityCategory, cat.ID, before, cat.Attributes())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// List lista categorías; con parentID devuelve solo sus subcategorías.
func (uc *CategoryUseCase) List(ctx context.Context, parentID *int64, page dto.PageRequest) (*dto.ListResponse[dto.CategoryResponse], error) {
	page.DefaultPage()
	var (
		list []*entity.Category
		err  error
	)
	if parentID != nil {
		list, err = uc.repos.Categories.ListByParent(ctx, *parentID)
	} else {
		list, err = uc.repos.Categories.List(ctx, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.ListResponse[dto.CategoryResponse]{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina una categoría sin subcategorías ni activos.
func (uc *CategoryUseCase) Delete(ctx context.Context, actor mutation.Actor, id int64) error {
	return uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		cat, err := found(r.Categories.GetByID(ctx, id))
		if err != nil {
			return err
		}
		children, err := r.Categories.ListByParent(ctx, id)
		if err != nil {
			return err
		}
		if len(children) > 0 {
			return fmt.Errorf("%w: la categoría %d tiene subcategorías", domain.ErrConflict, id)
		}
		if err := r.Categories.Delete(ctx, id); err != nil {
			return err
		}
		rec.Deleted(entity.EntityCategory, id, cat.Attributes())
		return nil
	})
}

// checkParent exige que el padre exista, sea raíz y no sea la propia categoría.
func checkParent(ctx context.Context, r ports.Repos, selfID int64, parentID *int64) error {
	if parentID == nil {
		return nil
	}
	if *parentID == selfID {
		return fmt.Errorf("%w: una categoría no puede ser su propio padre", domain.ErrInvalidInput)
	}
	parent, err := r.Categories.GetByID(ctx, *parentID)
	if err != nil {
		return err
	}
	if parent == nil {
		return fmt.Errorf("%w: categoría padre %d no existe", domain.ErrInvalidInput, *parentID)
	}
	if parent.ParentID != nil {
		return fmt.Errorf("%w: la categoría %d ya es subcategoría", domain.ErrInvalidInput, *parentID)
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		ParentID:    c.ParentID,
		Name:        c.Name,
		Code:        c.Code,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
