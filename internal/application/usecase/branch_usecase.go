package usecase

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/mutation"
	"github.com/jhoicas/Activos-api/internal/application/ports"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// BranchUseCase casos de uso CRUD para sucursales y sus secciones.
type BranchUseCase struct {
	mutations *mutation.Service
	repos     ports.Repos
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(mutations *mutation.Service, repos ports.Repos) *BranchUseCase {
	return &BranchUseCase{mutations: mutations, repos: repos}
}

// Create crea una nueva sucursal. El código es único (ErrDuplicate).
func (uc *BranchUseCase) Create(ctx context.Context, actor mutation.Actor, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	var branch *entity.Branch
	err := uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		branch = &entity.Branch{
			Code:      in.Code,
			Name:      in.Name,
			Address:   in.Address,
			CreatedAt: rec.Now(),
			UpdatedAt: rec.Now(),
		}
		if err := r.Branches.Create(ctx, branch); err != nil {
			return err
		}
		rec.Created(entity.EntityBranch, branch.ID, branch.Attributes())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// GetByID obtiene una sucursal por ID.
func (uc *BranchUseCase) GetByID(ctx context.Context, id int64) (*dto.BranchResponse, error) {
	branch, err := found(uc.repos.Branches.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// Update actualiza una sucursal.
func (uc *BranchUseCase) Update(ctx context.Context, actor mutation.Actor, id int64, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	var branch *entity.Branch
	err := uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		var err error
		if branch, err = found(r.Branches.GetByID(ctx, id)); err != nil {
			return err
		}
		before := branch.Attributes()
		if in.Code != nil {
			branch.Code = *in.Code
		}
		if in.Name != nil {
			branch.Name = *in.Name
		}
		if in.Address != nil {
			branch.Address = *in.Address
		}
		branch.UpdatedAt = rec.Now()
		if err := r.Branches.Update(ctx, branch); err != nil {
			return err
		}
		rec.Updated(entity.EntityBranch, branch.ID, before, branch.Attributes())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// List lista sucursales con paginación.
func (uc *BranchUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ListResponse[dto.BranchResponse], error) {
	page.DefaultPage()
	list, err := uc.repos.Branches.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBranchResponse(b))
	}
	return &dto.ListResponse[dto.BranchResponse]{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina una sucursal. Con activos, secciones, empleados o movimientos asociados devuelve ErrConflict;
// nada se borra ni se anula en cascada.
func (uc *BranchUseCase) Delete(ctx context.Context, actor mutation.Actor, id int64) error {
	return uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		branch, err := found(r.Branches.GetByID(ctx, id))
		if err != nil {
			return err
		}
		if err := r.Branches.Delete(ctx, id); err != nil {
			return err
		}
		rec.Deleted(entity.EntityBranch, id, branch.Attributes())
		return nil
	})
}

// ── Secciones ────────────────────────────────────────────────────────────────

// CreateSection crea una sección dentro de una sucursal existente.
func (uc *BranchUseCase) CreateSection(ctx context.Context, actor mutation.Actor, in dto.CreateSectionRequest) (*dto.SectionResponse, error) {
	var section *entity.Section
	err := uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		if err := checkRef(ctx, r.Branches.GetByID, "sucursal", &in.BranchID); err != nil {
			return err
		}
		section = &entity.Section{BranchID: in.BranchID, Name: in.Name, CreatedAt: rec.Now(), UpdatedAt: rec.Now()}
		if err := r.Sections.Create(ctx, section); err != nil {
			return err
		}
		rec.Created(entity.EntitySection, section.ID, section.Attributes())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSectionResponse(section), nil
}

// GetSection obtiene una sección por ID.
func (uc *BranchUseCase) GetSection(ctx context.Context, id int64) (*dto.SectionResponse, error) {
	section, err := found(uc.repos.Sections.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	return toSectionResponse(section), nil
}

// UpdateSection actualiza una sección.
func (uc *BranchUseCase) UpdateSection(ctx context.Context, actor mutation.Actor, id int64, in dto.UpdateSectionRequest) (*dto.SectionResponse, error) {
	var section *entity.Section
	err := uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		var err error
		if section, err = found(r.Sections.GetByID(ctx, id)); err != nil {
			return err
		}
		before := section.Attributes()
		if in.BranchID != nil {
			if err := checkRef(ctx, r.Branches.GetByID, "sucursal", in.BranchID); err != nil {
				return err
			}
			section.BranchID = *in.BranchID
		}
		if in.Name != nil {
			section.Name = *in.Name
		}
		section.UpdatedAt = rec.Now()
		if err := r.Sections.Update(ctx, section); err != nil {
			return err
		}
		rec.Updated(entity.EntitySection, section.ID, before, section.Attributes())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSectionResponse(section), nil
}

// ListSections lista secciones, opcionalmente de una sucursal.
func (uc *BranchUseCase) ListSections(ctx context.Context, branchID *int64, page dto.PageRequest) (*dto.ListResponse[dto.SectionResponse], error) {
	page.DefaultPage()
	list, err := uc.repos.Sections.List(ctx, branchID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SectionResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSectionResponse(s))
	}
	return &dto.ListResponse[dto.SectionResponse]{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// DeleteSection elimina una sección. Con empleados asignados devuelve ErrConflict.
func (uc *BranchUseCase) DeleteSection(ctx context.Context, actor mutation.Actor, id int64) error {
	return uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		section, err := found(r.Sections.GetByID(ctx, id))
		if err != nil {
			return err
		}
		if err := r.Sections.Delete(ctx, id); err != nil {
			return err
		}
		rec.Deleted(entity.EntitySection, id, section.Attributes())
		return nil
	})
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	if b == nil {
		return nil
	}
	return &dto.BranchResponse{
		ID:        b.ID,
		Code:      b.Code,
		Name:      b.Name,
		Address:   b.Address,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toSectionResponse(s *entity.Section) *dto.SectionResponse {
	if s == nil {
		return nil
	}
	return &dto.SectionResponse{
		ID:        s.ID,
		BranchID:  s.BranchID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
