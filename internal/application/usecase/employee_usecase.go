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

// EmployeeUseCase casos de uso CRUD para empleados (custodios de activos).
type EmployeeUseCase struct {
	mutations *mutation.Service
	repos     ports.Repos
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(mutations *mutation.Service, repos ports.Repos) *EmployeeUseCase {
	return &EmployeeUseCase{mutations: mutations, repos: repos}
}

// Create crea un empleado activo.
func (uc *EmployeeUseCase) Create(ctx context.Context, actor mutation.Actor, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	var emp *entity.Employee
	err := uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		if err := checkPlacement(ctx, r, in.BranchID, in.SectionID); err != nil {
			return err
		}
		emp = &entity.Employee{
			EmployeeNo: in.EmployeeNo,
			FirstName:  in.FirstName,
			LastName:   in.LastName,
			Email:      in.Email,
			Position:   in.Position,
			BranchID:   in.BranchID,
			SectionID:  in.SectionID,
			Active:     true,
			CreatedAt:  rec.Now(),
			UpdatedAt:  rec.Now(),
		}
		if err := r.Employees.Create(ctx, emp); err != nil {
			return err
		}
		rec.Created(entity.EntityEmployee, emp.ID, emp.Attributes())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id int64) (*dto.EmployeeResponse, error) {
	emp, err := found(uc.repos.Employees.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// Update actualiza un empleado. Desactivarlo no libera sus activos.
func (uc *EmployeeUseCase) Update(ctx context.Context, actor mutation.Actor, id int64, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	var emp *entity.Employee
	err := uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		var err error
		if emp, err = found(r.Employees.GetByID(ctx, id)); err != nil {
			return err
		}
		before := emp.Attributes()
		if in.EmployeeNo != nil {
			emp.EmployeeNo = *in.EmployeeNo
		}
		if in.FirstName != nil {
			emp.FirstName = *in.FirstName
		}
		if in.LastName != nil {
			emp.LastName = *in.LastName
		}
		if in.Email != nil {
			emp.Email = *in.Email
		}
		if in.Position != nil {
			emp.Position = *in.Position
		}
		if in.BranchID != nil {
			emp.BranchID = in.BranchID
		}
		if in.SectionID != nil {
			emp.SectionID = in.SectionID
		}
		if in.Active != nil {
			emp.Active = *in.Active
		}
		if in.BranchID != nil || in.SectionID != nil {
			if err := checkPlacement(ctx, r, emp.BranchID, emp.SectionID); err != nil {
				return err
			}
		}
		emp.UpdatedAt = rec.Now()
		if err := r.Employees.Update(ctx, emp); err != nil {
			return err
		}
		rec.Updated(entity.EntityEmployee, emp.ID, before, emp.Attributes())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// List lista empleados, opcionalmente de una sucursal.
func (uc *EmployeeUseCase) List(ctx context.Context, branchID *int64, page dto.PageRequest) (*dto.ListResponse[dto.EmployeeResponse], error) {
	page.DefaultPage()
	list, err := uc.repos.Employees.List(ctx, branchID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.ListResponse[dto.EmployeeResponse]{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un empleado sin activos a cargo (ErrConflict en otro caso).
func (uc *EmployeeUseCase) Delete(ctx context.Context, actor mutation.Actor, id int64) error {
	return uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		emp, err := found(r.Employees.GetByID(ctx, id))
		if err != nil {
			return err
		}
		if err := r.Employees.Delete(ctx, id); err != nil {
			return err
		}
		rec.Deleted(entity.EntityEmployee, id, emp.Attributes())
		return nil
	})
}

// checkPlacement valida sucursal y sección; la sección debe pertenecer a la sucursal.
func checkPlacement(ctx context.Context, r ports.Repos, branchID, sectionID *int64) error {
	if err := checkRef(ctx, r.Branches.GetByID, "sucursal", branchID); err != nil {
		return err
	}
	if sectionID == nil {
		return nil
	}
	section, err := r.Sections.GetByID(ctx, *sectionID)
	if err != nil {
		return err
	}
	if section == nil {
		return fmt.Errorf("%w: sección %d no existe", domain.ErrInvalidInput, *sectionID)
	}
	if branchID != nil && section.BranchID != *branchID {
		return fmt.Errorf("%w: la sección %d no pertenece a la sucursal %d", domain.ErrInvalidInput, *sectionID, *branchID)
	}
	return nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:         e.ID,
		EmployeeNo: e.EmployeeNo,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		FullName:   e.FullName(),
		Email:      e.Email,
		Position:   e.Position,
		BranchID:   e.BranchID,
		SectionID:  e.SectionID,
		Active:     e.Active,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
