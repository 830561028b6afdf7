package usecase

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/mutation"
	"github.com/jhoicas/Activos-api/internal/application/ports"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// StatusUseCase casos de uso CRUD para la tabla de estados de activos.
type StatusUseCase struct {
	mutations *mutation.Service
	repos     ports.Repos
}

// NewStatusUseCase construye el caso de uso.
func NewStatusUseCase(mutations *mutation.Service, repos ports.Repos) *StatusUseCase {
	return &StatusUseCase{mutations: mutations, repos: repos}
}

// Create crea un estado. El nombre es único (ErrDuplicate).
func (uc *StatusUseCase) Create(ctx context.Context, actor mutation.Actor, in dto.CreateStatusRequest) (*dto.StatusResponse, error) {
	var status *entity.Status
	err := uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		status = &entity.Status{Name: in.Name, Description: in.Description, CreatedAt: rec.Now(), UpdatedAt: rec.Now()}
		if err := r.Statuses.Create(ctx, status); err != nil {
			return err
		}
		rec.Created(entity.EntityStatus, status.ID, status.Attributes())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toStatusResponse(status), nil
}

// GetByID obtiene un estado por ID.
func (uc *StatusUseCase) GetByID(ctx context.Context, id int64) (*dto.StatusResponse, error) {
	status, err := found(uc.repos.Statuses.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	return toStatusResponse(status), nil
}

// Update actualiza un estado.
func (uc *StatusUseCase) Update(ctx context.Context, actor mutation.Actor, id int64, in dto.UpdateStatusRequest) (*dto.StatusResponse, error) {
	var status *entity.Status
	err := uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		var err error
		if status, err = found(r.Statuses.GetByID(ctx, id)); err != nil {
			return err
		}
		before := status.Attributes()
		if in.Name != nil {
			status.Name = *in.Name
		}
		if in.Description != nil {
			status.Description = *in.Description
		}
		status.UpdatedAt = rec.Now()
		if err := r.Statuses.Update(ctx, status); err != nil {
			return err
		}
		rec.Updated(entity.EntityStatus, status.ID, before, status.Attributes())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toStatusResponse(status), nil
}

// List devuelve todos los estados (tabla pequeña, sin paginación).
func (uc *StatusUseCase) List(ctx context.Context) ([]dto.StatusResponse, error) {
	list, err := uc.repos.Statuses.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StatusResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStatusResponse(s))
	}
	return items, nil
}

// Delete elimina un estado que ningún activo usa.
func (uc *StatusUseCase) Delete(ctx context.Context, actor mutation.Actor, id int64) error {
	return uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		status, err := found(r.Statuses.GetByID(ctx, id))
		if err != nil {
			return err
		}
		if err := r.Statuses.Delete(ctx, id); err != nil {
			return err
		}
		rec.Deleted(entity.EntityStatus, id, status.Attributes())
		return nil
	})
}

func toStatusResponse(s *entity.Status) *dto.StatusResponse {
	if s == nil {
		return nil
	}
	return &dto.StatusResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
