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
	"github.com/jhoicas/Activos-api/internal/domain/inventory"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// RepairUseCase registro y seguimiento de reparaciones de activos.
type RepairUseCase struct {
	mutations   *mutation.Service
	repos       ports.Repos
	transitions inventory.RepairTransitions
}

// NewRepairUseCase construye el caso de uso. strict activa la máquina de estados estricta.
func NewRepairUseCase(mutations *mutation.Service, repos ports.Repos, strict bool) *RepairUseCase {
	return &RepairUseCase{
		mutations:   mutations,
		repos:       repos,
		transitions: inventory.RepairTransitions{Strict: strict},
	}
}

// Create registra una reparación; sin estado explícito inicia en Pending.
// En modo estricto Pending es el único estado inicial admitido.
func (uc *RepairUseCase) Create(ctx context.Context, actor mutation.Actor, in dto.CreateRepairRequest) (*dto.RepairResponse, error) {
	if in.Cost.IsNegative() {
		return nil, fmt.Errorf("%w: repair_cost no puede ser negativo", domain.ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = entity.RepairStatusPending
	}
	if !inventory.IsValidRepairStatus(status) {
		return nil, fmt.Errorf("%w: estado de reparación %q", domain.ErrInvalidInput, status)
	}
	if uc.transitions.Strict && status != entity.RepairStatusPending {
		return nil, fmt.Errorf("%w: una reparación nueva inicia en %s", domain.ErrInvalidTransition, entity.RepairStatusPending)
	}
	repairDate, err := dto.ParseDate(&in.RepairDate)
	if err != nil {
		return nil, err
	}
	if repairDate == nil {
		return nil, fmt.Errorf("%w: repair_date requerido", domain.ErrInvalidInput)
	}
	expected, err := dto.ParseDate(in.ExpectedReturnDate)
	if err != nil {
		return nil, err
	}
	if expected != nil && expected.Before(*repairDate) {
		return nil, fmt.Errorf("%w: expected_return_date anterior a repair_date", domain.ErrInvalidInput)
	}

	var created *entity.Repair
	err = uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		if err := checkRef(ctx, r.Assets.GetByID, "activo", &in.AssetID); err != nil {
			return err
		}
		if err := checkRef(ctx, r.Vendors.GetByID, "proveedor", &in.VendorID); err != nil {
			return err
		}
		rep := &entity.Repair{
			AssetID:            in.AssetID,
			VendorID:           in.VendorID,
			Description:        in.Description,
			RepairDate:         *repairDate,
			ExpectedReturnDate: expected,
			Cost:               in.Cost,
			Status:             status,
			Remarks:            in.Remarks,
			CreatedAt:          rec.Now(),
			UpdatedAt:          rec.Now(),
		}
		stampReturn(rep, rec.Now())
		if err := r.Repairs.Create(ctx, rep); err != nil {
			return err
		}
		rec.Created(entity.EntityRepair, rep.ID, rep.Attributes())
		created = rep
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toRepairResponse(created), nil
}

// Update modifica los datos de una reparación (no su estado).
func (uc *RepairUseCase) Update(ctx context.Context, actor mutation.Actor, id int64, in dto.UpdateRepairRequest) (*dto.RepairResponse, error) {
	if in.Cost != nil && in.Cost.IsNegative() {
		return nil, fmt.Errorf("%w: repair_cost no puede ser negativo", domain.ErrInvalidInput)
	}
	repairDate, err := dto.ParseDate(in.RepairDate)
	if err != nil {
		return nil, err
	}
	expected, err := dto.ParseDate(in.ExpectedReturnDate)
	if err != nil {
		return nil, err
	}
	actual, err := dto.ParseDate(in.ActualReturnDate)
	if err != nil {
		return nil, err
	}

	var updated *entity.Repair
	err = uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		rep, err := lockRepair(ctx, r.Repairs, id)
		if err != nil {
			return err
		}
		before := rep.Attributes()
		if in.VendorID != nil {
			if err := checkRef(ctx, r.Vendors.GetByID, "proveedor", in.VendorID); err != nil {
				return err
			}
			rep.VendorID = *in.VendorID
		}
		if in.Description != nil {
			rep.Description = *in.Description
		}
		if repairDate != nil {
			rep.RepairDate = *repairDate
		}
		if expected != nil {
			rep.ExpectedReturnDate = expected
		}
		if actual != nil {
			rep.ActualReturnDate = actual
		}
		if rep.ExpectedReturnDate != nil && rep.ExpectedReturnDate.Before(rep.RepairDate) {
			return fmt.Errorf("%w: expected_return_date anterior a repair_date", domain.ErrInvalidInput)
		}
		if in.Cost != nil {
			rep.Cost = *in.Cost
		}
		if in.Remarks != nil {
			rep.Remarks = *in.Remarks
		}
		rep.UpdatedAt = rec.Now()
		if err := r.Repairs.Update(ctx, rep); err != nil {
			return err
		}
		rec.Updated(entity.EntityRepair, rep.ID, before, rep.Attributes())
		updated = rep
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toRepairResponse(updated), nil
}

// ChangeStatus avanza el estado de la reparación según la máquina de estados configurada.
// Al pasar a Returned se fija la fecha real de devolución si no existe.
func (uc *RepairUseCase) ChangeStatus(ctx context.Context, actor mutation.Actor, id int64, in dto.ChangeRepairStatusRequest) (*dto.RepairResponse, error) {
	var updated *entity.Repair
	err := uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		rep, err := lockRepair(ctx, r.Repairs, id)
		if err != nil {
			return err
		}
		if err := uc.transitions.Check(rep.Status, in.Status); err != nil {
			return fmt.Errorf("%w: %s → %s", err, rep.Status, in.Status)
		}
		before := rep.Attributes()
		rep.Status = in.Status
		if in.Remarks != "" {
			rep.Remarks = in.Remarks
		}
		stampReturn(rep, rec.Now())
		rep.UpdatedAt = rec.Now()
		if err := r.Repairs.Update(ctx, rep); err != nil {
			return err
		}
		rec.Updated(entity.EntityRepair, rep.ID, before, rep.Attributes())
		updated = rep
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toRepairResponse(updated), nil
}

// Delete elimina una reparación.
func (uc *RepairUseCase) Delete(ctx context.Context, actor mutation.Actor, id int64) error {
	return uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		rep, err := lockRepair(ctx, r.Repairs, id)
		if err != nil {
			return err
		}
		if err := r.Repairs.Delete(ctx, id); err != nil {
			return err
		}
		rec.Deleted(entity.EntityRepair, id, rep.Attributes())
		return nil
	})
}

// GetByID obtiene una reparación; ErrNotFound si no existe.
func (uc *RepairUseCase) GetByID(ctx context.Context, id int64) (*dto.RepairResponse, error) {
	rep, err := uc.repos.Repairs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, domain.ErrNotFound
	}
	return toRepairResponse(rep), nil
}

// List lista reparaciones por activo, proveedor o estado.
func (uc *RepairUseCase) List(ctx context.Context, in dto.RepairFilterRequest) (*dto.RepairListResponse, error) {
	in.DefaultPage()
	if in.Status != "" && !inventory.IsValidRepairStatus(in.Status) {
		return nil, fmt.Errorf("%w: estado de reparación %q", domain.ErrInvalidInput, in.Status)
	}
	list, total, err := uc.repos.Repairs.List(ctx, repository.RepairFilter{
		AssetID:  in.AssetID,
		VendorID: in.VendorID,
		Status:   in.Status,
		Limit:    in.Limit,
		Offset:   in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.RepairResponse, 0, len(list))
	for _, rep := range list {
		items = append(items, *toRepairResponse(rep))
	}
	return &dto.RepairListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

func lockRepair(ctx context.Context, repairs repository.RepairRepository, id int64) (*entity.Repair, error) {
	rep, err := repairs.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, fmt.Errorf("%w: reparación %d", domain.ErrNotFound, id)
	}
	return rep, nil
}

func stampReturn(rep *entity.Repair, now time.Time) {
	if rep.Status == entity.RepairStatusReturned && rep.ActualReturnDate == nil {
		d := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		rep.ActualReturnDate = &d
	}
}
