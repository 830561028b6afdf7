package inventory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/mutation"
	"github.com/jhoicas/Activos-api/internal/application/ports"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// DefaultReturnReason motivo registrado cuando una devolución no trae uno.
const DefaultReturnReason = "Devolución a inventario"

// MovementUseCase traslados, devoluciones y cambios de estado de activos.
// Cada operación bloquea las filas (SELECT FOR UPDATE), escribe un movimiento por activo
// con un BatchID común y actualiza el activo en la misma transacción.
type MovementUseCase struct {
	mutations *mutation.Service
	repos     ports.Repos
	bulkMax   int
	now       func() time.Time
}

// NewMovementUseCase construye el caso de uso. bulkMax limita el tamaño de un traslado masivo.
func NewMovementUseCase(mutations *mutation.Service, repos ports.Repos, bulkMax int) *MovementUseCase {
	return &MovementUseCase{mutations: mutations, repos: repos, bulkMax: bulkMax, now: time.Now}
}

// placement ubicación de un activo: custodio, sucursal y estado.
type placement struct {
	custodianID *int64
	branchID    *int64
	statusID    int64
}

// move aplica el destino al activo bloqueado y registra el movimiento y la mutación.
func move(
	ctx context.Context,
	r ports.Repos,
	rec *mutation.Recorder,
	a *entity.Asset,
	to placement,
	kind, batchID, reason, remarks string,
) (*entity.AssetMovement, error) {
	from := placement{custodianID: a.CustodianID, branchID: a.BranchID, statusID: a.StatusID}
	before := a.Attributes()

	a.CustodianID = to.custodianID
	a.BranchID = to.branchID
	a.StatusID = to.statusID
	a.UpdatedAt = rec.Now()
	if err := r.Assets.Update(ctx, a); err != nil {
		return nil, err
	}

	m := &entity.AssetMovement{
		BatchID:         batchID,
		AssetID:         a.ID,
		Type:            kind,
		FromCustodianID: from.custodianID,
		ToCustodianID:   to.custodianID,
		FromBranchID:    from.branchID,
		ToBranchID:      to.branchID,
		Reason:          reason,
		Remarks:         remarks,
		ActorID:         rec.Actor().UserID,
		CreatedAt:       rec.Now(),
	}
	if kind == entity.MovementTypeStatusChange || from.statusID != to.statusID {
		fromStatus, toStatus := from.statusID, to.statusID
		m.FromStatusID = &fromStatus
		m.ToStatusID = &toStatus
	}
	if err := r.Movements.Create(ctx, m); err != nil {
		return nil, err
	}
	rec.Updated(entity.EntityAsset, a.ID, before, a.Attributes())
	return m, nil
}

type moved struct {
	asset    *entity.Asset
	movement *entity.AssetMovement
}

func (uc *MovementUseCase) result(batchID string, items []moved) *dto.MovementResultResponse {
	now := uc.now()
	out := &dto.MovementResultResponse{
		BatchID:   batchID,
		Assets:    make([]dto.AssetResponse, 0, len(items)),
		Movements: make([]dto.MovementResponse, 0, len(items)),
	}
	for _, it := range items {
		out.Assets = append(out.Assets, *toAssetResponse(it.asset, now))
		out.Movements = append(out.Movements, toMovementResponse(it.movement))
	}
	return out
}

// Transfer cambia custodio y/o sucursal de un activo.
// Repetir el mismo traslado genera un movimiento nuevo (el historial no se deduplica).
func (uc *MovementUseCase) Transfer(ctx context.Context, actor mutation.Actor, assetID int64, in dto.TransferRequest) (*dto.MovementResultResponse, error) {
	if err := entity.ValidateReason(in.Reason); err != nil {
		return nil, err
	}
	if in.ToCustodianID == nil && in.ToBranchID == nil {
		return nil, fmt.Errorf("%w: se requiere custodio o sucursal destino", domain.ErrInvalidInput)
	}
	batchID := uuid.New().String()

	var items []moved
	err := uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		if in.ToCustodianID != nil {
			if _, err := activeEmployee(ctx, r.Employees, *in.ToCustodianID); err != nil {
				return err
			}
		}
		if err := checkRef(ctx, r.Branches.GetByID, "sucursal", in.ToBranchID); err != nil {
			return err
		}
		a, err := lockAsset(ctx, r.Assets, assetID, in.ExpectedVersion)
		if err != nil {
			return err
		}
		to := placement{custodianID: a.CustodianID, branchID: a.BranchID, statusID: a.StatusID}
		if in.ToCustodianID != nil {
			to.custodianID = in.ToCustodianID
		}
		if in.ToBranchID != nil {
			to.branchID = in.ToBranchID
		}
		m, err := move(ctx, r, rec, a, to, entity.MovementTypeTransfer, batchID, in.Reason, in.Remarks)
		if err != nil {
			return err
		}
		items = append(items, moved{a, m})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.result(batchID, items), nil
}

// BulkTransfer asigna varios activos a un custodio en una sola transacción.
// Si algún activo no existe o falla, no se aplica ninguno.
// Los IDs se deduplican y se bloquean en orden ascendente.
func (uc *MovementUseCase) BulkTransfer(ctx context.Context, actor mutation.Actor, in dto.BulkTransferRequest) (*dto.MovementResultResponse, error) {
	if err := entity.ValidateReason(in.Reason); err != nil {
		return nil, err
	}
	ids := dedupeIDs(in.AssetIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: asset_ids vacío", domain.ErrInvalidInput)
	}
	if uc.bulkMax > 0 && len(ids) > uc.bulkMax {
		return nil, fmt.Errorf("%w: máximo %d activos por traslado masivo", domain.ErrInvalidInput, uc.bulkMax)
	}
	batchID := uuid.New().String()

	var items []moved
	err := uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		if _, err := activeEmployee(ctx, r.Employees, in.ToCustodianID); err != nil {
			return err
		}
		if err := checkRef(ctx, r.Branches.GetByID, "sucursal", in.ToBranchID); err != nil {
			return err
		}
		custodian := in.ToCustodianID
		items = items[:0]
		for _, id := range ids {
			a, err := lockAsset(ctx, r.Assets, id, nil)
			if err != nil {
				return err
			}
			to := placement{custodianID: &custodian, branchID: a.BranchID, statusID: a.StatusID}
			if in.ToBranchID != nil {
				to.branchID = in.ToBranchID
			}
			m, err := move(ctx, r, rec, a, to, entity.MovementTypeBulkTransfer, batchID, in.Reason, in.Remarks)
			if err != nil {
				return fmt.Errorf("activo %d: %w", id, err)
			}
			items = append(items, moved{a, m})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.result(batchID, items), nil
}

// Return devuelve el activo a inventario: limpia custodio y sucursal.
// El motivo es opcional (DefaultReturnReason); Condition queda como nota del movimiento.
func (uc *MovementUseCase) Return(ctx context.Context, actor mutation.Actor, assetID int64, in dto.ReturnRequest) (*dto.MovementResultResponse, error) {
	reason := in.Reason
	if reason == "" {
		reason = DefaultReturnReason
	}
	if err := entity.ValidateReason(reason); err != nil {
		return nil, err
	}
	batchID := uuid.New().String()

	var items []moved
	err := uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		if err := checkRef(ctx, r.Statuses.GetByID, "estado", in.StatusID); err != nil {
			return err
		}
		a, err := lockAsset(ctx, r.Assets, assetID, in.ExpectedVersion)
		if err != nil {
			return err
		}
		if a.CustodianID == nil && a.BranchID == nil {
			return fmt.Errorf("%w: el activo %d ya está en inventario", domain.ErrConflict, a.ID)
		}
		to := placement{statusID: a.StatusID}
		if in.StatusID != nil {
			to.statusID = *in.StatusID
		}
		m, err := move(ctx, r, rec, a, to, entity.MovementTypeReturn, batchID, reason, in.Condition)
		if err != nil {
			return err
		}
		items = append(items, moved{a, m})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.result(batchID, items), nil
}

// ChangeStatus cambia el estado de un activo. Se acepta cualquier estado configurado.
func (uc *MovementUseCase) ChangeStatus(ctx context.Context, actor mutation.Actor, assetID int64, in dto.ChangeStatusRequest) (*dto.MovementResultResponse, error) {
	if err := entity.ValidateReason(in.Reason); err != nil {
		return nil, err
	}
	batchID := uuid.New().String()

	var items []moved
	err := uc.mutations.Execute(ctx, actor, func(ctx context.Context, r ports.Repos, rec *mutation.Recorder) error {
		if err := checkRef(ctx, r.Statuses.GetByID, "estado", &in.StatusID); err != nil {
			return err
		}
		a, err := lockAsset(ctx, r.Assets, assetID, in.ExpectedVersion)
		if err != nil {
			return err
		}
		to := placement{custodianID: a.CustodianID, branchID: a.BranchID, statusID: in.StatusID}
		m, err := move(ctx, r, rec, a, to, entity.MovementTypeStatusChange, batchID, in.Reason, in.Remarks)
		if err != nil {
			return err
		}
		items = append(items, moved{a, m})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.result(batchID, items), nil
}

// History historial de movimientos de un activo, del más reciente al más antiguo.
func (uc *MovementUseCase) History(ctx context.Context, assetID int64, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	a, err := uc.repos.Assets.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repos.Movements.ListByAsset(ctx, assetID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
