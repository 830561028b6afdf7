package usecase

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// AuditUseCase consulta de la bitácora (solo lectura).
type AuditUseCase struct {
	repo repository.AuditLogRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(repo repository.AuditLogRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// List devuelve la bitácora filtrada, de la más reciente a la más antigua.
func (uc *AuditUseCase) List(ctx context.Context, in dto.AuditLogFilterRequest) (*dto.ListResponse[dto.AuditLogResponse], error) {
	in.DefaultPage()
	list, total, err := uc.repo.List(ctx, repository.AuditLogFilter{
		EntityType: in.EntityType,
		EntityID:   in.EntityID,
		ActorID:    in.ActorID,
		Limit:      in.Limit,
		Offset:     in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditLogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, toAuditLogResponse(l))
	}
	return &dto.ListResponse[dto.AuditLogResponse]{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

func toAuditLogResponse(l *entity.AuditLog) dto.AuditLogResponse {
	changes := make(map[string]dto.FieldChangeResponse, len(l.Changes))
	for k, c := range l.Changes {
		changes[k] = dto.FieldChangeResponse{Old: c.Old, New: c.New}
	}
	return dto.AuditLogResponse{
		ID:         l.ID,
		EntityType: l.EntityType,
		EntityID:   l.EntityID,
		Action:     l.Action,
		Changes:    changes,
		ActorID:    l.ActorID,
		IPAddress:  l.IPAddress,
		CreatedAt:  l.CreatedAt,
	}
}
