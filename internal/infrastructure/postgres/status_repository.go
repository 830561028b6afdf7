package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.StatusRepository = (*StatusRepo)(nil)

// StatusRepo estados configurables de activos.
type StatusRepo struct {
	q Querier
}

// NewStatusRepository construye el adaptador de estados.
func NewStatusRepository(q Querier) *StatusRepo {
	return &StatusRepo{q: q}
}

func (r *StatusRepo) Create(ctx context.Context, s *entity.Status) error {
	query := `
		INSERT INTO statuses (status_name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, s.Name, s.Description, s.CreatedAt, s.UpdatedAt).Scan(&s.ID); err != nil {
		return wrap("insert status", err)
	}
	return nil
}

func (r *StatusRepo) GetByID(ctx context.Context, id int64) (*entity.Status, error) {
	var s entity.Status
	err := r.q.QueryRow(ctx, `
		SELECT id, status_name, description, created_at, updated_at
		FROM statuses WHERE id = $1`, id).Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get status: %w", err)
	}
	return &s, nil
}

func (r *StatusRepo) Update(ctx context.Context, s *entity.Status) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE statuses SET status_name = $2, description = $3, updated_at = $4
		WHERE id = $1`, s.ID, s.Name, s.Description, s.UpdatedAt)
	if err != nil {
		return wrap("update status", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update status %d: %w", s.ID, domain.ErrNotFound)
	}
	return nil
}

// List devuelve todos los estados (catálogo pequeño, sin paginación).
func (r *StatusRepo) List(ctx context.Context) ([]*entity.Status, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, status_name, description, created_at, updated_at
		FROM statuses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Status
	for rows.Next() {
		var s entity.Status
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan status: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina un estado; falla con ErrConflict si algún activo lo usa.
func (r *StatusRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM statuses WHERE id = $1`, id); err != nil {
		return wrap("delete status", err)
	}
	return nil
}
