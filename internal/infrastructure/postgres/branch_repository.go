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

var (
	_ repository.BranchRepository  = (*BranchRepo)(nil)
	_ repository.SectionRepository = (*SectionRepo)(nil)
)

// BranchRepo implementación del puerto BranchRepository sobre PostgreSQL.
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador de persistencia para sucursales.
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

// Create persiste una nueva sucursal; el código es único.
func (r *BranchRepo) Create(ctx context.Context, b *entity.Branch) error {
	query := `
		INSERT INTO branches (branch_code, branch_name, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, b.Code, b.Name, b.Address, b.CreatedAt, b.UpdatedAt).Scan(&b.ID); err != nil {
		return wrap("insert branch", err)
	}
	return nil
}

// GetByID obtiene una sucursal por ID.
func (r *BranchRepo) GetByID(ctx context.Context, id int64) (*entity.Branch, error) {
	query := `
		SELECT id, branch_code, branch_name, address, created_at, updated_at
		FROM branches WHERE id = $1`
	var b entity.Branch
	err := r.q.QueryRow(ctx, query, id).Scan(&b.ID, &b.Code, &b.Name, &b.Address, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return &b, nil
}

// Update actualiza una sucursal existente.
func (r *BranchRepo) Update(ctx context.Context, b *entity.Branch) error {
	query := `
		UPDATE branches SET branch_code = $2, branch_name = $3, address = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, b.ID, b.Code, b.Name, b.Address, b.UpdatedAt)
	if err != nil {
		return wrap("update branch", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update branch %d: %w", b.ID, domain.ErrNotFound)
	}
	return nil
}

// List lista sucursales con paginación.
func (r *BranchRepo) List(ctx context.Context, limit, offset int) ([]*entity.Branch, error) {
	lim, off := pageArgs(limit, offset)
	query := `
		SELECT id, branch_code, branch_name, address, created_at, updated_at
		FROM branches ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, lim, off)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Branch
	for rows.Next() {
		var b entity.Branch
		if err := rows.Scan(&b.ID, &b.Code, &b.Name, &b.Address, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Delete elimina una sucursal; sus secciones se eliminan en cascada.
func (r *BranchRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id); err != nil {
		return wrap("delete branch", err)
	}
	return nil
}

// SectionRepo secciones (áreas) de una sucursal.
type SectionRepo struct {
	q Querier
}

// NewSectionRepository construye el adaptador de secciones.
func NewSectionRepository(q Querier) *SectionRepo {
	return &SectionRepo{q: q}
}

func (r *SectionRepo) Create(ctx context.Context, s *entity.Section) error {
	query := `
		INSERT INTO sections (branch_id, section_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, s.BranchID, s.Name, s.CreatedAt, s.UpdatedAt).Scan(&s.ID); err != nil {
		return wrap("insert section", err)
	}
	return nil
}

func (r *SectionRepo) GetByID(ctx context.Context, id int64) (*entity.Section, error) {
	var s entity.Section
	err := r.q.QueryRow(ctx, `
		SELECT id, branch_id, section_name, created_at, updated_at
		FROM sections WHERE id = $1`, id).Scan(&s.ID, &s.BranchID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get section: %w", err)
	}
	return &s, nil
}

func (r *SectionRepo) Update(ctx context.Context, s *entity.Section) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE sections SET branch_id = $2, section_name = $3, updated_at = $4
		WHERE id = $1`, s.ID, s.BranchID, s.Name, s.UpdatedAt)
	if err != nil {
		return wrap("update section", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update section %d: %w", s.ID, domain.ErrNotFound)
	}
	return nil
}

// List lista secciones, opcionalmente de una sola sucursal.
func (r *SectionRepo) List(ctx context.Context, branchID *int64, limit, offset int) ([]*entity.Section, error) {
	lim, off := pageArgs(limit, offset)
	query := `
		SELECT id, branch_id, section_name, created_at, updated_at
		FROM sections WHERE ($1::BIGINT IS NULL OR branch_id = $1)
		ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, branchID, lim, off)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()
	var list []*entity.Section
	for rows.Next() {
		var s entity.Section
		if err := rows.Scan(&s.ID, &s.BranchID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SectionRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sections WHERE id = $1`, id); err != nil {
		return wrap("delete section", err)
	}
	return nil
}
