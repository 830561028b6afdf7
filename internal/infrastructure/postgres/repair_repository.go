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

var _ repository.RepairRepository = (*RepairRepo)(nil)

const repairColumns = `id, asset_id, vendor_id, description, repair_date, expected_return_date,
	actual_return_date, repair_cost, status, remarks, created_at, updated_at`

// RepairRepo implementación de RepairRepository sobre PostgreSQL.
type RepairRepo struct {
	q Querier
}

// NewRepairRepository construye el adaptador de reparaciones.
func NewRepairRepository(q Querier) *RepairRepo {
	return &RepairRepo{q: q}
}

func scanRepair(row rowScanner) (*entity.Repair, error) {
	var rep entity.Repair
	err := row.Scan(
		&rep.ID, &rep.AssetID, &rep.VendorID, &rep.Description, &rep.RepairDate, &rep.ExpectedReturnDate,
		&rep.ActualReturnDate, &rep.Cost, &rep.Status, &rep.Remarks, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *RepairRepo) Create(ctx context.Context, rep *entity.Repair) error {
	query := `
		INSERT INTO repairs (asset_id, vendor_id, description, repair_date, expected_return_date,
			actual_return_date, repair_cost, status, remarks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		rep.AssetID, rep.VendorID, rep.Description, rep.RepairDate, rep.ExpectedReturnDate,
		rep.ActualReturnDate, rep.Cost, rep.Status, rep.Remarks, rep.CreatedAt, rep.UpdatedAt,
	).Scan(&rep.ID)
	if err != nil {
		return wrap("insert repair", err)
	}
	return nil
}

func (r *RepairRepo) GetByID(ctx context.Context, id int64) (*entity.Repair, error) {
	return r.get(ctx, `SELECT `+repairColumns+` FROM repairs WHERE id = $1`, id)
}

// GetForUpdate bloquea la reparación para cambios de estado concurrentes.
func (r *RepairRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Repair, error) {
	return r.get(ctx, `SELECT `+repairColumns+` FROM repairs WHERE id = $1 FOR UPDATE`, id)
}

func (r *RepairRepo) get(ctx context.Context, query string, id int64) (*entity.Repair, error) {
	rep, err := scanRepair(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get repair: %w", err)
	}
	return rep, nil
}

func (r *RepairRepo) Update(ctx context.Context, rep *entity.Repair) error {
	query := `
		UPDATE repairs SET vendor_id = $2, description = $3, repair_date = $4,
			expected_return_date = $5, actual_return_date = $6, repair_cost = $7,
			status = $8, remarks = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		rep.ID, rep.VendorID, rep.Description, rep.RepairDate,
		rep.ExpectedReturnDate, rep.ActualReturnDate, rep.Cost,
		rep.Status, rep.Remarks, rep.UpdatedAt,
	)
	if err != nil {
		return wrap("update repair", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update repair %d: %w", rep.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *RepairRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM repairs WHERE id = $1`, id); err != nil {
		return wrap("delete repair", err)
	}
	return nil
}

// List lista reparaciones filtradas por activo, proveedor o estado.
func (r *RepairRepo) List(ctx context.Context, f repository.RepairFilter) ([]*entity.Repair, int, error) {
	var w where
	if f.AssetID != nil {
		w.add("asset_id = $%d", *f.AssetID)
	}
	if f.VendorID != nil {
		w.add("vendor_id = $%d", *f.VendorID)
	}
	if f.Status != "" {
		w.add("status = $%d", f.Status)
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM repairs`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count repairs: %w", err)
	}

	limit, offset := pageArgs(f.Limit, f.Offset)
	n := w.next()
	query := fmt.Sprintf(`SELECT %s FROM repairs%s ORDER BY id LIMIT $%d OFFSET $%d`, repairColumns, w.sql(), n, n+1)
	rows, err := r.q.Query(ctx, query, append(w.args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list repairs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Repair
	for rows.Next() {
		rep, err := scanRepair(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan repair: %w", err)
		}
		list = append(list, rep)
	}
	return list, total, rows.Err()
}
