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

var _ repository.AssetRepository = (*AssetRepo)(nil)

const assetColumns = `id, asset_tag, asset_name, asset_category_id, sub_category_id, serial_number,
	purchase_date, acq_cost, estimate_life, vendor_id, status_id, assigned_to_employee_id,
	branch_id, equipment_id, location, remarks, warranty_expiration, version, created_at, updated_at`

// AssetRepo implementación de AssetRepository sobre PostgreSQL (usable con pool o tx).
type AssetRepo struct {
	q Querier
}

// NewAssetRepository construye el adaptador de activos. Pasar pool o tx (Querier).
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

func scanAsset(row rowScanner) (*entity.Asset, error) {
	var a entity.Asset
	err := row.Scan(
		&a.ID, &a.AssetTag, &a.Name, &a.CategoryID, &a.SubcategoryID, &a.SerialNumber,
		&a.PurchaseDate, &a.AcqCost, &a.EstimateLifeMonths, &a.VendorID, &a.StatusID, &a.CustodianID,
		&a.BranchID, &a.EquipmentID, &a.Location, &a.Remarks, &a.WarrantyExpiration, &a.Version,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste un nuevo activo con version 1.
func (r *AssetRepo) Create(ctx context.Context, a *entity.Asset) error {
	query := `
		INSERT INTO assets (asset_tag, asset_name, asset_category_id, sub_category_id, serial_number,
			purchase_date, acq_cost, estimate_life, vendor_id, status_id, assigned_to_employee_id,
			branch_id, equipment_id, location, remarks, warranty_expiration, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, 1, $17, $18)
		RETURNING id, version`
	err := r.q.QueryRow(ctx, query,
		a.AssetTag, a.Name, a.CategoryID, a.SubcategoryID, a.SerialNumber,
		a.PurchaseDate, a.AcqCost, a.EstimateLifeMonths, a.VendorID, a.StatusID, a.CustodianID,
		a.BranchID, a.EquipmentID, a.Location, a.Remarks, a.WarrantyExpiration, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID, &a.Version)
	if err != nil {
		return wrap("insert asset", err)
	}
	return nil
}

// GetByID obtiene un activo por ID; (nil, nil) si no existe.
func (r *AssetRepo) GetByID(ctx context.Context, id int64) (*entity.Asset, error) {
	return r.get(ctx, `SELECT `+assetColumns+` FROM assets WHERE id = $1`, id)
}

// GetForUpdate obtiene el activo y bloquea la fila (SELECT FOR UPDATE).
func (r *AssetRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Asset, error) {
	return r.get(ctx, `SELECT `+assetColumns+` FROM assets WHERE id = $1 FOR UPDATE`, id)
}

func (r *AssetRepo) get(ctx context.Context, query string, id int64) (*entity.Asset, error) {
	a, err := scanAsset(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return a, nil
}

// Update persiste el activo si su versión no cambió desde la lectura (compare-and-swap).
func (r *AssetRepo) Update(ctx context.Context, a *entity.Asset) error {
	query := `
		UPDATE assets SET
			asset_tag = $3, asset_name = $4, asset_category_id = $5, sub_category_id = $6,
			serial_number = $7, purchase_date = $8, acq_cost = $9, estimate_life = $10,
			vendor_id = $11, status_id = $12, assigned_to_employee_id = $13, branch_id = $14,
			equipment_id = $15, location = $16, remarks = $17, warranty_expiration = $18,
			updated_at = $19, version = version + 1
		WHERE id = $1 AND version = $2
		RETURNING version`
	err := r.q.QueryRow(ctx, query,
		a.ID, a.Version,
		a.AssetTag, a.Name, a.CategoryID, a.SubcategoryID,
		a.SerialNumber, a.PurchaseDate, a.AcqCost, a.EstimateLifeMonths,
		a.VendorID, a.StatusID, a.CustodianID, a.BranchID,
		a.EquipmentID, a.Location, a.Remarks, a.WarrantyExpiration,
		a.UpdatedAt,
	).Scan(&a.Version)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return wrap("update asset", err)
	}
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM assets WHERE id = $1)`, a.ID).Scan(&exists); err != nil {
		return fmt.Errorf("update asset: %w", err)
	}
	if !exists {
		return fmt.Errorf("update asset %d: %w", a.ID, domain.ErrNotFound)
	}
	return fmt.Errorf("update asset %d: %w", a.ID, domain.ErrVersionConflict)
}

// Delete elimina un activo; las FK RESTRICT de movimientos y reparaciones lo impiden si tiene historial.
func (r *AssetRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id); err != nil {
		return wrap("delete asset", err)
	}
	return nil
}

// List lista activos filtrados con paginación y devuelve el total sin paginar.
func (r *AssetRepo) List(ctx context.Context, f repository.AssetFilter) ([]*entity.Asset, int, error) {
	var w where
	if f.BranchID != nil {
		w.add("branch_id = $%d", *f.BranchID)
	}
	if f.CustodianID != nil {
		w.add("assigned_to_employee_id = $%d", *f.CustodianID)
	}
	if f.StatusID != nil {
		w.add("status_id = $%d", *f.StatusID)
	}
	if f.CategoryID != nil {
		w.add("asset_category_id = $%d", *f.CategoryID)
	}
	if f.Search != "" {
		w.add("(asset_tag ILIKE $%[1]d OR asset_name ILIKE $%[1]d OR serial_number ILIKE $%[1]d)", "%"+f.Search+"%")
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM assets`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count assets: %w", err)
	}

	limit, offset := pageArgs(f.Limit, f.Offset)
	n := w.next()
	query := fmt.Sprintf(`SELECT %s FROM assets%s ORDER BY id LIMIT $%d OFFSET $%d`, assetColumns, w.sql(), n, n+1)
	rows, err := r.q.Query(ctx, query, append(w.args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan asset: %w", err)
		}
		list = append(list, a)
	}
	return list, total, rows.Err()
}
