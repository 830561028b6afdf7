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

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo proveedores sobre PostgreSQL.
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador de proveedores.
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

func scanVendor(row rowScanner) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := row.Scan(&v.ID, &v.Name, &v.ContactPerson, &v.Phone, &v.Email, &v.Address, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VendorRepo) Create(ctx context.Context, v *entity.Vendor) error {
	query := `
		INSERT INTO vendors (vendor_name, contact_person, phone, email, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, v.Name, v.ContactPerson, v.Phone, v.Email, v.Address, v.CreatedAt, v.UpdatedAt).Scan(&v.ID)
	if err != nil {
		return wrap("insert vendor", err)
	}
	return nil
}

func (r *VendorRepo) GetByID(ctx context.Context, id int64) (*entity.Vendor, error) {
	v, err := scanVendor(r.q.QueryRow(ctx, `
		SELECT id, vendor_name, contact_person, phone, email, address, created_at, updated_at
		FROM vendors WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return v, nil
}

func (r *VendorRepo) Update(ctx context.Context, v *entity.Vendor) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE vendors SET vendor_name = $2, contact_person = $3, phone = $4, email = $5,
			address = $6, updated_at = $7
		WHERE id = $1`, v.ID, v.Name, v.ContactPerson, v.Phone, v.Email, v.Address, v.UpdatedAt)
	if err != nil {
		return wrap("update vendor", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update vendor %d: %w", v.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *VendorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Vendor, error) {
	lim, off := pageArgs(limit, offset)
	rows, err := r.q.Query(ctx, `
		SELECT id, vendor_name, contact_person, phone, email, address, created_at, updated_at
		FROM vendors ORDER BY id LIMIT $1 OFFSET $2`, lim, off)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Delete elimina un proveedor; activos y reparaciones que lo referencian lo impiden.
func (r *VendorRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM vendors WHERE id = $1`, id); err != nil {
		return wrap("delete vendor", err)
	}
	return nil
}
