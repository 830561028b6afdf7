package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// BranchRepository define el puerto de persistencia para Branch.
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	GetByID(ctx context.Context, id int64) (*entity.Branch, error)
	Update(ctx context.Context, branch *entity.Branch) error
	List(ctx context.Context, limit, offset int) ([]*entity.Branch, error)
	Delete(ctx context.Context, id int64) error
}

// SectionRepository define el puerto de persistencia para Section.
type SectionRepository interface {
	Create(ctx context.Context, section *entity.Section) error
	GetByID(ctx context.Context, id int64) (*entity.Section, error)
	Update(ctx context.Context, section *entity.Section) error
	List(ctx context.Context, branchID *int64, limit, offset int) ([]*entity.Section, error)
	Delete(ctx context.Context, id int64) error
}

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	List(ctx context.Context, branchID *int64, limit, offset int) ([]*entity.Employee, error)
	Delete(ctx context.Context, id int64) error
}

// VendorRepository define el puerto de persistencia para Vendor.
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id int64) (*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	List(ctx context.Context, limit, offset int) ([]*entity.Vendor, error)
	Delete(ctx context.Context, id int64) error
}

// StatusRepository define el puerto de persistencia para Status.
type StatusRepository interface {
	Create(ctx context.Context, status *entity.Status) error
	GetByID(ctx context.Context, id int64) (*entity.Status, error)
	Update(ctx context.Context, status *entity.Status) error
	List(ctx context.Context) ([]*entity.Status, error)
	Delete(ctx context.Context, id int64) error
}
