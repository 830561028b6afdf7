package ports

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// Repos repositorios atados a una misma transacción.
type Repos struct {
	Assets     repository.AssetRepository
	Movements  repository.AssetMovementRepository
	AuditLogs  repository.AuditLogRepository
	Repairs    repository.RepairRepository
	Branches   repository.BranchRepository
	Sections   repository.SectionRepository
	Employees  repository.EmployeeRepository
	Vendors    repository.VendorRepository
	Categories repository.CategoryRepository
	Statuses   repository.StatusRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(ctx context.Context, r Repos) error) error
}
