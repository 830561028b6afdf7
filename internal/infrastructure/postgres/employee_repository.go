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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, employee_no, first_name, last_name, email, position,
	branch_id, section_id, active, created_at, updated_at`

// EmployeeRepo empleados (custodios) sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de empleados.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

func scanEmployee(row rowScanner) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(&e.ID, &e.EmployeeNo, &e.FirstName, &e.LastName, &e.Email, &e.Position,
		&e.BranchID, &e.SectionID, &e.Active, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (employee_no, first_name, last_name, email, position,
			branch_id, section_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, e.EmployeeNo, e.FirstName, e.LastName, e.Email, e.Position,
		e.BranchID, e.SectionID, e.Active, e.CreatedAt, e.UpdatedAt).Scan(&e.ID)
	if err != nil {
		return wrap("insert employee", err)
	}
	return nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees SET employee_no = $2, first_name = $3, last_name = $4, email = $5,
			position = $6, branch_id = $7, section_id = $8, active = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, e.ID, e.EmployeeNo, e.FirstName, e.LastName, e.Email,
		e.Position, e.BranchID, e.SectionID, e.Active, e.UpdatedAt)
	if err != nil {
		return wrap("update employee", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update employee %d: %w", e.ID, domain.ErrNotFound)
	}
	return nil
}

// List lista empleados, opcionalmente de una sucursal.
func (r *EmployeeRepo) List(ctx context.Context, branchID *int64, limit, offset int) ([]*entity.Employee, error) {
	lim, off := pageArgs(limit, offset)
	query := `SELECT ` + employeeColumns + ` FROM employees
		WHERE ($1::BIGINT IS NULL OR branch_id = $1)
		ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, branchID, lim, off)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Delete elimina un empleado; falla con ErrConflict si custodia activos o figura en el historial.
func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id); err != nil {
		return wrap("delete employee", err)
	}
	return nil
}
