package entity

import "time"

// Employee empleado que puede ser custodio de activos.
type Employee struct {
	ID         int64
	EmployeeNo string
	FirstName  string
	LastName   string
	Email      string
	Position   string
	BranchID   *int64
	SectionID  *int64
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName nombre para listados y reportes.
func (e *Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// Attributes devuelve la instantánea auditable.
func (e *Employee) Attributes() map[string]any {
	return map[string]any{
		"employee_no": e.EmployeeNo,
		"first_name":  e.FirstName,
		"last_name":   e.LastName,
		"email":       e.Email,
		"position":    e.Position,
		"branch_id":   idValue(e.BranchID),
		"section_id":  idValue(e.SectionID),
		"active":      e.Active,
	}
}
