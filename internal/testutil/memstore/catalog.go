package memstore

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ── Branches ─────────────────────────────────────────────────────────────────

// BranchRepo implementa repository.BranchRepository.
type BranchRepo struct{ v *view }

var _ repository.BranchRepository = (*BranchRepo)(nil)

func (r *BranchRepo) Create(_ context.Context, b *entity.Branch) error {
	return r.v.do(func(st *state) error {
		for _, other := range st.branches.rows {
			if other.Code == b.Code {
				return domain.ErrDuplicate
			}
		}
		b.ID = st.branches.nextID()
		st.branches.rows[b.ID] = *b
		return nil
	})
}

func (r *BranchRepo) GetByID(_ context.Context, id int64) (*entity.Branch, error) {
	var out *entity.Branch
	err := r.v.do(func(st *state) error {
		if b, ok := st.branches.rows[id]; ok {
			out = &b
		}
		return nil
	})
	return out, err
}

func (r *BranchRepo) Update(_ context.Context, b *entity.Branch) error {
	return r.v.do(func(st *state) error {
		for id, other := range st.branches.rows {
			if id != b.ID && other.Code == b.Code {
				return domain.ErrDuplicate
			}
		}
		st.branches.rows[b.ID] = *b
		return nil
	})
}

func (r *BranchRepo) List(_ context.Context, limit, offset int) ([]*entity.Branch, error) {
	var out []*entity.Branch
	err := r.v.do(func(st *state) error {
		var all []*entity.Branch
		for _, id := range st.branches.sortedIDs() {
			b := st.branches.rows[id]
			all = append(all, &b)
		}
		out = page(all, limit, offset)
		return nil
	})
	return out, err
}

func (r *BranchRepo) Delete(_ context.Context, id int64) error {
	return r.v.do(func(st *state) error {
		for _, a := range st.assets.rows {
			if a.BranchID != nil && *a.BranchID == id {
				return domain.ErrConflict
			}
		}
		for _, sec := range st.sections.rows {
			if sec.BranchID == id {
				return domain.ErrConflict
			}
		}
		for _, e := range st.employees.rows {
			if e.BranchID != nil && *e.BranchID == id {
				return domain.ErrConflict
			}
		}
		if st.movementRefs(func(m entity.AssetMovement) bool { return refs(id, m.FromBranchID, m.ToBranchID) }) {
			return domain.ErrConflict
		}
		delete(st.branches.rows, id)
		return nil
	})
}

// ── Sections ─────────────────────────────────────────────────────────────────

// SectionRepo implementa repository.SectionRepository.
type SectionRepo struct{ v *view }

var _ repository.SectionRepository = (*SectionRepo)(nil)

func (r *SectionRepo) Create(_ context.Context, s *entity.Section) error {
	return r.v.do(func(st *state) error {
		s.ID = st.sections.nextID()
		st.sections.rows[s.ID] = *s
		return nil
	})
}

func (r *SectionRepo) GetByID(_ context.Context, id int64) (*entity.Section, error) {
	var out *entity.Section
	err := r.v.do(func(st *state) error {
		if s, ok := st.sections.rows[id]; ok {
			out = &s
		}
		return nil
	})
	return out, err
}

func (r *SectionRepo) Update(_ context.Context, s *entity.Section) error {
	return r.v.do(func(st *state) error {
		st.sections.rows[s.ID] = *s
		return nil
	})
}

func (r *SectionRepo) List(_ context.Context, branchID *int64, limit, offset int) ([]*entity.Section, error) {
	var out []*entity.Section
	err := r.v.do(func(st *state) error {
		var all []*entity.Section
		for _, id := range st.sections.sortedIDs() {
			s := st.sections.rows[id]
			if branchID != nil && s.BranchID != *branchID {
				continue
			}
			all = append(all, &s)
		}
		out = page(all, limit, offset)
		return nil
	})
	return out, err
}

func (r *SectionRepo) Delete(_ context.Context, id int64) error {
	return r.v.do(func(st *state) error {
		for _, e := range st.employees.rows {
			if e.SectionID != nil && *e.SectionID == id {
				return domain.ErrConflict
			}
		}
		delete(st.sections.rows, id)
		return nil
	})
}

// ── Employees ────────────────────────────────────────────────────────────────

// EmployeeRepo implementa repository.EmployeeRepository.
type EmployeeRepo struct{ v *view }

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

func (r *EmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	return r.v.do(func(st *state) error {
		e.ID = st.employees.nextID()
		st.employees.rows[e.ID] = *e
		return nil
	})
}

func (r *EmployeeRepo) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	var out *entity.Employee
	err := r.v.do(func(st *state) error {
		if e, ok := st.employees.rows[id]; ok {
			out = &e
		}
		return nil
	})
	return out, err
}

func (r *EmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	return r.v.do(func(st *state) error {
		st.employees.rows[e.ID] = *e
		return nil
	})
}

func (r *EmployeeRepo) List(_ context.Context, branchID *int64, limit, offset int) ([]*entity.Employee, error) {
	var out []*entity.Employee
	err := r.v.do(func(st *state) error {
		var all []*entity.Employee
		for _, id := range st.employees.sortedIDs() {
			e := st.employees.rows[id]
			if branchID != nil && !entity.SameID(e.BranchID, branchID) {
				continue
			}
			all = append(all, &e)
		}
		out = page(all, limit, offset)
		return nil
	})
	return out, err
}

func (r *EmployeeRepo) Delete(_ context.Context, id int64) error {
	return r.v.do(func(st *state) error {
		for _, a := range st.assets.rows {
			if a.CustodianID != nil && *a.CustodianID == id {
				return domain.ErrConflict
			}
		}
		if st.movementRefs(func(m entity.AssetMovement) bool { return refs(id, m.FromCustodianID, m.ToCustodianID) }) {
			return domain.ErrConflict
		}
		delete(st.employees.rows, id)
		return nil
	})
}

// ── Vendors ──────────────────────────────────────────────────────────────────

// VendorRepo implementa repository.VendorRepository.
type VendorRepo struct{ v *view }

var _ repository.VendorRepository = (*VendorRepo)(nil)

func (r *VendorRepo) Create(_ context.Context, vd *entity.Vendor) error {
	return r.v.do(func(st *state) error {
		for _, other := range st.vendors.rows {
			if other.Name == vd.Name {
				return domain.ErrDuplicate
			}
		}
		vd.ID = st.vendors.nextID()
		st.vendors.rows[vd.ID] = *vd
		return nil
	})
}

func (r *VendorRepo) GetByID(_ context.Context, id int64) (*entity.Vendor, error) {
	var out *entity.Vendor
	err := r.v.do(func(st *state) error {
		if vd, ok := st.vendors.rows[id]; ok {
			out = &vd
		}
		return nil
	})
	return out, err
}

func (r *VendorRepo) Update(_ context.Context, vd *entity.Vendor) error {
	return r.v.do(func(st *state) error {
		st.vendors.rows[vd.ID] = *vd
		return nil
	})
}

func (r *VendorRepo) List(_ context.Context, limit, offset int) ([]*entity.Vendor, error) {
	var out []*entity.Vendor
	err := r.v.do(func(st *state) error {
		var all []*entity.Vendor
		for _, id := range st.vendors.sortedIDs() {
			vd := st.vendors.rows[id]
			all = append(all, &vd)
		}
		out = page(all, limit, offset)
		return nil
	})
	return out, err
}

func (r *VendorRepo) Delete(_ context.Context, id int64) error {
	return r.v.do(func(st *state) error {
		delete(st.vendors.rows, id)
		return nil
	})
}

// ── Categories ───────────────────────────────────────────────────────────────

// CategoryRepo implementa repository.CategoryRepository.
type CategoryRepo struct{ v *view }

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	return r.v.do(func(st *state) error {
		c.ID = st.categories.nextID()
		st.categories.rows[c.ID] = *c
		return nil
	})
}

func (r *CategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	var out *entity.Category
	err := r.v.do(func(st *state) error {
		if c, ok := st.categories.rows[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *CategoryRepo) Update(_ context.Context, c *entity.Category) error {
	return r.v.do(func(st *state) error {
		st.categories.rows[c.ID] = *c
		return nil
	})
}

func (r *CategoryRepo) List(_ context.Context, limit, offset int) ([]*entity.Category, error) {
	var out []*entity.Category
	err := r.v.do(func(st *state) error {
		var all []*entity.Category
		for _, id := range st.categories.sortedIDs() {
			c := st.categories.rows[id]
			all = append(all, &c)
		}
		out = page(all, limit, offset)
		return nil
	})
	return out, err
}

func (r *CategoryRepo) ListByParent(_ context.Context, parentID int64) ([]*entity.Category, error) {
	var out []*entity.Category
	err := r.v.do(func(st *state) error {
		for _, id := range st.categories.sortedIDs() {
			c := st.categories.rows[id]
			if c.ParentID != nil && *c.ParentID == parentID {
				out = append(out, &c)
			}
		}
		return nil
	})
	return out, err
}

func (r *CategoryRepo) Delete(_ context.Context, id int64) error {
	return r.v.do(func(st *state) error {
		delete(st.categories.rows, id)
		return nil
	})
}

// ── Statuses ─────────────────────────────────────────────────────────────────

// StatusRepo implementa repository.StatusRepository.
type StatusRepo struct{ v *view }

var _ repository.StatusRepository = (*StatusRepo)(nil)

func (r *StatusRepo) Create(_ context.Context, s *entity.Status) error {
	return r.v.do(func(st *state) error {
		for _, other := range st.statuses.rows {
			if other.Name == s.Name {
				return domain.ErrDuplicate
			}
		}
		s.ID = st.statuses.nextID()
		st.statuses.rows[s.ID] = *s
		return nil
	})
}

func (r *StatusRepo) GetByID(_ context.Context, id int64) (*entity.Status, error) {
	var out *entity.Status
	err := r.v.do(func(st *state) error {
		if s, ok := st.statuses.rows[id]; ok {
			out = &s
		}
		return nil
	})
	return out, err
}

func (r *StatusRepo) Update(_ context.Context, s *entity.Status) error {
	return r.v.do(func(st *state) error {
		st.statuses.rows[s.ID] = *s
		return nil
	})
}

func (r *StatusRepo) List(_ context.Context) ([]*entity.Status, error) {
	var out []*entity.Status
	err := r.v.do(func(st *state) error {
		for _, id := range st.statuses.sortedIDs() {
			s := st.statuses.rows[id]
			out = append(out, &s)
		}
		return nil
	})
	return out, err
}

func (r *StatusRepo) Delete(_ context.Context, id int64) error {
	return r.v.do(func(st *state) error {
		for _, a := range st.assets.rows {
			if a.StatusID == id {
				return domain.ErrConflict
			}
		}
		if st.movementRefs(func(m entity.AssetMovement) bool { return refs(id, m.FromStatusID, m.ToStatusID) }) {
			return domain.ErrConflict
		}
		delete(st.statuses.rows, id)
		return nil
	})
}

// movementRefs indica si algún movimiento del historial cumple match (FK RESTRICT del esquema SQL).
func (s *state) movementRefs(match func(entity.AssetMovement) bool) bool {
	for _, m := range s.movements.rows {
		if match(m) {
			return true
		}
	}
	return false
}

func refs(id int64, ptrs ...*int64) bool {
	for _, p := range ptrs {
		if p != nil && *p == id {
			return true
		}
	}
	return false
}
