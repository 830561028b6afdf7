// Package memstore implementa los puertos de persistencia en memoria con semántica transaccional
// (snapshot + commit/rollback) para las pruebas de casos de uso.
package memstore

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/Activos-api/internal/application/ports"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ErrInjected error simulado de infraestructura.
var ErrInjected = errors.New("memstore: fallo inyectado")

type table[T any] struct {
	rows map[int64]T
	next int64
}

func newTable[T any]() table[T] {
	return table[T]{rows: make(map[int64]T)}
}

func (t table[T]) clone() table[T] {
	rows := make(map[int64]T, len(t.rows))
	for k, v := range t.rows {
		rows[k] = v
	}
	return table[T]{rows: rows, next: t.next}
}

func (t *table[T]) nextID() int64 {
	t.next++
	return t.next
}

func (t table[T]) sortedIDs() []int64 {
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type state struct {
	assets     table[entity.Asset]
	movements  table[entity.AssetMovement]
	auditLogs  table[entity.AuditLog]
	repairs    table[entity.Repair]
	branches   table[entity.Branch]
	sections   table[entity.Section]
	employees  table[entity.Employee]
	vendors    table[entity.Vendor]
	categories table[entity.Category]
	statuses   table[entity.Status]
}

func newState() *state {
	return &state{
		assets:     newTable[entity.Asset](),
		movements:  newTable[entity.AssetMovement](),
		auditLogs:  newTable[entity.AuditLog](),
		repairs:    newTable[entity.Repair](),
		branches:   newTable[entity.Branch](),
		sections:   newTable[entity.Section](),
		employees:  newTable[entity.Employee](),
		vendors:    newTable[entity.Vendor](),
		categories: newTable[entity.Category](),
		statuses:   newTable[entity.Status](),
	}
}

func (s *state) clone() *state {
	return &state{
		assets:     s.assets.clone(),
		movements:  s.movements.clone(),
		auditLogs:  s.auditLogs.clone(),
		repairs:    s.repairs.clone(),
		branches:   s.branches.clone(),
		sections:   s.sections.clone(),
		employees:  s.employees.clone(),
		vendors:    s.vendors.clone(),
		categories: s.categories.clone(),
		statuses:   s.statuses.clone(),
	}
}

// Store base de datos en memoria. Los repositorios obtenidos con Repos() escriben directo
// (autocommit); los del TxRunner trabajan sobre una copia que se publica solo en Commit.
type Store struct {
	mu    sync.Mutex
	state *state

	// AuditErr, si no es nil, lo devuelve toda escritura en audit_logs.
	AuditErr error
	// FailAssetUpdateID hace fallar Update del activo con ese ID.
	FailAssetUpdateID int64
	// Commits número de transacciones confirmadas.
	Commits int
}

// New crea un store vacío.
func New() *Store {
	return &Store{state: newState()}
}

// Repos devuelve repositorios en modo autocommit.
func (s *Store) Repos() ports.Repos {
	return s.reposFor(&view{store: s, st: nil})
}

// Run implementa ports.TxRunner con snapshot y publicación atómica.
func (s *Store) Run(ctx context.Context, fn func(ctx context.Context, r ports.Repos) error) error {
	s.mu.Lock()
	snapshot := s.state.clone()
	s.mu.Unlock()

	v := &view{store: s, st: snapshot}
	if err := fn(ctx, s.reposFor(v)); err != nil {
		return err
	}
	s.mu.Lock()
	s.state = snapshot
	s.Commits++
	s.mu.Unlock()
	return nil
}

var _ ports.TxRunner = (*Store)(nil)

// view resuelve el estado sobre el que trabaja un repositorio: la copia de la tx o el global.
type view struct {
	store *Store
	st    *state
}

func (v *view) do(fn func(st *state) error) error {
	if v.st != nil {
		return fn(v.st)
	}
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	return fn(v.store.state)
}

func (s *Store) reposFor(v *view) ports.Repos {
	return ports.Repos{
		Assets:     &AssetRepo{v: v},
		Movements:  &MovementRepo{v: v},
		AuditLogs:  &AuditLogRepo{v: v},
		Repairs:    &RepairRepo{v: v},
		Branches:   &BranchRepo{v: v},
		Sections:   &SectionRepo{v: v},
		Employees:  &EmployeeRepo{v: v},
		Vendors:    &VendorRepo{v: v},
		Categories: &CategoryRepo{v: v},
		Statuses:   &StatusRepo{v: v},
	}
}

// ── Consultas directas para aserciones ───────────────────────────────────────

// Asset devuelve una copia del activo confirmado o nil.
func (s *Store) Asset(id int64) *entity.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.state.assets.rows[id]
	if !ok {
		return nil
	}
	return &a
}

// Movements devuelve los movimientos confirmados en orden de inserción.
func (s *Store) Movements() []entity.AssetMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.AssetMovement, 0, len(s.state.movements.rows))
	for _, id := range s.state.movements.sortedIDs() {
		out = append(out, s.state.movements.rows[id])
	}
	return out
}

// AuditLogs devuelve la bitácora confirmada en orden de inserción.
func (s *Store) AuditLogs() []entity.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.AuditLog, 0, len(s.state.auditLogs.rows))
	for _, id := range s.state.auditLogs.sortedIDs() {
		out = append(out, s.state.auditLogs.rows[id])
	}
	return out
}

// Repair devuelve una copia de la reparación confirmada o nil.
func (s *Store) Repair(id int64) *entity.Repair {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.state.repairs.rows[id]
	if !ok {
		return nil
	}
	return &r
}

// ── Assets ───────────────────────────────────────────────────────────────────

// AssetRepo implementa repository.AssetRepository.
type AssetRepo struct{ v *view }

var _ repository.AssetRepository = (*AssetRepo)(nil)

func (r *AssetRepo) Create(_ context.Context, a *entity.Asset) error {
	return r.v.do(func(st *state) error {
		for _, other := range st.assets.rows {
			if a.AssetTag != "" && other.AssetTag == a.AssetTag {
				return domain.ErrDuplicate
			}
		}
		a.ID = st.assets.nextID()
		a.Version = 1
		st.assets.rows[a.ID] = *a
		return nil
	})
}

func (r *AssetRepo) GetByID(_ context.Context, id int64) (*entity.Asset, error) {
	var out *entity.Asset
	err := r.v.do(func(st *state) error {
		if a, ok := st.assets.rows[id]; ok {
			out = &a
		}
		return nil
	})
	return out, err
}

func (r *AssetRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Asset, error) {
	return r.GetByID(ctx, id)
}

func (r *AssetRepo) Update(_ context.Context, a *entity.Asset) error {
	return r.v.do(func(st *state) error {
		if r.v.store.FailAssetUpdateID == a.ID {
			return ErrInjected
		}
		cur, ok := st.assets.rows[a.ID]
		if !ok {
			return domain.ErrNotFound
		}
		if cur.Version != a.Version {
			return domain.ErrVersionConflict
		}
		a.Version++
		st.assets.rows[a.ID] = *a
		return nil
	})
}

func (r *AssetRepo) Delete(_ context.Context, id int64) error {
	return r.v.do(func(st *state) error {
		for _, rep := range st.repairs.rows {
			if rep.AssetID == id {
				return domain.ErrConflict
			}
		}
		for _, m := range st.movements.rows {
			if m.AssetID == id {
				return domain.ErrConflict
			}
		}
		delete(st.assets.rows, id)
		return nil
	})
}

func (r *AssetRepo) List(_ context.Context, f repository.AssetFilter) ([]*entity.Asset, int, error) {
	var out []*entity.Asset
	total := 0
	err := r.v.do(func(st *state) error {
		var all []*entity.Asset
		for _, id := range st.assets.sortedIDs() {
			a := st.assets.rows[id]
			if f.BranchID != nil && !entity.SameID(a.BranchID, f.BranchID) {
				continue
			}
			if f.CustodianID != nil && !entity.SameID(a.CustodianID, f.CustodianID) {
				continue
			}
			if f.StatusID != nil && a.StatusID != *f.StatusID {
				continue
			}
			if f.CategoryID != nil && a.CategoryID != *f.CategoryID {
				continue
			}
			if f.Search != "" && !containsFold(a.Name, f.Search) && !containsFold(a.AssetTag, f.Search) && !containsFold(a.SerialNumber, f.Search) {
				continue
			}
			all = append(all, &a)
		}
		total = len(all)
		out = page(all, f.Limit, f.Offset)
		return nil
	})
	return out, total, err
}

// ── Movements ────────────────────────────────────────────────────────────────

// MovementRepo implementa repository.AssetMovementRepository.
type MovementRepo struct{ v *view }

var _ repository.AssetMovementRepository = (*MovementRepo)(nil)

func (r *MovementRepo) Create(_ context.Context, m *entity.AssetMovement) error {
	return r.v.do(func(st *state) error {
		if _, ok := st.assets.rows[m.AssetID]; !ok {
			return domain.ErrConflict
		}
		m.ID = st.movements.nextID()
		st.movements.rows[m.ID] = *m
		return nil
	})
}

func (r *MovementRepo) ListByAsset(_ context.Context, assetID int64, limit, offset int) ([]*entity.AssetMovement, error) {
	var out []*entity.AssetMovement
	err := r.v.do(func(st *state) error {
		ids := st.movements.sortedIDs()
		var all []*entity.AssetMovement
		for i := len(ids) - 1; i >= 0; i-- { // más reciente primero
			m := st.movements.rows[ids[i]]
			if m.AssetID == assetID {
				all = append(all, &m)
			}
		}
		out = page(all, limit, offset)
		return nil
	})
	return out, err
}

// ── Audit logs ───────────────────────────────────────────────────────────────

// AuditLogRepo implementa repository.AuditLogRepository.
type AuditLogRepo struct{ v *view }

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

func (r *AuditLogRepo) Create(_ context.Context, l *entity.AuditLog) error {
	if err := r.v.store.AuditErr; err != nil {
		return err
	}
	return r.v.do(func(st *state) error {
		l.ID = st.auditLogs.nextID()
		st.auditLogs.rows[l.ID] = *l
		return nil
	})
}

func (r *AuditLogRepo) List(_ context.Context, f repository.AuditLogFilter) ([]*entity.AuditLog, int, error) {
	var out []*entity.AuditLog
	total := 0
	err := r.v.do(func(st *state) error {
		ids := st.auditLogs.sortedIDs()
		var all []*entity.AuditLog
		for i := len(ids) - 1; i >= 0; i-- {
			l := st.auditLogs.rows[ids[i]]
			if f.EntityType != "" && l.EntityType != f.EntityType {
				continue
			}
			if f.EntityID != nil && l.EntityID != *f.EntityID {
				continue
			}
			if f.ActorID != "" && l.ActorID != f.ActorID {
				continue
			}
			all = append(all, &l)
		}
		total = len(all)
		out = page(all, f.Limit, f.Offset)
		return nil
	})
	return out, total, err
}

// ── Repairs ──────────────────────────────────────────────────────────────────

// RepairRepo implementa repository.RepairRepository.
type RepairRepo struct{ v *view }

var _ repository.RepairRepository = (*RepairRepo)(nil)

func (r *RepairRepo) Create(_ context.Context, rep *entity.Repair) error {
	return r.v.do(func(st *state) error {
		if _, ok := st.assets.rows[rep.AssetID]; !ok {
			return domain.ErrConflict
		}
		rep.ID = st.repairs.nextID()
		st.repairs.rows[rep.ID] = *rep
		return nil
	})
}

func (r *RepairRepo) GetByID(_ context.Context, id int64) (*entity.Repair, error) {
	var out *entity.Repair
	err := r.v.do(func(st *state) error {
		if rep, ok := st.repairs.rows[id]; ok {
			out = &rep
		}
		return nil
	})
	return out, err
}

func (r *RepairRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Repair, error) {
	return r.GetByID(ctx, id)
}

func (r *RepairRepo) Update(_ context.Context, rep *entity.Repair) error {
	return r.v.do(func(st *state) error {
		if _, ok := st.repairs.rows[rep.ID]; !ok {
			return domain.ErrNotFound
		}
		st.repairs.rows[rep.ID] = *rep
		return nil
	})
}

func (r *RepairRepo) Delete(_ context.Context, id int64) error {
	return r.v.do(func(st *state) error {
		delete(st.repairs.rows, id)
		return nil
	})
}

func (r *RepairRepo) List(_ context.Context, f repository.RepairFilter) ([]*entity.Repair, int, error) {
	var out []*entity.Repair
	total := 0
	err := r.v.do(func(st *state) error {
		var all []*entity.Repair
		for _, id := range st.repairs.sortedIDs() {
			rep := st.repairs.rows[id]
			if f.AssetID != nil && rep.AssetID != *f.AssetID {
				continue
			}
			if f.VendorID != nil && rep.VendorID != *f.VendorID {
				continue
			}
			if f.Status != "" && rep.Status != f.Status {
				continue
			}
			all = append(all, &rep)
		}
		total = len(all)
		out = page(all, f.Limit, f.Offset)
		return nil
	})
	return out, total, err
}

// ── helpers ──────────────────────────────────────────────────────────────────

func page[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
