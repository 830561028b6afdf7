// Package mutation ejecuta escrituras de negocio dentro de una transacción y dispara,
// en orden explícito, los hooks posteriores (auditoría, invalidación de caché).
package mutation

import (
	"time"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// Actor identidad de quien ejecuta la petición (la provee la capa HTTP).
type Actor struct {
	UserID string
	IP     string
}

// Mutation describe una escritura observada sobre una entidad rastreada.
// Before es nil en creaciones y After es nil en eliminaciones.
type Mutation struct {
	EntityType string
	EntityID   int64
	Action     string
	Before     map[string]any
	After      map[string]any
	Actor      Actor
	At         time.Time
}

// Recorder acumula las mutaciones que un caso de uso realiza dentro de la transacción.
type Recorder struct {
	actor     Actor
	at        time.Time
	mutations []Mutation
}

func newRecorder(actor Actor, at time.Time) *Recorder {
	return &Recorder{actor: actor, at: at}
}

// Now marca de tiempo única de la operación (todas las filas comparten el mismo instante).
func (r *Recorder) Now() time.Time { return r.at }

// Actor identidad de la operación en curso.
func (r *Recorder) Actor() Actor { return r.actor }

// Created registra la creación de una entidad.
func (r *Recorder) Created(entityType string, id int64, after map[string]any) {
	r.add(entityType, id, entity.AuditActionCreated, nil, after)
}

// Updated registra una actualización con sus instantáneas antes/después.
func (r *Recorder) Updated(entityType string, id int64, before, after map[string]any) {
	r.add(entityType, id, entity.AuditActionUpdated, before, after)
}

// Deleted registra una eliminación.
func (r *Recorder) Deleted(entityType string, id int64, before map[string]any) {
	r.add(entityType, id, entity.AuditActionDeleted, before, nil)
}

// Mutations copia de lo registrado hasta el momento.
func (r *Recorder) Mutations() []Mutation {
	out := make([]Mutation, len(r.mutations))
	copy(out, r.mutations)
	return out
}

func (r *Recorder) add(entityType string, id int64, action string, before, after map[string]any) {
	r.mutations = append(r.mutations, Mutation{
		EntityType: entityType,
		EntityID:   id,
		Action:     action,
		Before:     before,
		After:      after,
		Actor:      r.actor,
		At:         r.at,
	})
}
