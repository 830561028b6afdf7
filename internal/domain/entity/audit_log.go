package entity

import "time"

// Acciones auditadas.
const (
	AuditActionCreated = "created"
	AuditActionUpdated = "updated"
	AuditActionDeleted = "deleted"
)

// Tipos de entidad rastreados por la auditoría.
const (
	EntityAsset    = "asset"
	EntityCategory = "category"
	EntityVendor   = "vendor"
	EntityBranch   = "branch"
	EntitySection  = "section"
	EntityEmployee = "employee"
	EntityStatus   = "status"
	EntityRepair   = "repair"
)

// FieldChange valor anterior y nuevo de un atributo.
type FieldChange struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// AuditLog registro inmutable de una mutación sobre una entidad rastreada.
type AuditLog struct {
	ID         int64
	EntityType string
	EntityID   int64
	Action     string
	Changes    map[string]FieldChange // solo atributos que cambiaron
	ActorID    string
	IPAddress  string
	CreatedAt  time.Time
}
