package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/Activos-api/internal/domain"
)

// Tipos de movimiento de activos.
const (
	MovementTypeTransfer     = "transfer"      // cambio de custodio y/o sucursal
	MovementTypeBulkTransfer = "bulk_transfer" // traslado masivo a un custodio
	MovementTypeReturn       = "return"        // devolución a inventario
	MovementTypeStatusChange = "status_change" // cambio de estado
)

// MinReasonLength longitud mínima del motivo de un movimiento o cambio de estado.
const MinReasonLength = 10

// AssetMovement registro inmutable del historial de un activo.
// Se crea únicamente por traslados, devoluciones y cambios de estado; nunca se actualiza ni elimina.
type AssetMovement struct {
	ID              int64
	BatchID         string // agrupa los movimientos de una misma operación
	AssetID         int64
	Type            string
	FromCustodianID *int64
	ToCustodianID   *int64
	FromBranchID    *int64
	ToBranchID      *int64
	FromStatusID    *int64
	ToStatusID      *int64
	Reason          string
	Remarks         string
	ActorID         string
	CreatedAt       time.Time
}

// ValidateReason exige un motivo de al menos MinReasonLength caracteres (sin contar espacios de borde).
func ValidateReason(reason string) error {
	if utf8.RuneCountInString(strings.TrimSpace(reason)) < MinReasonLength {
		return domain.ErrReasonTooShort
	}
	return nil
}
