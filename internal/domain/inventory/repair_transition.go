package inventory

import (
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// RepairTransitions valida cambios de estado de una reparación.
// En modo estricto solo se acepta el mismo estado o el siguiente del orden
// Pending → In Repair → Completed → Returned. En modo permisivo cualquier estado del conjunto.
type RepairTransitions struct {
	Strict bool
}

// IsValidRepairStatus informa si el estado pertenece al conjunto permitido.
func IsValidRepairStatus(status string) bool {
	return repairStatusIndex(status) >= 0
}

// Check devuelve ErrInvalidInput si to no es un estado válido y ErrInvalidTransition si el salto no está permitido.
func (t RepairTransitions) Check(from, to string) error {
	toIdx := repairStatusIndex(to)
	if toIdx < 0 {
		return domain.ErrInvalidInput
	}
	if !t.Strict {
		return nil
	}
	fromIdx := repairStatusIndex(from)
	if fromIdx < 0 {
		// estado legado fuera del conjunto: solo puede reiniciarse a Pending
		if toIdx == 0 {
			return nil
		}
		return domain.ErrInvalidTransition
	}
	if toIdx == fromIdx || toIdx == fromIdx+1 {
		return nil
	}
	return domain.ErrInvalidTransition
}

func repairStatusIndex(status string) int {
	for i, s := range entity.RepairStatuses {
		if s == status {
			return i
		}
	}
	return -1
}
