package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/inventory"
)

func TestRepairTransitions_Estricto(t *testing.T) {
	fsm := inventory.RepairTransitions{Strict: true}

	cases := []struct {
		from, to string
		want     error
	}{
		{entity.RepairStatusPending, entity.RepairStatusInRepair, nil},
		{entity.RepairStatusInRepair, entity.RepairStatusCompleted, nil},
		{entity.RepairStatusCompleted, entity.RepairStatusReturned, nil},
		{entity.RepairStatusInRepair, entity.RepairStatusInRepair, nil},
		{entity.RepairStatusPending, entity.RepairStatusReturned, domain.ErrInvalidTransition},
		{entity.RepairStatusReturned, entity.RepairStatusPending, domain.ErrInvalidTransition},
		{entity.RepairStatusCompleted, entity.RepairStatusInRepair, domain.ErrInvalidTransition},
		{entity.RepairStatusPending, "Lost", domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.from+"->"+tc.to, func(t *testing.T) {
			assert.ErrorIs(t, fsm.Check(tc.from, tc.to), tc.want)
		})
	}
}

func TestRepairTransitions_Permisivo(t *testing.T) {
	fsm := inventory.RepairTransitions{Strict: false}

	assert.NoError(t, fsm.Check(entity.RepairStatusReturned, entity.RepairStatusPending))
	assert.NoError(t, fsm.Check(entity.RepairStatusPending, entity.RepairStatusReturned))
	assert.ErrorIs(t, fsm.Check(entity.RepairStatusPending, "pending"), domain.ErrInvalidInput)
}

func TestIsValidRepairStatus(t *testing.T) {
	assert.True(t, inventory.IsValidRepairStatus("In Repair"))
	assert.False(t, inventory.IsValidRepairStatus("in repair"))
}
