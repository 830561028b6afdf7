package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Activos-api/internal/domain/inventory"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthsElapsed(t *testing.T) {
	assert.Equal(t, 0, inventory.MonthsElapsed(date(2024, 1, 15), date(2024, 2, 14)))
	assert.Equal(t, 1, inventory.MonthsElapsed(date(2024, 1, 15), date(2024, 2, 15)))
	assert.Equal(t, 14, inventory.MonthsElapsed(date(2023, 1, 1), date(2024, 3, 1)))
	assert.Equal(t, 0, inventory.MonthsElapsed(date(2025, 1, 1), date(2024, 1, 1)))
}

func TestBookValue_DepreciacionLineal(t *testing.T) {
	purchase := date(2022, 1, 1)
	cost := decimal.NewFromInt(3600)

	got := inventory.BookValue(cost, &purchase, 36, date(2023, 7, 1)) // 18 de 36 meses
	assert.True(t, decimal.NewFromInt(1800).Equal(got), "got %s", got)

	got = inventory.BookValue(cost, &purchase, 36, date(2026, 1, 1))
	assert.True(t, got.IsZero(), "vida útil agotada vale cero")
}

func TestBookValue_SinDatosDevuelveCosto(t *testing.T) {
	cost := decimal.RequireFromString("999.999")
	assert.Equal(t, "1000", inventory.BookValue(cost, nil, 36, time.Now()).String())
}

func TestMonthsRemaining(t *testing.T) {
	purchase := date(2022, 1, 1)

	m, ok := inventory.MonthsRemaining(&purchase, 36, date(2024, 7, 1))
	assert.True(t, ok)
	assert.Equal(t, 6, m)

	m, ok = inventory.MonthsRemaining(&purchase, 24, date(2024, 7, 1))
	assert.True(t, ok)
	assert.Equal(t, -6, m)

	_, ok = inventory.MonthsRemaining(nil, 24, date(2024, 7, 1))
	assert.False(t, ok)
}
