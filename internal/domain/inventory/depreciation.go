package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthsElapsed meses completos transcurridos entre from y now (0 si from es posterior).
func MonthsElapsed(from, now time.Time) int {
	if now.Before(from) {
		return 0
	}
	months := (now.Year()-from.Year())*12 + int(now.Month()-from.Month())
	if now.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// BookValue valor en libros por depreciación lineal mensual:
// Costo × max(0, 1 − MesesTranscurridos / VidaÚtil), redondeado a 2 decimales.
// Sin fecha de compra o sin vida útil se devuelve el costo completo.
func BookValue(cost decimal.Decimal, purchaseDate *time.Time, lifeMonths int, now time.Time) decimal.Decimal {
	if purchaseDate == nil || lifeMonths <= 0 {
		return cost.Round(2)
	}
	elapsed := MonthsElapsed(*purchaseDate, now)
	if elapsed >= lifeMonths {
		return decimal.Zero
	}
	remaining := decimal.NewFromInt(int64(lifeMonths - elapsed)).Div(decimal.NewFromInt(int64(lifeMonths)))
	return cost.Mul(remaining).Round(2)
}

// MonthsRemaining meses de vida útil restantes (negativo si ya venció).
// ok es false si el activo no tiene fecha de compra o vida útil.
func MonthsRemaining(purchaseDate *time.Time, lifeMonths int, now time.Time) (months int, ok bool) {
	if purchaseDate == nil || lifeMonths <= 0 {
		return 0, false
	}
	end := purchaseDate.AddDate(0, lifeMonths, 0)
	if now.After(end) {
		return -MonthsElapsed(end, now), true
	}
	return MonthsElapsed(now, end), true
}
