package dto

import "github.com/shopspring/decimal"

// ReplacementSuggestionDTO activo candidato a reposición por fin de vida útil.
type ReplacementSuggestionDTO struct {
	AssetID         int64           `json:"asset_id"`
	AssetTag        string          `json:"asset_tag"`
	Name            string          `json:"asset_name"`
	CategoryID      int64           `json:"asset_category_id"`
	BranchID        *int64          `json:"branch_id"`
	CustodianID     *int64          `json:"assigned_to_employee_id"`
	PurchaseDate    string          `json:"purchase_date"`
	EndOfLifeDate   string          `json:"end_of_life_date"`
	MonthsRemaining int             `json:"months_remaining"` // negativo: vida útil vencida
	AcqCost         decimal.Decimal `json:"acq_cost"`
	BookValue       decimal.Decimal `json:"book_value"`
	Priority        int             `json:"priority"` // 1 = más urgente
}

// ReplenishmentReportDTO respuesta de GET /api/reports/replenishment.
type ReplenishmentReportDTO struct {
	WarningMonths    int                        `json:"warning_months"`
	Items            []ReplacementSuggestionDTO `json:"items"`
	TotalReplacement decimal.Decimal            `json:"total_replacement_cost"` // suma de acq_cost
}
