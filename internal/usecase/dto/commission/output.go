package commissiondto

import "github.com/shopspring/decimal"

// CalculationResult - результат расчёта комиссии до персистенции.
type CalculationResult struct {
	Amount        decimal.Decimal
	RateApplied   decimal.Decimal
	TierName      string
	IsFixedAmount bool
}
