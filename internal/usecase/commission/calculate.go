package usecase

import (
	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	commissiondto "github.com/LavaJover/shvark-affiliate-service/internal/usecase/dto/commission"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// minorUnits - число знаков после запятой для валюты. Default 2.
func minorUnits(currency string) int32 {
	switch currency {
	case "JPY", "KRW", "VND":
		return 0
	case "BHD", "KWD", "OMR":
		return 3
	default:
		return 2
	}
}

// Calculate вычисляет комиссию по конфигурации программы.
// Rounding happens exactly once, at the end: round-half-up to the currency's
// minor units. Boundary ties between tiers go to the higher-paying tier.
func (uc *DefaultCommissionUsecase) Calculate(program *domain.AffiliateProgram, saleAmount decimal.Decimal, currency string) (*commissiondto.CalculationResult, error) {
	if program == nil {
		return nil, domain.ErrProgramNotFound
	}

	precision := minorUnits(currency)

	if program.IsFixedAmount {
		return &commissiondto.CalculationResult{
			Amount:        program.FixedAmount.Round(precision),
			RateApplied:   decimal.Zero,
			IsFixedAmount: true,
		}, nil
	}

	rate := program.BaseCommissionPct
	tierName := ""
	for i := range program.Tiers {
		tier := &program.Tiers[i]
		if !tier.Contains(saleAmount) {
			continue
		}
		if tierName == "" || tier.Percent.GreaterThan(rate) {
			rate = tier.Percent
			tierName = tier.Name
		}
	}

	// decimal.Round rounds half away from zero - half-up for money
	amount := saleAmount.Mul(rate).Div(hundred).Round(precision)

	return &commissiondto.CalculationResult{
		Amount:      amount,
		RateApplied: rate,
		TierName:    tierName,
	}, nil
}
