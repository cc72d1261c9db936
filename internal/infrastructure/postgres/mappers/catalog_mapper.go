package mappers

import (
	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/postgres/models"
)

func ToDomainOffer(model *models.OfferModel) *domain.Offer {
	return &domain.Offer{
		ID:           model.ID,
		MerchantID:   model.MerchantID,
		ProgramID:    model.ProgramID,
		AffiliateURL: model.AffiliateURL,
		IsActive:     model.IsActive,
	}
}

func ToDomainProgram(model *models.ProgramModel) *domain.AffiliateProgram {
	tiers := make([]domain.CommissionTier, len(model.Tiers))
	for i, tier := range model.Tiers {
		tiers[i] = domain.CommissionTier{
			Name:      tier.Name,
			MinAmount: tier.MinAmount,
			MaxAmount: tier.MaxAmount,
			Percent:   tier.Percent,
		}
	}
	return &domain.AffiliateProgram{
		ID:                model.ID,
		MerchantID:        model.MerchantID,
		BaseCommissionPct: model.BaseCommissionPct,
		IsFixedAmount:     model.IsFixedAmount,
		FixedAmount:       model.FixedAmount,
		CookieDays:        model.CookieDays,
		Tiers:             tiers,
	}
}
