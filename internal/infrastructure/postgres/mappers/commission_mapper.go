package mappers

import (
	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/postgres/models"
)

func ToDomainCommission(model *models.CommissionModel) *domain.Commission {
	return &domain.Commission{
		ID:            model.ID,
		PublisherID:   model.PublisherID,
		ClickID:       model.ClickID,
		ConversionID:  model.ConversionID,
		SaleAmount:    model.SaleAmount,
		Amount:        model.Amount,
		RateApplied:   model.RateApplied,
		TierName:      model.TierName,
		IsFixedAmount: model.IsFixedAmount,
		Currency:      model.Currency,
		Status:        domain.CommissionStatus(model.Status),
		Note:          model.Note,
		StatusChanged: model.StatusChanged,
		CreatedAt:     model.CreatedAt,
	}
}

func ToGORMCommission(commission *domain.Commission) *models.CommissionModel {
	return &models.CommissionModel{
		ID:            commission.ID,
		PublisherID:   commission.PublisherID,
		ClickID:       commission.ClickID,
		ConversionID:  commission.ConversionID,
		SaleAmount:    commission.SaleAmount,
		Amount:        commission.Amount,
		RateApplied:   commission.RateApplied,
		TierName:      commission.TierName,
		IsFixedAmount: commission.IsFixedAmount,
		Currency:      commission.Currency,
		Status:        string(commission.Status),
		Note:          commission.Note,
		StatusChanged: commission.StatusChanged,
		CreatedAt:     commission.CreatedAt,
	}
}
