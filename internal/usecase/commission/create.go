package usecase

import (
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	publisher "github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/kafka"
	"github.com/google/uuid"
)

// CreateForConversion начисляет комиссию паблишеру за подтверждённую конверсию.
// Invariant: the click must carry a known publisher - the caller guarantees it.
func (uc *DefaultCommissionUsecase) CreateForConversion(
	click *domain.ClickEvent,
	conversion *domain.Conversion,
	program *domain.AffiliateProgram,
) (*domain.Commission, error) {
	calc, err := uc.Calculate(program, conversion.SaleAmount, conversion.Currency)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	commission := &domain.Commission{
		ID:            uuid.New().String(),
		PublisherID:   click.PublisherID,
		ClickID:       click.ID,
		ConversionID:  conversion.ID,
		SaleAmount:    conversion.SaleAmount,
		Amount:        calc.Amount,
		RateApplied:   calc.RateApplied,
		TierName:      calc.TierName,
		IsFixedAmount: calc.IsFixedAmount,
		Currency:      conversion.Currency,
		Status:        domain.CommissionPending,
		StatusChanged: now,
		CreatedAt:     now,
	}

	if err := uc.commissionRepo.CreateCommission(commission); err != nil {
		return nil, err
	}

	uc.metrics.CommissionsCreatedTotal.WithLabelValues(commission.PublisherID).Inc()
	amountFloat, _ := commission.Amount.Float64()
	uc.metrics.CommissionAmountTotal.WithLabelValues(commission.Currency).Add(amountFloat)

	go func(event publisher.CommissionEvent) {
		if err := uc.kafkaPublisher.PublishCommission(uc.kafkaCfg.CommissionTopic, event); err != nil {
			slog.Error("failed to publish kafka commission event", "stage", "creating", "error", err.Error())
		}
	}(publisher.CommissionEvent{
		CommissionID: commission.ID,
		PublisherID:  commission.PublisherID,
		ConversionID: commission.ConversionID,
		Amount:       commission.Amount.String(),
		Currency:     commission.Currency,
		Status:       string(commission.Status),
	})

	return commission, nil
}
