package usecase

import (
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	publisher "github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/kafka"
)

// Жизненный цикл: Pending -> Approved -> Paid, Pending -> Rejected.
// Paid и Rejected терминальны.

func (uc *DefaultCommissionUsecase) ApproveCommission(commissionID, note string) error {
	return uc.transition(commissionID, domain.CommissionApproved, note)
}

func (uc *DefaultCommissionUsecase) RejectCommission(commissionID, reason string) error {
	return uc.transition(commissionID, domain.CommissionRejected, reason)
}

func (uc *DefaultCommissionUsecase) MarkCommissionPaid(commissionID string) error {
	return uc.transition(commissionID, domain.CommissionPaid, "")
}

func (uc *DefaultCommissionUsecase) transition(commissionID string, next domain.CommissionStatus, note string) error {
	commission, err := uc.commissionRepo.GetCommissionByID(commissionID)
	if err != nil {
		return err
	}
	if !commission.CanTransitionTo(next) {
		// programming/data error, not expected in normal operation
		slog.Error("invalid commission status transition",
			"commission_id", commissionID,
			"from", string(commission.Status),
			"to", string(next),
		)
		return domain.ErrInvalidStatusTransition
	}

	changedAt := time.Now()
	if err := uc.commissionRepo.UpdateCommissionStatus(commissionID, next, note, changedAt); err != nil {
		return err
	}

	go func(event publisher.CommissionEvent) {
		if err := uc.kafkaPublisher.PublishCommission(uc.kafkaCfg.CommissionTopic, event); err != nil {
			slog.Error("failed to publish kafka commission event", "stage", "transition", "error", err.Error())
		}
	}(publisher.CommissionEvent{
		CommissionID: commission.ID,
		PublisherID:  commission.PublisherID,
		ConversionID: commission.ConversionID,
		Amount:       commission.Amount.String(),
		Currency:     commission.Currency,
		Status:       string(next),
	})

	return nil
}

func (uc *DefaultCommissionUsecase) GetCommissionByID(commissionID string) (*domain.Commission, error) {
	return uc.commissionRepo.GetCommissionByID(commissionID)
}

func (uc *DefaultCommissionUsecase) GetCommissions(filter domain.CommissionFilter, page, limit int) ([]*domain.Commission, int64, error) {
	return uc.commissionRepo.GetCommissions(filter, page, limit)
}
