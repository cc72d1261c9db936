package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	publisher "github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/kafka"
	conversiondto "github.com/LavaJover/shvark-affiliate-service/internal/usecase/dto/conversion"
	"github.com/google/uuid"
)

// RecordConversion обрабатывает постбэк мерчанта.
// Конверсия - долговечный источник истины: once persisted it is never rolled
// back because a follow-up step failed; commission failure is surfaced as
// *domain.CommissionError instead.
func (uc *DefaultConversionUsecase) RecordConversion(ctx context.Context, input *conversiondto.RecordConversionInput) (*conversiondto.RecordConversionOutput, error) {
	code, err := domain.ParseTrackingCode(input.TrackingCode)
	if err != nil {
		return nil, err
	}

	click, err := uc.clickRepo.GetClickByTrackingCode(code)
	if err != nil {
		return nil, err
	}
	// клик уже сконвертирован: ретрансляция того же заказа - дубликат,
	// другой заказ по тому же клику - отказ без новой атрибуции
	if click.IsConverted {
		if existing, lookupErr := uc.conversionRepo.GetConversionByExternalOrderID(input.ExternalOrderID); lookupErr == nil {
			uc.metrics.ConversionsRejectedTotal.WithLabelValues("duplicate").Inc()
			return &conversiondto.RecordConversionOutput{ConversionID: existing.ID}, domain.ErrDuplicateConversion
		}
		uc.metrics.ConversionsRejectedTotal.WithLabelValues("click_converted").Inc()
		return nil, domain.ErrClickAlreadyConverted
	}

	offer, err := uc.catalogRepo.GetOfferByID(click.OfferID)
	if err != nil {
		return nil, err
	}
	program, err := uc.catalogRepo.GetProgramByID(offer.ProgramID)
	if err != nil {
		return nil, err
	}

	// окно атрибуции считается от клика, по cookieDays программы
	window := time.Duration(program.CookieDays) * 24 * time.Hour
	if time.Now().After(click.CreatedAt.Add(window)) {
		uc.metrics.ConversionsRejectedTotal.WithLabelValues("window_expired").Inc()
		uc.publishConversionEvent(publisher.ConversionEvent{
			ClickID:         click.ID,
			ExternalOrderID: input.ExternalOrderID,
			SaleAmount:      input.SaleAmount.String(),
			Currency:        input.Currency,
			Status:          string(domain.ConversionRejected),
			RejectReason:    "attribution window expired",
		})
		return nil, domain.ErrAttributionWindowExpired
	}

	conversion := &domain.Conversion{
		ID:              uuid.New().String(),
		ClickID:         click.ID,
		ExternalOrderID: input.ExternalOrderID,
		SaleAmount:      input.SaleAmount,
		Currency:        input.Currency,
		Status:          domain.ConversionPending,
		ProductInfo:     input.ProductInfo,
		CustomerHash:    input.CustomerHash,
		RawPayload:      input.RawPayload,
		CreatedAt:       time.Now(),
	}

	if err := uc.conversionRepo.CreateConversion(conversion); err != nil {
		if errors.Is(err, domain.ErrDuplicateConversion) {
			uc.metrics.ConversionsRejectedTotal.WithLabelValues("duplicate").Inc()
			// ретрансляция постбэка: отдаём id уже обработанной конверсии
			if existing, lookupErr := uc.conversionRepo.GetConversionByExternalOrderID(input.ExternalOrderID); lookupErr == nil {
				return &conversiondto.RecordConversionOutput{ConversionID: existing.ID}, domain.ErrDuplicateConversion
			}
		}
		return nil, err
	}

	if err := uc.clickRepo.MarkConverted(click.ID, conversion.ID); err != nil {
		// конверсия уже сохранена - наружу, без отката
		return &conversiondto.RecordConversionOutput{ConversionID: conversion.ID},
			fmt.Errorf("conversion %s recorded but click link failed: %w", conversion.ID, err)
	}

	uc.metrics.ConversionsRecordedTotal.WithLabelValues(conversion.Currency).Inc()
	uc.publishConversionEvent(publisher.ConversionEvent{
		ConversionID:    conversion.ID,
		ClickID:         click.ID,
		ExternalOrderID: conversion.ExternalOrderID,
		SaleAmount:      conversion.SaleAmount.String(),
		Currency:        conversion.Currency,
		Status:          string(conversion.Status),
	})

	output := &conversiondto.RecordConversionOutput{ConversionID: conversion.ID}

	// анонимный клик: конверсия есть, комиссии нет
	if click.PublisherID == "" {
		return output, nil
	}

	commission, err := uc.commissionUsecase.CreateForConversion(click, conversion, program)
	if err != nil {
		uc.metrics.CommissionFailuresTotal.Inc()
		return output, &domain.CommissionError{ConversionID: conversion.ID, Err: err}
	}
	output.CommissionID = commission.ID

	return output, nil
}

func (uc *DefaultConversionUsecase) publishConversionEvent(event publisher.ConversionEvent) {
	go func() {
		if err := uc.kafkaPublisher.PublishConversion(uc.kafkaCfg.ConversionTopic, event); err != nil {
			slog.Error("failed to publish kafka conversion event", "error", err.Error())
		}
	}()
}
