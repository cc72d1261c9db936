package mappers

import (
	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/postgres/models"
)

func ToDomainConversion(model *models.ConversionModel) *domain.Conversion {
	return &domain.Conversion{
		ID:              model.ID,
		ClickID:         model.ClickID,
		ExternalOrderID: model.ExternalOrderID,
		SaleAmount:      model.SaleAmount,
		Currency:        model.Currency,
		Status:          domain.ConversionStatus(model.Status),
		ProductInfo:     model.ProductInfo,
		CustomerHash:    model.CustomerHash,
		RejectionReason: model.RejectionReason,
		RawPayload:      model.RawPayload,
		ValidatedAt:     model.ValidatedAt,
		CreatedAt:       model.CreatedAt,
	}
}

func ToGORMConversion(conversion *domain.Conversion) *models.ConversionModel {
	return &models.ConversionModel{
		ID:              conversion.ID,
		ClickID:         conversion.ClickID,
		ExternalOrderID: conversion.ExternalOrderID,
		SaleAmount:      conversion.SaleAmount,
		Currency:        conversion.Currency,
		Status:          string(conversion.Status),
		ProductInfo:     conversion.ProductInfo,
		CustomerHash:    conversion.CustomerHash,
		RejectionReason: conversion.RejectionReason,
		RawPayload:      conversion.RawPayload,
		ValidatedAt:     conversion.ValidatedAt,
		CreatedAt:       conversion.CreatedAt,
	}
}
