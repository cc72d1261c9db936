package usecase

import (
	"context"

	"github.com/LavaJover/shvark-affiliate-service/internal/config"
	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	publisher "github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/metrics"
	commissionuc "github.com/LavaJover/shvark-affiliate-service/internal/usecase/commission"
	conversiondto "github.com/LavaJover/shvark-affiliate-service/internal/usecase/dto/conversion"
)

type ConversionUsecase interface {
	RecordConversion(ctx context.Context, input *conversiondto.RecordConversionInput) (*conversiondto.RecordConversionOutput, error)
	GetConversionByID(conversionID string) (*domain.Conversion, error)
	ValidateConversion(conversionID string) error
	RejectConversion(conversionID, reason string) error
}

type DefaultConversionUsecase struct {
	conversionRepo    domain.ConversionRepository
	clickRepo         domain.ClickRepository
	catalogRepo       domain.CatalogRepository
	commissionUsecase commissionuc.CommissionUsecase
	kafkaPublisher    *publisher.DefaultKafkaPublisher
	metrics           *metrics.AffiliateMetrics
	kafkaCfg          config.KafkaService
}

func NewDefaultConversionUsecase(
	conversionRepo domain.ConversionRepository,
	clickRepo domain.ClickRepository,
	catalogRepo domain.CatalogRepository,
	commissionUsecase commissionuc.CommissionUsecase,
	kafkaPublisher *publisher.DefaultKafkaPublisher,
	affiliateMetrics *metrics.AffiliateMetrics,
	kafkaCfg config.KafkaService,
) *DefaultConversionUsecase {
	return &DefaultConversionUsecase{
		conversionRepo:    conversionRepo,
		clickRepo:         clickRepo,
		catalogRepo:       catalogRepo,
		commissionUsecase: commissionUsecase,
		kafkaPublisher:    kafkaPublisher,
		metrics:           affiliateMetrics,
		kafkaCfg:          kafkaCfg,
	}
}
